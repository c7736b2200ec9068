package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/money"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
	"github.com/google/uuid"
)

// Application statuses
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusQuoted      = "quoted"
	StatusApproved    = "approved"
	StatusProcessing  = "processing"
	StatusCompleted   = "completed"
	StatusRejected    = "rejected"
	StatusCancelled   = "cancelled"
)

var transitions = map[string][]string{
	StatusPending:     {StatusUnderReview, StatusRejected, StatusCancelled},
	StatusUnderReview: {StatusQuoted, StatusApproved, StatusRejected, StatusCancelled},
	StatusQuoted:      {StatusUnderReview, StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:    {StatusProcessing, StatusCancelled},
	StatusProcessing:  {StatusCompleted, StatusRejected},
}

var badges = map[string]string{
	StatusPending:     "warning",
	StatusUnderReview: "info",
	StatusQuoted:      "primary",
	StatusApproved:    "success",
	StatusProcessing:  "info",
	StatusCompleted:   "success",
	StatusRejected:    "danger",
	StatusCancelled:   "secondary",
}

// CanTransition reports whether an application may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible from status.
func IsTerminal(status string) bool {
	_, ok := transitions[status]
	return !ok
}

// Document is a file attached to an application.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ServiceApplication entity
type ServiceApplication struct {
	ID              string  `validate:"required,uuid4"`
	ReferenceNo     string  `validate:"required,max=32"`
	UserID          string  `validate:"required,uuid4"`
	ServiceModuleID string  `validate:"required,uuid4"`
	AgencyID        *string `validate:"omitempty,uuid4"`
	AcceptedQuoteID *string `validate:"omitempty,uuid4"`
	FormData        map[string]interface{}
	Status          string `validate:"required,oneof=pending under_review quoted approved processing completed rejected cancelled"`
	Price           int64  `validate:"min=0"`
	Currency        string `validate:"required,currency"`
	AdminNotes      string `validate:"max=5000"`
	Documents       []Document
	SubmittedAt     time.Time `validate:"required"`
	CreatedAt       time.Time `validate:"required"`
	UpdatedAt       time.Time
}

// Validate for validating ServiceApplication struct
func (a *ServiceApplication) Validate() error {
	return validators.Struct(a)
}

// TransitionTo moves the application to status or fails with apperr.ErrConflict.
func (a *ServiceApplication) TransitionTo(status string, now time.Time) error {
	if !CanTransition(a.Status, status) {
		return apperr.Conflictf("application %s cannot move from %s to %s", a.ReferenceNo, a.Status, status)
	}
	a.Status = status
	a.UpdatedAt = now
	return nil
}

// CancellableByOwner reports whether the applicant may still withdraw the application.
func (a *ServiceApplication) CancellableByOwner() bool {
	switch a.Status {
	case StatusPending, StatusUnderReview, StatusQuoted:
		return true
	}
	return false
}

// AcceptsQuotes reports whether agencies may currently quote on the application.
func (a *ServiceApplication) AcceptsQuotes() bool {
	return a.Status == StatusUnderReview || a.Status == StatusQuoted
}

// StatusBadge maps the status to a UI badge colour.
func (a *ServiceApplication) StatusBadge() string {
	if badge, ok := badges[a.Status]; ok {
		return badge
	}
	return "secondary"
}

// FormattedPrice renders the price for display
func (a *ServiceApplication) FormattedPrice() string {
	return money.Format(a.Price, a.Currency)
}

// FindDocument returns the attached document with the given id.
func (a *ServiceApplication) FindDocument(documentID string) (*Document, bool) {
	for i := range a.Documents {
		if a.Documents[i].ID == documentID {
			return &a.Documents[i], true
		}
	}
	return nil, false
}

// NewReferenceNo returns a human friendly application reference such as APP-20261019-4F3A9C.
func NewReferenceNo(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("APP-%s-%s", now.UTC().Format("20060102"), suffix)
}

// ApplicationQuery filters the application listing
type ApplicationQuery struct {
	UserID          string `validate:"omitempty,uuid4"`
	ServiceModuleID string `validate:"omitempty,uuid4"`
	AgencyID        string `validate:"omitempty,uuid4"`
	Status          string `validate:"omitempty,oneof=pending under_review quoted approved processing completed rejected cancelled"`
	Limit           int    `validate:"omitempty,gt=0,max=200"`
	Offset          int    `validate:"omitempty,gte=0"`
	SortBy          string `validate:"omitempty,oneof=created_at submitted_at status price"`
	SortOrder       string `validate:"omitempty,oneof=asc desc"`
}

// NewApplicationQuery creates an ApplicationQuery with default paging
func NewApplicationQuery() *ApplicationQuery {
	return &ApplicationQuery{Limit: 50}
}

// Validate for validating ApplicationQuery struct
func (q *ApplicationQuery) Validate() error {
	return validators.Struct(q)
}
