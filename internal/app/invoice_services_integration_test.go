//go:build integration
// +build integration

package app

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(userID string, unitPrice int64) *billing.Invoice {
	return &billing.Invoice{
		UserID:     userID,
		Items:      []billing.InvoiceItem{{Description: "Document attestation", Quantity: 2, UnitPrice: unitPrice}},
		TaxPercent: 5,
	}
}

func TestInvoiceService_CreateNumbersAndTotals(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	user, _ := ts.RegisterTestUser(t, "buyer@example.com")

	first, err := ts.Invoices.Create(ctx, newTestInvoice(user.ID, 10000))
	require.NoError(t, err)
	year := first.IssueDate.Year()
	assert.Equal(t, fmt.Sprintf("INV-%d-000001", year), first.Number)
	assert.Equal(t, int64(20000), first.Subtotal)
	assert.Equal(t, int64(1000), first.TaxAmount)
	assert.Equal(t, int64(21000), first.Total)
	assert.Equal(t, billing.StatusUnpaid, first.Status)
	assert.Equal(t, TestCurrency, first.Currency)
	assert.Equal(t, first.IssueDate.AddDate(0, 0, 14), first.DueDate)

	draft := newTestInvoice(user.ID, 5000)
	draft.Status = billing.StatusDraft
	second, err := ts.Invoices.Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-000002", year), second.Number)
	assert.Equal(t, billing.StatusDraft, second.Status)

	issued, err := ts.Invoices.Issue(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusUnpaid, issued.Status)

	_, err = ts.Invoices.Issue(ctx, second.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestInvoiceService_CreateRejects(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	user, _ := ts.RegisterTestUser(t, "buyer@example.com")

	discounted := newTestInvoice(user.ID, 1000)
	discounted.Discount = 5000
	_, err := ts.Invoices.Create(ctx, discounted)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	paid := newTestInvoice(user.ID, 1000)
	paid.Status = billing.StatusPaid
	_, err = ts.Invoices.Create(ctx, paid)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	empty := newTestInvoice(user.ID, 1000)
	empty.Items = nil
	_, err = ts.Invoices.Create(ctx, empty)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestInvoiceService_ZeroTotalInvoiceIsPaid(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	user, _ := ts.RegisterTestUser(t, "buyer@example.com")

	discounted := newTestInvoice(user.ID, 1000)
	discounted.Discount = 2000
	invoice, err := ts.Invoices.Create(ctx, discounted)
	require.NoError(t, err)
	assert.Equal(t, int64(0), invoice.Total)
	assert.Equal(t, billing.StatusPaid, invoice.Status)
	assert.NotNil(t, invoice.PaidAt)

	free := newTestInvoice(user.ID, 0)
	free.Status = billing.StatusDraft
	draft, err := ts.Invoices.Create(ctx, free)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusDraft, draft.Status)

	issued, err := ts.Invoices.Issue(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPaid, issued.Status)

	marked, err := ts.Invoices.MarkOverdue(ctx, time.Now().UTC().AddDate(0, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}

func TestInvoiceService_RecordPayment(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	user, principal := ts.RegisterTestUser(t, "buyer@example.com")

	invoice, err := ts.Invoices.Create(ctx, newTestInvoice(user.ID, 10000))
	require.NoError(t, err)

	_, err = ts.Invoices.RecordPayment(ctx, invoice.ID, 25000, billing.MethodCard, "ch_1")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = ts.Invoices.RecordPayment(ctx, invoice.ID, 1000, billing.MethodWallet, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	payment, err := ts.Invoices.RecordPayment(ctx, invoice.ID, 11000, billing.MethodBankTransfer, "TRX-7781")
	require.NoError(t, err)
	assert.Equal(t, billing.PaymentCompleted, payment.Status)

	stored, err := ts.Invoices.GetByID(ctx, principal, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPartiallyPaid, stored.Status)
	assert.Equal(t, int64(10000), stored.BalanceDue())

	_, err = ts.Invoices.RecordPayment(ctx, invoice.ID, 10000, billing.MethodCash, "")
	require.NoError(t, err)

	stored, err = ts.Invoices.GetByID(ctx, principal, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPaid, stored.Status)
	assert.NotNil(t, stored.PaidAt)

	_, err = ts.Invoices.RecordPayment(ctx, invoice.ID, 1, billing.MethodCash, "")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	payments, err := ts.Invoices.ListPayments(ctx, principal, invoice.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	_, err = ts.Invoices.Cancel(ctx, invoice.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestInvoiceService_ConcurrentPaymentsDoNotOverpay(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	user, _ := ts.RegisterTestUser(t, "buyer@example.com")

	invoice, err := ts.Invoices.Create(ctx, newTestInvoice(user.ID, 10000))
	require.NoError(t, err)

	const attempts = 6
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ts.Invoices.RecordPayment(ctx, invoice.ID, invoice.Total, billing.MethodCard, fmt.Sprintf("ch_%d", i))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)

	stored, err := ts.Invoices.GetByID(ctx, AdminPrincipal(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.Total, stored.AmountPaid)
	assert.Equal(t, billing.StatusPaid, stored.Status)

	payments, err := ts.Invoices.ListPayments(ctx, AdminPrincipal(), invoice.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestInvoiceService_Access(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	owner, ownerPrincipal := ts.RegisterTestUser(t, "owner@example.com")
	_, stranger := ts.RegisterTestUser(t, "stranger@example.com")

	invoice, err := ts.Invoices.Create(ctx, newTestInvoice(owner.ID, 10000))
	require.NoError(t, err)

	_, err = ts.Invoices.GetByID(ctx, stranger, invoice.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = ts.Invoices.GetByID(ctx, AdminPrincipal(), invoice.ID)
	assert.NoError(t, err)

	list, err := ts.Invoices.List(ctx, stranger, billing.NewInvoiceQuery())
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = ts.Invoices.List(ctx, ownerPrincipal, billing.NewInvoiceQuery())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInvoiceService_PayWithWalletAndRefund(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	user, principal := ts.RegisterTestUser(t, "buyer@example.com")

	invoice, err := ts.Invoices.Create(ctx, newTestInvoice(user.ID, 10000))
	require.NoError(t, err)

	_, err = ts.Invoices.PayWithWallet(ctx, principal, invoice.ID)
	assert.ErrorIs(t, err, apperr.ErrInsufficientFunds)

	wallet, err := ts.Wallets.GetOrCreate(ctx, user.ID, wallets.OwnerUser)
	require.NoError(t, err)
	_, err = ts.Wallets.Credit(ctx, wallet.ID, 30000, "TOPUP", "Top up")
	require.NoError(t, err)

	payment, err := ts.Invoices.PayWithWallet(ctx, principal, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.MethodWallet, payment.Method)
	assert.Equal(t, int64(21000), payment.Amount)

	wallet, err = ts.Wallets.GetByID(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), wallet.Balance)

	paid, err := ts.Invoices.GetByID(ctx, principal, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPaid, paid.Status)

	refunded, err := ts.Invoices.Refund(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.PaymentRefunded, refunded.Status)

	_, err = ts.Invoices.Refund(ctx, payment.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	wallet, err = ts.Wallets.GetByID(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), wallet.Balance)

	reopened, err := ts.Invoices.GetByID(ctx, principal, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusUnpaid, reopened.Status)
	assert.Nil(t, reopened.PaidAt)
}

func TestInvoiceService_PayWithWalletForeignInvoice(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	owner, _ := ts.RegisterTestUser(t, "owner@example.com")
	_, stranger := ts.RegisterTestUser(t, "stranger@example.com")

	invoice, err := ts.Invoices.Create(ctx, newTestInvoice(owner.ID, 10000))
	require.NoError(t, err)

	_, err = ts.Invoices.PayWithWallet(ctx, stranger, invoice.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestInvoiceService_MarkOverdue(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	user, principal := ts.RegisterTestUser(t, "buyer@example.com")

	issue := time.Now().UTC().AddDate(0, -1, 0)
	old := newTestInvoice(user.ID, 10000)
	old.IssueDate = issue
	old.DueDate = issue.AddDate(0, 0, 7)
	overdue, err := ts.Invoices.Create(ctx, old)
	require.NoError(t, err)

	current, err := ts.Invoices.Create(ctx, newTestInvoice(user.ID, 10000))
	require.NoError(t, err)

	marked, err := ts.Invoices.MarkOverdue(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	stored, err := ts.Invoices.GetByID(ctx, principal, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusOverdue, stored.Status)

	stored, err = ts.Invoices.GetByID(ctx, principal, current.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusUnpaid, stored.Status)

	_, err = ts.Invoices.RecordPayment(ctx, overdue.ID, 21000, billing.MethodCard, "late")
	require.NoError(t, err)
	stored, err = ts.Invoices.GetByID(ctx, principal, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPaid, stored.Status)

	marked, err = ts.Invoices.MarkOverdue(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}

func TestInvoiceService_GenerateRecurring(t *testing.T) {
	ts := SetupTestServices(t)
	ctx := context.Background()
	user, _ := ts.RegisterTestUser(t, "subscriber@example.com")

	issue := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)
	monthly := newTestInvoice(user.ID, 10000)
	monthly.IssueDate = issue
	monthly.DueDate = issue.AddDate(0, 0, 10)
	monthly.Recurrence = billing.Recurrence{Frequency: billing.FrequencyMonthly}
	parent, err := ts.Invoices.Create(ctx, monthly)
	require.NoError(t, err)
	require.NotNil(t, parent.Recurrence.NextIssueDate)
	assert.Equal(t, time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC), *parent.Recurrence.NextIssueDate)

	created, err := ts.Invoices.GenerateRecurring(ctx, time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	created, err = ts.Invoices.GenerateRecurring(ctx, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	query := billing.NewInvoiceQuery()
	query.UserID = user.ID
	all, err := ts.Invoices.List(ctx, AdminPrincipal(), query)
	require.NoError(t, err)
	require.Len(t, all, 2)

	var child, stored *billing.Invoice
	for _, inv := range all {
		if inv.ID == parent.ID {
			stored = inv
		} else {
			child = inv
		}
	}
	require.NotNil(t, child)
	require.NotNil(t, stored)
	require.NotNil(t, child.ParentInvoiceID)
	assert.Equal(t, parent.ID, *child.ParentInvoiceID)
	assert.Equal(t, time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC), child.IssueDate.UTC())
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), child.DueDate.UTC())
	assert.Equal(t, parent.Total, child.Total)
	assert.Equal(t, "INV-2026-000002", child.Number)
	assert.False(t, child.Recurrence.IsRecurring())
	assert.Equal(t, time.Date(2026, 3, 28, 9, 0, 0, 0, time.UTC), stored.Recurrence.NextIssueDate.UTC())

	created, err = ts.Invoices.GenerateRecurring(ctx, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestInvoiceService_ListRequiresPrincipal(t *testing.T) {
	ts := SetupTestServices(t)
	_, err := ts.Invoices.List(context.Background(), (*users.Principal)(nil), billing.NewInvoiceQuery())
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
