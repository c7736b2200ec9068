package v1

import (
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler defines the interface for invoice and payment operations
type InvoiceHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	ListPayments(ctx *gin.Context)
	PayWithWallet(ctx *gin.Context)
	Create(ctx *gin.Context)
	Issue(ctx *gin.Context)
	Cancel(ctx *gin.Context)
	RecordPayment(ctx *gin.Context)
	Refund(ctx *gin.Context)
}

type invoiceHandler struct {
	invoiceService    billing.InvoiceService
	metrics           *metrics.Metrics
	defaultTaxPercent float64
}

// NewInvoiceHandler creates a new InvoiceHandler. Manual invoices without a
// tax rate are taxed at defaultTaxPercent.
func NewInvoiceHandler(invoiceService billing.InvoiceService, m *metrics.Metrics, defaultTaxPercent float64) InvoiceHandler {
	return &invoiceHandler{
		invoiceService:    invoiceService,
		metrics:           m,
		defaultTaxPercent: defaultTaxPercent,
	}
}

// List returns the invoices visible to the caller
// @Summary List invoices
// @Tags Billing
// @Produce json
// @Param status query string false "Status filter"
// @Param service_application_id query string false "Application filter"
// @Success 200 {array} InvoiceResponse
// @Router /invoices [get]
func (handler *invoiceHandler) List(ctx *gin.Context) {
	query := billing.NewInvoiceQuery()
	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}
	if applicationID := ctx.Query("service_application_id"); len(applicationID) > 0 {
		query.ServiceApplicationID = applicationID
	}
	if userID := ctx.Query("user_id"); len(userID) > 0 && principalFrom(ctx).IsAdmin() {
		query.UserID = userID
	}
	readPaging(ctx, &query.Limit, &query.Offset)
	readSorting(ctx, &query.SortBy, &query.SortOrder)

	invoices, err := handler.invoiceService.List(ctx, principalFrom(ctx), query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		response = append(response, newInvoiceResponse(invoice))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *invoiceHandler) GetByID(ctx *gin.Context) {
	invoice, err := handler.invoiceService.GetByID(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newInvoiceResponse(invoice))
}

func (handler *invoiceHandler) ListPayments(ctx *gin.Context) {
	payments, err := handler.invoiceService.ListPayments(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		response = append(response, newPaymentResponse(payment))
	}
	ctx.JSON(http.StatusOK, response)
}

// PayWithWallet settles the balance due from the caller's wallet
// @Summary Pay an invoice from the wallet
// @Tags Billing
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 201 {object} PaymentResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /invoices/{id}/pay-wallet [post]
func (handler *invoiceHandler) PayWithWallet(ctx *gin.Context) {
	payment, err := handler.invoiceService.PayWithWallet(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	handler.metrics.PaymentRecorded(payment.Method)

	ctx.JSON(http.StatusCreated, newPaymentResponse(payment))
}

// Create issues a manual invoice
func (handler *invoiceHandler) Create(ctx *gin.Context) {
	var request CreateInvoiceRequest
	if !bindJSON(ctx, &request) {
		return
	}

	invoice, err := handler.invoiceService.Create(ctx, request.ToDomain(handler.defaultTaxPercent))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newInvoiceResponse(invoice))
}

// Issue moves a draft invoice to unpaid
func (handler *invoiceHandler) Issue(ctx *gin.Context) {
	invoice, err := handler.invoiceService.Issue(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newInvoiceResponse(invoice))
}

func (handler *invoiceHandler) Cancel(ctx *gin.Context) {
	invoice, err := handler.invoiceService.Cancel(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newInvoiceResponse(invoice))
}

// RecordPayment registers a card, bank transfer or cash payment
// @Summary Record a payment
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body RecordPaymentRequest true "Payment"
// @Success 201 {object} PaymentResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /admin/invoices/{id}/payments [post]
func (handler *invoiceHandler) RecordPayment(ctx *gin.Context) {
	var request RecordPaymentRequest
	if !bindJSON(ctx, &request) {
		return
	}

	payment, err := handler.invoiceService.RecordPayment(ctx, ctx.Param("id"), request.Amount, request.Method, request.Reference)
	if err != nil {
		writeError(ctx, err)
		return
	}
	handler.metrics.PaymentRecorded(payment.Method)

	ctx.JSON(http.StatusCreated, newPaymentResponse(payment))
}

// Refund reverses a completed payment
func (handler *invoiceHandler) Refund(ctx *gin.Context) {
	payment, err := handler.invoiceService.Refund(ctx, ctx.Param("paymentId"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPaymentResponse(payment))
}
