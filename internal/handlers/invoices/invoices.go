package invoices

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/dto"
	"github.com/GlebRadaev/afftrack/pkg/utils"
)

//go:generate mockgen -source=invoices.go -destination=mock_invoices.go -package=invoices

type Service interface {
	GenerateInvoice(ctx context.Context, affiliateID string, periodStart, periodEnd time.Time, total decimal.Decimal) (*domain.Invoice, error)
	GenerateInvoiceForPeriod(ctx context.Context, affiliateID string, periodStart, periodEnd time.Time) (*domain.Invoice, error)
	RecordPayment(ctx context.Context, invoiceID string, amount decimal.Decimal) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, affiliateID string) ([]domain.Invoice, error)
	GetBalance(ctx context.Context, affiliateID string) (*domain.AffiliateBalance, error)
	ListCorrections(ctx context.Context, affiliateID string) ([]domain.InvoiceCorrection, error)
	ListPayments(ctx context.Context, affiliateID string) ([]domain.InvoicePayment, error)
}

type InvoiceHandler struct {
	invoiceService Service
}

func New(invoiceService Service) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidAffiliateID):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrAffiliateNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInvoiceTotal),
		errors.Is(err, domain.ErrInvalidPaymentAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GenerateInvoice godoc
//
//	@Summary		Generate an invoice
//	@Description	Issue a pending invoice for the period. Without total_commission the uninvoiced commission line items created in [period_start, period_end) are summed and attached.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			affiliateID	path		string							true	"Affiliate ID"
//	@Param			request		body		dto.GenerateInvoiceRequestDTO	true	"Period"
//	@Success		201			{object}	dto.InvoiceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid period"
//	@Failure		404			{object}	utils.Response	"Affiliate not found"
//	@Failure		422			{object}	utils.Response	"Nothing to invoice"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{affiliateID}/invoices [post]
func (h *InvoiceHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateInvoiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, err := utils.ParseTime(req.PeriodStart, false)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "period_start: "+err.Error())
		return
	}
	end, err := utils.ParseTime(req.PeriodEnd, false)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "period_end: "+err.Error())
		return
	}

	affiliateID := chi.URLParam(r, "affiliateID")
	var inv *domain.Invoice
	if req.TotalCommission != nil {
		inv, err = h.invoiceService.GenerateInvoice(r.Context(), affiliateID, start, end, *req.TotalCommission)
	} else {
		inv, err = h.invoiceService.GenerateInvoiceForPeriod(r.Context(), affiliateID, start, end)
	}
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewInvoiceResponse(inv))
}

// ListInvoices godoc
//
//	@Summary	List invoices of an affiliate
//	@Tags		Invoices
//	@Produce	json
//	@Param		affiliateID	path	string	true	"Affiliate ID"
//	@Success	200			{array}	dto.InvoiceResponseDTO
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates/{affiliateID}/invoices [get]
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceService.ListInvoices(r.Context(), chi.URLParam(r, "affiliateID"))
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.InvoiceResponseDTO, 0, len(invoices))
	for i := range invoices {
		resp = append(resp, dto.NewInvoiceResponse(&invoices[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetInvoice godoc
//
//	@Summary	Get an invoice
//	@Tags		Invoices
//	@Produce	json
//	@Param		invoiceID	path		string	true	"Invoice ID"
//	@Success	200			{object}	dto.InvoiceResponseDTO
//	@Failure	404			{object}	utils.Response	"Invoice not found"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/invoices/{invoiceID} [get]
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoiceService.GetInvoice(r.Context(), chi.URLParam(r, "invoiceID"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInvoiceResponse(inv))
}

// RecordPayment godoc
//
//	@Summary		Record a payment
//	@Description	Apply the payment to the invoice. Anything above the owed amount becomes prepaid credit.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			invoiceID	path		string					true	"Invoice ID"
//	@Param			request		body		dto.PaymentRequestDTO	true	"Payment"
//	@Success		200			{object}	dto.InvoiceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Invoice not found"
//	@Failure		422			{object}	utils.Response	"Amount must be positive"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/{invoiceID}/payments [post]
func (h *InvoiceHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.invoiceService.RecordPayment(r.Context(), chi.URLParam(r, "invoiceID"), req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInvoiceResponse(inv))
}

// DeleteInvoice godoc
//
//	@Summary	Delete an invoice
//	@Tags		Invoices
//	@Param		invoiceID	path	string	true	"Invoice ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Invoice not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/invoices/{invoiceID} [delete]
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.invoiceService.DeleteInvoice(r.Context(), chi.URLParam(r, "invoiceID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetBalance godoc
//
//	@Summary	Affiliate balance
//	@Tags		Invoices
//	@Produce	json
//	@Param		affiliateID	path		string	true	"Affiliate ID"
//	@Success	200			{object}	dto.BalanceResponseDTO
//	@Failure	404			{object}	utils.Response	"Affiliate not found"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates/{affiliateID}/balance [get]
func (h *InvoiceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.invoiceService.GetBalance(r.Context(), chi.URLParam(r, "affiliateID"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(balance))
}

// ListPayments godoc
//
//	@Summary		Payment history of an affiliate
//	@Description	Every recorded payment, including payments against deleted invoices.
//	@Tags			Invoices
//	@Produce		json
//	@Param			affiliateID	path	string	true	"Affiliate ID"
//	@Success		200			{array}	dto.PaymentResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{affiliateID}/payments [get]
func (h *InvoiceHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.invoiceService.ListPayments(r.Context(), chi.URLParam(r, "affiliateID"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentResponses(payments))
}

// ListCorrections godoc
//
//	@Summary	Clawback corrections of an affiliate
//	@Tags		Invoices
//	@Produce	json
//	@Param		affiliateID	path	string	true	"Affiliate ID"
//	@Success	200			{array}	dto.CorrectionResponseDTO
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates/{affiliateID}/corrections [get]
func (h *InvoiceHandler) ListCorrections(w http.ResponseWriter, r *http.Request) {
	corrections, err := h.invoiceService.ListCorrections(r.Context(), chi.URLParam(r, "affiliateID"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCorrectionResponses(corrections))
}
