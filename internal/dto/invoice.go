package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

// GenerateInvoiceRequestDTO invoices the uninvoiced commission of the period when
// TotalCommission is omitted.
type GenerateInvoiceRequestDTO struct {
	PeriodStart     string           `json:"period_start" example:"2026-04-01"`
	PeriodEnd       string           `json:"period_end" example:"2026-05-01"`
	TotalCommission *decimal.Decimal `json:"total_commission,omitempty" swaggertype:"string" example:"100.00"`
}

type InvoiceResponseDTO struct {
	InvoiceID       string     `json:"invoice_id" example:"inv_1"`
	AffiliateID     string     `json:"affiliate_id" example:"9004"`
	InvoiceNumber   string     `json:"invoice_number" example:"INV-000001"`
	PeriodStart     time.Time  `json:"period_start" example:"2026-04-01T00:00:00Z"`
	PeriodEnd       time.Time  `json:"period_end" example:"2026-05-01T00:00:00Z"`
	TotalCommission string     `json:"total_commission" example:"100.00"`
	AmountPaid      string     `json:"amount_paid" example:"40.00"`
	AmountOwed      string     `json:"amount_owed" example:"60.00"`
	Status          string     `json:"status" example:"partial"`
	DueDate         time.Time  `json:"due_date" example:"2026-05-31T12:00:00Z"`
	PaidDate        *time.Time `json:"paid_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at" example:"2026-05-01T12:00:00Z"`
}

func NewInvoiceResponse(inv *domain.Invoice) InvoiceResponseDTO {
	return InvoiceResponseDTO{
		InvoiceID:       inv.InvoiceID,
		AffiliateID:     inv.AffiliateID,
		InvoiceNumber:   inv.InvoiceNumber,
		PeriodStart:     inv.PeriodStart,
		PeriodEnd:       inv.PeriodEnd,
		TotalCommission: money.Format(inv.TotalCommission),
		AmountPaid:      money.Format(inv.AmountPaid),
		AmountOwed:      money.Format(inv.AmountOwed),
		Status:          string(inv.Status),
		DueDate:         inv.DueDate,
		PaidDate:        inv.PaidDate,
		CreatedAt:       inv.CreatedAt,
	}
}

type PaymentRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"40.00"`
}

type BalanceResponseDTO struct {
	AffiliateID   string `json:"affiliate_id" example:"9004"`
	OpenBalance   string `json:"open_balance" example:"60.00"`
	PrepaidCredit string `json:"prepaid_credit" example:"0.00"`
	Clawback      string `json:"clawback" example:"0.00"`
}

func NewBalanceResponse(b *domain.AffiliateBalance) BalanceResponseDTO {
	return BalanceResponseDTO{
		AffiliateID:   b.AffiliateID,
		OpenBalance:   money.Format(b.OpenBalance),
		PrepaidCredit: money.Format(b.PrepaidCredit),
		Clawback:      money.Format(b.Clawback),
	}
}

type PaymentResponseDTO struct {
	PaymentID   string    `json:"payment_id" example:"pay_1"`
	InvoiceID   string    `json:"invoice_id" example:"inv_1"`
	Amount      string    `json:"amount" example:"200.00"`
	Applied     string    `json:"applied" example:"156.50"`
	Overpayment string    `json:"overpayment" example:"43.50"`
	CreatedAt   time.Time `json:"created_at" example:"2026-05-01T12:00:00Z"`
}

func NewPaymentResponses(ps []domain.InvoicePayment) []PaymentResponseDTO {
	resp := make([]PaymentResponseDTO, 0, len(ps))
	for _, p := range ps {
		resp = append(resp, PaymentResponseDTO{
			PaymentID:   p.PaymentID,
			InvoiceID:   p.InvoiceID,
			Amount:      money.Format(p.Amount),
			Applied:     money.Format(p.Applied),
			Overpayment: money.Format(p.Overpayment),
			CreatedAt:   p.CreatedAt,
		})
	}
	return resp
}

type CorrectionResponseDTO struct {
	CorrectionID string    `json:"correction_id" example:"cor_1"`
	InvoiceID    string    `json:"invoice_id" example:"inv_1"`
	CommissionID string    `json:"commission_id" example:"com_2"`
	Amount       string    `json:"amount" example:"4.59"`
	CreatedAt    time.Time `json:"created_at" example:"2026-05-01T12:00:00Z"`
}

func NewCorrectionResponses(cs []domain.InvoiceCorrection) []CorrectionResponseDTO {
	resp := make([]CorrectionResponseDTO, 0, len(cs))
	for _, c := range cs {
		resp = append(resp, CorrectionResponseDTO{
			CorrectionID: c.CorrectionID,
			InvoiceID:    c.InvoiceID,
			CommissionID: c.CommissionID,
			Amount:       money.Format(c.Amount),
			CreatedAt:    c.CreatedAt,
		})
	}
	return resp
}
