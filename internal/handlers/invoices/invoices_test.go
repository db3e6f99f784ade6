package invoices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/dto"
)

func NewMock(t *testing.T) (*InvoiceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGenerateInvoice(t *testing.T) {
	handler, service := NewMock(t)

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	invoice := &domain.Invoice{
		InvoiceID:       "inv_1",
		AffiliateID:     "9004",
		InvoiceNumber:   "INV-000001",
		PeriodStart:     start,
		PeriodEnd:       end,
		TotalCommission: decimal.NewFromInt(100),
		AmountOwed:      decimal.NewFromInt(100),
		Status:          domain.InvoicePending,
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Explicit total",
			body: `{"period_start":"2026-04-01","period_end":"2026-05-01","total_commission":"100"}`,
			prepareMock: func() {
				service.EXPECT().GenerateInvoice(gomock.Any(), "9004", start, end, decimal.RequireFromString("100")).Return(invoice, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Line items of the period",
			body: `{"period_start":"2026-04-01T00:00:00Z","period_end":"2026-05-01"}`,
			prepareMock: func() {
				service.EXPECT().GenerateInvoiceForPeriod(gomock.Any(), "9004", start, end).Return(invoice, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Nothing to invoice",
			body: `{"period_start":"2026-04-01","period_end":"2026-05-01"}`,
			prepareMock: func() {
				service.EXPECT().GenerateInvoiceForPeriod(gomock.Any(), "9004", start, end).Return(nil, domain.ErrInvalidInvoiceTotal)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Reversed period",
			body: `{"period_start":"2026-05-01","period_end":"2026-04-01","total_commission":10}`,
			prepareMock: func() {
				service.EXPECT().GenerateInvoice(gomock.Any(), "9004", end, start, gomock.Any()).Return(nil, domain.ErrInvalidPeriod)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unparsable period",
			body:         `{"period_start":"april","period_end":"2026-05-01"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown affiliate",
			body: `{"period_start":"2026-04-01","period_end":"2026-05-01","total_commission":"100"}`,
			prepareMock: func() {
				service.EXPECT().GenerateInvoice(gomock.Any(), "9004", start, end, gomock.Any()).
					Return(nil, fmt.Errorf("lock balance: %w", domain.ErrAffiliateNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withParam(httptest.NewRequest(http.MethodPost, "/api/affiliates/9004/invoices", bytes.NewBufferString(tt.body)), "affiliateID", "9004")
			w := httptest.NewRecorder()
			handler.GenerateInvoice(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusCreated {
				return
			}
			var body dto.InvoiceResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, "100.00", body.TotalCommission)
			assert.Equal(t, "0.00", body.AmountPaid)
			assert.Equal(t, "pending", body.Status)
		})
	}
}

func TestRecordPayment(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Partial payment",
			body: `{"amount":"40.00"}`,
			prepareMock: func() {
				service.EXPECT().RecordPayment(gomock.Any(), "inv_1", decimal.RequireFromString("40.00")).Return(&domain.Invoice{
					InvoiceID:       "inv_1",
					TotalCommission: decimal.NewFromInt(100),
					AmountPaid:      decimal.NewFromInt(40),
					AmountOwed:      decimal.NewFromInt(60),
					Status:          domain.InvoicePartial,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"amount_owed":"60.00"`,
		},
		{
			name: "Zero amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().RecordPayment(gomock.Any(), "inv_1", gomock.Any()).Return(nil, domain.ErrInvalidPaymentAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Missing invoice",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().RecordPayment(gomock.Any(), "inv_1", gomock.Any()).Return(nil, domain.ErrInvoiceNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Broken ledger",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().RecordPayment(gomock.Any(), "inv_1", gomock.Any()).Return(nil, domain.ErrLedgerInvariant)
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Invalid body",
			body:         `{"amount":"ten"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withParam(httptest.NewRequest(http.MethodPost, "/api/invoices/inv_1/payments", bytes.NewBufferString(tt.body)), "invoiceID", "inv_1")
			w := httptest.NewRecorder()
			handler.RecordPayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestInvoiceReads(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Delete", func(t *testing.T) {
		service.EXPECT().DeleteInvoice(gomock.Any(), "inv_1").Return(nil)

		r := withParam(httptest.NewRequest(http.MethodDelete, "/", nil), "invoiceID", "inv_1")
		w := httptest.NewRecorder()
		handler.DeleteInvoice(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Get missing", func(t *testing.T) {
		service.EXPECT().GetInvoice(gomock.Any(), "inv_x").Return(nil, domain.ErrInvoiceNotFound)

		r := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "invoiceID", "inv_x")
		w := httptest.NewRecorder()
		handler.GetInvoice(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("List", func(t *testing.T) {
		service.EXPECT().ListInvoices(gomock.Any(), "9004").Return([]domain.Invoice{{InvoiceID: "inv_1"}, {InvoiceID: "inv_2"}}, nil)

		r := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "affiliateID", "9004")
		w := httptest.NewRecorder()
		handler.ListInvoices(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.InvoiceResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 2)
	})

	t.Run("Balance", func(t *testing.T) {
		service.EXPECT().GetBalance(gomock.Any(), "9004").Return(&domain.AffiliateBalance{
			AffiliateID:   "9004",
			OpenBalance:   decimal.RequireFromString("60"),
			PrepaidCredit: decimal.RequireFromString("5.5"),
			Clawback:      decimal.Zero,
		}, nil)

		r := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "affiliateID", "9004")
		w := httptest.NewRecorder()
		handler.GetBalance(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"affiliate_id":"9004","open_balance":"60.00","prepaid_credit":"5.50","clawback":"0.00"}`, w.Body.String())
	})

	t.Run("Payments include deleted invoices", func(t *testing.T) {
		service.EXPECT().ListPayments(gomock.Any(), "9004").Return([]domain.InvoicePayment{{
			PaymentID:   "pay_1",
			InvoiceID:   "inv_deleted",
			AffiliateID: "9004",
			Amount:      decimal.RequireFromString("200"),
			Applied:     decimal.RequireFromString("156.5"),
			Overpayment: decimal.RequireFromString("43.5"),
		}}, nil)

		r := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "affiliateID", "9004")
		w := httptest.NewRecorder()
		handler.ListPayments(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.PaymentResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "inv_deleted", body[0].InvoiceID)
		assert.Equal(t, "156.50", body[0].Applied)
		assert.Equal(t, "43.50", body[0].Overpayment)
	})

	t.Run("Corrections failure", func(t *testing.T) {
		service.EXPECT().ListCorrections(gomock.Any(), "9004").Return(nil, errors.New("db down"))

		r := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "affiliateID", "9004")
		w := httptest.NewRecorder()
		handler.ListCorrections(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
