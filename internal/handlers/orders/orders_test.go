package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/dto"
	"github.com/GlebRadaev/afftrack/internal/service/commissionservice"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestFinalizeOrder(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.FinalizeOrderResponseDTO
	}{
		{
			name: "Completed order",
			body: `{"order_id":"o1","visitor_id":"v1","amount":"22.95","package_count":1,"is_first_sale_for_customer":true,"status":"completed"}`,
			prepareMock: func() {
				service.EXPECT().FinalizeOrderCommission(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o domain.Order) (*commissionservice.Result, error) {
						assert.Equal(t, domain.OrderCompleted, o.Status)
						assert.True(t, o.Amount.Equal(decimal.RequireFromString("22.95")))
						assert.True(t, o.IsFirstSaleForCustomer)
						o.AffiliateID = "9004"
						o.LinkID = "l1"
						return &commissionservice.Result{
							Order: o, Commission: decimal.RequireFromString("4.59"), Attributed: true, EventID: "evt_1",
						}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.FinalizeOrderResponseDTO{
				OrderID: "o1", Status: "completed", AffiliateID: "9004", LinkID: "l1", Attributed: true, Commission: "4.59", EventID: "evt_1",
			},
		},
		{
			name: "Numeric amount is accepted",
			body: `{"order_id":"o2","amount":10,"status":"declined"}`,
			prepareMock: func() {
				service.EXPECT().FinalizeOrderCommission(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o domain.Order) (*commissionservice.Result, error) {
						return &commissionservice.Result{Order: o, Commission: decimal.Zero}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.FinalizeOrderResponseDTO{OrderID: "o2", Status: "declined", Commission: "0.00"},
		},
		{
			name:          "Invalid body",
			body:          `{"amount":"abc"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Invalid order",
			body: `{"order_id":"o3","status":"shipped"}`,
			prepareMock: func() {
				service.EXPECT().FinalizeOrderCommission(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidOrder)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidOrder.Error(),
		},
		{
			name: "Internal server error",
			body: `{"order_id":"o4","status":"completed"}`,
			prepareMock: func() {
				service.EXPECT().FinalizeOrderCommission(gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/orders/finalize", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.FinalizeOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				return
			}
			var body dto.FinalizeOrderResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
