package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/dto"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*StatsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	handler.now = func() time.Time { return fixedNow }
	return handler, service
}

func TestGetFunnelStats(t *testing.T) {
	handler, service := NewMock(t)

	stats := &domain.FunnelStats{
		AffiliateID: "9004",
		Stages: []domain.FunnelStage{
			{EventType: domain.EventPageView, Count: 10, ConversionRate: 1},
			{EventType: domain.EventSale, Count: 2, ConversionRate: 0.2},
		},
	}

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Date range with inclusive end day",
			query: "?affiliate_id=9004&from=2026-04-01&to=2026-04-30",
			prepareMock: func() {
				service.EXPECT().ComputeFunnelStats(gomock.Any(), "9004",
					time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)).Return(stats, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Defaults to last thirty days for all affiliates",
			query: "",
			prepareMock: func() {
				service.EXPECT().ComputeFunnelStats(gomock.Any(), "", fixedNow.Add(-defaultRange), fixedNow).Return(stats, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid from",
			query:        "?from=last-week",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Inverted range",
			query: "?from=2026-05-01T00:00:00Z&to=2026-04-01T00:00:00Z",
			prepareMock: func() {
				service.EXPECT().ComputeFunnelStats(gomock.Any(), "", gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidPeriod)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal server error",
			query: "?affiliate_id=9004",
			prepareMock: func() {
				service.EXPECT().ComputeFunnelStats(gomock.Any(), "9004", gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/stats/funnel"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.GetFunnelStats(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var body dto.FunnelStatsResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			require.Len(t, body.Stages, 2)
			assert.Equal(t, "sale", body.Stages[1].EventType)
			assert.Equal(t, 0.2, body.Stages[1].ConversionRate)
		})
	}
}
