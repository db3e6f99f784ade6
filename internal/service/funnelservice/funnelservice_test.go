package funnelservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/afftrack/internal/domain"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockAttributionReader, *MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	attributions := NewMockAttributionReader(ctrl)
	publisher := NewMockPublisher(ctrl)
	service := New(repo, attributions, publisher)
	service.now = func() time.Time { return fixedNow }
	return service, repo, attributions, publisher
}

func TestRecordEvent(t *testing.T) {
	service, repo, attributions, publisher := NewMock(t)
	attribution := &domain.Attribution{VisitorID: "v1", AffiliateID: "9005", SubIDs: domain.SubIDs{"sub": "fb1"}}

	tests := []struct {
		name        string
		req         RecordRequest
		prepareMock func()
		expectedErr error
		expectNil   bool
		check       func(t *testing.T, e *domain.FunnelEvent)
	}{
		{
			name: "Tagged from the visitor attribution",
			req:  RecordRequest{EventType: domain.EventCheckoutView, VisitorID: "v1", OrderID: "ignored"},
			prepareMock: func() {
				attributions.EXPECT().Get(gomock.Any(), "v1").Return(attribution, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, e *domain.FunnelEvent) {
				assert.Equal(t, "9005", e.AffiliateID)
				assert.Equal(t, domain.SubIDs{"sub": "fb1"}, e.SubIDs)
				assert.Empty(t, e.OrderID, "order id is kept for sale events only")
				assert.Equal(t, fixedNow, e.OccurredAt)
				assert.Contains(t, e.EventID, "evt_")
			},
		},
		{
			name: "Explicit affiliate skips the attribution lookup",
			req:  RecordRequest{EventType: domain.EventSale, AffiliateID: "9004", SubIDs: domain.SubIDs{"sub2": "a", "foo": "b"}, OrderID: "ord_1"},
			prepareMock: func() {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			check: func(t *testing.T, e *domain.FunnelEvent) {
				assert.Equal(t, "9004", e.AffiliateID)
				assert.Equal(t, domain.SubIDs{"sub2": "a"}, e.SubIDs)
				assert.Equal(t, "ord_1", e.OrderID)
			},
		},
		{
			name: "No attribution means the event is skipped",
			req:  RecordRequest{EventType: domain.EventPageView, VisitorID: "v2"},
			prepareMock: func() {
				attributions.EXPECT().Get(gomock.Any(), "v2").Return(nil, nil)
			},
			expectNil: true,
		},
		{
			name:        "Unknown event type",
			req:         RecordRequest{EventType: "click", VisitorID: "v1"},
			expectedErr: domain.ErrUnknownEventType,
			expectNil:   true,
		},
		{
			name: "Attribution lookup error",
			req:  RecordRequest{EventType: domain.EventPageView, VisitorID: "v1"},
			prepareMock: func() {
				attributions.EXPECT().Get(gomock.Any(), "v1").Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
			expectNil:   true,
		},
		{
			name: "Insert error",
			req:  RecordRequest{EventType: domain.EventFormFill, AffiliateID: "9004"},
			prepareMock: func() {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
			expectNil:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			e, err := service.RecordEvent(context.Background(), tt.req)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, e)
				return
			}
			require.NotNil(t, e)
			tt.check(t, e)
		})
	}
}

func TestRecordKeepsGivenIdentity(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	service.publisher = nil
	at := fixedNow.Add(-time.Minute)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	e, err := service.Record(context.Background(), &domain.FunnelEvent{EventID: "evt_x", EventType: domain.EventSale, AffiliateID: "9004", OccurredAt: at})
	require.NoError(t, err)
	assert.Equal(t, "evt_x", e.EventID)
	assert.Equal(t, at, e.OccurredAt)
	assert.NotNil(t, e.SubIDs)

	_, err = service.Record(context.Background(), &domain.FunnelEvent{EventType: "upsell"})
	assert.ErrorIs(t, err, domain.ErrUnknownEventType)
}

func TestComputeFunnelStats(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	t.Run("Canonical order and rates relative to page views", func(t *testing.T) {
		repo.EXPECT().CountByType(gomock.Any(), "9004", from, to).Return(map[domain.EventType]int64{
			domain.EventSale:         2,
			domain.EventPageView:     3,
			domain.EventCheckoutView: 1,
		}, nil)

		stats, err := service.ComputeFunnelStats(context.Background(), "9004", from, to)
		require.NoError(t, err)
		require.Len(t, stats.Stages, len(domain.FunnelOrder))
		for i, stage := range stats.Stages {
			assert.Equal(t, domain.FunnelOrder[i], stage.EventType)
		}
		assert.Equal(t, 1.0, stats.Stages[0].ConversionRate)
		assert.Equal(t, 0.0, stats.Stages[1].ConversionRate)
		assert.Equal(t, 0.3333, stats.Stages[2].ConversionRate)
		assert.Equal(t, int64(2), stats.Stages[5].Count)
		assert.Equal(t, 0.6667, stats.Stages[5].ConversionRate)
	})

	t.Run("No page views gives zero rates", func(t *testing.T) {
		repo.EXPECT().CountByType(gomock.Any(), "", from, to).Return(map[domain.EventType]int64{domain.EventSale: 5}, nil)

		stats, err := service.ComputeFunnelStats(context.Background(), "", from, to)
		require.NoError(t, err)
		for _, stage := range stats.Stages {
			assert.Zero(t, stage.ConversionRate)
		}
		assert.Equal(t, int64(5), stats.Stages[5].Count)
	})

	t.Run("Inverted range", func(t *testing.T) {
		_, err := service.ComputeFunnelStats(context.Background(), "", to, from)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo.EXPECT().CountByType(gomock.Any(), "", from, to).Return(nil, errors.New("db error"))
		_, err := service.ComputeFunnelStats(context.Background(), "", from, to)
		assert.Error(t, err)
	})
}
