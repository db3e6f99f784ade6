package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

func NewMock(t *testing.T) (*EventPublisher, *MockWriter) {
	ctrl := gomock.NewController(t)
	writer := NewMockWriter(ctrl)
	return NewEventPublisherWithWriter(writer, "afftrack"), writer
}

func TestPublish(t *testing.T) {
	publisher, writer := NewMock(t)
	amount := money.FromCents(1795)
	commission := money.FromCents(500)
	event := &domain.FunnelEvent{
		EventID:       "evt_1",
		EventType:     domain.EventSale,
		AffiliateID:   "9004",
		SubIDs:        domain.SubIDs{"sub": "fb1"},
		OrderID:       "ord_1",
		Amount:        &amount,
		Commission:    &commission,
		TransactionID: "tx_1",
		OccurredAt:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("Sale event goes to its topic keyed by affiliate", func(t *testing.T) {
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "afftrack.funnel.sale", msgs[0].Topic)
			assert.Equal(t, []byte("9004"), msgs[0].Key)

			var body map[string]any
			require.NoError(t, json.Unmarshal(msgs[0].Value, &body))
			assert.Equal(t, "17.95", body["amount"])
			assert.Equal(t, "5.00", body["commission"])
			assert.Equal(t, "fb1", body["sub_ids"].(map[string]any)["sub"])
			return nil
		})
		assert.NoError(t, publisher.Publish(context.Background(), event))
	})

	t.Run("Writer error is returned", func(t *testing.T) {
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
		assert.Error(t, publisher.Publish(context.Background(), event))
	})
}

func TestClose(t *testing.T) {
	publisher, writer := NewMock(t)
	writer.EXPECT().Close().Return(nil)
	assert.NoError(t, publisher.Close())
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), &domain.FunnelEvent{}))
}

func TestNewEventPublisher(t *testing.T) {
	p := NewEventPublisher([]string{"localhost:9092"}, "shop")
	assert.Equal(t, "shop.funnel.page_view", p.Topic(domain.EventPageView))
}
