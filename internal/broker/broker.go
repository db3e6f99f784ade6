// Package broker publishes recorded funnel events to kafka topics.
package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

//go:generate mockgen -source=broker.go -destination=mock_broker.go -package=broker

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventPublisher struct {
	writer Writer
	prefix string
}

func NewEventPublisher(brokers []string, prefix string) *EventPublisher {
	return &EventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
		},
		prefix: prefix,
	}
}

func NewEventPublisherWithWriter(writer Writer, prefix string) *EventPublisher {
	return &EventPublisher{writer: writer, prefix: prefix}
}

type eventMessage struct {
	EventID       string            `json:"event_id"`
	EventType     string            `json:"event_type"`
	AffiliateID   string            `json:"affiliate_id"`
	SubIDs        map[string]string `json:"sub_ids,omitempty"`
	OrderID       string            `json:"order_id,omitempty"`
	PackageCount  int               `json:"package_count,omitempty"`
	Amount        string            `json:"amount,omitempty"`
	Commission    string            `json:"commission,omitempty"`
	TransactionID string            `json:"transaction_id,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// Topic is "<prefix>.funnel.<event_type>".
func (p *EventPublisher) Topic(eventType domain.EventType) string {
	return p.prefix + ".funnel." + string(eventType)
}

// Publish writes the event keyed by affiliate so one affiliate's events stay ordered.
func (p *EventPublisher) Publish(ctx context.Context, e *domain.FunnelEvent) error {
	msg := eventMessage{
		EventID:       e.EventID,
		EventType:     string(e.EventType),
		AffiliateID:   e.AffiliateID,
		SubIDs:        e.SubIDs,
		OrderID:       e.OrderID,
		PackageCount:  e.PackageCount,
		TransactionID: e.TransactionID,
		OccurredAt:    e.OccurredAt,
	}
	if e.Amount != nil {
		msg.Amount = money.Format(*e.Amount)
	}
	if e.Commission != nil {
		msg.Commission = money.Format(*e.Commission)
	}
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.Topic(e.EventType),
		Key:   []byte(e.AffiliateID),
		Value: value,
	})
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no kafka brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *domain.FunnelEvent) error {
	return nil
}
