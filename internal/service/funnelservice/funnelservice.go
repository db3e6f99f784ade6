package funnelservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/metrics"
	"github.com/GlebRadaev/afftrack/internal/service/attributionservice"
)

//go:generate mockgen -source=funnelservice.go -destination=mock_funnelservice.go -package=funnelservice

type Repo interface {
	Insert(ctx context.Context, e *domain.FunnelEvent) error
	CountByType(ctx context.Context, affiliateID string, from, to time.Time) (map[domain.EventType]int64, error)
}

type AttributionReader interface {
	Get(ctx context.Context, visitorID string) (*domain.Attribution, error)
}

type Publisher interface {
	Publish(ctx context.Context, e *domain.FunnelEvent) error
}

type Service struct {
	repo         Repo
	attributions AttributionReader
	publisher    Publisher
	now          func() time.Time
}

func New(repo Repo, attributions AttributionReader, publisher Publisher) *Service {
	return &Service{
		repo:         repo,
		attributions: attributions,
		publisher:    publisher,
		now:          time.Now,
	}
}

// RecordRequest is an inbound event. Without an affiliate the visitor's attribution decides.
type RecordRequest struct {
	EventType    domain.EventType
	VisitorID    string
	AffiliateID  string
	SubIDs       domain.SubIDs
	OrderID      string
	PackageCount int
}

// RecordEvent returns nil without error when there is nobody to attribute the event to.
func (s *Service) RecordEvent(ctx context.Context, req RecordRequest) (*domain.FunnelEvent, error) {
	if !req.EventType.Valid() {
		return nil, domain.ErrUnknownEventType
	}

	e := &domain.FunnelEvent{
		EventType:    req.EventType,
		VisitorID:    req.VisitorID,
		AffiliateID:  req.AffiliateID,
		SubIDs:       attributionservice.FilterSubIDs(req.SubIDs),
		PackageCount: req.PackageCount,
	}
	if req.EventType == domain.EventSale {
		e.OrderID = req.OrderID
	}

	if e.AffiliateID == "" {
		a, err := s.attributions.Get(ctx, req.VisitorID)
		if err != nil {
			zap.L().Error("failed to resolve attribution for event", zap.Error(err))
			return nil, err
		}
		if a == nil {
			metrics.EventsSkipped.Inc()
			zap.L().Debug("event skipped, no attribution", zap.String("visitor_id", req.VisitorID), zap.String("event_type", string(req.EventType)))
			return nil, nil
		}
		e.AffiliateID = a.AffiliateID
		e.SubIDs = a.SubIDs
	}

	return s.Record(ctx, e)
}

// Record appends a fully attributed event and queues it for postback dispatch.
func (s *Service) Record(ctx context.Context, e *domain.FunnelEvent) (*domain.FunnelEvent, error) {
	if !e.EventType.Valid() {
		return nil, domain.ErrUnknownEventType
	}
	if e.EventID == "" {
		e.EventID = "evt_" + uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = s.now()
	}
	if e.SubIDs == nil {
		e.SubIDs = domain.SubIDs{}
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		zap.L().Error("failed to record funnel event", zap.Error(err))
		return nil, err
	}
	metrics.EventsRecorded.WithLabelValues(string(e.EventType)).Inc()

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, e); err != nil {
			zap.L().Warn("failed to publish funnel event", zap.String("event_id", e.EventID), zap.Error(err))
		}
	}

	zap.L().Debug("funnel event recorded", zap.String("event_id", e.EventID), zap.String("event_type", string(e.EventType)),
		zap.String("affiliate_id", e.AffiliateID))
	return e, nil
}

// ComputeFunnelStats counts events in [from, to) in canonical stage order. Each stage's
// conversion rate is relative to page views and is 0 when there were none.
func (s *Service) ComputeFunnelStats(ctx context.Context, affiliateID string, from, to time.Time) (*domain.FunnelStats, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidPeriod
	}
	counts, err := s.repo.CountByType(ctx, affiliateID, from, to)
	if err != nil {
		zap.L().Error("failed to count funnel events", zap.Error(err))
		return nil, err
	}

	pageViews := counts[domain.EventPageView]
	stats := &domain.FunnelStats{
		AffiliateID: affiliateID,
		From:        from,
		To:          to,
		Stages:      make([]domain.FunnelStage, 0, len(domain.FunnelOrder)),
	}
	for _, eventType := range domain.FunnelOrder {
		stage := domain.FunnelStage{EventType: eventType, Count: counts[eventType]}
		if pageViews > 0 {
			stage.ConversionRate = decimal.NewFromInt(stage.Count).
				DivRound(decimal.NewFromInt(pageViews), 4).
				InexactFloat64()
		}
		stats.Stages = append(stats.Stages, stage)
	}
	return stats, nil
}
