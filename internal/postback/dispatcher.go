package postback

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/afftrack/internal/config"
	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/metrics"
	"github.com/GlebRadaev/afftrack/pkg/clients"
	"github.com/GlebRadaev/afftrack/pkg/validate"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=postback

const (
	configFanOut    = 8
	defaultTimeout  = 5 * time.Second
	defaultInterval = 2 * time.Second
	defaultBatch    = 100
)

type EventRepo interface {
	FindForDispatch(ctx context.Context, limit uint32) ([]domain.FunnelEvent, error)
	GetByID(ctx context.Context, eventID string) (*domain.FunnelEvent, error)
	MarkDispatched(ctx context.Context, eventID string, at time.Time) error
}

type Repo interface {
	FindEnabled(ctx context.Context, affiliateID string, eventType domain.EventType) ([]domain.PostbackConfig, error)
	Claim(ctx context.Context, eventID, configID string, at time.Time) (bool, error)
	SaveLog(ctx context.Context, l *domain.PostbackLog) error
}

type AffiliateRepo interface {
	Get(ctx context.Context, affiliateID string) (*domain.AffiliateAccount, error)
}

// Dispatcher polls the durable event queue and fires configured postbacks once per (event, config).
type Dispatcher struct {
	events         EventRepo
	repo           Repo
	affiliates     AffiliateRepo
	client         clients.HTTPClientI
	workerPool     WorkerPoolI
	inFlight       sync.Map
	limit          uint32
	updateInterval time.Duration
	timeout        time.Duration
	requireActive  bool
	done           chan struct{}
	now            func() time.Time
}

func New(cfg *config.Config, events EventRepo, repo Repo, affiliates AffiliateRepo, client clients.HTTPClientI) *Dispatcher {
	d := &Dispatcher{
		events:         events,
		repo:           repo,
		affiliates:     affiliates,
		client:         client,
		workerPool:     NewWorkerPool(cfg.PostbackWorkers),
		limit:          cfg.DispatchBatch,
		updateInterval: cfg.DispatchInterval,
		timeout:        cfg.PostbackTimeout,
		requireActive:  cfg.RequireActive,
		now:            time.Now,
	}
	if d.timeout <= 0 {
		d.timeout = defaultTimeout
	}
	if d.updateInterval <= 0 {
		d.updateInterval = defaultInterval
	}
	if d.limit == 0 {
		d.limit = defaultBatch
	}
	return d
}

// Start polls until ctx is done, then closes the worker pool. Close waits for that.
func (d *Dispatcher) Start(ctx context.Context) {
	zap.L().Info("postback dispatcher started", zap.Duration("interval", d.updateInterval))
	d.done = make(chan struct{})
	go func() {
		defer close(d.done)
		d.run(ctx)
		d.workerPool.Close()
	}()
}

func (d *Dispatcher) Close() {
	if d.done != nil {
		<-d.done
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping postback dispatcher")
			return
		case <-ticker.C:
			d.processEvents(ctx)
		}
	}
}

func (d *Dispatcher) processEvents(ctx context.Context) {
	events, err := d.events.FindForDispatch(ctx, atomic.LoadUint32(&d.limit))
	if err != nil {
		zap.L().Error("failed to fetch events for dispatch", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, event := range events {
		event := event

		if _, loaded := d.inFlight.LoadOrStore(event.EventID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := d.workerPool.AddTask(ctx, func() error {
				defer d.inFlight.Delete(event.EventID)
				return d.handleEvent(ctx, &event)
			})
			if err != nil {
				d.inFlight.Delete(event.EventID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error queueing events for dispatch", zap.Error(err))
	}
}

// handleEvent dispatches the event and takes it off the queue. Delivery failures are final;
// only storage errors leave the event queued for the next poll.
func (d *Dispatcher) handleEvent(ctx context.Context, event *domain.FunnelEvent) error {
	if _, err := d.Dispatch(ctx, event); err != nil {
		return fmt.Errorf("dispatch event %s: %w", event.EventID, err)
	}
	if err := d.events.MarkDispatched(ctx, event.EventID, d.now()); err != nil {
		return fmt.Errorf("mark event %s dispatched: %w", event.EventID, err)
	}
	return nil
}

// DispatchByID fires the postbacks of a stored event on demand. Pairs already delivered are skipped.
func (d *Dispatcher) DispatchByID(ctx context.Context, eventID string) ([]domain.PostbackLog, error) {
	event, err := d.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	logs, err := d.Dispatch(ctx, event)
	if err != nil {
		return nil, err
	}
	if event.DispatchedAt == nil {
		if err := d.events.MarkDispatched(ctx, event.EventID, d.now()); err != nil {
			return nil, err
		}
	}
	return logs, nil
}

// Dispatch delivers the event to every enabled config of its affiliate and event type.
// It returns one log per delivery made by this call.
func (d *Dispatcher) Dispatch(ctx context.Context, event *domain.FunnelEvent) ([]domain.PostbackLog, error) {
	if event.AffiliateID == "" {
		return nil, nil
	}
	if d.requireActive {
		affiliate, err := d.affiliates.Get(ctx, event.AffiliateID)
		if err != nil {
			return nil, err
		}
		if affiliate == nil || affiliate.Status != domain.AffiliateActive {
			zap.L().Info("postbacks skipped for inactive affiliate", zap.String("affiliate_id", event.AffiliateID),
				zap.String("event_id", event.EventID))
			return nil, nil
		}
	}

	configs, err := d.repo.FindEnabled(ctx, event.AffiliateID, event.EventType)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.PostbackLog, len(configs))
	var g errgroup.Group
	g.SetLimit(configFanOut)
	for i := range configs {
		i := i
		g.Go(func() error {
			l, err := d.deliver(ctx, event, &configs[i])
			results[i] = l
			return err
		})
	}
	err = g.Wait()

	logs := make([]domain.PostbackLog, 0, len(results))
	for _, l := range results {
		if l != nil {
			logs = append(logs, *l)
		}
	}
	return logs, err
}

func (d *Dispatcher) deliver(ctx context.Context, event *domain.FunnelEvent, cfg *domain.PostbackConfig) (*domain.PostbackLog, error) {
	claimed, err := d.repo.Claim(ctx, event.EventID, cfg.ID, d.now())
	if err != nil {
		return nil, err
	}
	if !claimed {
		metrics.PostbackDuplicates.Inc()
		zap.L().Debug("postback already dispatched", zap.String("event_id", event.EventID), zap.String("config_id", cfg.ID))
		return nil, nil
	}

	l := &domain.PostbackLog{
		PostbackID:  "pb_" + uuid.NewString(),
		ConfigID:    cfg.ID,
		AffiliateID: event.AffiliateID,
		EventID:     event.EventID,
		EventType:   event.EventType,
		OrderID:     event.OrderID,
		RenderedURL: Render(cfg.URLTemplate, event),
		Status:      domain.DeliverySuccess,
	}

	if validate.IsHTTPTemplate(cfg.URLTemplate) {
		d.send(ctx, l)
	}
	l.CreatedAt = d.now()

	metrics.PostbackDeliveries.WithLabelValues(string(event.EventType), string(l.Status)).Inc()
	if l.Status == domain.DeliveryFailed {
		zap.L().Warn("postback delivery failed", zap.String("postback_id", l.PostbackID), zap.String("url", l.RenderedURL),
			zap.Stringp("error", l.Error))
	}

	if err := d.repo.SaveLog(ctx, l); err != nil {
		return l, err
	}
	return l, nil
}

// send performs a single GET. Pixel markup never reaches here.
func (d *Dispatcher) send(ctx context.Context, l *domain.PostbackLog) {
	fail := func(msg string) {
		l.Status = domain.DeliveryFailed
		l.Error = &msg
	}

	if !validate.IsAbsoluteURL(l.RenderedURL) {
		fail("invalid postback url")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	statusCode, _, _, err := d.client.Get(reqCtx, l.RenderedURL, nil)
	if statusCode != 0 {
		l.StatusCode = &statusCode
	}
	switch {
	case err != nil:
		fail(err.Error())
	case statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices:
		fail(fmt.Sprintf("unexpected status code %d", statusCode))
	}
}
