package eventrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/pg"
)

const eventColumns = `event_id, visitor_id, event_type, affiliate_id, sub_ids, order_id, package_count, amount, commission, transaction_id, occurred_at, dispatched_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, e *domain.FunnelEvent) error {
	query := `
        INSERT INTO funnel_events (event_id, visitor_id, event_type, affiliate_id, sub_ids, order_id, package_count, amount, commission, transaction_id, occurred_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.Exec(ctx, query,
		e.EventID, e.VisitorID, string(e.EventType), e.AffiliateID, e.SubIDs.JSON(), e.OrderID, e.PackageCount,
		pg.NullCents(e.Amount), pg.NullCents(e.Commission), e.TransactionID, e.OccurredAt,
	)
	if err != nil {
		zap.L().Error("can't save funnel event", zap.String("event_type", string(e.EventType)), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, eventID string) (*domain.FunnelEvent, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM funnel_events
        WHERE event_id = $1
    `
	e, err := scanEvent(r.db.QueryRow(ctx, query, eventID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find funnel event", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return e, nil
}

// FindForDispatch returns the oldest events whose postbacks have not been fired yet.
func (r *Repository) FindForDispatch(ctx context.Context, limit uint32) ([]domain.FunnelEvent, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM funnel_events
        WHERE dispatched_at IS NULL
        ORDER BY occurred_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get events for dispatch", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.FunnelEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			zap.L().Error("can't scan funnel event row", zap.Error(err))
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *Repository) MarkDispatched(ctx context.Context, eventID string, at time.Time) error {
	query := `
        UPDATE funnel_events
        SET dispatched_at = $1
        WHERE event_id = $2
    `
	if _, err := r.db.Exec(ctx, query, at, eventID); err != nil {
		zap.L().Error("can't mark event dispatched", zap.String("event_id", eventID), zap.Error(err))
		return err
	}
	return nil
}

// CountByType counts events per type in [from, to). An empty affiliateID counts all affiliates.
func (r *Repository) CountByType(ctx context.Context, affiliateID string, from, to time.Time) (map[domain.EventType]int64, error) {
	query := `
        SELECT event_type, COUNT(*)
        FROM funnel_events
        WHERE ($1 = '' OR affiliate_id = $1) AND occurred_at >= $2 AND occurred_at < $3
        GROUP BY event_type
    `
	rows, err := r.db.Query(ctx, query, affiliateID, from, to)
	if err != nil {
		zap.L().Error("can't count funnel events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.EventType]int64)
	for rows.Next() {
		var (
			eventType string
			count     int64
		)
		if err := rows.Scan(&eventType, &count); err != nil {
			zap.L().Error("can't scan funnel count row", zap.Error(err))
			return nil, err
		}
		counts[domain.EventType(eventType)] = count
	}
	return counts, rows.Err()
}

func scanEvent(row pgx.Row) (*domain.FunnelEvent, error) {
	var (
		e          domain.FunnelEvent
		eventType  string
		subs       []byte
		amount     pgtype.Int8
		commission pgtype.Int8
		dispatched pgtype.Timestamptz
	)
	err := row.Scan(&e.EventID, &e.VisitorID, &eventType, &e.AffiliateID, &subs, &e.OrderID, &e.PackageCount,
		&amount, &commission, &e.TransactionID, &e.OccurredAt, &dispatched)
	if err != nil {
		return nil, err
	}
	if e.SubIDs, err = domain.ParseSubIDs(subs); err != nil {
		return nil, err
	}
	e.EventType = domain.EventType(eventType)
	e.Amount = pg.DecimalFromNull(amount)
	e.Commission = pg.DecimalFromNull(commission)
	e.DispatchedAt = pg.TimeFromNull(dispatched)
	return &e, nil
}
