package postbackrepo

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

const (
	configColumns = `id, affiliate_id, event_type, url_template, enabled, created_at`
	logColumns    = `postback_id, config_id, affiliate_id, event_id, event_type, order_id, rendered_url, status, status_code, error, created_at`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateConfig(ctx context.Context, c *domain.PostbackConfig) error {
	query := `
        INSERT INTO postback_configs (id, affiliate_id, event_type, url_template, enabled, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, c.ID, c.AffiliateID, string(c.EventType), c.URLTemplate, c.Enabled, c.CreatedAt)
	if err != nil {
		zap.L().Error("can't save postback config", zap.String("affiliate_id", c.AffiliateID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListConfigs(ctx context.Context, affiliateID string) ([]domain.PostbackConfig, error) {
	query := `
        SELECT ` + configColumns + `
        FROM postback_configs
        WHERE affiliate_id = $1
        ORDER BY created_at ASC
    `
	return r.queryConfigs(ctx, query, affiliateID)
}

// FindEnabled returns every enabled config for the pair; several configs may share an event type.
func (r *Repository) FindEnabled(ctx context.Context, affiliateID string, eventType domain.EventType) ([]domain.PostbackConfig, error) {
	query := `
        SELECT ` + configColumns + `
        FROM postback_configs
        WHERE affiliate_id = $1 AND event_type = $2 AND enabled
        ORDER BY created_at ASC
    `
	return r.queryConfigs(ctx, query, affiliateID, string(eventType))
}

func (r *Repository) SetEnabled(ctx context.Context, configID string, enabled bool) (*domain.PostbackConfig, error) {
	query := `
        UPDATE postback_configs
        SET enabled = $1
        WHERE id = $2
        RETURNING ` + configColumns
	c, err := scanConfig(r.db.QueryRow(ctx, query, enabled, configID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update postback config", zap.String("config_id", configID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) DeleteConfig(ctx context.Context, configID string) (bool, error) {
	query := `
        DELETE FROM postback_configs
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, configID)
	if err != nil {
		zap.L().Error("can't delete postback config", zap.String("config_id", configID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Claim reserves the (event, config) pair. Only the first caller gets true.
func (r *Repository) Claim(ctx context.Context, eventID, configID string, at time.Time) (bool, error) {
	query := `
        INSERT INTO postback_dispatches (event_id, config_id, claimed_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (event_id, config_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, eventID, configID, at)
	if err != nil {
		zap.L().Error("can't claim postback dispatch", zap.String("event_id", eventID), zap.String("config_id", configID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SaveLog(ctx context.Context, l *domain.PostbackLog) error {
	query := `
        INSERT INTO postback_logs (postback_id, config_id, affiliate_id, event_id, event_type, order_id, rendered_url, status, status_code, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.Exec(ctx, query, l.PostbackID, l.ConfigID, l.AffiliateID, l.EventID, string(l.EventType), l.OrderID,
		l.RenderedURL, string(l.Status), l.StatusCode, l.Error, l.CreatedAt)
	if err != nil {
		zap.L().Error("can't save postback log", zap.String("event_id", l.EventID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListLogs(ctx context.Context, affiliateID string, limit int) ([]domain.PostbackLog, error) {
	query := `
        SELECT ` + logColumns + `
        FROM postback_logs
        WHERE affiliate_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, affiliateID, limit)
	if err != nil {
		zap.L().Error("can't get postback logs", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.PostbackLog
	for rows.Next() {
		var (
			l                 domain.PostbackLog
			eventType, status string
			statusCode        pgtype.Int8
			errText           pgtype.Text
		)
		err := rows.Scan(&l.PostbackID, &l.ConfigID, &l.AffiliateID, &l.EventID, &eventType, &l.OrderID, &l.RenderedURL,
			&status, &statusCode, &errText, &l.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan postback log row", zap.Error(err))
			return nil, err
		}
		l.EventType = domain.EventType(eventType)
		l.Status = domain.DeliveryStatus(status)
		l.StatusCode = pg.IntFromNull(statusCode)
		l.Error = pg.StringFromNull(errText)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *Repository) queryConfigs(ctx context.Context, query string, args ...any) ([]domain.PostbackConfig, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get postback configs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var configs []domain.PostbackConfig
	for rows.Next() {
		c, err := scanConfig(rows)
		if err != nil {
			zap.L().Error("can't scan postback config row", zap.Error(err))
			return nil, err
		}
		configs = append(configs, *c)
	}
	return configs, rows.Err()
}

func scanConfig(row pgx.Row) (*domain.PostbackConfig, error) {
	var (
		c         domain.PostbackConfig
		eventType string
	)
	if err := row.Scan(&c.ID, &c.AffiliateID, &eventType, &c.URLTemplate, &c.Enabled, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.EventType = domain.EventType(eventType)
	return &c, nil
}
