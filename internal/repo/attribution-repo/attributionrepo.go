package attributionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Upsert replaces whatever attribution the visitor had before.
func (r *Repository) Upsert(ctx context.Context, a *domain.Attribution) error {
	query := `
        INSERT INTO attributions (visitor_id, affiliate_id, sub_ids, campaign, set_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (visitor_id) DO UPDATE
        SET affiliate_id = EXCLUDED.affiliate_id, sub_ids = EXCLUDED.sub_ids, campaign = EXCLUDED.campaign, set_at = EXCLUDED.set_at, expires_at = EXCLUDED.expires_at
    `
	_, err := r.db.Exec(ctx, query, a.VisitorID, a.AffiliateID, a.SubIDs.JSON(), a.Campaign, a.SetAt, a.ExpiresAt)
	if err != nil {
		zap.L().Error("can't save attribution", zap.String("visitor_id", a.VisitorID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, visitorID string) (*domain.Attribution, error) {
	query := `
        SELECT visitor_id, affiliate_id, sub_ids, campaign, set_at, expires_at
        FROM attributions
        WHERE visitor_id = $1
    `
	var (
		a    domain.Attribution
		subs []byte
	)
	err := r.db.QueryRow(ctx, query, visitorID).Scan(&a.VisitorID, &a.AffiliateID, &subs, &a.Campaign, &a.SetAt, &a.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find attribution", zap.String("visitor_id", visitorID), zap.Error(err))
		return nil, err
	}
	if a.SubIDs, err = domain.ParseSubIDs(subs); err != nil {
		zap.L().Error("can't decode attribution sub ids", zap.String("visitor_id", visitorID), zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Delete(ctx context.Context, visitorID string) error {
	query := `
        DELETE FROM attributions
        WHERE visitor_id = $1
    `
	if _, err := r.db.Exec(ctx, query, visitorID); err != nil {
		zap.L().Error("can't delete attribution", zap.String("visitor_id", visitorID), zap.Error(err))
		return err
	}
	return nil
}
