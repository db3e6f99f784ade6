package affiliaterepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/pg"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

const (
	affiliateColumns = `affiliate_id, name, email, status, default_payout_type, default_payout_amount, credential_hash, created_at`
	linkColumns      = `link_id, affiliate_id, name, payout_type, payout_amount, custom_price, is_default, tracking_url, created_at`
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create stores the account together with its default link and an empty balance.
func (r *Repository) Create(ctx context.Context, a *domain.AffiliateAccount, defaultLink *domain.AffiliateLink) error {
	affiliateQuery := `
        INSERT INTO affiliates (affiliate_id, name, email, status, default_payout_type, default_payout_amount, credential_hash, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	balanceQuery := `
        INSERT INTO affiliate_balances (affiliate_id, open_balance, prepaid_credit, clawback)
        VALUES ($1, 0, 0, 0)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, affiliateQuery, a.AffiliateID, a.Name, a.Email, string(a.Status),
			string(a.DefaultPayoutType), money.ToCents(a.DefaultPayoutAmount), a.CredentialHash, a.CreatedAt)
		if err != nil {
			zap.L().Error("can't save affiliate", zap.String("affiliate_id", a.AffiliateID), zap.Error(err))
			return err
		}
		if err := r.CreateLink(ctx, defaultLink); err != nil {
			return err
		}
		if _, err := r.db.Exec(ctx, balanceQuery, a.AffiliateID); err != nil {
			zap.L().Error("can't create affiliate balance", zap.String("affiliate_id", a.AffiliateID), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Get(ctx context.Context, affiliateID string) (*domain.AffiliateAccount, error) {
	query := `
        SELECT ` + affiliateColumns + `
        FROM affiliates
        WHERE affiliate_id = $1
    `
	a, err := scanAffiliate(r.db.QueryRow(ctx, query, affiliateID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find affiliate", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, affiliateID string, status domain.AffiliateStatus) (*domain.AffiliateAccount, error) {
	query := `
        UPDATE affiliates
        SET status = $1
        WHERE affiliate_id = $2
        RETURNING ` + affiliateColumns
	a, err := scanAffiliate(r.db.QueryRow(ctx, query, string(status), affiliateID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update affiliate status", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) CreateLink(ctx context.Context, l *domain.AffiliateLink) error {
	query := `
        INSERT INTO affiliate_links (link_id, affiliate_id, name, payout_type, payout_amount, custom_price, is_default, tracking_url, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.db.Exec(ctx, query, l.LinkID, l.AffiliateID, l.Name, string(l.PayoutType), money.ToCents(l.PayoutAmount),
		pg.NullCents(l.CustomPrice), l.IsDefault, l.TrackingURL, l.CreatedAt)
	if err != nil {
		zap.L().Error("can't save affiliate link", zap.String("link_id", l.LinkID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetLink(ctx context.Context, linkID string) (*domain.AffiliateLink, error) {
	query := `
        SELECT ` + linkColumns + `
        FROM affiliate_links
        WHERE link_id = $1
    `
	return r.findLink(ctx, query, linkID)
}

func (r *Repository) GetDefaultLink(ctx context.Context, affiliateID string) (*domain.AffiliateLink, error) {
	query := `
        SELECT ` + linkColumns + `
        FROM affiliate_links
        WHERE affiliate_id = $1 AND is_default
    `
	return r.findLink(ctx, query, affiliateID)
}

func (r *Repository) ListLinks(ctx context.Context, affiliateID string) ([]domain.AffiliateLink, error) {
	query := `
        SELECT ` + linkColumns + `
        FROM affiliate_links
        WHERE affiliate_id = $1
        ORDER BY is_default DESC, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, affiliateID)
	if err != nil {
		zap.L().Error("can't get affiliate links", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var links []domain.AffiliateLink
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			zap.L().Error("can't scan affiliate link row", zap.Error(err))
			return nil, err
		}
		links = append(links, *l)
	}
	return links, rows.Err()
}

// DeleteLink never removes a default link; it reports whether a row was deleted.
func (r *Repository) DeleteLink(ctx context.Context, linkID string) (bool, error) {
	query := `
        DELETE FROM affiliate_links
        WHERE link_id = $1 AND NOT is_default
    `
	tag, err := r.db.Exec(ctx, query, linkID)
	if err != nil {
		zap.L().Error("can't delete affiliate link", zap.String("link_id", linkID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) findLink(ctx context.Context, query string, arg string) (*domain.AffiliateLink, error) {
	l, err := scanLink(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find affiliate link", zap.String("key", arg), zap.Error(err))
		return nil, err
	}
	return l, nil
}

func scanAffiliate(row pgx.Row) (*domain.AffiliateAccount, error) {
	var (
		a                  domain.AffiliateAccount
		status, payoutType string
		payoutAmount       int64
	)
	err := row.Scan(&a.AffiliateID, &a.Name, &a.Email, &status, &payoutType, &payoutAmount, &a.CredentialHash, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Status = domain.AffiliateStatus(status)
	a.DefaultPayoutType = domain.PayoutType(payoutType)
	a.DefaultPayoutAmount = money.FromCents(payoutAmount)
	return &a, nil
}

func scanLink(row pgx.Row) (*domain.AffiliateLink, error) {
	var (
		l            domain.AffiliateLink
		payoutType   string
		payoutAmount int64
		customPrice  pgtype.Int8
	)
	err := row.Scan(&l.LinkID, &l.AffiliateID, &l.Name, &payoutType, &payoutAmount, &customPrice, &l.IsDefault, &l.TrackingURL, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	l.PayoutType = domain.PayoutType(payoutType)
	l.PayoutAmount = money.FromCents(payoutAmount)
	l.CustomPrice = pg.DecimalFromNull(customPrice)
	return &l, nil
}
