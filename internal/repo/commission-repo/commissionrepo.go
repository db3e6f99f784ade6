package commissionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/pg"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

const commissionColumns = `commission_id, order_id, affiliate_id, link_id, kind, amount, invoice_id, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// SaveOrder stores the order, replacing the mutable state of an earlier finalization.
func (r *Repository) SaveOrder(ctx context.Context, o *domain.Order) error {
	query := `
        INSERT INTO orders (order_id, visitor_id, affiliate_id, link_id, sub_ids, transaction_id, amount, package_count, is_first_sale, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (order_id) DO UPDATE
        SET status = EXCLUDED.status, affiliate_id = EXCLUDED.affiliate_id, link_id = EXCLUDED.link_id, updated_at = EXCLUDED.updated_at
    `
	_, err := r.db.Exec(ctx, query, o.OrderID, o.VisitorID, o.AffiliateID, o.LinkID, o.SubIDs.JSON(), o.TransactionID,
		money.ToCents(o.Amount), o.PackageCount, o.IsFirstSaleForCustomer, string(o.Status), o.CreatedAt, o.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.String("order_id", o.OrderID), zap.Error(err))
		return err
	}
	return nil
}

// GetOrder locks the order row for the rest of the transaction.
func (r *Repository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
        SELECT order_id, visitor_id, affiliate_id, link_id, sub_ids, transaction_id, amount, package_count, is_first_sale, status, created_at, updated_at
        FROM orders
        WHERE order_id = $1
        FOR UPDATE
    `
	var (
		o      domain.Order
		subs   []byte
		amount int64
		status string
	)
	err := r.db.QueryRow(ctx, query, orderID).Scan(&o.OrderID, &o.VisitorID, &o.AffiliateID, &o.LinkID, &subs, &o.TransactionID,
		&amount, &o.PackageCount, &o.IsFirstSaleForCustomer, &status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	if o.SubIDs, err = domain.ParseSubIDs(subs); err != nil {
		return nil, err
	}
	o.Amount = money.FromCents(amount)
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

// InsertCommission reports false when the order already has a row of the same kind.
func (r *Repository) InsertCommission(ctx context.Context, c *domain.Commission) (bool, error) {
	query := `
        INSERT INTO commissions (commission_id, order_id, affiliate_id, link_id, kind, amount, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (order_id, kind) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, c.CommissionID, c.OrderID, c.AffiliateID, c.LinkID, string(c.Kind), money.ToCents(c.Amount), c.CreatedAt)
	if err != nil {
		zap.L().Error("can't save commission", zap.String("order_id", c.OrderID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) GetCommission(ctx context.Context, orderID string, kind domain.CommissionKind) (*domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE order_id = $1 AND kind = $2
    `
	c, err := scanCommission(r.db.QueryRow(ctx, query, orderID, string(kind)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find commission", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// ListUninvoiced returns the affiliate's line items created in [from, to) that no invoice owns yet.
func (r *Repository) ListUninvoiced(ctx context.Context, affiliateID string, from, to time.Time) ([]domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE affiliate_id = $1 AND invoice_id IS NULL AND created_at >= $2 AND created_at < $3
        ORDER BY created_at ASC
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, affiliateID, from, to)
	if err != nil {
		zap.L().Error("can't get uninvoiced commissions", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			zap.L().Error("can't scan commission row", zap.Error(err))
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (r *Repository) AttachToInvoice(ctx context.Context, commissionIDs []string, invoiceID string) error {
	query := `
        UPDATE commissions
        SET invoice_id = $1
        WHERE commission_id = ANY($2)
    `
	if _, err := r.db.Exec(ctx, query, invoiceID, commissionIDs); err != nil {
		zap.L().Error("can't attach commissions to invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DetachFromInvoice(ctx context.Context, invoiceID string) error {
	query := `
        UPDATE commissions
        SET invoice_id = NULL
        WHERE invoice_id = $1
    `
	if _, err := r.db.Exec(ctx, query, invoiceID); err != nil {
		zap.L().Error("can't detach commissions from invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
		return err
	}
	return nil
}

func scanCommission(row pgx.Row) (*domain.Commission, error) {
	var (
		c         domain.Commission
		kind      string
		amount    int64
		invoiceID pgtype.Text
	)
	if err := row.Scan(&c.CommissionID, &c.OrderID, &c.AffiliateID, &c.LinkID, &kind, &amount, &invoiceID, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Kind = domain.CommissionKind(kind)
	c.Amount = money.FromCents(amount)
	c.InvoiceID = pg.StringFromNull(invoiceID)
	return &c, nil
}
