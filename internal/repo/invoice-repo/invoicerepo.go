package invoicerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/pg"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

const invoiceColumns = `invoice_id, affiliate_id, invoice_number, period_start, period_end, total_commission, amount_paid, amount_owed, status, due_date, paid_date, created_at, deleted_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) NextInvoiceNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('invoice_number_seq')`).Scan(&n); err != nil {
		zap.L().Error("can't allocate invoice number", zap.Error(err))
		return "", err
	}
	return fmt.Sprintf("INV-%06d", n), nil
}

func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) error {
	query := `
        INSERT INTO invoices (invoice_id, affiliate_id, invoice_number, period_start, period_end, total_commission, amount_paid, amount_owed, status, due_date, paid_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	_, err := r.db.Exec(ctx, query, inv.InvoiceID, inv.AffiliateID, inv.InvoiceNumber, inv.PeriodStart, inv.PeriodEnd,
		money.ToCents(inv.TotalCommission), money.ToCents(inv.AmountPaid), money.ToCents(inv.AmountOwed),
		string(inv.Status), inv.DueDate, inv.PaidDate, inv.CreatedAt)
	if err != nil {
		zap.L().Error("can't save invoice", zap.String("affiliate_id", inv.AffiliateID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE invoice_id = $1 AND deleted_at IS NULL
    `
	return r.findInvoice(ctx, query, invoiceID)
}

// GetForUpdate locks the invoice row until the surrounding transaction ends.
// Deleted invoices are returned too; callers check DeletedAt.
func (r *Repository) GetForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE invoice_id = $1
        FOR UPDATE
    `
	return r.findInvoice(ctx, query, invoiceID)
}

func (r *Repository) Update(ctx context.Context, inv *domain.Invoice) error {
	query := `
        UPDATE invoices
        SET total_commission = $1, amount_paid = $2, amount_owed = $3, status = $4, paid_date = $5
        WHERE invoice_id = $6
    `
	_, err := r.db.Exec(ctx, query, money.ToCents(inv.TotalCommission), money.ToCents(inv.AmountPaid),
		money.ToCents(inv.AmountOwed), string(inv.Status), inv.PaidDate, inv.InvoiceID)
	if err != nil {
		zap.L().Error("can't update invoice", zap.String("invoice_id", inv.InvoiceID), zap.Error(err))
		return err
	}
	return nil
}

// Delete hides the invoice from reads. Its payments and any attached line
// items stay in place.
func (r *Repository) Delete(ctx context.Context, invoiceID string, at time.Time) error {
	query := `
        UPDATE invoices
        SET deleted_at = $2
        WHERE invoice_id = $1
    `
	if _, err := r.db.Exec(ctx, query, invoiceID, at); err != nil {
		zap.L().Error("can't delete invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByAffiliate(ctx context.Context, affiliateID string) ([]domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE affiliate_id = $1 AND deleted_at IS NULL
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, affiliateID)
	if err != nil {
		zap.L().Error("can't get invoices", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (r *Repository) GetBalance(ctx context.Context, affiliateID string) (*domain.AffiliateBalance, error) {
	query := `
        SELECT affiliate_id, open_balance, prepaid_credit, clawback
        FROM affiliate_balances
        WHERE affiliate_id = $1
    `
	return r.findBalance(ctx, query, affiliateID)
}

func (r *Repository) GetBalanceForUpdate(ctx context.Context, affiliateID string) (*domain.AffiliateBalance, error) {
	query := `
        SELECT affiliate_id, open_balance, prepaid_credit, clawback
        FROM affiliate_balances
        WHERE affiliate_id = $1
        FOR UPDATE
    `
	return r.findBalance(ctx, query, affiliateID)
}

func (r *Repository) UpdateBalance(ctx context.Context, b *domain.AffiliateBalance) error {
	query := `
        UPDATE affiliate_balances
        SET open_balance = $1, prepaid_credit = $2, clawback = $3
        WHERE affiliate_id = $4
    `
	_, err := r.db.Exec(ctx, query, money.ToCents(b.OpenBalance), money.ToCents(b.PrepaidCredit), money.ToCents(b.Clawback), b.AffiliateID)
	if err != nil {
		zap.L().Error("can't update affiliate balance", zap.String("affiliate_id", b.AffiliateID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SavePayment(ctx context.Context, p *domain.InvoicePayment) error {
	query := `
        INSERT INTO invoice_payments (payment_id, invoice_id, affiliate_id, amount, applied, overpayment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, p.PaymentID, p.InvoiceID, p.AffiliateID, money.ToCents(p.Amount), money.ToCents(p.Applied),
		money.ToCents(p.Overpayment), p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save invoice payment", zap.String("invoice_id", p.InvoiceID), zap.Error(err))
		return err
	}
	return nil
}

// ListPayments returns every payment recorded for the affiliate, including
// payments against deleted invoices.
func (r *Repository) ListPayments(ctx context.Context, affiliateID string) ([]domain.InvoicePayment, error) {
	query := `
        SELECT payment_id, invoice_id, affiliate_id, amount, applied, overpayment, created_at
        FROM invoice_payments
        WHERE affiliate_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, affiliateID)
	if err != nil {
		zap.L().Error("can't get invoice payments", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.InvoicePayment
	for rows.Next() {
		var (
			p                            domain.InvoicePayment
			amount, applied, overpayment int64
		)
		if err := rows.Scan(&p.PaymentID, &p.InvoiceID, &p.AffiliateID, &amount, &applied, &overpayment, &p.CreatedAt); err != nil {
			zap.L().Error("can't scan invoice payment row", zap.Error(err))
			return nil, err
		}
		p.Amount = money.FromCents(amount)
		p.Applied = money.FromCents(applied)
		p.Overpayment = money.FromCents(overpayment)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *Repository) SaveCorrection(ctx context.Context, c *domain.InvoiceCorrection) error {
	query := `
        INSERT INTO invoice_corrections (correction_id, invoice_id, affiliate_id, commission_id, amount, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, c.CorrectionID, c.InvoiceID, c.AffiliateID, c.CommissionID, money.ToCents(c.Amount), c.CreatedAt)
	if err != nil {
		zap.L().Error("can't save invoice correction", zap.String("invoice_id", c.InvoiceID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListCorrections(ctx context.Context, affiliateID string) ([]domain.InvoiceCorrection, error) {
	query := `
        SELECT correction_id, invoice_id, affiliate_id, commission_id, amount, created_at
        FROM invoice_corrections
        WHERE affiliate_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, affiliateID)
	if err != nil {
		zap.L().Error("can't get invoice corrections", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var corrections []domain.InvoiceCorrection
	for rows.Next() {
		var (
			c      domain.InvoiceCorrection
			amount int64
		)
		if err := rows.Scan(&c.CorrectionID, &c.InvoiceID, &c.AffiliateID, &c.CommissionID, &amount, &c.CreatedAt); err != nil {
			zap.L().Error("can't scan invoice correction row", zap.Error(err))
			return nil, err
		}
		c.Amount = money.FromCents(amount)
		corrections = append(corrections, c)
	}
	return corrections, rows.Err()
}

func (r *Repository) findInvoice(ctx context.Context, query, invoiceID string) (*domain.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx, query, invoiceID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
		return nil, err
	}
	return inv, nil
}

func (r *Repository) findBalance(ctx context.Context, query, affiliateID string) (*domain.AffiliateBalance, error) {
	var (
		b                          domain.AffiliateBalance
		open, prepaid, clawbackSum int64
	)
	err := r.db.QueryRow(ctx, query, affiliateID).Scan(&b.AffiliateID, &open, &prepaid, &clawbackSum)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get affiliate balance", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	b.OpenBalance = money.FromCents(open)
	b.PrepaidCredit = money.FromCents(prepaid)
	b.Clawback = money.FromCents(clawbackSum)
	return &b, nil
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var (
		inv               domain.Invoice
		total, paid, owed int64
		status            string
		paidDate          pgtype.Timestamptz
		deletedAt         pgtype.Timestamptz
	)
	err := row.Scan(&inv.InvoiceID, &inv.AffiliateID, &inv.InvoiceNumber, &inv.PeriodStart, &inv.PeriodEnd,
		&total, &paid, &owed, &status, &inv.DueDate, &paidDate, &inv.CreatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}
	inv.TotalCommission = money.FromCents(total)
	inv.AmountPaid = money.FromCents(paid)
	inv.AmountOwed = money.FromCents(owed)
	inv.Status = domain.InvoiceStatus(status)
	inv.PaidDate = pg.TimeFromNull(paidDate)
	inv.DeletedAt = pg.TimeFromNull(deletedAt)
	return &inv, nil
}
