package invoiceservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/pg"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

//go:generate mockgen -source=invoiceservice.go -destination=mock_invoiceservice.go -package=invoiceservice

type Repo interface {
	NextInvoiceNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, inv *domain.Invoice) error
	Get(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	GetForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, invoiceID string, at time.Time) error
	ListByAffiliate(ctx context.Context, affiliateID string) ([]domain.Invoice, error)
	GetBalance(ctx context.Context, affiliateID string) (*domain.AffiliateBalance, error)
	GetBalanceForUpdate(ctx context.Context, affiliateID string) (*domain.AffiliateBalance, error)
	UpdateBalance(ctx context.Context, b *domain.AffiliateBalance) error
	SavePayment(ctx context.Context, p *domain.InvoicePayment) error
	ListPayments(ctx context.Context, affiliateID string) ([]domain.InvoicePayment, error)
	SaveCorrection(ctx context.Context, c *domain.InvoiceCorrection) error
	ListCorrections(ctx context.Context, affiliateID string) ([]domain.InvoiceCorrection, error)
}

type CommissionRepo interface {
	ListUninvoiced(ctx context.Context, affiliateID string, from, to time.Time) ([]domain.Commission, error)
	AttachToInvoice(ctx context.Context, commissionIDs []string, invoiceID string) error
	DetachFromInvoice(ctx context.Context, invoiceID string) error
}

type Service struct {
	repo        Repo
	commissions CommissionRepo
	txManager   pg.TXManager
	now         func() time.Time
}

func New(repo Repo, commissions CommissionRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		commissions: commissions,
		txManager:   txManager,
		now:         time.Now,
	}
}

func (s *Service) GenerateInvoice(ctx context.Context, affiliateID string, periodStart, periodEnd time.Time, total decimal.Decimal) (*domain.Invoice, error) {
	if err := validatePeriod(affiliateID, periodStart, periodEnd); err != nil {
		return nil, err
	}
	total = money.Round(total)
	if !total.IsPositive() {
		return nil, domain.ErrInvalidInvoiceTotal
	}

	var inv *domain.Invoice
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		inv, err = s.create(ctx, affiliateID, periodStart, periodEnd, total)
		return err
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// GenerateInvoiceForPeriod invoices every uninvoiced commission line item created in the period.
func (s *Service) GenerateInvoiceForPeriod(ctx context.Context, affiliateID string, periodStart, periodEnd time.Time) (*domain.Invoice, error) {
	if err := validatePeriod(affiliateID, periodStart, periodEnd); err != nil {
		return nil, err
	}

	var inv *domain.Invoice
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		items, err := s.commissions.ListUninvoiced(ctx, affiliateID, periodStart, periodEnd)
		if err != nil {
			return err
		}
		total := decimal.Zero
		ids := make([]string, 0, len(items))
		for _, c := range items {
			total = total.Add(c.Amount)
			ids = append(ids, c.CommissionID)
		}
		if !total.IsPositive() {
			return domain.ErrInvalidInvoiceTotal
		}

		if inv, err = s.create(ctx, affiliateID, periodStart, periodEnd, money.Round(total)); err != nil {
			return err
		}
		return s.commissions.AttachToInvoice(ctx, ids, inv.InvoiceID)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) create(ctx context.Context, affiliateID string, periodStart, periodEnd time.Time, total decimal.Decimal) (*domain.Invoice, error) {
	balance, err := s.lockBalance(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	number, err := s.repo.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	inv := &domain.Invoice{
		InvoiceID:       "inv_" + uuid.NewString(),
		AffiliateID:     affiliateID,
		InvoiceNumber:   number,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		TotalCommission: total,
		AmountPaid:      decimal.Zero,
		AmountOwed:      total,
		Status:          domain.InvoicePending,
		DueDate:         now.Add(domain.InvoiceDueIn),
		CreatedAt:       now,
	}
	if err := checkInvariant(inv); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	balance.OpenBalance = balance.OpenBalance.Add(total)
	if err := s.repo.UpdateBalance(ctx, balance); err != nil {
		return nil, err
	}

	zap.L().Info("invoice generated", zap.String("invoice_id", inv.InvoiceID), zap.String("number", number),
		zap.String("affiliate_id", affiliateID), zap.String("total", money.Format(total)))
	return inv, nil
}

// RecordPayment applies up to the owed amount to the invoice and banks the rest as prepaid credit.
func (s *Service) RecordPayment(ctx context.Context, invoiceID string, amount decimal.Decimal) (*domain.Invoice, error) {
	amount = money.Round(amount)
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidPaymentAmount
	}

	var inv *domain.Invoice
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if inv, err = s.lockInvoice(ctx, invoiceID); err != nil {
			return err
		}
		balance, err := s.lockBalance(ctx, inv.AffiliateID)
		if err != nil {
			return err
		}

		applied := money.Min(amount, inv.AmountOwed)
		overpayment := money.NonNegative(amount.Sub(inv.AmountOwed))
		inv.AmountPaid = inv.AmountPaid.Add(applied)
		inv.AmountOwed = inv.AmountOwed.Sub(applied)
		s.settle(inv)

		if err := checkInvariant(inv); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, inv); err != nil {
			return err
		}
		if err := s.repo.SavePayment(ctx, &domain.InvoicePayment{
			PaymentID:   "pay_" + uuid.NewString(),
			InvoiceID:   inv.InvoiceID,
			AffiliateID: inv.AffiliateID,
			Amount:      amount,
			Applied:     applied,
			Overpayment: overpayment,
			CreatedAt:   s.now(),
		}); err != nil {
			return err
		}

		balance.OpenBalance = balance.OpenBalance.Sub(applied)
		balance.PrepaidCredit = balance.PrepaidCredit.Add(overpayment)
		return s.repo.UpdateBalance(ctx, balance)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment recorded", zap.String("invoice_id", invoiceID), zap.String("amount", money.Format(amount)),
		zap.String("status", string(inv.Status)))
	return inv, nil
}

// DeleteInvoice hides the invoice and removes its outstanding amount from the open balance.
// Payments already recorded against it are kept. Line items go back to the uninvoiced pool
// only when nothing was paid, so a partly paid period is never billed twice.
func (s *Service) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		inv, err := s.lockInvoice(ctx, invoiceID)
		if err != nil {
			return err
		}
		balance, err := s.lockBalance(ctx, inv.AffiliateID)
		if err != nil {
			return err
		}

		if inv.AmountPaid.IsZero() {
			if err := s.commissions.DetachFromInvoice(ctx, invoiceID); err != nil {
				return err
			}
		}
		if err := s.repo.Delete(ctx, invoiceID, s.now()); err != nil {
			return err
		}

		balance.OpenBalance = balance.OpenBalance.Sub(inv.AmountOwed)
		if err := s.repo.UpdateBalance(ctx, balance); err != nil {
			return err
		}
		zap.L().Info("invoice deleted", zap.String("invoice_id", invoiceID), zap.String("owed", money.Format(inv.AmountOwed)))
		return nil
	})
}

// ApplyReversal books a chargeback reversal of amount against the invoice that carried the sale.
// An open invoice shrinks; whatever was already paid out becomes a clawback correction.
// Deleted invoices still take the reversal, but their owed part is already off the open balance.
func (s *Service) ApplyReversal(ctx context.Context, invoiceID, commissionID string, amount decimal.Decimal) error {
	amount = money.Round(amount.Abs())
	if amount.IsZero() {
		return nil
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		inv, err := s.repo.GetForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrInvoiceNotFound
		}
		balance, err := s.lockBalance(ctx, inv.AffiliateID)
		if err != nil {
			return err
		}

		clawback := amount
		if inv.Status != domain.InvoicePaid {
			owedReduction := money.Min(amount, inv.AmountOwed)
			clawback = money.Min(amount.Sub(owedReduction), inv.AmountPaid)

			inv.AmountOwed = inv.AmountOwed.Sub(owedReduction)
			inv.AmountPaid = inv.AmountPaid.Sub(clawback)
			inv.TotalCommission = inv.TotalCommission.Sub(owedReduction).Sub(clawback)
			s.settle(inv)

			if err := checkInvariant(inv); err != nil {
				return err
			}
			if err := s.repo.Update(ctx, inv); err != nil {
				return err
			}
			if inv.DeletedAt == nil {
				balance.OpenBalance = balance.OpenBalance.Sub(owedReduction)
			}
		}

		if clawback.IsPositive() {
			if err := s.repo.SaveCorrection(ctx, &domain.InvoiceCorrection{
				CorrectionID: "cor_" + uuid.NewString(),
				InvoiceID:    inv.InvoiceID,
				AffiliateID:  inv.AffiliateID,
				CommissionID: commissionID,
				Amount:       clawback,
				CreatedAt:    s.now(),
			}); err != nil {
				return err
			}
			balance.Clawback = balance.Clawback.Add(clawback)
		}

		if err := s.commissions.AttachToInvoice(ctx, []string{commissionID}, inv.InvoiceID); err != nil {
			return err
		}
		if err := s.repo.UpdateBalance(ctx, balance); err != nil {
			return err
		}

		zap.L().Info("reversal applied", zap.String("invoice_id", invoiceID), zap.String("commission_id", commissionID),
			zap.String("amount", money.Format(amount)), zap.String("clawback", money.Format(clawback)))
		return nil
	})
}

func (s *Service) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := s.repo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *Service) ListInvoices(ctx context.Context, affiliateID string) ([]domain.Invoice, error) {
	return s.repo.ListByAffiliate(ctx, affiliateID)
}

func (s *Service) GetBalance(ctx context.Context, affiliateID string) (*domain.AffiliateBalance, error) {
	b, err := s.repo.GetBalance(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrAffiliateNotFound
	}
	return b, nil
}

// ListPayments returns the affiliate's payment history, including payments against deleted invoices.
func (s *Service) ListPayments(ctx context.Context, affiliateID string) ([]domain.InvoicePayment, error) {
	return s.repo.ListPayments(ctx, affiliateID)
}

func (s *Service) ListCorrections(ctx context.Context, affiliateID string) ([]domain.InvoiceCorrection, error) {
	return s.repo.ListCorrections(ctx, affiliateID)
}

func (s *Service) lockInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := s.repo.GetForUpdate(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.DeletedAt != nil {
		return nil, domain.ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *Service) lockBalance(ctx context.Context, affiliateID string) (*domain.AffiliateBalance, error) {
	b, err := s.repo.GetBalanceForUpdate(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrAffiliateNotFound
	}
	return b, nil
}

// settle moves the invoice to paid once nothing is owed, stamping the paid date on the transition.
func (s *Service) settle(inv *domain.Invoice) {
	if !inv.AmountOwed.IsZero() {
		inv.Status = domain.InvoicePending
		if inv.AmountPaid.IsPositive() {
			inv.Status = domain.InvoicePartial
		}
		return
	}
	if inv.Status != domain.InvoicePaid {
		now := s.now()
		inv.PaidDate = &now
	}
	inv.Status = domain.InvoicePaid
}

func validatePeriod(affiliateID string, start, end time.Time) error {
	if affiliateID == "" {
		return domain.ErrInvalidAffiliateID
	}
	if !end.After(start) {
		return domain.ErrInvalidPeriod
	}
	return nil
}

func checkInvariant(inv *domain.Invoice) error {
	if inv.AmountPaid.IsNegative() || inv.AmountOwed.IsNegative() || inv.TotalCommission.IsNegative() {
		return fmt.Errorf("invoice %s: negative amount: %w", inv.InvoiceID, domain.ErrLedgerInvariant)
	}
	if !inv.AmountPaid.Add(inv.AmountOwed).Equal(inv.TotalCommission) {
		return fmt.Errorf("invoice %s: %s + %s != %s: %w", inv.InvoiceID, money.Format(inv.AmountPaid),
			money.Format(inv.AmountOwed), money.Format(inv.TotalCommission), domain.ErrLedgerInvariant)
	}
	return nil
}
