package commissionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/metrics"
	"github.com/GlebRadaev/afftrack/internal/pg"
	"github.com/GlebRadaev/afftrack/internal/service/attributionservice"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

//go:generate mockgen -source=commissionservice.go -destination=mock_commissionservice.go -package=commissionservice

type Repo interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	SaveOrder(ctx context.Context, o *domain.Order) error
	InsertCommission(ctx context.Context, c *domain.Commission) (bool, error)
	GetCommission(ctx context.Context, orderID string, kind domain.CommissionKind) (*domain.Commission, error)
}

type AffiliateRepo interface {
	Get(ctx context.Context, affiliateID string) (*domain.AffiliateAccount, error)
	GetLink(ctx context.Context, linkID string) (*domain.AffiliateLink, error)
	GetDefaultLink(ctx context.Context, affiliateID string) (*domain.AffiliateLink, error)
}

type AttributionReader interface {
	Get(ctx context.Context, visitorID string) (*domain.Attribution, error)
}

type EventRecorder interface {
	Record(ctx context.Context, e *domain.FunnelEvent) (*domain.FunnelEvent, error)
}

type Ledger interface {
	ApplyReversal(ctx context.Context, invoiceID, commissionID string, amount decimal.Decimal) error
}

type Service struct {
	repo          Repo
	affiliates    AffiliateRepo
	attributions  AttributionReader
	events        EventRecorder
	ledger        Ledger
	txManager     pg.TXManager
	requireActive bool
	now           func() time.Time
}

func New(repo Repo, affiliates AffiliateRepo, attributions AttributionReader, events EventRecorder, ledger Ledger,
	txManager pg.TXManager, requireActive bool) *Service {
	return &Service{
		repo:          repo,
		affiliates:    affiliates,
		attributions:  attributions,
		events:        events,
		ledger:        ledger,
		txManager:     txManager,
		requireActive: requireActive,
		now:           time.Now,
	}
}

type Result struct {
	Order      domain.Order
	Commission decimal.Decimal
	Attributed bool
	EventID    string
}

// ComputeCommission returns the commission a completed order earns. A non-default link
// overrides the affiliate's payout, a custom price replaces the order amount as the
// percentage basis, and only a customer's first sale is eligible.
func ComputeCommission(order *domain.Order, affiliate *domain.AffiliateAccount, link *domain.AffiliateLink) decimal.Decimal {
	if order == nil || affiliate == nil || link == nil {
		return decimal.Zero
	}
	if order.Status != domain.OrderCompleted || !order.IsFirstSaleForCustomer {
		return decimal.Zero
	}

	payoutType, payoutAmount := affiliate.DefaultPayoutType, affiliate.DefaultPayoutAmount
	if !link.IsDefault {
		payoutType, payoutAmount = link.PayoutType, link.PayoutAmount
	}

	basis := order.Amount
	if link.CustomPrice != nil {
		basis = *link.CustomPrice
	}

	var amount decimal.Decimal
	switch payoutType {
	case domain.PayoutPercentage:
		amount = money.Percent(basis, payoutAmount)
	case domain.PayoutCPA:
		amount = money.Round(payoutAmount)
	}
	return money.NonNegative(amount)
}

// FinalizeOrderCommission stores the order and writes its commission line items.
// Finalizing the same order and status again changes nothing.
func (s *Service) FinalizeOrderCommission(ctx context.Context, order domain.Order) (*Result, error) {
	if order.OrderID == "" || !order.Status.Valid() || order.Amount.IsNegative() || order.PackageCount < 0 {
		return nil, domain.ErrInvalidOrder
	}
	now := s.now()
	order.SubIDs = attributionservice.FilterSubIDs(order.SubIDs)
	order.CreatedAt, order.UpdatedAt = now, now

	result := &Result{Commission: decimal.Zero}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		prev, err := s.repo.GetOrder(ctx, order.OrderID)
		if err != nil {
			return err
		}
		if prev != nil {
			order.CreatedAt = prev.CreatedAt
			if prev.AffiliateID != "" {
				order.AffiliateID, order.LinkID, order.SubIDs = prev.AffiliateID, prev.LinkID, prev.SubIDs
			}
		}

		affiliate, link, err := s.resolve(ctx, &order)
		if err != nil {
			return err
		}
		result.Attributed = affiliate != nil

		if err := s.repo.SaveOrder(ctx, &order); err != nil {
			return err
		}

		switch order.Status {
		case domain.OrderCompleted:
			if prev != nil && prev.Status == domain.OrderCompleted {
				sale, err := s.repo.GetCommission(ctx, order.OrderID, domain.CommissionSale)
				if sale != nil {
					result.Commission = sale.Amount
				}
				return err
			}
			return s.recognize(ctx, &order, affiliate, link, result)
		case domain.OrderChargeback:
			return s.reverse(ctx, &order, result)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to finalize order commission", zap.String("order_id", order.OrderID), zap.Error(err))
		return nil, err
	}

	result.Order = order
	zap.L().Info("order finalized", zap.String("order_id", order.OrderID), zap.String("status", string(order.Status)),
		zap.String("affiliate_id", order.AffiliateID), zap.String("commission", money.Format(result.Commission)))
	return result, nil
}

// resolve finds the credited affiliate and link. A nil affiliate means the order is unattributed.
func (s *Service) resolve(ctx context.Context, order *domain.Order) (*domain.AffiliateAccount, *domain.AffiliateLink, error) {
	if order.AffiliateID == "" {
		if order.VisitorID == "" {
			return nil, nil, nil
		}
		a, err := s.attributions.Get(ctx, order.VisitorID)
		if err != nil {
			return nil, nil, err
		}
		if a == nil {
			return nil, nil, nil
		}
		order.AffiliateID = a.AffiliateID
		if len(order.SubIDs) == 0 {
			order.SubIDs = a.SubIDs
		}
	}

	affiliate, err := s.affiliates.Get(ctx, order.AffiliateID)
	if err != nil {
		return nil, nil, err
	}
	if affiliate == nil {
		zap.L().Warn("order references unknown affiliate", zap.String("order_id", order.OrderID), zap.String("affiliate_id", order.AffiliateID))
		order.AffiliateID, order.LinkID = "", ""
		return nil, nil, nil
	}

	var link *domain.AffiliateLink
	if order.LinkID != "" {
		if link, err = s.affiliates.GetLink(ctx, order.LinkID); err != nil {
			return nil, nil, err
		}
		if link != nil && link.AffiliateID != affiliate.AffiliateID {
			link = nil
		}
	}
	if link == nil {
		if link, err = s.affiliates.GetDefaultLink(ctx, affiliate.AffiliateID); err != nil {
			return nil, nil, err
		}
	}
	if link == nil {
		zap.L().Warn("no commission without a link", zap.String("affiliate_id", affiliate.AffiliateID), zap.Error(domain.ErrMissingDefaultLink))
		order.LinkID = ""
		return affiliate, nil, nil
	}
	order.LinkID = link.LinkID
	return affiliate, link, nil
}

func (s *Service) eligible(affiliate *domain.AffiliateAccount) bool {
	return affiliate != nil && (!s.requireActive || affiliate.Status == domain.AffiliateActive)
}

func (s *Service) recognize(ctx context.Context, order *domain.Order, affiliate *domain.AffiliateAccount, link *domain.AffiliateLink, result *Result) error {
	if affiliate == nil {
		return nil
	}

	amount := decimal.Zero
	if s.eligible(affiliate) {
		amount = ComputeCommission(order, affiliate, link)
	}
	result.Commission = amount

	if amount.IsPositive() {
		inserted, err := s.repo.InsertCommission(ctx, &domain.Commission{
			CommissionID: "com_" + uuid.NewString(),
			OrderID:      order.OrderID,
			AffiliateID:  affiliate.AffiliateID,
			LinkID:       order.LinkID,
			Kind:         domain.CommissionSale,
			Amount:       amount,
			CreatedAt:    order.UpdatedAt,
		})
		if err != nil {
			return err
		}
		if inserted {
			metrics.CommissionsRecognized.WithLabelValues(string(domain.CommissionSale)).Inc()
		}
	}

	orderAmount := order.Amount
	e, err := s.events.Record(ctx, &domain.FunnelEvent{
		EventType:     domain.EventSale,
		VisitorID:     order.VisitorID,
		AffiliateID:   affiliate.AffiliateID,
		SubIDs:        order.SubIDs,
		OrderID:       order.OrderID,
		PackageCount:  order.PackageCount,
		Amount:        &orderAmount,
		Commission:    &amount,
		TransactionID: order.TransactionID,
		OccurredAt:    order.UpdatedAt,
	})
	if err != nil {
		return err
	}
	result.EventID = e.EventID
	return nil
}

// reverse books a full negative adjustment for the recognized sale and hands it to the ledger
// when that sale was already invoiced. The adjustment carries the sale's timestamp so an
// uninvoiced pair lands in the same billing period and nets to zero.
func (s *Service) reverse(ctx context.Context, order *domain.Order, result *Result) error {
	sale, err := s.repo.GetCommission(ctx, order.OrderID, domain.CommissionSale)
	if err != nil {
		return err
	}
	if sale == nil {
		return nil
	}

	reversal := &domain.Commission{
		CommissionID: "com_" + uuid.NewString(),
		OrderID:      order.OrderID,
		AffiliateID:  sale.AffiliateID,
		LinkID:       sale.LinkID,
		Kind:         domain.CommissionReversal,
		Amount:       sale.Amount.Neg(),
		CreatedAt:    sale.CreatedAt,
	}
	result.Commission = reversal.Amount

	inserted, err := s.repo.InsertCommission(ctx, reversal)
	if err != nil {
		return err
	}
	if !inserted {
		return nil
	}
	metrics.CommissionsRecognized.WithLabelValues(string(domain.CommissionReversal)).Inc()

	if sale.InvoiceID != nil {
		return s.ledger.ApplyReversal(ctx, *sale.InvoiceID, reversal.CommissionID, sale.Amount)
	}
	return nil
}
