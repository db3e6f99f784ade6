package invoiceservice

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/pg"
)

// memLedger keeps invoices, balances and line items in memory so several
// service calls can run against shared state.
type memLedger struct {
	seq         int
	invoices    map[string]domain.Invoice
	balances    map[string]domain.AffiliateBalance
	payments    []domain.InvoicePayment
	corrections []domain.InvoiceCorrection
	items       []domain.Commission
}

func newMemLedger(affiliateIDs ...string) *memLedger {
	l := &memLedger{
		invoices: make(map[string]domain.Invoice),
		balances: make(map[string]domain.AffiliateBalance),
	}
	for _, id := range affiliateIDs {
		l.balances[id] = domain.AffiliateBalance{AffiliateID: id}
	}
	return l
}

// NewLedgerService wires a service to the in-memory ledger with a pass-through transaction manager.
func NewLedgerService(t *testing.T, l *memLedger) *Service {
	ctrl := gomock.NewController(t)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	service := New(l, l, tx)
	service.now = func() time.Time { return fixedNow }
	return service
}

func (l *memLedger) NextInvoiceNumber(context.Context) (string, error) {
	l.seq++
	return fmt.Sprintf("INV-%06d", l.seq), nil
}

func (l *memLedger) Create(_ context.Context, inv *domain.Invoice) error {
	l.invoices[inv.InvoiceID] = *inv
	return nil
}

func (l *memLedger) Get(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, ok := l.invoices[invoiceID]
	if !ok || inv.DeletedAt != nil {
		return nil, nil
	}
	return &inv, nil
}

func (l *memLedger) GetForUpdate(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, ok := l.invoices[invoiceID]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (l *memLedger) Update(_ context.Context, inv *domain.Invoice) error {
	l.invoices[inv.InvoiceID] = *inv
	return nil
}

func (l *memLedger) Delete(_ context.Context, invoiceID string, at time.Time) error {
	inv := l.invoices[invoiceID]
	inv.DeletedAt = &at
	l.invoices[invoiceID] = inv
	return nil
}

func (l *memLedger) ListByAffiliate(_ context.Context, affiliateID string) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range l.invoices {
		if inv.AffiliateID == affiliateID && inv.DeletedAt == nil {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceNumber < out[j].InvoiceNumber })
	return out, nil
}

func (l *memLedger) GetBalance(_ context.Context, affiliateID string) (*domain.AffiliateBalance, error) {
	b, ok := l.balances[affiliateID]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (l *memLedger) GetBalanceForUpdate(ctx context.Context, affiliateID string) (*domain.AffiliateBalance, error) {
	return l.GetBalance(ctx, affiliateID)
}

func (l *memLedger) UpdateBalance(_ context.Context, b *domain.AffiliateBalance) error {
	l.balances[b.AffiliateID] = *b
	return nil
}

func (l *memLedger) SavePayment(_ context.Context, p *domain.InvoicePayment) error {
	l.payments = append(l.payments, *p)
	return nil
}

func (l *memLedger) ListPayments(_ context.Context, affiliateID string) ([]domain.InvoicePayment, error) {
	var out []domain.InvoicePayment
	for _, p := range l.payments {
		if p.AffiliateID == affiliateID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (l *memLedger) SaveCorrection(_ context.Context, c *domain.InvoiceCorrection) error {
	l.corrections = append(l.corrections, *c)
	return nil
}

func (l *memLedger) ListCorrections(_ context.Context, affiliateID string) ([]domain.InvoiceCorrection, error) {
	var out []domain.InvoiceCorrection
	for _, c := range l.corrections {
		if c.AffiliateID == affiliateID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (l *memLedger) addItem(id, affiliateID, amount string, createdAt time.Time) {
	l.items = append(l.items, domain.Commission{
		CommissionID: id,
		AffiliateID:  affiliateID,
		Amount:       decimal.RequireFromString(amount),
		CreatedAt:    createdAt,
	})
}

func (l *memLedger) ListUninvoiced(_ context.Context, affiliateID string, from, to time.Time) ([]domain.Commission, error) {
	var out []domain.Commission
	for _, c := range l.items {
		if c.AffiliateID == affiliateID && c.InvoiceID == nil && !c.CreatedAt.Before(from) && c.CreatedAt.Before(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (l *memLedger) AttachToInvoice(_ context.Context, commissionIDs []string, invoiceID string) error {
	for _, id := range commissionIDs {
		for i := range l.items {
			if l.items[i].CommissionID == id {
				invID := invoiceID
				l.items[i].InvoiceID = &invID
			}
		}
	}
	return nil
}

func (l *memLedger) DetachFromInvoice(_ context.Context, invoiceID string) error {
	for i := range l.items {
		if l.items[i].InvoiceID != nil && *l.items[i].InvoiceID == invoiceID {
			l.items[i].InvoiceID = nil
		}
	}
	return nil
}
