package invoiceservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/pg"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

var (
	fixedNow    = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	periodStart = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCommissionRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	commissions := NewMockCommissionRepo(ctrl)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	service := New(repo, commissions, tx)
	service.now = func() time.Time { return fixedNow }
	return service, repo, commissions
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balance(open, prepaid, clawback string) *domain.AffiliateBalance {
	return &domain.AffiliateBalance{AffiliateID: "9004", OpenBalance: dec(open), PrepaidCredit: dec(prepaid), Clawback: dec(clawback)}
}

func invoice(status domain.InvoiceStatus, total, paid, owed string) *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:       "inv1",
		AffiliateID:     "9004",
		InvoiceNumber:   "INV-000001",
		TotalCommission: dec(total),
		AmountPaid:      dec(paid),
		AmountOwed:      dec(owed),
		Status:          status,
	}
}

func deletedInvoice(status domain.InvoiceStatus, total, paid, owed string) *domain.Invoice {
	inv := invoice(status, total, paid, owed)
	deletedAt := fixedNow.Add(-time.Hour)
	inv.DeletedAt = &deletedAt
	return inv
}

// captureBalance records the balance written by UpdateBalance.
func captureBalance(repo *MockRepo) *domain.AffiliateBalance {
	saved := &domain.AffiliateBalance{}
	repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.AffiliateBalance) error {
		*saved = *b
		return nil
	})
	return saved
}

func TestGenerateInvoice(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name         string
		affiliateID  string
		start, end   time.Time
		total        string
		prepareMock  func() *domain.AffiliateBalance
		expectedErr  error
		expectedOpen string
	}{
		{
			name:        "Creates pending invoice and raises open balance",
			affiliateID: "9004",
			start:       periodStart,
			end:         periodEnd,
			total:       "100",
			prepareMock: func() *domain.AffiliateBalance {
				repo.EXPECT().GetBalanceForUpdate(gomock.Any(), "9004").Return(balance("25.50", "0", "0"), nil)
				repo.EXPECT().NextInvoiceNumber(gomock.Any()).Return("INV-000007", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				return captureBalance(repo)
			},
			expectedOpen: "125.50",
		},
		{
			name:        "Zero total",
			affiliateID: "9004",
			start:       periodStart,
			end:         periodEnd,
			total:       "0",
			prepareMock: func() *domain.AffiliateBalance { return nil },
			expectedErr: domain.ErrInvalidInvoiceTotal,
		},
		{
			name:        "Period end before start",
			affiliateID: "9004",
			start:       periodEnd,
			end:         periodStart,
			total:       "10",
			prepareMock: func() *domain.AffiliateBalance { return nil },
			expectedErr: domain.ErrInvalidPeriod,
		},
		{
			name:        "Unknown affiliate",
			affiliateID: "404",
			start:       periodStart,
			end:         periodEnd,
			total:       "10",
			prepareMock: func() *domain.AffiliateBalance {
				repo.EXPECT().GetBalanceForUpdate(gomock.Any(), "404").Return(nil, nil)
				return nil
			},
			expectedErr: domain.ErrAffiliateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := tt.prepareMock()

			inv, err := service.GenerateInvoice(ctx, tt.affiliateID, tt.start, tt.end, dec(tt.total))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.InvoicePending, inv.Status)
			assert.Equal(t, "INV-000007", inv.InvoiceNumber)
			assert.True(t, inv.AmountPaid.IsZero())
			assert.Equal(t, money.Format(dec(tt.total)), money.Format(inv.AmountOwed))
			assert.Equal(t, fixedNow.Add(30*24*time.Hour), inv.DueDate)
			assert.Nil(t, inv.PaidDate)
			assert.Equal(t, tt.expectedOpen, money.Format(saved.OpenBalance))
		})
	}
}

func TestGenerateInvoiceForPeriod(t *testing.T) {
	service, repo, commissions := NewMock(t)
	ctx := context.Background()

	t.Run("Sums uninvoiced line items and attaches them", func(t *testing.T) {
		commissions.EXPECT().ListUninvoiced(gomock.Any(), "9004", periodStart, periodEnd).Return([]domain.Commission{
			{CommissionID: "c1", Amount: dec("4.59")},
			{CommissionID: "c2", Amount: dec("10.00")},
			{CommissionID: "c3", Amount: dec("-4.59")},
		}, nil)
		repo.EXPECT().GetBalanceForUpdate(gomock.Any(), "9004").Return(balance("0", "0", "0"), nil)
		repo.EXPECT().NextInvoiceNumber(gomock.Any()).Return("INV-000002", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		saved := captureBalance(repo)
		commissions.EXPECT().AttachToInvoice(gomock.Any(), []string{"c1", "c2", "c3"}, gomock.Any()).Return(nil)

		inv, err := service.GenerateInvoiceForPeriod(ctx, "9004", periodStart, periodEnd)
		require.NoError(t, err)
		assert.Equal(t, "10.00", money.Format(inv.TotalCommission))
		assert.Equal(t, "10.00", money.Format(saved.OpenBalance))
	})

	t.Run("Nothing to invoice", func(t *testing.T) {
		commissions.EXPECT().ListUninvoiced(gomock.Any(), "9004", periodStart, periodEnd).Return(nil, nil)

		inv, err := service.GenerateInvoiceForPeriod(ctx, "9004", periodStart, periodEnd)
		assert.ErrorIs(t, err, domain.ErrInvalidInvoiceTotal)
		assert.Nil(t, inv)
	})
}

func TestRecordPayment(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name            string
		amount          string
		invoice         *domain.Invoice
		balance         *domain.AffiliateBalance
		expectedErr     error
		expectedStatus  domain.InvoiceStatus
		expectedPaid    string
		expectedOwed    string
		expectedOpen    string
		expectedPrepaid string
		expectPaidDate  bool
	}{
		{
			name:            "Partial payment",
			amount:          "40",
			invoice:         invoice(domain.InvoicePending, "100", "0", "100"),
			balance:         balance("100", "0", "0"),
			expectedStatus:  domain.InvoicePartial,
			expectedPaid:    "40.00",
			expectedOwed:    "60.00",
			expectedOpen:    "60.00",
			expectedPrepaid: "0.00",
		},
		{
			name:            "Overpayment settles and banks credit",
			amount:          "80",
			invoice:         invoice(domain.InvoicePartial, "100", "40", "60"),
			balance:         balance("60", "0", "0"),
			expectedStatus:  domain.InvoicePaid,
			expectedPaid:    "100.00",
			expectedOwed:    "0.00",
			expectedOpen:    "0.00",
			expectedPrepaid: "20.00",
			expectPaidDate:  true,
		},
		{
			name:            "Payment on paid invoice is all credit",
			amount:          "15",
			invoice:         invoice(domain.InvoicePaid, "100", "100", "0"),
			balance:         balance("0", "20", "0"),
			expectedStatus:  domain.InvoicePaid,
			expectedPaid:    "100.00",
			expectedOwed:    "0.00",
			expectedOpen:    "0.00",
			expectedPrepaid: "35.00",
		},
		{
			name:        "Zero payment rejected",
			amount:      "0",
			expectedErr: domain.ErrInvalidPaymentAmount,
		},
		{
			name:        "Negative payment rejected",
			amount:      "-5",
			expectedErr: domain.ErrInvalidPaymentAmount,
		},
		{
			name:        "Corrupted invoice aborts",
			amount:      "10",
			invoice:     invoice(domain.InvoicePending, "100", "0", "90"),
			balance:     balance("90", "0", "0"),
			expectedErr: domain.ErrLedgerInvariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *domain.AffiliateBalance
			if tt.invoice != nil {
				repo.EXPECT().GetForUpdate(gomock.Any(), "inv1").Return(tt.invoice, nil)
				repo.EXPECT().GetBalanceForUpdate(gomock.Any(), "9004").Return(tt.balance, nil)
				if tt.expectedErr == nil {
					repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
					repo.EXPECT().SavePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.InvoicePayment) error {
						assert.Equal(t, money.Format(dec(tt.amount)), money.Format(p.Amount))
						assert.Equal(t, "9004", p.AffiliateID)
						return nil
					})
					saved = captureBalance(repo)
				}
			}

			inv, err := service.RecordPayment(ctx, "inv1", dec(tt.amount))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, inv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, inv.Status)
			assert.Equal(t, tt.expectedPaid, money.Format(inv.AmountPaid))
			assert.Equal(t, tt.expectedOwed, money.Format(inv.AmountOwed))
			assert.Equal(t, tt.expectedOpen, money.Format(saved.OpenBalance))
			assert.Equal(t, tt.expectedPrepaid, money.Format(saved.PrepaidCredit))
			if tt.expectPaidDate {
				require.NotNil(t, inv.PaidDate)
				assert.Equal(t, fixedNow, *inv.PaidDate)
			}
		})
	}
}

func TestDeleteInvoice(t *testing.T) {
	service, repo, commissions := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name            string
		invoice         *domain.Invoice
		balance         *domain.AffiliateBalance
		expectDetach    bool
		expectedErr     error
		expectedOpen    string
		expectedPrepaid string
	}{
		{
			name:            "Unpaid invoice returns its line items to the pool",
			invoice:         invoice(domain.InvoicePending, "100", "0", "100"),
			balance:         balance("160", "5", "0"),
			expectDetach:    true,
			expectedOpen:    "60.00",
			expectedPrepaid: "5.00",
		},
		{
			name:            "Partly paid invoice keeps its line items",
			invoice:         invoice(domain.InvoicePartial, "100", "40", "60"),
			balance:         balance("160", "5", "0"),
			expectedOpen:    "100.00",
			expectedPrepaid: "5.00",
		},
		{
			name:            "Paid invoice keeps its line items",
			invoice:         invoice(domain.InvoicePaid, "100", "100", "0"),
			balance:         balance("30", "0", "0"),
			expectedOpen:    "30.00",
			expectedPrepaid: "0.00",
		},
		{
			name:        "Already deleted",
			invoice:     deletedInvoice(domain.InvoicePending, "100", "0", "100"),
			expectedErr: domain.ErrInvoiceNotFound,
		},
		{
			name:        "Unknown invoice",
			expectedErr: domain.ErrInvoiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().GetForUpdate(gomock.Any(), "inv1").Return(tt.invoice, nil)
			var saved *domain.AffiliateBalance
			if tt.expectedErr == nil {
				repo.EXPECT().GetBalanceForUpdate(gomock.Any(), "9004").Return(tt.balance, nil)
				if tt.expectDetach {
					commissions.EXPECT().DetachFromInvoice(gomock.Any(), "inv1").Return(nil)
				}
				repo.EXPECT().Delete(gomock.Any(), "inv1", fixedNow).Return(nil)
				saved = captureBalance(repo)
			}

			err := service.DeleteInvoice(ctx, "inv1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOpen, money.Format(saved.OpenBalance))
			assert.Equal(t, tt.expectedPrepaid, money.Format(saved.PrepaidCredit))
		})
	}
}

func TestApplyReversal(t *testing.T) {
	service, repo, commissions := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name             string
		amount           string
		invoice          *domain.Invoice
		balance          *domain.AffiliateBalance
		expectUpdate     bool
		expectCorrection string
		expectedStatus   domain.InvoiceStatus
		expectedTotal    string
		expectedPaid     string
		expectedOwed     string
		expectedOpen     string
		expectedClawback string
	}{
		{
			name:             "Pending invoice shrinks",
			amount:           "4.59",
			invoice:          invoice(domain.InvoicePending, "100", "0", "100"),
			balance:          balance("100", "0", "0"),
			expectUpdate:     true,
			expectedStatus:   domain.InvoicePending,
			expectedTotal:    "95.41",
			expectedPaid:     "0.00",
			expectedOwed:     "95.41",
			expectedOpen:     "95.41",
			expectedClawback: "0.00",
		},
		{
			name:             "Partial invoice claws back what exceeds the owed amount",
			amount:           "5",
			invoice:          invoice(domain.InvoicePartial, "100", "98", "2"),
			balance:          balance("2", "0", "0"),
			expectUpdate:     true,
			expectCorrection: "3.00",
			expectedStatus:   domain.InvoicePaid,
			expectedTotal:    "95.00",
			expectedPaid:     "95.00",
			expectedOwed:     "0.00",
			expectedOpen:     "0.00",
			expectedClawback: "3.00",
		},
		{
			name:             "Deleted invoice shrinks without touching the open balance",
			amount:           "4.59",
			invoice:          deletedInvoice(domain.InvoicePartial, "100", "40", "60"),
			balance:          balance("0", "0", "0"),
			expectUpdate:     true,
			expectedStatus:   domain.InvoicePartial,
			expectedTotal:    "95.41",
			expectedPaid:     "40.00",
			expectedOwed:     "55.41",
			expectedOpen:     "0.00",
			expectedClawback: "0.00",
		},
		{
			name:             "Paid invoice keeps history and raises a credit note",
			amount:           "4.59",
			invoice:          invoice(domain.InvoicePaid, "100", "100", "0"),
			balance:          balance("0", "0", "1"),
			expectCorrection: "4.59",
			expectedStatus:   domain.InvoicePaid,
			expectedTotal:    "100.00",
			expectedPaid:     "100.00",
			expectedOwed:     "0.00",
			expectedOpen:     "0.00",
			expectedClawback: "5.59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().GetForUpdate(gomock.Any(), "inv1").Return(tt.invoice, nil)
			repo.EXPECT().GetBalanceForUpdate(gomock.Any(), "9004").Return(tt.balance, nil)
			if tt.expectUpdate {
				repo.EXPECT().Update(gomock.Any(), tt.invoice).Return(nil)
			}
			if tt.expectCorrection != "" {
				repo.EXPECT().SaveCorrection(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.InvoiceCorrection) error {
					assert.Equal(t, "com_rev", c.CommissionID)
					assert.Equal(t, tt.expectCorrection, money.Format(c.Amount))
					return nil
				})
			}
			commissions.EXPECT().AttachToInvoice(gomock.Any(), []string{"com_rev"}, "inv1").Return(nil)
			saved := captureBalance(repo)

			require.NoError(t, service.ApplyReversal(ctx, "inv1", "com_rev", dec(tt.amount)))
			assert.Equal(t, tt.expectedStatus, tt.invoice.Status)
			assert.Equal(t, tt.expectedTotal, money.Format(tt.invoice.TotalCommission))
			assert.Equal(t, tt.expectedPaid, money.Format(tt.invoice.AmountPaid))
			assert.Equal(t, tt.expectedOwed, money.Format(tt.invoice.AmountOwed))
			assert.Equal(t, tt.expectedOpen, money.Format(saved.OpenBalance))
			assert.Equal(t, tt.expectedClawback, money.Format(saved.Clawback))
		})
	}
}

func TestReads(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().Get(gomock.Any(), "missing").Return(nil, nil)
	_, err := service.GetInvoice(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)

	repo.EXPECT().GetBalance(gomock.Any(), "404").Return(nil, nil)
	_, err = service.GetBalance(ctx, "404")
	assert.ErrorIs(t, err, domain.ErrAffiliateNotFound)

	repo.EXPECT().ListCorrections(gomock.Any(), "9004").Return([]domain.InvoiceCorrection{{CorrectionID: "cor1"}}, nil)
	corrections, err := service.ListCorrections(ctx, "9004")
	require.NoError(t, err)
	assert.Len(t, corrections, 1)

	repo.EXPECT().ListPayments(gomock.Any(), "9004").Return([]domain.InvoicePayment{{PaymentID: "pay1"}}, nil)
	payments, err := service.ListPayments(ctx, "9004")
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestDeleteInvoiceThenRebill(t *testing.T) {
	ctx := context.Background()
	inPeriod := periodStart.Add(48 * time.Hour)

	tests := []struct {
		name         string
		payment      string
		expectRebill bool
		expectedOpen string
	}{
		{
			name:         "Unpaid invoice is billed again",
			expectRebill: true,
			expectedOpen: "100.00",
		},
		{
			name:         "Partly paid invoice is not billed again",
			payment:      "40",
			expectedOpen: "0.00",
		},
		{
			name:         "Paid invoice is not billed again",
			payment:      "100",
			expectedOpen: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newMemLedger("9004")
			ledger.addItem("c1", "9004", "60", inPeriod)
			ledger.addItem("c2", "9004", "40", inPeriod)
			service := NewLedgerService(t, ledger)

			inv, err := service.GenerateInvoiceForPeriod(ctx, "9004", periodStart, periodEnd)
			require.NoError(t, err)
			if tt.payment != "" {
				_, err = service.RecordPayment(ctx, inv.InvoiceID, dec(tt.payment))
				require.NoError(t, err)
			}
			require.NoError(t, service.DeleteInvoice(ctx, inv.InvoiceID))

			_, err = service.GetInvoice(ctx, inv.InvoiceID)
			assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
			_, err = service.RecordPayment(ctx, inv.InvoiceID, dec("1"))
			assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)

			rebilled, err := service.GenerateInvoiceForPeriod(ctx, "9004", periodStart, periodEnd)
			if tt.expectRebill {
				require.NoError(t, err)
				assert.Equal(t, "100.00", money.Format(rebilled.TotalCommission))
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidInvoiceTotal)
				assert.Nil(t, rebilled)
			}

			b, err := service.GetBalance(ctx, "9004")
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOpen, money.Format(b.OpenBalance))

			payments, err := service.ListPayments(ctx, "9004")
			require.NoError(t, err)
			if tt.payment == "" {
				assert.Empty(t, payments)
				return
			}
			require.Len(t, payments, 1)
			assert.Equal(t, inv.InvoiceID, payments[0].InvoiceID)
			assert.Equal(t, money.Format(dec(tt.payment)), money.Format(payments[0].Amount))
		})
	}
}

func TestReversalNetsOutInSalePeriod(t *testing.T) {
	ctx := context.Background()
	ledger := newMemLedger("9004")
	saleAt := periodStart.Add(72 * time.Hour)
	ledger.addItem("com_sale", "9004", "4.59", saleAt)
	ledger.addItem("com_other", "9004", "10", periodStart.Add(96*time.Hour))
	ledger.addItem("com_rev", "9004", "-4.59", saleAt)
	service := NewLedgerService(t, ledger)

	inv, err := service.GenerateInvoiceForPeriod(ctx, "9004", periodStart, periodEnd)
	require.NoError(t, err)
	assert.Equal(t, "10.00", money.Format(inv.TotalCommission))

	next, err := service.GenerateInvoiceForPeriod(ctx, "9004", periodEnd, periodEnd.AddDate(0, 1, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInvoiceTotal)
	assert.Nil(t, next)
	for _, c := range ledger.items {
		require.NotNil(t, c.InvoiceID, c.CommissionID)
		assert.Equal(t, inv.InvoiceID, *c.InvoiceID)
	}
}

func TestLedgerInvariantUnderRandomOperations(t *testing.T) {
	ctx := context.Background()

	for _, seed := range []int64{1, 7, 42, 2026} {
		t.Run(fmt.Sprintf("Seed %d", seed), func(t *testing.T) {
			rnd := rand.New(rand.NewSource(seed))
			ledger := newMemLedger("9004")
			service := NewLedgerService(t, ledger)

			// Thousandths, so some inputs need rounding and some round to zero.
			randomAmount := func(maxCents int64) decimal.Decimal {
				return decimal.New(rnd.Int63n(maxCents*10)+1, -3)
			}

			var ids []string
			for step := 0; step < 400; step++ {
				op := rnd.Intn(100)
				switch {
				case op < 10 || len(ids) == 0:
					inv, err := service.GenerateInvoice(ctx, "9004", periodStart, periodEnd, randomAmount(50000))
					if errors.Is(err, domain.ErrInvalidInvoiceTotal) {
						continue
					}
					require.NoError(t, err)
					ids = append(ids, inv.InvoiceID)

				case op < 75:
					id := ids[rnd.Intn(len(ids))]
					before := ledger.invoices[id]
					balanceBefore := ledger.balances["9004"]
					amount := randomAmount(2*money.ToCents(before.AmountOwed) + 100)
					rounded := money.Round(amount)

					_, err := service.RecordPayment(ctx, id, amount)
					switch {
					case !rounded.IsPositive():
						require.ErrorIs(t, err, domain.ErrInvalidPaymentAmount)
						continue
					case before.DeletedAt != nil:
						require.ErrorIs(t, err, domain.ErrInvoiceNotFound)
						continue
					}
					require.NoError(t, err, "step %d", step)

					after := ledger.invoices[id]
					balanceAfter := ledger.balances["9004"]
					applied := money.Min(rounded, before.AmountOwed)
					assert.Equal(t, money.Format(before.AmountPaid.Add(applied)), money.Format(after.AmountPaid), "step %d", step)
					assert.Equal(t, money.Format(money.NonNegative(rounded.Sub(before.AmountOwed))),
						money.Format(balanceAfter.PrepaidCredit.Sub(balanceBefore.PrepaidCredit)), "step %d", step)
					assert.Equal(t, money.Format(applied),
						money.Format(balanceBefore.OpenBalance.Sub(balanceAfter.OpenBalance)), "step %d", step)

				case op < 90:
					id := ids[rnd.Intn(len(ids))]
					amount := randomAmount(money.ToCents(ledger.invoices[id].TotalCommission) + 100)
					require.NoError(t, service.ApplyReversal(ctx, id, fmt.Sprintf("rev_%d", step), amount), "step %d", step)

				default:
					id := ids[rnd.Intn(len(ids))]
					wasDeleted := ledger.invoices[id].DeletedAt != nil
					err := service.DeleteInvoice(ctx, id)
					if wasDeleted {
						require.ErrorIs(t, err, domain.ErrInvoiceNotFound)
					} else {
						require.NoError(t, err, "step %d", step)
					}
				}

				requireLedgerConsistent(t, ledger, step)
			}
		})
	}
}

func requireLedgerConsistent(t *testing.T, l *memLedger, step int) {
	t.Helper()

	open, prepaid, clawback := decimal.Zero, decimal.Zero, decimal.Zero
	for id, inv := range l.invoices {
		for _, amount := range []decimal.Decimal{inv.TotalCommission, inv.AmountPaid, inv.AmountOwed} {
			require.False(t, amount.IsNegative(), "step %d: invoice %s has a negative amount", step, id)
			require.True(t, amount.Equal(money.Round(amount)), "step %d: invoice %s has sub-cent amount %s", step, id, amount)
		}
		require.True(t, inv.AmountPaid.Add(inv.AmountOwed).Equal(inv.TotalCommission),
			"step %d: invoice %s: %s + %s != %s", step, id, inv.AmountPaid, inv.AmountOwed, inv.TotalCommission)

		switch {
		case inv.AmountOwed.IsZero():
			require.Equal(t, domain.InvoicePaid, inv.Status, "step %d: invoice %s", step, id)
		case inv.AmountPaid.IsPositive():
			require.Equal(t, domain.InvoicePartial, inv.Status, "step %d: invoice %s", step, id)
		default:
			require.Equal(t, domain.InvoicePending, inv.Status, "step %d: invoice %s", step, id)
		}

		if inv.DeletedAt == nil {
			open = open.Add(inv.AmountOwed)
		}
	}
	for _, p := range l.payments {
		prepaid = prepaid.Add(p.Overpayment)
	}
	for _, c := range l.corrections {
		clawback = clawback.Add(c.Amount)
	}

	b := l.balances["9004"]
	require.Equal(t, money.Format(open), money.Format(b.OpenBalance), "step %d: open balance", step)
	require.Equal(t, money.Format(prepaid), money.Format(b.PrepaidCredit), "step %d: prepaid credit", step)
	require.Equal(t, money.Format(clawback), money.Format(b.Clawback), "step %d: clawback", step)
}
