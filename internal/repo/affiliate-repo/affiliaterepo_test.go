package affiliaterepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/internal/pg"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

const (
	insertAffiliateQuery = `INSERT INTO affiliates (affiliate_id, name, email, status, default_payout_type, default_payout_amount, credential_hash, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	insertLinkQuery      = `INSERT INTO affiliate_links (link_id, affiliate_id, name, payout_type, payout_amount, custom_price, is_default, tracking_url, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	insertBalanceQuery   = `INSERT INTO affiliate_balances (affiliate_id, open_balance, prepaid_credit, clawback) VALUES ($1, 0, 0, 0)`
	selectAffiliateQuery = `SELECT affiliate_id, name, email, status, default_payout_type, default_payout_amount, credential_hash, created_at FROM affiliates WHERE affiliate_id = $1`
	updateStatusQuery    = `UPDATE affiliates SET status = $1 WHERE affiliate_id = $2 RETURNING affiliate_id, name, email, status, default_payout_type, default_payout_amount, credential_hash, created_at`
	selectLinkQuery      = `SELECT link_id, affiliate_id, name, payout_type, payout_amount, custom_price, is_default, tracking_url, created_at FROM affiliate_links WHERE link_id = $1`
	selectDefaultQuery   = `SELECT link_id, affiliate_id, name, payout_type, payout_amount, custom_price, is_default, tracking_url, created_at FROM affiliate_links WHERE affiliate_id = $1 AND is_default`
	listLinksQuery       = `SELECT link_id, affiliate_id, name, payout_type, payout_amount, custom_price, is_default, tracking_url, created_at FROM affiliate_links WHERE affiliate_id = $1 ORDER BY is_default DESC, created_at ASC`
	deleteLinkQuery      = `DELETE FROM affiliate_links WHERE link_id = $1 AND NOT is_default`
)

var (
	affiliateCols = []string{"affiliate_id", "name", "email", "status", "default_payout_type", "default_payout_amount", "credential_hash", "created_at"}
	linkCols      = []string{"link_id", "affiliate_id", "name", "payout_type", "payout_amount", "custom_price", "is_default", "tracking_url", "created_at"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()
	account := &domain.AffiliateAccount{
		AffiliateID:         "9004",
		Name:                "Partner",
		Email:               "p@example.com",
		Status:              domain.AffiliateActive,
		DefaultPayoutType:   domain.PayoutCPA,
		DefaultPayoutAmount: money.FromCents(500),
		CredentialHash:      "hash",
		CreatedAt:           now,
	}
	link := &domain.AffiliateLink{
		LinkID:       "lnk_1",
		AffiliateID:  "9004",
		Name:         "default",
		PayoutType:   domain.PayoutCPA,
		PayoutAmount: money.FromCents(500),
		IsDefault:    true,
		TrackingURL:  "https://shop.example.com?ref=9004&link=lnk_1",
		CreatedAt:    now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Account, default link and balance in one transaction",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(insertAffiliateQuery)).
						WithArgs("9004", "Partner", "p@example.com", "active", "cpa", int64(500), "hash", now).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta(insertLinkQuery)).
						WithArgs("lnk_1", "9004", "default", "cpa", int64(500), (*int64)(nil), true, link.TrackingURL, now).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta(insertBalanceQuery)).
						WithArgs("9004").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Link insert fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(insertAffiliateQuery)).
						WithArgs("9004", "Partner", "p@example.com", "active", "cpa", int64(500), "hash", now).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta(insertLinkQuery)).
						WithArgs("lnk_1", "9004", "default", "cpa", int64(500), (*int64)(nil), true, link.TrackingURL, now).
						WillReturnError(errors.New("duplicate default link"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Affiliate insert fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(insertAffiliateQuery)).
						WithArgs("9004", "Partner", "p@example.com", "active", "cpa", int64(500), "hash", now).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), account, link)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.AffiliateAccount
	}{
		{
			name: "Affiliate exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(affiliateCols).AddRow("9004", "Partner", "p@example.com", "active", "percentage", int64(2000), "hash", now)
				mock.ExpectQuery(regexp.QuoteMeta(selectAffiliateQuery)).WithArgs("9004").WillReturnRows(rows)
			},
			result: &domain.AffiliateAccount{
				AffiliateID:         "9004",
				Name:                "Partner",
				Email:               "p@example.com",
				Status:              domain.AffiliateActive,
				DefaultPayoutType:   domain.PayoutPercentage,
				DefaultPayoutAmount: money.FromCents(2000),
				CredentialHash:      "hash",
				CreatedAt:           now,
			},
		},
		{
			name: "Affiliate does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectAffiliateQuery)).WithArgs("9004").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectAffiliateQuery)).WithArgs("9004").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), "9004")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(affiliateCols).AddRow("9004", "Partner", "p@example.com", "suspended", "cpa", int64(500), "", now)
	mock.ExpectQuery(regexp.QuoteMeta(updateStatusQuery)).WithArgs("suspended", "9004").WillReturnRows(rows)
	a, err := repo.UpdateStatus(context.Background(), "9004", domain.AffiliateSuspended)
	require.NoError(t, err)
	assert.Equal(t, domain.AffiliateSuspended, a.Status)

	mock.ExpectQuery(regexp.QuoteMeta(updateStatusQuery)).WithArgs("active", "missing").WillReturnError(pgx.ErrNoRows)
	a, err = repo.UpdateStatus(context.Background(), "missing", domain.AffiliateActive)
	assert.NoError(t, err)
	assert.Nil(t, a)
}

func TestRepository_Links(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	price := money.FromCents(2295)

	t.Run("Link with custom price", func(t *testing.T) {
		rows := pgxmock.NewRows(linkCols).AddRow("lnk_2", "9004", "promo", "percentage", int64(2000), int64(2295), false, "https://shop", now)
		mock.ExpectQuery(regexp.QuoteMeta(selectLinkQuery)).WithArgs("lnk_2").WillReturnRows(rows)

		l, err := repo.GetLink(context.Background(), "lnk_2")
		require.NoError(t, err)
		require.NotNil(t, l.CustomPrice)
		assert.True(t, price.Equal(*l.CustomPrice))
		assert.Equal(t, domain.PayoutPercentage, l.PayoutType)
		assert.False(t, l.IsDefault)
	})

	t.Run("Default link", func(t *testing.T) {
		rows := pgxmock.NewRows(linkCols).AddRow("lnk_1", "9004", "default", "cpa", int64(500), nil, true, "https://shop", now)
		mock.ExpectQuery(regexp.QuoteMeta(selectDefaultQuery)).WithArgs("9004").WillReturnRows(rows)

		l, err := repo.GetDefaultLink(context.Background(), "9004")
		require.NoError(t, err)
		assert.True(t, l.IsDefault)
		assert.Nil(t, l.CustomPrice)
	})

	t.Run("Missing link", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(selectLinkQuery)).WithArgs("lnk_x").WillReturnError(pgx.ErrNoRows)
		l, err := repo.GetLink(context.Background(), "lnk_x")
		assert.NoError(t, err)
		assert.Nil(t, l)
	})

	t.Run("List links", func(t *testing.T) {
		rows := pgxmock.NewRows(linkCols).
			AddRow("lnk_1", "9004", "default", "cpa", int64(500), nil, true, "https://shop", now).
			AddRow("lnk_2", "9004", "promo", "percentage", int64(2000), int64(2295), false, "https://shop", now)
		mock.ExpectQuery(regexp.QuoteMeta(listLinksQuery)).WithArgs("9004").WillReturnRows(rows)

		links, err := repo.ListLinks(context.Background(), "9004")
		require.NoError(t, err)
		assert.Len(t, links, 2)
		assert.True(t, links[0].IsDefault)
	})

	t.Run("Create link", func(t *testing.T) {
		l := &domain.AffiliateLink{
			LinkID: "lnk_3", AffiliateID: "9004", Name: "promo", PayoutType: domain.PayoutPercentage,
			PayoutAmount: money.FromCents(2000), CustomPrice: &price, TrackingURL: "https://shop", CreatedAt: now,
		}
		cents := int64(2295)
		mock.ExpectExec(regexp.QuoteMeta(insertLinkQuery)).
			WithArgs("lnk_3", "9004", "promo", "percentage", int64(2000), &cents, false, "https://shop", now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.CreateLink(context.Background(), l))
	})
}

func TestRepository_DeleteLink(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		deleted   bool
		expectErr bool
	}{
		{
			name: "Non-default link deleted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(deleteLinkQuery)).WithArgs("lnk_2").WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			deleted: true,
		},
		{
			name: "Default or missing link untouched",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(deleteLinkQuery)).WithArgs("lnk_2").WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(deleteLinkQuery)).WithArgs("lnk_2").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.DeleteLink(context.Background(), "lnk_2")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.deleted, deleted)
		})
	}
}
