package attributionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/afftrack/internal/domain"
)

const (
	upsertQuery = `INSERT INTO attributions (visitor_id, affiliate_id, sub_ids, campaign, set_at, expires_at) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (visitor_id) DO UPDATE SET affiliate_id = EXCLUDED.affiliate_id, sub_ids = EXCLUDED.sub_ids, campaign = EXCLUDED.campaign, set_at = EXCLUDED.set_at, expires_at = EXCLUDED.expires_at`
	getQuery    = `SELECT visitor_id, affiliate_id, sub_ids, campaign, set_at, expires_at FROM attributions WHERE visitor_id = $1`
	deleteQuery = `DELETE FROM attributions WHERE visitor_id = $1`
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	attribution := &domain.Attribution{
		VisitorID:   "v1",
		AffiliateID: "9005",
		SubIDs:      domain.SubIDs{"sub": "fb1"},
		SetAt:       now,
		ExpiresAt:   now.Add(domain.AttributionWindow),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Overwrites existing attribution",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
					WithArgs("v1", "9005", []byte(`{"sub":"fb1"}`), "", now, now.Add(domain.AttributionWindow)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
					WithArgs("v1", "9005", []byte(`{"sub":"fb1"}`), "", now, now.Add(domain.AttributionWindow)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Upsert(context.Background(), attribution)
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
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"visitor_id", "affiliate_id", "sub_ids", "campaign", "set_at", "expires_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Attribution
	}{
		{
			name: "Attribution exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).AddRow("v1", "9004", []byte(`{"sub":"fb1"}`), "spring", now, now.Add(time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WithArgs("v1").WillReturnRows(rows)
			},
			result: &domain.Attribution{
				VisitorID:   "v1",
				AffiliateID: "9004",
				SubIDs:      domain.SubIDs{"sub": "fb1"},
				Campaign:    "spring",
				SetAt:       now,
				ExpiresAt:   now.Add(time.Hour),
			},
		},
		{
			name: "Attribution does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WithArgs("v1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Broken sub ids",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).AddRow("v1", "9004", []byte(`[`), "", now, now)
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WithArgs("v1").WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WithArgs("v1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), "v1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).WithArgs("v1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), "v1"))

	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).WithArgs("v1").WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Delete(context.Background(), "v1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
