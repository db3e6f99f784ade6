package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/afftrack/internal/domain"
)

func NewMock(t *testing.T) (*AttributionCache, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() { _ = db.Close() })
	return NewAttributionCache(db), mock
}

func TestAttributionCache_Get(t *testing.T) {
	cache, mock := NewMock(t)
	setAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := &domain.Attribution{
		VisitorID:   "v1",
		AffiliateID: "9004",
		SubIDs:      domain.SubIDs{"sub": "fb1"},
		SetAt:       setAt,
		ExpiresAt:   setAt.Add(domain.AttributionWindow),
	}
	raw, err := Encode(a)
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Attribution
	}{
		{
			name:      "Hit",
			mockSetup: func() { mock.ExpectGet("afftrack:attribution:v1").SetVal(raw) },
			result:    a,
		},
		{
			name:      "Miss",
			mockSetup: func() { mock.ExpectGet("afftrack:attribution:v1").RedisNil() },
		},
		{
			name:      "Redis error",
			mockSetup: func() { mock.ExpectGet("afftrack:attribution:v1").SetErr(errors.New("connection refused")) },
			expectErr: true,
		},
		{
			name:      "Corrupted entry",
			mockSetup: func() { mock.ExpectGet("afftrack:attribution:v1").SetVal("{") },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := cache.Get(context.Background(), "v1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttributionCache_Set(t *testing.T) {
	cache, mock := NewMock(t)
	a := &domain.Attribution{VisitorID: "v1", AffiliateID: "9005", SetAt: time.Unix(0, 0).UTC()}
	raw, err := Encode(a)
	require.NoError(t, err)

	mock.ExpectSet("afftrack:attribution:v1", raw, time.Hour).SetVal("OK")
	assert.NoError(t, cache.Set(context.Background(), a, time.Hour))

	mock.ExpectDel("afftrack:attribution:v1").SetVal(1)
	assert.NoError(t, cache.Set(context.Background(), a, 0))

	mock.ExpectDel("afftrack:attribution:v1").SetErr(errors.New("connection refused"))
	assert.Error(t, cache.Delete(context.Background(), "v1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
