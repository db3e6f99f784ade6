package pg

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/afftrack/pkg/money"
)

// NullCents converts an optional amount into a nullable BIGINT argument.
func NullCents(d *decimal.Decimal) *int64 {
	if d == nil {
		return nil
	}
	c := money.ToCents(*d)
	return &c
}

func DecimalFromNull(v pgtype.Int8) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	d := money.FromCents(v.Int64)
	return &d
}

func StringFromNull(v pgtype.Text) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func IntFromNull(v pgtype.Int8) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func TimeFromNull(v pgtype.Timestamptz) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
