// Package money holds the currency arithmetic shared by commissions and invoices.
// Amounts travel as decimal.Decimal and are persisted as int64 hundredths.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round rounds to cents, half away from zero (half-up for positive amounts).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func ToCents(d decimal.Decimal) int64 {
	return Round(d).Shift(2).IntPart()
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Percent returns pct percent of base, rounded to cents.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return Round(base.Mul(pct).Div(hundred))
}

func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// NonNegative clamps negative amounts to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
