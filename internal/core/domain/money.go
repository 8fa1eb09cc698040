package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is a signed amount in minor currency units (1 rupee = 100 paise).
type Money int64

// MinorUnitDigits is the number of fraction digits a Money value carries.
const MinorUnitDigits = 2

var (
	maxMoney = decimal.NewFromInt(math.MaxInt64)
	minMoney = decimal.NewFromInt(math.MinInt64)
)

// MoneyFromDecimal converts a decimal amount into minor units.
// More than two fraction digits or a value outside int64 is a validation error.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	scaled := d.Shift(MinorUnitDigits)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("%w: amount %s has more than %d decimal places", apperrors.ErrValidation, d.String(), MinorUnitDigits)
	}
	if scaled.GreaterThan(maxMoney) || scaled.LessThan(minMoney) {
		return 0, fmt.Errorf("%w: amount %s is out of range", apperrors.ErrValidation, d.String())
	}
	return Money(scaled.IntPart()), nil
}

// MustMoney parses s as a decimal and panics on failure. Intended for tests and constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	m, err := MoneyFromDecimal(d)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -MinorUnitDigits)
}

// String renders the amount with exactly two fraction digits.
func (m Money) String() string {
	return m.Decimal().StringFixed(MinorUnitDigits)
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m > 0
}

// Add returns m+o, failing instead of wrapping around on overflow.
func (m Money) Add(o Money) (Money, error) {
	if (o > 0 && m > math.MaxInt64-o) || (o < 0 && m < math.MinInt64-o) {
		return 0, fmt.Errorf("%w: amount overflow", apperrors.ErrValidation)
	}
	return m + o, nil
}

// Neg returns -m.
func (m Money) Neg() Money {
	return -m
}
