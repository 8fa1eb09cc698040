package dto

import (
	"fmt"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Amount is a money value on the wire. It accepts a JSON number or numeric
// string with at most two decimals and is rendered as a number with exactly two.
type Amount domain.Money

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("%w: invalid amount %s", apperrors.ErrValidation, string(b))
	}
	m, err := domain.MoneyFromDecimal(d)
	if err != nil {
		return err
	}
	*a = Amount(m)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(domain.Money(a).String()), nil
}

// Money converts back to the domain type.
func (a Amount) Money() domain.Money {
	return domain.Money(a)
}
