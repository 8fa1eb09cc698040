package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Money
		wantErr bool
	}{
		{name: "whole amount", input: "250", want: 25000},
		{name: "two decimals", input: "12.34", want: 1234},
		{name: "one decimal", input: "12.3", want: 1230},
		{name: "negative", input: "-0.05", want: -5},
		{name: "trailing zeros beyond scale", input: "1.2300", want: 123},
		{name: "too many decimals", input: "12.345", wantErr: true},
		{name: "out of range", input: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.MoneyFromDecimal(decimal.RequireFromString(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "12.30", domain.Money(1230).String())
	assert.Equal(t, "-0.05", domain.Money(-5).String())
	assert.Equal(t, "0.00", domain.Money(0).String())
	assert.True(t, decimal.RequireFromString("12.3").Equal(domain.Money(1230).Decimal()))
}

func TestMoney_AddOverflow(t *testing.T) {
	sum, err := domain.Money(100).Add(-250)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(-150), sum)

	_, err = domain.Money(math.MaxInt64).Add(1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.Money(math.MinInt64).Add(-1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
