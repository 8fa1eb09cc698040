package dto

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_JSON(t *testing.T) {
	var body struct {
		Amount Amount `json:"amount"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"amount": 1250.5}`), &body))
	assert.Equal(t, domain.Money(125050), body.Amount.Money())

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "99.99"}`), &body))
	assert.Equal(t, domain.Money(9999), body.Amount.Money())

	err := json.Unmarshal([]byte(`{"amount": 0.001}`), &body)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = json.Unmarshal([]byte(`{"amount": "ten"}`), &body)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	out, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{Amount: Amount(125050)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 1250.50}`, string(out))
}
