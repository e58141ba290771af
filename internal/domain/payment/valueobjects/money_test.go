package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney_DefaultsCurrencyToMAD(t *testing.T) {
	m := NewMoney(15000, "")

	assert.Equal(t, int64(15000), m.AmountInCents())
	assert.Equal(t, "MAD", m.Currency())
}

func TestMoney_AmountInUnits(t *testing.T) {
	assert.InDelta(t, 150.50, NewMoney(15050, "MAD").AmountInUnits(), 0.001)
}

func TestMoney_Add(t *testing.T) {
	sum, err := NewMoney(10000, "MAD").Add(NewMoney(5000, "MAD"))

	require.NoError(t, err)
	assert.Equal(t, int64(15000), sum.AmountInCents())
}

func TestMoney_AddCurrencyMismatch(t *testing.T) {
	_, err := NewMoney(10000, "MAD").Add(NewMoney(5000, "EUR"))

	assert.Error(t, err)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "300.00 MAD", NewMoney(30000, "MAD").String())
}

func TestMoney_IsPositive(t *testing.T) {
	assert.True(t, NewMoney(1, "MAD").IsPositive())
	assert.False(t, NewMoney(0, "MAD").IsPositive())
	assert.False(t, NewMoney(-1, "MAD").IsPositive())
}

func TestNewPaymentMethod(t *testing.T) {
	for _, value := range []string{"cash", "cheque", "card", "bank_transfer"} {
		pm, err := NewPaymentMethod(value)
		require.NoError(t, err)
		assert.Equal(t, value, pm.String())
	}

	_, err := NewPaymentMethod("crypto")
	assert.Error(t, err)
}
