package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "$1234.50", NewMoney(1234.5).Format())
	assert.Equal(t, "$0.00", Zero().Format())
	assert.Equal(t, "-$25.99", NewMoney(-25.99).Format())
}

func TestMoneyRound(t *testing.T) {
	m, err := NewMoneyFromString("10.005")
	require.NoError(t, err)
	// Half away from zero.
	assert.Equal(t, "10.01", m.Round().String())

	m, err = NewMoneyFromString("-10.005")
	require.NoError(t, err)
	assert.Equal(t, "-10.01", m.Round().String())
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(10.50)
	b := NewMoney(4.25)

	assert.Equal(t, "14.75", a.Add(b).String())
	assert.Equal(t, "6.25", a.Sub(b).String())
	assert.Equal(t, "21.00", a.Mul(decimal.NewFromInt(2)).String())
	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.False(t, a.IsZero())
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, b.Sub(a).IsNegative())
}

func TestMoneyMinMax(t *testing.T) {
	a := NewMoney(1)
	b := NewMoney(2)
	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, b, Max(a, b))
}

func TestNewMoneyFromStringRejectsGarbage(t *testing.T) {
	_, err := NewMoneyFromString("not money")
	assert.Error(t, err)
}
