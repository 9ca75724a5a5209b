package pricing_test

import (
	"math"
	"testing"

	"advse-backend/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasePrice(t *testing.T) {
	bp, err := pricing.BasePrice(50, 50, 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, bp)

	bp, err = pricing.BasePrice(38.95, 30, 100)
	require.NoError(t, err)
	assert.InDelta(t, 129.8333333, bp, 1e-6)
	assert.Equal(t, 129.83, pricing.Round2(bp))
}

// size=0 はエラー（NaN/Infを返さない）
func TestBasePrice_ZeroSize(t *testing.T) {
	_, err := pricing.BasePrice(10, 0, 100)
	assert.ErrorIs(t, err, pricing.ErrZeroSize)

	_, err = pricing.RoundedBasePrice(10, 0)
	assert.ErrorIs(t, err, pricing.ErrZeroSize)
}

func TestRoundedBasePrice(t *testing.T) {
	bp, err := pricing.RoundedBasePrice(38.95, 30)
	require.NoError(t, err)
	assert.Equal(t, 129.83, bp)

	bp, err = pricing.RoundedBasePrice(99.9, 100)
	require.NoError(t, err)
	assert.Equal(t, 99.9, bp)
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{38.9549, 38.95},
		{38.955, 38.96},
		{-1.005, -1.01},
		{2.5, 2.5},
		{0, 0},
		{129.833333, 129.83},
		{62.5, 62.5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pricing.Round2(c.in), "Round2(%v)", c.in)
	}
}

func TestRound2_Idempotent(t *testing.T) {
	for _, v := range []float64{38.9549, 1.0049, 129.8333, 7, -3.14159} {
		once := pricing.Round2(v)
		assert.Equal(t, once, pricing.Round2(once))
	}
}

func TestRound2_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(pricing.Round2(math.NaN())))
	assert.True(t, math.IsInf(pricing.Round2(math.Inf(1)), 1))
	assert.True(t, math.IsInf(pricing.Round2(math.Inf(-1)), -1))
}
