package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
)

func TestPriceAtExpiry(t *testing.T) {
	t.Run("call intrinsic", func(t *testing.T) {
		assert.Equal(t, 5.0, Price(105, 100, 1e-6, 0.05, 0.2, models.Call))
		assert.Equal(t, 0.0, Price(95, 100, 1e-6, 0.05, 0.2, models.Call))
	})

	t.Run("put intrinsic", func(t *testing.T) {
		assert.Equal(t, 5.0, Price(95, 100, 0, 0.05, 0.2, models.Put))
		assert.Equal(t, 0.0, Price(105, 100, 0, 0.05, 0.2, models.Put))
	})
}

func TestPutCallParity(t *testing.T) {
	cases := []struct {
		name             string
		S, K, T, r, sigma float64
	}{
		{"atm", 25000, 25000, 0.05, 0.06, 0.15},
		{"itm call", 25000, 24000, 0.10, 0.06, 0.25},
		{"otm call", 25000, 26500, 0.25, 0.00, 0.40},
		{"long dated", 100, 100, 1.0, 0.03, 0.80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			call := Price(tc.S, tc.K, tc.T, tc.r, tc.sigma, models.Call)
			put := Price(tc.S, tc.K, tc.T, tc.r, tc.sigma, models.Put)
			assert.InDelta(t, tc.S-tc.K*math.Exp(-tc.r*tc.T), call-put, 1e-6)
		})
	}
}

func TestPriceNonNegative(t *testing.T) {
	// Deep OTM with tiny vol: the closed form underflows toward zero and
	// must never come back negative.
	price := Price(100, 500, 0.01, 0.0, 0.05, models.Call)
	assert.GreaterOrEqual(t, price, 0.0)
}

func TestVega(t *testing.T) {
	vega := Vega(25000, 25000, 0.1, 0.05, 0.2)
	assert.Greater(t, vega, 0.0)

	// Vega peaks near the money.
	assert.Greater(t, vega, Vega(25000, 30000, 0.1, 0.05, 0.2))
}

func TestPriceOf(t *testing.T) {
	p := models.PricingParameters{
		Spot:         25000,
		Strike:       25100,
		YearFraction: 0.08,
		RiskFreeRate: 0.05,
		Volatility:   0.18,
		Type:         models.Put,
	}
	assert.Equal(t, Price(p.Spot, p.Strike, p.YearFraction, p.RiskFreeRate, p.Volatility, p.Type), PriceOf(p))
}
