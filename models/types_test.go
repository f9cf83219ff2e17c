package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotValidate(t *testing.T) {
	valuation := time.Date(2026, time.January, 28, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)

	good := MarketSnapshot{
		ValuationDate: valuation,
		SpotPrice:     25100.57,
		RiskFreeRate:  0.05,
		Quotes: []OptionQuote{
			{Expiry: expiry, Strike: 25000, Type: Call, ClosePrice: 180},
		},
	}
	require.NoError(t, good.Validate())

	t.Run("non-positive spot", func(t *testing.T) {
		s := good
		s.SpotPrice = 0
		assert.ErrorContains(t, s.Validate(), "spot price")
	})

	t.Run("rate outside range", func(t *testing.T) {
		s := good
		s.RiskFreeRate = 1.5
		assert.ErrorContains(t, s.Validate(), "risk-free rate")
	})

	t.Run("no quotes", func(t *testing.T) {
		s := good
		s.Quotes = nil
		assert.ErrorContains(t, s.Validate(), "no option quotes")
	})

	t.Run("expiry on valuation date", func(t *testing.T) {
		s := good
		s.Quotes = []OptionQuote{{Expiry: valuation, Strike: 25000, Type: Put, ClosePrice: 150}}
		assert.ErrorContains(t, s.Validate(), "on or before valuation date")
	})
}

func TestLegWithPremium(t *testing.T) {
	leg := OptionLeg{Strike: 25300, Type: Put, Side: Buy, Quantity: 1}
	assert.False(t, leg.HasPremium)

	priced := leg.WithPremium(1950)
	assert.True(t, priced.HasPremium)
	assert.Equal(t, 1950.0, priced.Premium)
	// Value receiver, original untouched.
	assert.False(t, leg.HasPremium)
}

func TestLegString(t *testing.T) {
	leg := OptionLeg{Strike: 25300, Type: Put, Side: Buy, Quantity: 1}
	assert.Equal(t, "BUY 1 PE 25300", leg.String())
}

func TestSanitizeFloat(t *testing.T) {
	assert.Equal(t, 0.0, SanitizeFloat(math.NaN()))
	assert.Equal(t, 0.0, SanitizeFloat(math.Inf(1)))
	assert.Equal(t, 0.0, SanitizeFloat(math.Inf(-1)))
	assert.Equal(t, -42.5, SanitizeFloat(-42.5))
}
