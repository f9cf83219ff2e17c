package strategy

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
)

func TestGeneratePayoffMatrix(t *testing.T) {
	legs := []models.OptionLeg{
		models.OptionLeg{Strike: 25000, Type: models.Put, Side: models.Buy, Quantity: 1}.WithPremium(150),
	}
	valuation := time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)

	matrix := GeneratePayoffMatrix(legs, 25000, valuation, expiry, 0.15, 0)

	require.Len(t, matrix.Spots, 100)
	assert.InDelta(t, 0.95*25000, matrix.Spots[0], 1e-9)
	assert.InDelta(t, 1.05*25000, matrix.Spots[99], 1e-9)

	require.Len(t, matrix.Checkpoints, 5)
	first := matrix.Checkpoints[0]
	last := matrix.Checkpoints[len(matrix.Checkpoints)-1]

	assert.True(t, first.Date.Equal(valuation))
	assert.True(t, last.Date.Equal(expiry), "final checkpoint must land on expiry")
	assert.Equal(t, 0, last.DaysRemaining)
	assert.Equal(t, 1e-6, last.YearFraction)

	// At the floored year fraction the pricer returns intrinsic value, so
	// the expiry row is the pure payoff.
	for i, s := range matrix.Spots {
		want := (math.Max(0, 25000-s) - 150) * 1
		assert.InDelta(t, want, last.PnL[i], 1e-9)
	}

	// Time decay: a long option's value can only fall as checkpoints
	// approach expiry, holding spot fixed at the grid's lower edge (deep
	// ITM put keeps the comparison clean).
	for i := 1; i < len(matrix.Checkpoints); i++ {
		assert.LessOrEqual(t, matrix.Checkpoints[i].PnL[0], matrix.Checkpoints[i-1].PnL[0]+1e-6)
	}
}

func TestGeneratePayoffMatrixShortWindow(t *testing.T) {
	legs := []models.OptionLeg{
		models.OptionLeg{Strike: 25000, Type: models.Call, Side: models.Sell, Quantity: 1}.WithPremium(80),
	}
	valuation := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
	expiry := valuation.AddDate(0, 0, 1)

	matrix := GeneratePayoffMatrix(legs, 25000, valuation, expiry, 0.15, 0)

	// One-day window collapses the five slots into entry and expiry.
	require.Len(t, matrix.Checkpoints, 2)
	assert.True(t, matrix.Checkpoints[0].Date.Equal(valuation))
	assert.True(t, matrix.Checkpoints[1].Date.Equal(expiry))
}
