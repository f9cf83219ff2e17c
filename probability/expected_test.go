package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

func TestSpotDensityIntegratesToOne(t *testing.T) {
	const (
		S0    = 25000.0
		sigma = 0.15
		T     = 0.1
	)

	spots := grid(0.5*S0, 2.0*S0, 5000)
	ones := make([]float64, len(spots))
	for i := range ones {
		ones[i] = 1
	}

	// pnl == 1 everywhere makes expected PnL the total density mass.
	mass, prob := ExpectedMetrics(spots, ones, S0, sigma, T)
	assert.InDelta(t, 1.0, mass, 1e-3)
	assert.InDelta(t, 1.0, prob, 1e-3)
}

func TestSpotDensityDegenerateInputs(t *testing.T) {
	assert.Zero(t, SpotDensity(-1, 25000, 0.2, 0.1))
	assert.Zero(t, SpotDensity(25000, 25000, 0, 0.1))
	assert.Zero(t, SpotDensity(25000, 25000, 0.2, 0))
}

func TestExpectedMetricsDominance(t *testing.T) {
	const (
		S0    = 25000.0
		sigma = 0.2
		T     = 0.25
	)

	spots := grid(0.7*S0, 1.3*S0, 1500)
	base := make([]float64, len(spots))
	better := make([]float64, len(spots))
	for i, s := range spots {
		base[i] = s - S0 // crosses zero mid-grid
		better[i] = base[i] + 500
	}

	baseExp, baseProb := ExpectedMetrics(spots, base, S0, sigma, T)
	betterExp, betterProb := ExpectedMetrics(spots, better, S0, sigma, T)

	assert.Greater(t, betterExp, baseExp)
	assert.GreaterOrEqual(t, betterProb, baseProb)
}

func TestExpectedMetricsNoProfitRegion(t *testing.T) {
	spots := grid(20000, 30000, 500)
	pnls := make([]float64, len(spots))
	for i := range pnls {
		pnls[i] = -100
	}

	exp, prob := ExpectedMetrics(spots, pnls, 25000, 0.2, 0.1)
	assert.Less(t, exp, 0.0)
	assert.Zero(t, prob)
}

func TestExpectedMetricsDegenerateGrid(t *testing.T) {
	exp, prob := ExpectedMetrics([]float64{25000}, []float64{10}, 25000, 0.2, 0.1)
	require.Zero(t, exp)
	require.Zero(t, prob)

	exp, prob = ExpectedMetrics([]float64{1, 2}, []float64{1}, 25000, 0.2, 0.1)
	require.Zero(t, exp)
	require.Zero(t, prob)
}
