package probability

import (
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat/distuv"
)

// SpotDensity is the risk-neutral lognormal density of the terminal spot:
// log-mean ln(S0) - sigma^2*T/2, log-std sigma*sqrt(T), converted to
// S-space by dividing the normal density at ln S by S.
func SpotDensity(S, S0, sigma, T float64) float64 {
	if S <= 0 || S0 <= 0 || sigma <= 0 || T <= 0 {
		return 0
	}

	dist := distuv.Normal{
		Mu:    math.Log(S0) - 0.5*sigma*sigma*T,
		Sigma: sigma * math.Sqrt(T),
	}
	return dist.Prob(math.Log(S)) / S
}

// ExpectedMetrics integrates the PnL curve against the spot density by the
// trapezoidal rule. Expected PnL integrates pnl*density over the whole
// grid; probability of profit integrates density over the grid points where
// pnl > 0. Accuracy is bounded by the grid: density mass outside the
// sweep's span is silently dropped, so callers must size the span to the
// density's effective support for the given sigma and T.
func ExpectedMetrics(spots, pnls []float64, S0, sigma, T float64) (expectedPnL, probProfit float64) {
	if len(spots) < 2 || len(spots) != len(pnls) {
		return 0, 0
	}

	density := make([]float64, len(spots))
	weighted := make([]float64, len(spots))
	for i, s := range spots {
		density[i] = SpotDensity(s, S0, sigma, T)
		weighted[i] = pnls[i] * density[i]
	}

	expectedPnL = integrate.Trapezoidal(spots, weighted)

	var profitSpots, profitDensity []float64
	for i, pnl := range pnls {
		if pnl > 0 {
			profitSpots = append(profitSpots, spots[i])
			profitDensity = append(profitDensity, density[i])
		}
	}
	if len(profitSpots) >= 2 {
		probProfit = integrate.Trapezoidal(profitSpots, profitDensity)
	}

	return expectedPnL, probProfit
}
