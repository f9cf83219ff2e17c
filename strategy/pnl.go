package strategy

import (
	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
	"github.com/ppatel-ops/Constant-Volatility-Pipeline/pricing"
)

const (
	curvePoints   = 1500
	curveLowSpan  = 0.70
	curveHighSpan = 1.30
)

// LegPnL reprices one leg at scenario spot S and nets it against the entry
// premium. The premium was paid for BUY legs and received for SELL legs, so
// the sign flips for SELL; the result scales with quantity.
func LegPnL(S float64, leg models.OptionLeg, T, sigma, r float64) float64 {
	value := pricing.PriceOf(models.PricingParameters{
		Spot:         S,
		Strike:       leg.Strike,
		YearFraction: T,
		RiskFreeRate: r,
		Volatility:   sigma,
		Type:         leg.Type,
	})

	pnl := value - leg.Premium
	if leg.Side == models.Sell {
		pnl = -pnl
	}
	return pnl * float64(leg.Quantity)
}

// StrategyPnL sums leg PnLs at scenario spot S. Every leg is priced with
// the same flat volatility; the system does not model a skew. Legs that
// never received a premium are excluded, not defaulted.
func StrategyPnL(S float64, legs []models.OptionLeg, T, sigma, r float64) float64 {
	total := 0.0
	for _, leg := range legs {
		if !leg.HasPremium {
			continue
		}
		total += LegPnL(S, leg, T, sigma, r)
	}
	return total
}

// PnLCurve sweeps StrategyPnL over 1500 evenly spaced spots spanning
// 70%-130% of the current spot.
func PnLCurve(S0 float64, legs []models.OptionLeg, T, sigma, r float64) (spots, pnls []float64) {
	spots = linspace(curveLowSpan*S0, curveHighSpan*S0, curvePoints)
	pnls = make([]float64, len(spots))
	for i, s := range spots {
		pnls[i] = StrategyPnL(s, legs, T, sigma, r)
	}
	return spots, pnls
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}
