package pricing

import (
	"math"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
)

const (
	// Quotes below half a tick are treated as noise, not solvable.
	minSolvablePrice = 0.5

	initialGuess    = 0.20
	ivTolerance     = 1e-6
	ivMaxIterations = 1000
	minVega         = 1e-8

	// Newton steps are clamped into an economically sane band.
	sigmaFloor = 0.01
	sigmaCeil  = 3.0
)

// IVResult is the tagged output of the implied volatility solver. Converged
// is false when the solver hit the near-zero-vega exit or exhausted its
// iteration budget; the volatility is still the best available estimate and
// callers that ignore the flag get the historical best-effort behavior.
type IVResult struct {
	Volatility float64
	Converged  bool
	Iterations int
}

// ImpliedVolatility inverts a market price into the Black-Scholes
// volatility by Newton-Raphson. The second return is false when the market
// price is below the minimum tick threshold and no solve is attempted;
// callers supply their own fallback volatility for that case.
func ImpliedVolatility(marketPrice, S, K, T, r float64, optionType models.OptionType) (IVResult, bool) {
	if marketPrice < minSolvablePrice {
		return IVResult{}, false
	}

	sigma := initialGuess
	for i := 0; i < ivMaxIterations; i++ {
		price := Price(S, K, T, r, sigma, optionType)
		vega := Vega(S, K, T, r, sigma)

		if vega < minVega {
			// Stepping would divide by ~0; surrender the current estimate.
			return IVResult{Volatility: sigma, Converged: false, Iterations: i}, true
		}

		diff := price - marketPrice
		if math.Abs(diff) < ivTolerance {
			return IVResult{Volatility: sigma, Converged: true, Iterations: i}, true
		}

		sigma -= diff / vega
		sigma = math.Min(math.Max(sigma, sigmaFloor), sigmaCeil)
	}

	return IVResult{Volatility: sigma, Converged: false, Iterations: ivMaxIterations}, true
}
