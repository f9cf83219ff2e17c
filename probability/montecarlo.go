package probability

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"
)

const defaultSimulations = 10000

var rngPool = sync.Pool{
	New: func() interface{} {
		return rand.New(rand.NewSource(uint64(rand.Int63())))
	},
}

// SimulateProbabilityOfProfit estimates the probability of profit by
// sampling terminal spots from the same lognormal law SpotDensity encodes
// and counting profitable draws. It exists as a cross-check on the
// trapezoidal integration; ExpectedMetrics remains the reference output.
func SimulateProbabilityOfProfit(pnl func(S float64) float64, S0, sigma, T float64, simulations int) float64 {
	if simulations <= 0 {
		simulations = defaultSimulations
	}

	rng := rngPool.Get().(*rand.Rand)
	defer rngPool.Put(rng)

	drift := -0.5 * sigma * sigma * T
	volT := sigma * math.Sqrt(T)

	profitCount := 0
	for i := 0; i < simulations; i++ {
		finalSpot := S0 * math.Exp(drift+volT*rng.NormFloat64())
		if pnl(finalSpot) > 0 {
			profitCount++
		}
	}

	return float64(profitCount) / float64(simulations)
}
