package pricing

import (
	"math"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
)

// Below this year fraction the option is treated as at or past expiry and
// priced at intrinsic value, bypassing the closed form to avoid a
// near-zero-T division.
const expiryEpsilon = 1e-5

// Price returns the European Black-Scholes value of a call or put.
func Price(S, K, T, r, sigma float64, optionType models.OptionType) float64 {
	if T <= expiryEpsilon {
		if optionType == models.Call {
			return math.Max(0, S-K)
		}
		return math.Max(0, K-S)
	}

	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	d2 := d1 - sigma*math.Sqrt(T)

	var price float64
	if optionType == models.Call {
		price = S*normCDF(d1) - K*math.Exp(-r*T)*normCDF(d2)
	} else {
		price = K*math.Exp(-r*T)*normCDF(-d2) - S*normCDF(-d1)
	}

	// The formula never goes meaningfully negative; floor numerical noise.
	if price < 0 {
		return 0
	}
	return price
}

// PriceOf prices a bundled parameter set.
func PriceOf(p models.PricingParameters) float64 {
	return Price(p.Spot, p.Strike, p.YearFraction, p.RiskFreeRate, p.Volatility, p.Type)
}

// Vega is the option price sensitivity to volatility. Callers must guard
// T = 0; the value is undefined there.
func Vega(S, K, T, r, sigma float64) float64 {
	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	return S * normPDF(d1) * math.Sqrt(T)
}

func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
