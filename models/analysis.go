package models

import (
	"math"
	"time"
)

// StrategyAnalysis is the summary record written to the report file.
type StrategyAnalysis struct {
	Symbol              string      `json:"symbol"`
	ValuationDate       time.Time   `json:"valuation_date"`
	IVReferenceDate     time.Time   `json:"iv_reference_date"`
	Expiry              time.Time   `json:"expiry"`
	SpotPrice           float64     `json:"spot_price"`
	RiskFreeRate        float64     `json:"risk_free_rate"`
	ATMStrike           float64     `json:"atm_strike"`
	ATMIV               float64     `json:"atm_iv"`
	IVConverged         bool        `json:"iv_converged"`
	TTM                 float64     `json:"ttm_years"`
	ExpectedPnL         float64     `json:"expected_pnl"`
	ProbabilityOfProfit float64     `json:"probability_of_profit"`
	MonteCarloProb      float64     `json:"monte_carlo_probability"`
	MaxProfit           float64     `json:"max_profit"`
	MaxLoss             float64     `json:"max_loss"`
	Breakevens          []float64   `json:"breakevens"`
	Legs                []OptionLeg `json:"legs"`
	SkippedLegs         []OptionLeg `json:"skipped_legs,omitempty"`
}

// SanitizeFloat maps NaN and infinities to 0 so the report always
// marshals to plain numbers.
func SanitizeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
