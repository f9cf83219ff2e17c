package calendar

import (
	"math"
	"time"
)

const (
	tradingDayWeight    = 1.0
	nonTradingDayWeight = 0.25
	expiryDayWeight     = 0.75

	daysPerYear = 365.0

	minYearFraction = 1e-6
)

// ComputeTTM converts a (valuation date, expiry date) pair into a year
// fraction. Each calendar day strictly between the two dates counts as one
// trading-time unit, down-weighted to 0.25 when the calendar flags it as
// non-trading; the expiry day itself contributes a fixed 0.75 for its
// partial trading hours. A valuation date on or after expiry returns 0:
// that is the already-expired terminal state, not an error.
func (c Calendar) ComputeTTM(valuationDate, expiryDate time.Time) float64 {
	valuation := dateOnly(valuationDate)
	expiry := dateOnly(expiryDate)

	if !valuation.Before(expiry) {
		return 0
	}

	units := 0.0
	for d := valuation.AddDate(0, 0, 1); d.Before(expiry); d = d.AddDate(0, 0, 1) {
		if c.IsNonTradingDay(d) {
			units += nonTradingDayWeight
		} else {
			units += tradingDayWeight
		}
	}

	return (units + expiryDayWeight) / daysPerYear
}

// TradingDayFractionTTM is the coarser approximation used by the
// time-evolution sweep: remaining calendar days scaled by the expiry-day
// trading fraction, floored so the pricer never divides by zero. Not
// interchangeable with ComputeTTM.
func TradingDayFractionTTM(daysRemaining int) float64 {
	return math.Max(float64(daysRemaining)*expiryDayWeight/daysPerYear, minYearFraction)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
