package strategy

import (
	"time"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/calendar"
	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
)

const (
	matrixPoints   = 100
	matrixLowSpan  = 0.95
	matrixHighSpan = 1.05
	maxCheckpoints = 5
)

// PayoffCheckpoint is the strategy PnL curve re-evaluated at one calendar
// date between entry and expiry.
type PayoffCheckpoint struct {
	Date          time.Time `json:"date"`
	DaysRemaining int       `json:"days_remaining"`
	YearFraction  float64   `json:"year_fraction"`
	PnL           []float64 `json:"pnl"`
}

// PayoffMatrix is the time-evolution view: one PnL row per checkpoint over
// a shared spot grid.
type PayoffMatrix struct {
	Spots       []float64          `json:"spots"`
	Checkpoints []PayoffCheckpoint `json:"checkpoints"`
}

// GeneratePayoffMatrix sweeps the strategy over 100 spots spanning
// 95%-105% of the current spot at up to 5 evenly spaced dates from entry to
// expiry, both endpoints included and the final checkpoint pinned to the
// exact expiry date. Each checkpoint's year fraction comes from the
// trading-day-fraction rule, not the calendar walk.
func GeneratePayoffMatrix(legs []models.OptionLeg, S0 float64, valuationDate, expiryDate time.Time, sigma, r float64) PayoffMatrix {
	spots := linspace(matrixLowSpan*S0, matrixHighSpan*S0, matrixPoints)

	totalDays := int(expiryDate.Sub(valuationDate).Hours() / 24)
	if totalDays < 1 {
		totalDays = 1
	}

	dates := checkpointDates(valuationDate, expiryDate, totalDays)

	matrix := PayoffMatrix{Spots: spots}
	for _, d := range dates {
		daysRemaining := int(expiryDate.Sub(d).Hours() / 24)
		T := calendar.TradingDayFractionTTM(daysRemaining)

		pnl := make([]float64, len(spots))
		for i, s := range spots {
			pnl[i] = StrategyPnL(s, legs, T, sigma, r)
		}

		matrix.Checkpoints = append(matrix.Checkpoints, PayoffCheckpoint{
			Date:          d,
			DaysRemaining: daysRemaining,
			YearFraction:  T,
			PnL:           pnl,
		})
	}
	return matrix
}

// checkpointDates spreads maxCheckpoints dates evenly over [0, totalDays],
// forces the last one onto the expiry date, and drops duplicates from short
// windows, which is why short-dated strategies see fewer than 5 curves.
func checkpointDates(valuationDate, expiryDate time.Time, totalDays int) []time.Time {
	var dates []time.Time
	for i := 0; i < maxCheckpoints; i++ {
		offset := int(float64(i) * float64(totalDays) / float64(maxCheckpoints-1))
		d := valuationDate.AddDate(0, 0, offset)
		if i == maxCheckpoints-1 {
			d = expiryDate
		}
		if len(dates) > 0 && dates[len(dates)-1].Equal(d) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}
