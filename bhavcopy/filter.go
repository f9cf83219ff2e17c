package bhavcopy

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
)

const (
	dateLayout = "2006-01-02"

	// Options closing under 5 are too illiquid to trust.
	liquidityFloor = 5.0
)

// Futures returns the symbol's futures rows sorted by expiry, front month
// first.
func Futures(records []Record, symbol string) ([]Record, error) {
	var futures []Record
	for _, rec := range records {
		if rec.Symbol != symbol {
			continue
		}
		if _, ok := futureInstruments[rec.InstrumentType]; !ok {
			continue
		}
		futures = append(futures, rec)
	}
	if len(futures) == 0 {
		return nil, fmt.Errorf("no futures data found for %s", symbol)
	}

	sort.Slice(futures, func(i, j int) bool {
		return futures[i].Expiry < futures[j].Expiry
	})
	return futures, nil
}

// SpotPrice derives the spot from the front-month future's close, rounded
// to two decimals.
func SpotPrice(records []Record, symbol string) (float64, error) {
	futures, err := Futures(records, symbol)
	if err != nil {
		return 0, err
	}
	return math.Round(futures[0].ClosePrice*100) / 100, nil
}

// WeeklyOptions extracts the nearest-expiry slice of the symbol's option
// chain as quotes, dropping illiquid entries.
func WeeklyOptions(records []Record, symbol string) ([]models.OptionQuote, error) {
	var quotes []models.OptionQuote
	for _, rec := range records {
		if rec.Symbol != symbol {
			continue
		}
		if _, ok := optionInstruments[rec.InstrumentType]; !ok {
			continue
		}

		expiry, err := time.Parse(dateLayout, rec.Expiry)
		if err != nil {
			return nil, fmt.Errorf("bad expiry %q for %s option row: %s", rec.Expiry, symbol, err)
		}
		strike, err := strconv.ParseFloat(rec.StrikePrice, 64)
		if err != nil {
			return nil, fmt.Errorf("bad strike %q for %s option row: %s", rec.StrikePrice, symbol, err)
		}

		openInterest := 0
		if rec.OpenInterest != "" {
			openInterest, _ = strconv.Atoi(rec.OpenInterest)
		}

		quotes = append(quotes, models.OptionQuote{
			Expiry:       expiry,
			Strike:       strike,
			Type:         models.OptionType(rec.OptionType),
			ClosePrice:   rec.ClosePrice,
			OpenInterest: openInterest,
		})
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("no options data found for %s", symbol)
	}

	// Weekly slice = nearest expiry.
	nearest := quotes[0].Expiry
	for _, q := range quotes[1:] {
		if q.Expiry.Before(nearest) {
			nearest = q.Expiry
		}
	}

	var weekly []models.OptionQuote
	for _, q := range quotes {
		if q.Expiry.Equal(nearest) && q.ClosePrice >= liquidityFloor {
			weekly = append(weekly, q)
		}
	}
	if len(weekly) == 0 {
		return nil, fmt.Errorf("no liquid weekly options found for %s", symbol)
	}
	return weekly, nil
}
