package strategy

import (
	"fmt"
	"math"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
)

// AttachPremiums resolves each leg against the quote set by exact
// (strike, type) match and attaches the quote's close price as the entry
// premium. Legs with no matching quote come back in the skipped list rather
// than being dropped or defaulted; zero resolved legs is a hard failure.
func AttachPremiums(legs []models.OptionLeg, quotes []models.OptionQuote) (enriched, skipped []models.OptionLeg, err error) {
	for _, leg := range legs {
		quote, found := findQuote(quotes, leg.Strike, leg.Type)
		if !found {
			skipped = append(skipped, leg)
			continue
		}
		enriched = append(enriched, leg.WithPremium(quote.ClosePrice))
	}

	if len(enriched) == 0 {
		return nil, skipped, fmt.Errorf("no valid option legs: none of the %d legs matched a quote", len(legs))
	}
	return enriched, skipped, nil
}

func findQuote(quotes []models.OptionQuote, strike float64, optionType models.OptionType) (models.OptionQuote, bool) {
	for _, q := range quotes {
		if q.Strike == strike && q.Type == optionType {
			return q, true
		}
	}
	return models.OptionQuote{}, false
}

// ATMOptions picks the call and put quotes whose strikes sit closest to the
// spot price.
func ATMOptions(quotes []models.OptionQuote, spot float64) (ce, pe models.OptionQuote, err error) {
	ceDist := math.Inf(1)
	peDist := math.Inf(1)

	for _, q := range quotes {
		dist := math.Abs(q.Strike - spot)
		switch q.Type {
		case models.Call:
			if dist < ceDist {
				ceDist = dist
				ce = q
			}
		case models.Put:
			if dist < peDist {
				peDist = dist
				pe = q
			}
		}
	}

	if math.IsInf(ceDist, 1) || math.IsInf(peDist, 1) {
		return ce, pe, fmt.Errorf("quote set is missing %s options for ATM selection", missingType(ceDist, peDist))
	}
	return ce, pe, nil
}

func missingType(ceDist, peDist float64) models.OptionType {
	if math.IsInf(ceDist, 1) {
		return models.Call
	}
	return models.Put
}
