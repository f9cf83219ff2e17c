package models

import (
	"fmt"
	"time"
)

// OptionType follows the NSE bhavcopy convention: CE for calls, PE for puts.
type OptionType string

const (
	Call OptionType = "CE"
	Put  OptionType = "PE"
)

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// OptionLeg is one position within a multi-leg strategy. Premium is the
// market entry price attached from the bhavcopy after construction; a leg
// without a premium is unusable for pricing and is excluded from
// aggregation rather than defaulted.
type OptionLeg struct {
	Strike     float64    `json:"strike"`
	Type       OptionType `json:"type"`
	Side       Side       `json:"side"`
	Quantity   int        `json:"qty"`
	Premium    float64    `json:"premium,omitempty"`
	HasPremium bool       `json:"-"`
}

func (l OptionLeg) WithPremium(premium float64) OptionLeg {
	l.Premium = premium
	l.HasPremium = true
	return l
}

func (l OptionLeg) String() string {
	return fmt.Sprintf("%s %d %s %.0f", l.Side, l.Quantity, l.Type, l.Strike)
}

// OptionQuote is one end-of-day quote from the weekly (nearest expiry)
// slice of the option chain.
type OptionQuote struct {
	Expiry       time.Time  `json:"expiry"`
	Strike       float64    `json:"strike"`
	Type         OptionType `json:"type"`
	ClosePrice   float64    `json:"close_price"`
	OpenInterest int        `json:"open_interest"`
}

// MarketSnapshot bundles everything the analytics consume for one valuation
// date: the spot price derived from the front-month future and the weekly
// option quotes sharing a single expiry.
type MarketSnapshot struct {
	ValuationDate time.Time     `json:"valuation_date"`
	SpotPrice     float64       `json:"spot_price"`
	Quotes        []OptionQuote `json:"quotes"`
	RiskFreeRate  float64       `json:"risk_free_rate"`
}

func (m MarketSnapshot) Validate() error {
	if m.SpotPrice <= 0 {
		return fmt.Errorf("invalid spot price %.2f", m.SpotPrice)
	}
	if m.RiskFreeRate < 0 || m.RiskFreeRate > 1 {
		return fmt.Errorf("risk-free rate %.4f outside [0,1]", m.RiskFreeRate)
	}
	if len(m.Quotes) == 0 {
		return fmt.Errorf("snapshot has no option quotes")
	}
	for _, q := range m.Quotes {
		if !q.Expiry.After(m.ValuationDate) {
			return fmt.Errorf("quote %s %.0f expires %s, on or before valuation date %s",
				q.Type, q.Strike, q.Expiry.Format("2006-01-02"), m.ValuationDate.Format("2006-01-02"))
		}
	}
	return nil
}

// PricingParameters is the full input set for one Black-Scholes evaluation.
type PricingParameters struct {
	Spot         float64
	Strike       float64
	YearFraction float64
	RiskFreeRate float64
	Volatility   float64
	Type         OptionType
}

// StrategyPosition holds the legs of one strategy together with the shared
// pricing assumptions. All legs are priced with one flat volatility, no
// skew or surface.
type StrategyPosition struct {
	Legs          []OptionLeg `json:"legs"`
	ValuationDate time.Time   `json:"valuation_date"`
	ExpiryDate    time.Time   `json:"expiry_date"`
	Volatility    float64     `json:"volatility"`
	RiskFreeRate  float64     `json:"risk_free_rate"`
}
