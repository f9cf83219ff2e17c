package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/xhhuango/json"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/bhavcopy"
	"github.com/ppatel-ops/Constant-Volatility-Pipeline/calendar"
	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
	"github.com/ppatel-ops/Constant-Volatility-Pipeline/pricing"
	"github.com/ppatel-ops/Constant-Volatility-Pipeline/probability"
	"github.com/ppatel-ops/Constant-Volatility-Pipeline/strategy"
)

const (
	defaultSymbol     = "NIFTY"
	defaultOutputFile = "analysis.json"
	defaultMatrixFile = "payoff_matrix.json"

	// Used when the ATM quote is below the solvable tick threshold.
	fallbackVolatility = 0.12

	// A first-leg strike further than one NIFTY strike step from the
	// computed ATM gets a warning.
	atmStrikeTolerance = 100.0
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	symbol := envOr("SYMBOL", defaultSymbol)
	valuationDate := mustParseDate(envOr("VALUATION_DATE", time.Now().Format("2006-01-02")))
	riskFreeRate := mustParseFloat(envOr("RISK_FREE_RATE", "0.00"))
	legs := loadLegs(os.Getenv("LEGS_FILE"))

	cal := calendar.NSE()
	if cal.IsNonTradingDay(valuationDate) {
		log.Fatalf("%s is not a trading day, pick a valid valuation date", valuationDate.Format("2006-01-02"))
	}

	// Load or fetch the bhavcopy feeding both IV and premiums.
	var (
		records   []bhavcopy.Record
		ivRefDate time.Time
	)
	if path := os.Getenv("BHAVCOPY_FILE"); path != "" {
		var err error
		records, err = bhavcopy.LoadFile(path)
		if err != nil {
			log.Fatalf("failed to load bhavcopy: %s", err)
		}
		if err := bhavcopy.Validate(records, symbol, valuationDate); err != nil {
			log.Fatalf("bhavcopy validation failed: %s", err)
		}
		ivRefDate = valuationDate
	} else {
		var err error
		ivRefDate, records, err = bhavcopy.ResolveIVReferenceDate(valuationDate, cal)
		if err != nil {
			log.Fatalf("failed to fetch bhavcopy: %s", err)
		}
	}

	quotes, err := bhavcopy.WeeklyOptions(records, symbol)
	if err != nil {
		log.Fatalf("failed to extract weekly options: %s", err)
	}
	spotPrice, err := bhavcopy.SpotPrice(records, symbol)
	if err != nil {
		log.Fatalf("failed to derive spot price: %s", err)
	}

	snapshot := models.MarketSnapshot{
		ValuationDate: ivRefDate,
		SpotPrice:     spotPrice,
		Quotes:        quotes,
		RiskFreeRate:  riskFreeRate,
	}
	if err := snapshot.Validate(); err != nil {
		log.Fatalf("invalid market snapshot: %s", err)
	}

	expiry := quotes[0].Expiry
	ttm := cal.ComputeTTM(ivRefDate, expiry)

	log.WithFields(log.Fields{
		"symbol": symbol,
		"spot":   spotPrice,
		"expiry": expiry.Format("2006-01-02"),
		"quotes": len(quotes),
		"ttm":    ttm,
	}).Info("market snapshot ready")

	atmStrike, atmIV, converged := resolveATMVolatility(legs, snapshot, ttm)
	log.WithFields(log.Fields{
		"atm_strike": atmStrike,
		"atm_iv":     atmIV,
		"converged":  converged,
	}).Info("flat volatility resolved, applied to all legs")

	enriched, skipped, err := strategy.AttachPremiums(legs, quotes)
	if err != nil {
		log.Fatalf("failed to attach premiums: %s", err)
	}
	for _, leg := range enriched {
		log.Infof("leg %s @ %.2f", leg, leg.Premium)
	}
	for _, leg := range skipped {
		log.Warnf("no quote for leg %s, skipping", leg)
	}

	spots, pnls := strategy.PnLCurve(spotPrice, enriched, ttm, atmIV, riskFreeRate)
	expectedPnL, probProfit := probability.ExpectedMetrics(spots, pnls, spotPrice, atmIV, ttm)
	mcProb := probability.SimulateProbabilityOfProfit(func(S float64) float64 {
		return strategy.StrategyPnL(S, enriched, ttm, atmIV, riskFreeRate)
	}, spotPrice, atmIV, ttm, 0)

	matrix := strategy.GeneratePayoffMatrix(enriched, spotPrice, valuationDate, expiry, atmIV, riskFreeRate)
	chainIVs := strategy.ScanChainIV(quotes, spotPrice, ttm, riskFreeRate)

	maxProfit, maxLoss := curveExtremes(pnls)
	analysis := models.StrategyAnalysis{
		Symbol:              symbol,
		ValuationDate:       valuationDate,
		IVReferenceDate:     ivRefDate,
		Expiry:              expiry,
		SpotPrice:           spotPrice,
		RiskFreeRate:        riskFreeRate,
		ATMStrike:           atmStrike,
		ATMIV:               atmIV,
		IVConverged:         converged,
		TTM:                 ttm,
		ExpectedPnL:         models.SanitizeFloat(expectedPnL),
		ProbabilityOfProfit: models.SanitizeFloat(probProfit),
		MonteCarloProb:      models.SanitizeFloat(mcProb),
		MaxProfit:           models.SanitizeFloat(maxProfit),
		MaxLoss:             models.SanitizeFloat(maxLoss),
		Breakevens:          breakevens(spots, pnls),
		Legs:                enriched,
		SkippedLegs:         skipped,
	}

	log.Infof("probability of profit: %.2f%% (monte carlo %.2f%%)", probProfit*100, mcProb*100)
	log.Infof("expected pnl: %.2f, max profit: %.2f, max loss: %.2f", expectedPnL, maxProfit, maxLoss)

	writeJSON(envOr("OUTPUT_FILE", defaultOutputFile), analysis)
	writeJSON(envOr("MATRIX_FILE", defaultMatrixFile), struct {
		Matrix   strategy.PayoffMatrix `json:"payoff_matrix"`
		ChainIVs []strategy.QuoteIV    `json:"chain_ivs"`
	}{matrix, chainIVs})
}

// resolveATMVolatility solves the flat volatility from the first leg's
// quote, falls back to automatic ATM detection when that strike is missing
// from the chain, and to the fixed fallback constant when unsolvable.
func resolveATMVolatility(legs []models.OptionLeg, snapshot models.MarketSnapshot, ttm float64) (atmStrike, atmIV float64, converged bool) {
	atmCE, atmPE, err := strategy.ATMOptions(snapshot.Quotes, snapshot.SpotPrice)
	if err != nil {
		log.Fatalf("ATM selection failed: %s", err)
	}

	if len(legs) > 0 {
		first := legs[0]
		if dist := first.Strike - atmCE.Strike; dist > atmStrikeTolerance || dist < -atmStrikeTolerance {
			log.Warnf("first strike %.0f is not close to computed ATM %.0f", first.Strike, atmCE.Strike)
		}

		for _, q := range snapshot.Quotes {
			if q.Strike == first.Strike && q.Type == first.Type {
				result, ok := pricing.ImpliedVolatility(q.ClosePrice, snapshot.SpotPrice, q.Strike, ttm, snapshot.RiskFreeRate, q.Type)
				if !ok {
					log.Warnf("quote %.2f below tick threshold, using fallback volatility %.2f", q.ClosePrice, fallbackVolatility)
					return first.Strike, fallbackVolatility, false
				}
				return first.Strike, result.Volatility, result.Converged
			}
		}
		log.Warnf("ATM strike %.0f %s not found in options data, falling back to automatic ATM detection", first.Strike, first.Type)
	}

	ceResult, ceOK := pricing.ImpliedVolatility(atmCE.ClosePrice, snapshot.SpotPrice, atmCE.Strike, ttm, snapshot.RiskFreeRate, models.Call)
	peResult, peOK := pricing.ImpliedVolatility(atmPE.ClosePrice, snapshot.SpotPrice, atmPE.Strike, ttm, snapshot.RiskFreeRate, models.Put)
	if !ceOK || !peOK {
		return atmCE.Strike, fallbackVolatility, false
	}
	return atmCE.Strike, (ceResult.Volatility + peResult.Volatility) / 2, ceResult.Converged && peResult.Converged
}

// breakevens finds curve zero crossings by linear interpolation.
func breakevens(spots, pnls []float64) []float64 {
	var crossings []float64
	for i := 1; i < len(pnls); i++ {
		if pnls[i-1] == 0 || (pnls[i-1] < 0) == (pnls[i] < 0) {
			continue
		}
		frac := pnls[i-1] / (pnls[i-1] - pnls[i])
		crossings = append(crossings, spots[i-1]+frac*(spots[i]-spots[i-1]))
	}
	return crossings
}

func curveExtremes(pnls []float64) (maxProfit, maxLoss float64) {
	maxProfit, maxLoss = pnls[0], pnls[0]
	for _, p := range pnls[1:] {
		if p > maxProfit {
			maxProfit = p
		}
		if p < maxLoss {
			maxLoss = p
		}
	}
	return maxProfit, maxLoss
}

func loadLegs(path string) []models.OptionLeg {
	if path == "" {
		// Example strategy: NIFTY put ratio spread.
		return []models.OptionLeg{
			{Strike: 25300, Type: models.Put, Side: models.Buy, Quantity: 1950},
			{Strike: 25050, Type: models.Put, Side: models.Sell, Quantity: 3900},
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read legs file %s: %s", path, err)
	}
	var legs []models.OptionLeg
	if err := json.Unmarshal(data, &legs); err != nil {
		log.Fatalf("failed to parse legs file %s: %s", path, err)
	}
	if len(legs) == 0 {
		log.Fatalf("legs file %s defines no legs", path)
	}
	for _, leg := range legs {
		if leg.Strike <= 0 || leg.Quantity <= 0 {
			log.Fatalf("invalid leg %s: strike and quantity must be positive", leg)
		}
	}
	return legs
}

func writeJSON(path string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal %s: %s", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("failed to write %s: %s", path, err)
	}
	log.WithField("path", path).Info("report written")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustParseDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("invalid date %q, expected YYYY-MM-DD: %s", s, err)
	}
	return d
}

func mustParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("invalid number %q: %s", s, err)
	}
	return f
}
