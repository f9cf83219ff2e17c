package bhavcopy

// Record is one row of the NSE F&O UDiFF bhavcopy. Numeric columns that are
// blank on non-option rows (strike, option type, open interest) stay as
// strings and are parsed during filtering; gocsv matches columns by header
// and ignores the rest of the file's ~50 columns.
type Record struct {
	TradeDate      string  `csv:"TradDt"`
	BusinessDate   string  `csv:"BizDt"`
	Symbol         string  `csv:"TckrSymb"`
	InstrumentType string  `csv:"FinInstrmTp"`
	Expiry         string  `csv:"XpryDt"`
	StrikePrice    string  `csv:"StrkPric"`
	OptionType     string  `csv:"OptnTp"`
	ClosePrice     float64 `csv:"ClsPric"`
	OpenInterest   string  `csv:"OpnIntrst"`
}

// Instrument type codes: index/stock futures and index/stock options.
var (
	futureInstruments = map[string]struct{}{"IDF": {}, "STF": {}}
	optionInstruments = map[string]struct{}{"IDO": {}, "STO": {}}
)
