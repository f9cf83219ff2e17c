package bhavcopy

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// LoadFile reads a user-supplied bhavcopy CSV from disk.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bhavcopy file %s: %s", path, err)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"path": path, "records": len(records)}).Info("loaded bhavcopy file")
	return records, nil
}

// Validate checks a user-supplied bhavcopy against the valuation date: the
// file's trade date must not be in the future relative to valuation, and
// the symbol's nearest option expiry must be strictly after it.
func Validate(records []Record, symbol string, valuationDate time.Time) error {
	tradeDate, err := recordDate(records[0])
	if err != nil {
		return err
	}
	if tradeDate.After(valuationDate) {
		return fmt.Errorf("bhavcopy date %s is later than valuation date %s",
			tradeDate.Format(dateLayout), valuationDate.Format(dateLayout))
	}

	quotes, err := WeeklyOptions(records, symbol)
	if err != nil {
		return err
	}
	nearest := quotes[0].Expiry
	if !nearest.After(valuationDate) {
		return fmt.Errorf("nearest expiry %s is not after valuation date %s",
			nearest.Format(dateLayout), valuationDate.Format(dateLayout))
	}
	return nil
}

func recordDate(rec Record) (time.Time, error) {
	for _, raw := range []string{rec.TradeDate, rec.BusinessDate} {
		if raw == "" {
			continue
		}
		d, err := time.Parse(dateLayout, raw)
		if err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot determine bhavcopy date: missing TradDt and BizDt")
}
