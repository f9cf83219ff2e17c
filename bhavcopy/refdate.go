package bhavcopy

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/calendar"
)

// Archives occasionally lag; look back at most this many calendar days for
// a published bhavcopy before giving up.
const maxLookbackDays = 30

// ResolveIVReferenceDate finds the most recent date with a published
// bhavcopy at or before the previous trading day, skipping weekends and
// holidays during the lookback.
func ResolveIVReferenceDate(valuationDate time.Time, cal calendar.Calendar) (time.Time, []Record, error) {
	refDate, err := cal.PreviousTradingDay(valuationDate)
	if err != nil {
		return time.Time{}, nil, err
	}

	log.WithField("date", refDate.Format(dateLayout)).Info("trying previous trading day")
	records, err := Fetch(refDate)
	if err == nil {
		return refDate, records, nil
	}
	log.WithError(err).Warn("bhavcopy not available, looking for earlier dates")

	fallback := refDate
	for refDate.Sub(fallback).Hours()/24 < maxLookbackDays {
		fallback = fallback.AddDate(0, 0, -1)

		if cal.IsNonTradingDay(fallback) {
			log.WithField("date", fallback.Format(dateLayout)).Debug("skipping non-trading day")
			continue
		}

		records, err = Fetch(fallback)
		if err == nil {
			log.WithField("date", fallback.Format(dateLayout)).Info("using fallback date")
			return fallback, records, nil
		}
	}

	return time.Time{}, nil, fmt.Errorf("no bhavcopy found in the last %d days before %s",
		maxLookbackDays, valuationDate.Format(dateLayout))
}
