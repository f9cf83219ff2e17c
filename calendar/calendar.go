package calendar

import (
	"fmt"
	"sort"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// PreviousTradingDay walks back at most this many days. Weekday cycling
	// guarantees a hit within 7 steps on an empty table; the cap guards
	// against a holiday table dense enough to never terminate.
	maxLookback = 60
)

// Calendar answers "is this date a non-trading day?" from a static per-year
// holiday table, the weekend rule, and an exception set of dates that trade
// despite being listed as holidays. Fixed at construction, read-only after,
// safe for concurrent use.
type Calendar struct {
	holidays   map[int]map[string]struct{}
	exceptions map[string]struct{}
}

func New(holidays map[int][]string, exceptions []string) Calendar {
	c := Calendar{
		holidays:   make(map[int]map[string]struct{}, len(holidays)),
		exceptions: make(map[string]struct{}, len(exceptions)),
	}
	for year, dates := range holidays {
		set := make(map[string]struct{}, len(dates))
		for _, d := range dates {
			set[d] = struct{}{}
		}
		c.holidays[year] = set
	}
	for _, d := range exceptions {
		c.exceptions[d] = struct{}{}
	}
	return c
}

// IsNonTradingDay reports whether d falls on a weekend or a listed holiday.
// An exception date is always a trading day, even on a weekend. Years
// missing from the table contribute no holidays, so only weekends apply
// there.
func (c Calendar) IsNonTradingDay(d time.Time) bool {
	dateStr := d.Format(dateLayout)

	if _, ok := c.exceptions[dateStr]; ok {
		return false
	}

	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}

	year, ok := c.holidays[d.Year()]
	if !ok {
		return false
	}
	_, holiday := year[dateStr]
	return holiday
}

// PreviousTradingDay returns the latest trading day strictly before d.
func (c Calendar) PreviousTradingDay(d time.Time) (time.Time, error) {
	prev := d.AddDate(0, 0, -1)
	for i := 0; i < maxLookback; i++ {
		if !c.IsNonTradingDay(prev) {
			return prev, nil
		}
		prev = prev.AddDate(0, 0, -1)
	}
	return time.Time{}, fmt.Errorf("no trading day found within %d days before %s", maxLookback, d.Format(dateLayout))
}

// Years lists the years with holiday coverage, ascending.
func (c Calendar) Years() []int {
	years := make([]int, 0, len(c.holidays))
	for y := range c.holidays {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
