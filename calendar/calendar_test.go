package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsNonTradingDay(t *testing.T) {
	cal := NSE()

	t.Run("weekend", func(t *testing.T) {
		assert.True(t, cal.IsNonTradingDay(day(2026, time.January, 31))) // Saturday
		assert.True(t, cal.IsNonTradingDay(day(2026, time.February, 8))) // Sunday
	})

	t.Run("exception overrides weekend", func(t *testing.T) {
		// 2026-02-01 is a Sunday but the market trades.
		assert.False(t, cal.IsNonTradingDay(day(2026, time.February, 1)))
	})

	t.Run("listed holiday", func(t *testing.T) {
		assert.True(t, cal.IsNonTradingDay(day(2026, time.January, 26))) // Republic Day, a Monday
		assert.True(t, cal.IsNonTradingDay(day(2024, time.December, 25)))
	})

	t.Run("regular weekday", func(t *testing.T) {
		assert.False(t, cal.IsNonTradingDay(day(2026, time.January, 29))) // Thursday
	})

	t.Run("year outside table only applies weekends", func(t *testing.T) {
		monday := day(2030, time.January, 7)
		require.Equal(t, time.Monday, monday.Weekday())
		assert.False(t, cal.IsNonTradingDay(monday))

		saturday := day(2030, time.January, 5)
		require.Equal(t, time.Saturday, saturday.Weekday())
		assert.True(t, cal.IsNonTradingDay(saturday))
	})
}

func TestPreviousTradingDay(t *testing.T) {
	cal := NSE()

	t.Run("skips weekend into exception date", func(t *testing.T) {
		// Monday 2026-02-02: the day before is the 2026-02-01 exception,
		// which trades despite being a Sunday.
		prev, err := cal.PreviousTradingDay(day(2026, time.February, 2))
		require.NoError(t, err)
		assert.Equal(t, day(2026, time.February, 1), prev)
	})

	t.Run("skips holiday and weekend run", func(t *testing.T) {
		// Tuesday 2026-01-27: Monday is Republic Day, then the weekend.
		prev, err := cal.PreviousTradingDay(day(2026, time.January, 27))
		require.NoError(t, err)
		assert.Equal(t, day(2026, time.January, 23), prev)
	})

	t.Run("fails fast on a pathological table", func(t *testing.T) {
		var blocked []string
		d := day(2025, time.January, 1)
		for d.Year() == 2025 && d.Month() <= time.April {
			blocked = append(blocked, d.Format("2006-01-02"))
			d = d.AddDate(0, 0, 1)
		}
		dense := New(map[int][]string{2025: blocked}, nil)

		_, err := dense.PreviousTradingDay(day(2025, time.April, 1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no trading day found")
	})
}

func TestYears(t *testing.T) {
	assert.Equal(t, []int{2024, 2025, 2026, 2027}, NSE().Years())
}
