package calendar

// NSE market holidays by year. Dates in years beyond the table fall back to
// the weekend-only rule until the table is extended.
var nseHolidaysByYear = map[int][]string{
	2024: {
		"2024-01-26", // Republic Day
		"2024-03-08", // Maha Shivaratri
		"2024-03-25", // Holi
		"2024-03-29", // Good Friday
		"2024-04-11", // Eid ul-Fitr
		"2024-04-17", // Ram Navami
		"2024-04-21", // Mahavir Jayanti
		"2024-05-23", // Buddha Purnima
		"2024-06-17", // Eid ul-Adha
		"2024-07-17", // Muharram
		"2024-08-15", // Independence Day
		"2024-08-26", // Janmashtami
		"2024-09-16", // Milad un-Nabi
		"2024-10-02", // Gandhi Jayanti
		"2024-10-12", // Dussehra
		"2024-10-31", // Diwali
		"2024-11-01", // Diwali (Day 2)
		"2024-11-15", // Guru Nanak Jayanti
		"2024-12-25", // Christmas
	},
	2025: {
		"2025-01-26", // Republic Day
		"2025-02-28", // Maha Shivaratri
		"2025-03-14", // Holi
		"2025-03-30", // Eid ul-Fitr
		"2025-04-04", // Ram Navami
		"2025-04-14", // Ambedkar Jayanti
		"2025-04-18", // Good Friday
		"2025-04-21", // Mahavir Jayanti
		"2025-05-23", // Buddha Purnima
		"2025-06-07", // Eid ul-Adha
		"2025-07-07", // Muharram
		"2025-08-15", // Independence Day
		"2025-08-16", // Janmashtami
		"2025-09-16", // Milad un-Nabi
		"2025-10-02", // Gandhi Jayanti
		"2025-10-20", // Dussehra
		"2025-11-01", // Diwali
		"2025-11-05", // Diwali (Day 2)
		"2025-11-15", // Guru Nanak Jayanti
		"2025-12-25", // Christmas
	},
	2026: {
		"2026-01-26", // Republic Day
		"2026-03-06", // Maha Shivaratri
		"2026-03-25", // Holi
		"2026-04-10", // Good Friday
		"2026-04-14", // Eid ul-Fitr
		"2026-04-21", // Ram Navami
		"2026-05-01", // Maharashtra Day
		"2026-08-15", // Independence Day
		"2026-10-02", // Gandhi Jayanti
		"2026-10-24", // Dussehra
		"2026-11-12", // Diwali
		"2026-12-25", // Christmas
	},
	2027: {
		"2027-01-26", // Republic Day
		"2027-02-19", // Maha Shivaratri
		"2027-03-14", // Holi
		"2027-04-02", // Good Friday
		"2027-05-01", // Maharashtra Day
		"2027-05-14", // Buddha Purnima
		"2027-08-15", // Independence Day
		"2027-10-02", // Gandhi Jayanti
		"2027-10-15", // Dussehra
		"2027-11-01", // Diwali
		"2027-11-15", // Guru Nanak Jayanti
		"2027-12-25", // Christmas
	},
}

// Dates listed as holidays that the market actually trades.
var nseExceptions = []string{
	"2026-02-01",
}

// NSE builds the calendar for the National Stock Exchange of India.
func NSE() Calendar {
	return New(nseHolidaysByYear, nseExceptions)
}
