package timeutil

import "time"

// DayZeroLayout defines the date format used by the Seasons file
// (M/D/YYYY, no zero padding).
const DayZeroLayout = "1/2/2006"

// ParseDayZero parses a M/D/YYYY day-zero date string.
func ParseDayZero(value string) (time.Time, error) {
	return time.Parse(DayZeroLayout, value)
}

// FormatDayZero formats a time as M/D/YYYY in its current location.
func FormatDayZero(t time.Time) string {
	return t.Format(DayZeroLayout)
}
