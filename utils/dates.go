package utils

import "time"

// dayKeyLayout is the calendar-day key format used everywhere logs are
// grouped. Lexicographic order on keys equals chronological order.
const dayKeyLayout = "2006-01-02"

// DayKey returns the calendar date of t as YYYY-MM-DD, derived from t's UTC
// representation. Callers near a midnight boundary in a non-UTC zone get the
// UTC day, not the local one; stored day keys depend on this truncation rule.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// WeekdayLabel returns the abbreviated weekday name ("Mon") for a day key.
// The key is interpreted in UTC so labels always agree with DayKey's basis.
// An unparseable key yields an empty label.
func WeekdayLabel(dayKey string) string {
	d, err := time.ParseInLocation(dayKeyLayout, dayKey, time.UTC)
	if err != nil {
		return ""
	}
	return d.Format("Mon")
}

// AddDays shifts a day key by n calendar days (n may be negative). Month and
// year boundaries are handled by date arithmetic, not key inspection.
func AddDays(dayKey string, n int) string {
	d, err := time.ParseInLocation(dayKeyLayout, dayKey, time.UTC)
	if err != nil {
		return dayKey
	}
	return d.AddDate(0, 0, n).Format(dayKeyLayout)
}
