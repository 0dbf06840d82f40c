package model

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout used for input and output
const DateLayout = "2006-01-02"

// fallbackLayouts are tried when neither ISO nor slash parsing succeeds.
// "01/02/2006" catches month-first dates that failed day-first validation.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-1-2",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
	"Mon Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	"2006-01",
	"January 2006",
	"Jan 2006",
}

// ParseFlexibleDate parses a date in one of the formats upstream feeds use.
// Formats are tried in order:
//   - strict YYYY-MM-DD
//   - three numeric slash-separated parts: YYYY/MM/DD when the first part is
//     greater than 31, DD/MM/YYYY otherwise
//   - a list of common layouts
//
// Slash dates with a day of 12 or less are always read day-first. There is no
// way to tell them apart from MM/DD/YYYY without a format hint from the source.
//
// The result is a calendar date at midnight UTC. ok is false when nothing matched.
func ParseFlexibleDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}

	if t, ok := parseSlashDate(s); ok {
		return t, true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return CalendarDate(t), true
		}
	}

	return time.Time{}, false
}

func parseSlashDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || len(p) > 4 || strings.Trim(p, "0123456789") != "" {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	var year, month, day int
	if nums[0] > 31 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}

	return validDate(year, month, day)
}

// validDate builds a date and rejects values that time.Date would normalize
func validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// CalendarDate drops the time of day, keeping the date as seen in t's location
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns the first day of t's month
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of t's month
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of whole days from a to b (negative when b is earlier)
func DaysBetween(a, b time.Time) int {
	return int((CalendarDate(b).Unix() - CalendarDate(a).Unix()) / secondsPerDay)
}
