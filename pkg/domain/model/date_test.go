package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{"iso", "2025-03-15", date(2025, 3, 15), true},
		{"iso with spaces", "  2025-03-15 ", date(2025, 3, 15), true},
		{"day first slash", "15/03/2025", date(2025, 3, 15), true},
		{"year first slash", "2025/03/15", date(2025, 3, 15), true},
		{"ambiguous slash is day first", "04/05/2025", date(2025, 5, 4), true},
		{"unpadded day first slash", "5/3/2025", date(2025, 3, 5), true},
		{"month first falls back when day first is invalid", "03/15/2025", date(2025, 3, 15), true},
		{"rfc3339 keeps calendar date of its offset", "2025-03-15T23:30:00-05:00", date(2025, 3, 15), true},
		{"datetime with space", "2025-03-15 10:00:00", date(2025, 3, 15), true},
		{"unpadded iso", "2025-3-5", date(2025, 3, 5), true},
		{"long month name", "March 15, 2025", date(2025, 3, 15), true},
		{"short month name", "Mar 15, 2025", date(2025, 3, 15), true},
		{"day month year words", "15 March 2025", date(2025, 3, 15), true},
		{"year month", "2025-03", date(2025, 3, 1), true},
		{"invalid calendar iso", "2025-02-30", time.Time{}, false},
		{"invalid calendar slash", "31/02/2025", time.Time{}, false},
		{"invalid month year first", "2025/13/01", time.Time{}, false},
		{"two slash parts", "03/2025", time.Time{}, false},
		{"non numeric slash", "aa/bb/cccc", time.Time{}, false},
		{"garbage", "next sprint", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"blank", "   ", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.ParseFlexibleDate(tt.input)
			gt.Equal(t, ok, tt.wantOK)
			if tt.wantOK {
				gt.True(t, got.Equal(tt.want))
			}
		})
	}
}

func TestParseFlexibleDateRoundTrip(t *testing.T) {
	for d := date(1970, 1, 1); d.Before(date(2100, 1, 1)); d = d.AddDate(0, 0, 13) {
		got, ok := model.ParseFlexibleDate(d.Format(model.DateLayout))
		gt.True(t, ok)
		gt.True(t, got.Equal(d))
	}

	leap, ok := model.ParseFlexibleDate("2024-02-29")
	gt.True(t, ok)
	gt.True(t, leap.Equal(date(2024, 2, 29)))
}

func TestMonthHelpers(t *testing.T) {
	gt.True(t, model.StartOfMonth(date(2025, 3, 15)).Equal(date(2025, 3, 1)))
	gt.True(t, model.EndOfMonth(date(2025, 3, 15)).Equal(date(2025, 3, 31)))
	gt.True(t, model.EndOfMonth(date(2024, 2, 10)).Equal(date(2024, 2, 29)))
	gt.True(t, model.EndOfMonth(date(2025, 12, 1)).Equal(date(2025, 12, 31)))
}

func TestDaysBetween(t *testing.T) {
	gt.Equal(t, model.DaysBetween(date(2025, 1, 1), date(2025, 1, 10)), 9)
	gt.Equal(t, model.DaysBetween(date(2025, 1, 10), date(2025, 1, 1)), -9)
	gt.Equal(t, model.DaysBetween(date(2024, 1, 1), date(2025, 1, 1)), 366)

	// time of day and location are ignored
	tokyo := time.FixedZone("JST", 9*60*60)
	gt.Equal(t, model.DaysBetween(date(2025, 1, 1), time.Date(2025, 1, 2, 23, 59, 0, 0, tokyo)), 1)
}
