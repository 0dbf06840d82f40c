package model

import (
	"time"
)

// DateAxis is the shared date range all bars of a timeline are positioned against
type DateAxis struct {
	Start time.Time
	End   time.Time
	// TotalDays counts both Start and End. Zero means nothing is renderable.
	TotalDays  int
	MonthTicks []time.Time
}

// IsDegenerate reports whether the axis was built from an item set without any parseable date
func (a DateAxis) IsDegenerate() bool {
	return a.TotalDays == 0
}

// RenderBar is the horizontal placement of one item, in percent of the axis
type RenderBar struct {
	LeftPercent  float64
	WidthPercent float64
}

// ComputeAxis derives the date axis of items. The axis always covers the month
// of today, so the today marker stays on-axis even when no item overlaps it.
// Unparseable dates are ignored here; PositionBar renders such items as zero bars.
func ComputeAxis(items []NormalizedTimelineItem, today time.Time) DateAxis {
	var minDate, maxDate time.Time
	found := false

	for _, item := range items {
		for _, raw := range []string{item.StartRaw, item.EndRaw} {
			d, ok := ParseFlexibleDate(raw)
			if !ok {
				continue
			}
			if !found || d.Before(minDate) {
				minDate = d
			}
			if !found || d.After(maxDate) {
				maxDate = d
			}
			found = true
		}
	}

	day := CalendarDate(today)
	if !found {
		return DateAxis{
			Start:      day,
			End:        day,
			TotalDays:  0,
			MonthTicks: []time.Time{},
		}
	}

	start := StartOfMonth(minDate)
	if todayStart := StartOfMonth(day); todayStart.Before(start) {
		start = todayStart
	}
	end := EndOfMonth(maxDate)
	if todayEnd := EndOfMonth(day); todayEnd.After(end) {
		end = todayEnd
	}

	return DateAxis{
		Start:      start,
		End:        end,
		TotalDays:  DaysBetween(start, end) + 1,
		MonthTicks: monthTicks(start, end),
	}
}

func monthTicks(start, end time.Time) []time.Time {
	ticks := []time.Time{}
	for t := StartOfMonth(start); !t.After(end); t = t.AddDate(0, 1, 0) {
		ticks = append(ticks, t)
	}
	return ticks
}

// PositionBar places an item on the axis. Items with an unparseable date and
// degenerate axes yield a zero bar. The bar never extends past 100%.
func PositionBar(item NormalizedTimelineItem, axis DateAxis) RenderBar {
	start, okStart := ParseFlexibleDate(item.StartRaw)
	end, okEnd := ParseFlexibleDate(item.EndRaw)
	if !okStart || !okEnd || axis.IsDegenerate() {
		return RenderBar{}
	}

	total := float64(axis.TotalDays)
	offsetDays := DaysBetween(axis.Start, start)
	durationDays := DaysBetween(start, end)

	left := max(0, float64(offsetDays)/total*100)
	width := max(0, float64(durationDays)/total*100)
	if left > 100 {
		left = 100
	}
	if left+width > 100 {
		width = 100 - left
	}

	return RenderBar{LeftPercent: left, WidthPercent: width}
}

// TodayMarkerPercent returns where today falls on the axis. ok is false for a
// degenerate axis. Dates before or after the axis pin to 0 or 100; that only
// happens when the axis was built for a different day.
func TodayMarkerPercent(axis DateAxis, today time.Time) (float64, bool) {
	if axis.IsDegenerate() {
		return 0, false
	}

	day := CalendarDate(today)
	switch {
	case day.Before(axis.Start):
		return 0, true
	case day.After(axis.End):
		return 100, true
	}

	return ClampPercent(float64(DaysBetween(axis.Start, day)) / float64(axis.TotalDays) * 100), true
}
