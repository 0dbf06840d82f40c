package model_test

import (
	"math"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
)

func item(start, end string) model.NormalizedTimelineItem {
	return model.NormalizedTimelineItem{Name: start + ".." + end, StartRaw: start, EndRaw: end}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 0.05
}

func TestComputeAxis(t *testing.T) {
	t.Run("single month when items and today share it", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("2025-01-10", "2025-01-20"),
		}, date(2025, 1, 15))

		gt.True(t, axis.Start.Equal(date(2025, 1, 1)))
		gt.True(t, axis.End.Equal(date(2025, 1, 31)))
		gt.Equal(t, axis.TotalDays, 31)
		gt.Equal(t, len(axis.MonthTicks), 1)
		gt.True(t, axis.MonthTicks[0].Equal(date(2025, 1, 1)))
	})

	t.Run("spans items across months and mixed formats", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("15/03/2025", "2025/05/02"),
			item("2025-04-01", "2025-04-30"),
		}, date(2025, 4, 10))

		gt.True(t, axis.Start.Equal(date(2025, 3, 1)))
		gt.True(t, axis.End.Equal(date(2025, 5, 31)))
		gt.Equal(t, axis.TotalDays, 31+30+31)
		gt.Equal(t, len(axis.MonthTicks), 3)
		gt.True(t, axis.MonthTicks[2].Equal(date(2025, 5, 1)))
	})

	t.Run("extends to the current month when all items are in the past", func(t *testing.T) {
		today := date(2025, 9, 20)
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("2025-01-10", "2025-02-20"),
		}, today)

		gt.True(t, axis.Start.Equal(date(2025, 1, 1)))
		gt.True(t, !axis.End.Before(model.EndOfMonth(today)))
		gt.True(t, axis.End.Equal(date(2025, 9, 30)))
		gt.Equal(t, len(axis.MonthTicks), 9)
	})

	t.Run("extends back to the current month when all items are in the future", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("2026-03-01", "2026-04-15"),
		}, date(2025, 12, 5))

		gt.True(t, axis.Start.Equal(date(2025, 12, 1)))
		gt.True(t, axis.End.Equal(date(2026, 4, 30)))
	})

	t.Run("ignores unparseable dates", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("TBD", "2025-02-10"),
			item("2025-01-05", "someday"),
		}, date(2025, 1, 20))

		gt.True(t, axis.Start.Equal(date(2025, 1, 1)))
		gt.True(t, axis.End.Equal(date(2025, 2, 28)))
		gt.Equal(t, axis.TotalDays, 59)
	})

	t.Run("degenerates without any parseable date", func(t *testing.T) {
		today := time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)
		for _, items := range [][]model.NormalizedTimelineItem{
			nil,
			{item("TBD", "later")},
		} {
			axis := model.ComputeAxis(items, today)
			gt.True(t, axis.IsDegenerate())
			gt.Equal(t, axis.TotalDays, 0)
			gt.Equal(t, len(axis.MonthTicks), 0)
			gt.True(t, axis.Start.Equal(date(2025, 6, 3)))
			gt.True(t, axis.End.Equal(date(2025, 6, 3)))
		}
	})
}

func TestPositionBar(t *testing.T) {
	t.Run("positions within a one month axis", func(t *testing.T) {
		a := item("2025-01-10", "2025-01-20")
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{a}, date(2025, 1, 15))

		bar := model.PositionBar(a, axis)
		gt.True(t, near(bar.LeftPercent, 29.0))
		gt.True(t, near(bar.WidthPercent, 32.3))
		gt.True(t, near(bar.LeftPercent, 9.0/31*100))
		gt.True(t, near(bar.WidthPercent, 10.0/31*100))
	})

	t.Run("starts at zero on the first day of the axis", func(t *testing.T) {
		a := item("2025-01-01", "2025-01-31")
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{a}, date(2025, 1, 15))

		bar := model.PositionBar(a, axis)
		gt.Equal(t, bar.LeftPercent, 0.0)
		gt.True(t, near(bar.WidthPercent, 30.0/31*100))
		gt.True(t, bar.LeftPercent+bar.WidthPercent <= 100)
	})

	t.Run("end before start yields zero width", func(t *testing.T) {
		a := item("2025-01-20", "2025-01-10")
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{a}, date(2025, 1, 15))

		bar := model.PositionBar(a, axis)
		gt.Equal(t, bar.WidthPercent, 0.0)
		gt.True(t, bar.LeftPercent > 0)
	})

	t.Run("zero bar for unparseable dates", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("2025-01-01", "2025-01-31"),
		}, date(2025, 1, 15))

		bar := model.PositionBar(item("TBD", "2025-01-20"), axis)
		gt.Equal(t, bar, model.RenderBar{})
	})

	t.Run("zero bar on a degenerate axis", func(t *testing.T) {
		axis := model.ComputeAxis(nil, date(2025, 1, 15))
		bar := model.PositionBar(item("2025-01-10", "2025-01-20"), axis)
		gt.Equal(t, bar, model.RenderBar{})
	})

	t.Run("never overflows a stale axis", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("2025-01-01", "2025-01-31"),
		}, date(2025, 1, 15))

		bar := model.PositionBar(item("2025-01-20", "2025-03-31"), axis)
		gt.True(t, bar.LeftPercent+bar.WidthPercent <= 100+1e-9)

		bar = model.PositionBar(item("2025-06-01", "2025-06-30"), axis)
		gt.Equal(t, bar.LeftPercent, 100.0)
		gt.Equal(t, bar.WidthPercent, 0.0)

		bar = model.PositionBar(item("2024-12-01", "2025-01-05"), axis)
		gt.Equal(t, bar.LeftPercent, 0.0)
	})
}

func TestTodayMarkerPercent(t *testing.T) {
	t.Run("inside the axis", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("2025-01-10", "2025-01-20"),
		}, date(2025, 1, 15))

		p, ok := model.TodayMarkerPercent(axis, date(2025, 1, 15))
		gt.True(t, ok)
		gt.True(t, near(p, 14.0/31*100))
	})

	t.Run("ignores time of day", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("2025-01-10", "2025-01-20"),
		}, date(2025, 1, 15))

		p, ok := model.TodayMarkerPercent(axis, time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC))
		gt.True(t, ok)
		gt.Equal(t, p, 0.0)
	})

	t.Run("items entirely in the future pin the marker to zero", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("2026-03-01", "2026-04-15"),
		}, date(2026, 3, 1))

		p, ok := model.TodayMarkerPercent(axis, date(2026, 1, 10))
		gt.True(t, ok)
		gt.Equal(t, p, 0.0)
	})

	t.Run("items entirely in the past pin the marker to 100", func(t *testing.T) {
		axis := model.ComputeAxis([]model.NormalizedTimelineItem{
			item("2024-03-01", "2024-04-15"),
		}, date(2024, 4, 1))

		p, ok := model.TodayMarkerPercent(axis, date(2025, 1, 10))
		gt.True(t, ok)
		gt.Equal(t, p, 100.0)
	})

	t.Run("no marker on a degenerate axis", func(t *testing.T) {
		axis := model.ComputeAxis(nil, date(2025, 1, 15))
		_, ok := model.TodayMarkerPercent(axis, date(2025, 1, 15))
		gt.False(t, ok)
	})

	t.Run("axis built for today always brackets today", func(t *testing.T) {
		today := date(2025, 8, 31)
		for _, items := range [][]model.NormalizedTimelineItem{
			{item("2020-01-01", "2020-02-01")},
			{item("2030-01-01", "2030-02-01")},
			{item("2025-08-01", "2025-08-31")},
		} {
			axis := model.ComputeAxis(items, today)
			gt.True(t, !axis.Start.After(model.StartOfMonth(today)))
			gt.True(t, !axis.End.Before(model.StartOfMonth(today)))

			p, ok := model.TodayMarkerPercent(axis, today)
			gt.True(t, ok)
			gt.True(t, p > 0 && p < 100)
		}
	})
}
