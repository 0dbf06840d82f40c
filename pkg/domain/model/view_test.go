package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

func TestBuildView(t *testing.T) {
	t.Run("end to end single initiative", func(t *testing.T) {
		view := model.BuildView([]model.RawTimelineItem{
			{"initiative": "A", "start": "2025-01-10", "delivery": "2025-01-20", "completion": 50},
		}, date(2025, 1, 15))

		gt.Equal(t, view.Today, "2025-01-15")
		gt.Equal(t, view.Axis.Start, "2025-01-01")
		gt.Equal(t, view.Axis.End, "2025-01-31")
		gt.Equal(t, view.Axis.TotalDays, 31)
		gt.Equal(t, view.Axis.MonthTicks, []string{"2025-01-01"})
		gt.V(t, view.Axis.TodayMarkerPercent).NotNil()
		gt.Equal(t, view.Dropped, 0)

		gt.Equal(t, len(view.Items), 1)
		a := view.Items[0]
		gt.Equal(t, a.Name, "A")
		gt.Equal(t, a.Group, "Unassigned")
		gt.True(t, near(a.LeftPercent, 29.0))
		gt.True(t, near(a.WidthPercent, 32.3))
		gt.Equal(t, a.ColorBucket, types.BucketOnTrack)
		gt.Equal(t, a.StatusCategory, types.StatusNumeric)
		gt.True(t, a.ValidDates)
		gt.Equal(t, a.Tooltip.Start, "2025-01-10")
		gt.Equal(t, a.Tooltip.End, "2025-01-20")
		gt.Equal(t, a.Tooltip.SPI, 1.0)
	})

	t.Run("drops items without dates and flags invalid dates", func(t *testing.T) {
		view := model.BuildView([]model.RawTimelineItem{
			{"name": "no dates", "status": "Done"},
			{"name": "bad", "start": "TBD", "end": "2025-02-01", "status": "Delay"},
			{"name": "good", "start": "01/02/2025", "end": "2025/02/20", "status": "Complete"},
		}, date(2025, 2, 10))

		gt.Equal(t, view.Dropped, 1)
		gt.Equal(t, len(view.Items), 2)

		bad := view.Items[0]
		gt.Equal(t, bad.Name, "bad")
		gt.False(t, bad.ValidDates)
		gt.Equal(t, bad.LeftPercent, 0.0)
		gt.Equal(t, bad.WidthPercent, 0.0)
		gt.Equal(t, bad.ColorBucket, types.BucketOnTrack)

		good := view.Items[1]
		gt.True(t, good.ValidDates)
		gt.Equal(t, good.ColorBucket, types.BucketComplete)
		gt.Equal(t, good.LeftPercent, 0.0)
	})

	t.Run("clamps completion for display and keeps raw value", func(t *testing.T) {
		view := model.BuildView([]model.RawTimelineItem{
			{"name": "over", "start": "2025-01-01", "end": "2025-01-02", "completion": 130},
		}, date(2025, 1, 1))

		gt.Equal(t, view.Items[0].Tooltip.CompletionPercent, 100.0)
		gt.Equal(t, view.Items[0].Tooltip.RawCompletion, 130.0)
		gt.Equal(t, view.Items[0].ColorBucket, types.BucketComplete)
	})

	t.Run("empty input renders nothing without failing", func(t *testing.T) {
		view := model.BuildView(nil, date(2025, 1, 15))
		gt.Equal(t, view.Axis.TotalDays, 0)
		gt.Equal(t, view.Axis.Start, "2025-01-15")
		gt.Equal(t, view.Axis.End, "2025-01-15")
		gt.V(t, view.Axis.TodayMarkerPercent).Nil()
		gt.Equal(t, len(view.Items), 0)

		data, err := json.Marshal(view)
		gt.NoError(t, err)
		gt.S(t, string(data)).Contains(`"todayMarkerPercent":null`)
		gt.S(t, string(data)).Contains(`"items":[]`)
		gt.S(t, string(data)).Contains(`"monthTicks":[]`)
	})
}

func TestApplyViewport(t *testing.T) {
	view := model.BuildView([]model.RawTimelineItem{
		{"name": "A", "start": "2025-01-01", "end": "2025-03-31"},
	}, date(2025, 2, 15))

	view.ApplyViewport(model.Viewport{})
	gt.V(t, view.ScrollLeft).Nil()

	view.ApplyViewport(model.Viewport{RenderedWidth: 3000, ViewportWidth: 1000})
	gt.V(t, view.ScrollLeft).NotNil()
	expected := *view.Axis.TodayMarkerPercent/100*3000 - 500
	gt.True(t, near(*view.ScrollLeft, expected))

	empty := model.BuildView(nil, date(2025, 2, 15))
	empty.ApplyViewport(model.Viewport{RenderedWidth: 3000, ViewportWidth: 1000})
	gt.V(t, empty.ScrollLeft).Nil()
}
