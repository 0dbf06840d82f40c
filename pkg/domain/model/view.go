package model

import (
	"time"

	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// Tooltip carries the values shown when hovering a bar
type Tooltip struct {
	Name              string  `json:"name"`
	Group             string  `json:"group"`
	Start             string  `json:"start"`
	End               string  `json:"end"`
	CompletionPercent float64 `json:"completionPercent"`
	RawCompletion     float64 `json:"rawCompletion"`
	SPI               float64 `json:"spi"`
}

// RenderItem is the render instruction for one bar
type RenderItem struct {
	ID             string               `json:"id,omitempty"`
	Name           string               `json:"name"`
	Group          string               `json:"group"`
	LeftPercent    float64              `json:"leftPercent"`
	WidthPercent   float64              `json:"widthPercent"`
	ColorBucket    types.ColorBucket    `json:"colorBucket"`
	StatusCategory types.StatusCategory `json:"statusCategory"`
	// ValidDates is false when a date failed to parse. The bar is then zero
	// sized and the presentation layer shows a fallback label instead.
	ValidDates bool    `json:"validDates"`
	Tooltip    Tooltip `json:"tooltip"`
}

// AxisView is the axis-level render instruction
type AxisView struct {
	Start              string   `json:"axisStart"`
	End                string   `json:"axisEnd"`
	TotalDays          int      `json:"totalDays"`
	MonthTicks         []string `json:"monthTicks"`
	TodayMarkerPercent *float64 `json:"todayMarkerPercent"`
}

// TimelineView is everything a presentation layer needs to draw a timeline
type TimelineView struct {
	Today   string       `json:"today"`
	Axis    AxisView     `json:"axis"`
	Items   []RenderItem `json:"items"`
	Dropped int          `json:"dropped"`
	// ScrollLeft is set when the caller supplied a measured viewport
	ScrollLeft *float64 `json:"scrollLeft,omitempty"`
}

// BuildView normalizes raw items and lays them out against today
func BuildView(raw []RawTimelineItem, today time.Time) *TimelineView {
	items, dropped := NormalizeAll(raw)
	view := LayoutItems(items, today)
	view.Dropped = dropped
	return view
}

// LayoutItems lays out already normalized items. Input order is preserved.
func LayoutItems(items []NormalizedTimelineItem, today time.Time) *TimelineView {
	axis := ComputeAxis(items, today)

	ticks := make([]string, 0, len(axis.MonthTicks))
	for _, t := range axis.MonthTicks {
		ticks = append(ticks, t.Format(DateLayout))
	}

	view := &TimelineView{
		Today: CalendarDate(today).Format(DateLayout),
		Axis: AxisView{
			Start:      axis.Start.Format(DateLayout),
			End:        axis.End.Format(DateLayout),
			TotalDays:  axis.TotalDays,
			MonthTicks: ticks,
		},
		Items: make([]RenderItem, 0, len(items)),
	}

	if marker, ok := TodayMarkerPercent(axis, today); ok {
		view.Axis.TodayMarkerPercent = &marker
	}

	for _, item := range items {
		_, okStart := ParseFlexibleDate(item.StartRaw)
		_, okEnd := ParseFlexibleDate(item.EndRaw)
		bar := PositionBar(item, axis)

		view.Items = append(view.Items, RenderItem{
			ID:             item.ID,
			Name:           item.Name,
			Group:          item.Group,
			LeftPercent:    bar.LeftPercent,
			WidthPercent:   bar.WidthPercent,
			ColorBucket:    item.ColorBucket(),
			StatusCategory: item.StatusCategory,
			ValidDates:     okStart && okEnd,
			Tooltip: Tooltip{
				Name:              item.Name,
				Group:             item.Group,
				Start:             item.StartRaw,
				End:               item.EndRaw,
				CompletionPercent: item.CompletionPercent,
				RawCompletion:     item.RawCompletion,
				SPI:               item.SPI,
			},
		})
	}

	return view
}

// ApplyViewport sets the scroll offset that centers the today marker. It is a
// no-op when the viewport is not measured or the view has no marker.
func (v *TimelineView) ApplyViewport(vp Viewport) {
	if v.Axis.TodayMarkerPercent == nil || !vp.IsMeasured() {
		return
	}
	left := ScrollLeft(*v.Axis.TodayMarkerPercent, vp)
	v.ScrollLeft = &left
}
