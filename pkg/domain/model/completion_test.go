package model_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

func TestResolveCompletion(t *testing.T) {
	tests := []struct {
		name     string
		raw      model.RawTimelineItem
		percent  float64
		rawValue float64
		category types.StatusCategory
	}{
		{"numeric completion", model.RawTimelineItem{"completion": 40.0}, 40, 40, types.StatusNumeric},
		{"numeric completion wins over status", model.RawTimelineItem{"completion": 40, "status": "Complete"}, 40, 40, types.StatusNumeric},
		{"numeric string completion", model.RawTimelineItem{"completion": "65"}, 65, 65, types.StatusNumeric},
		{"percent string completion", model.RawTimelineItem{"completion": "65%"}, 65, 65, types.StatusNumeric},
		{"json number completion", model.RawTimelineItem{"completion": json.Number("12.5")}, 12.5, 12.5, types.StatusNumeric},
		{"unparseable completion falls back to status", model.RawTimelineItem{"completion": "n/a", "status": "Delayed"}, 50, 50, types.StatusDelayed},
		{"non finite completion falls back to status", model.RawTimelineItem{"completion": math.NaN(), "status": "early"}, 75, 75, types.StatusOnTime},
		{"over 100 is clamped but kept raw", model.RawTimelineItem{"completion": 120}, 100, 120, types.StatusNumeric},
		{"negative is clamped", model.RawTimelineItem{"completion": -5}, 0, -5, types.StatusNumeric},
		{"complete", model.RawTimelineItem{"status": "Complete"}, 100, 100, types.StatusComplete},
		{"contains done", model.RawTimelineItem{"status": "Done ✅"}, 100, 100, types.StatusComplete},
		{"contains completed", model.RawTimelineItem{"status": "Completed late"}, 100, 100, types.StatusComplete},
		{"early", model.RawTimelineItem{"status": " EARLY "}, 75, 75, types.StatusOnTime},
		{"on time", model.RawTimelineItem{"status": "On Time"}, 75, 75, types.StatusOnTime},
		{"delay", model.RawTimelineItem{"status": "Delay"}, 50, 50, types.StatusDelayed},
		{"delayed", model.RawTimelineItem{"status": "delayed"}, 50, 50, types.StatusDelayed},
		{"incomplete", model.RawTimelineItem{"status": "Incomplete"}, 25, 25, types.StatusInProgress},
		{"contains progress", model.RawTimelineItem{"status": "In Progress"}, 25, 25, types.StatusInProgress},
		{"numeric status", model.RawTimelineItem{"status": "60"}, 60, 60, types.StatusNumeric},
		{"numeric status value", model.RawTimelineItem{"status": 30}, 30, 30, types.StatusNumeric},
		{"unknown vocabulary", model.RawTimelineItem{"status": "unknown-garbage"}, 0, 0, types.StatusUnknown},
		{"early is exact only", model.RawTimelineItem{"status": "early access"}, 0, 0, types.StatusUnknown},
		{"blank status", model.RawTimelineItem{"status": "  "}, 0, 0, types.StatusUnknown},
		{"nothing", model.RawTimelineItem{}, 0, 0, types.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := model.ResolveCompletion(tt.raw)
			gt.Equal(t, c.Percent, tt.percent)
			gt.Equal(t, c.Raw, tt.rawValue)
			gt.Equal(t, c.Category, tt.category)
		})
	}
}

func TestColorBucketOf(t *testing.T) {
	tests := []struct {
		percent float64
		want    types.ColorBucket
	}{
		{100, types.BucketComplete},
		{90, types.BucketComplete},
		{89.9, types.BucketOnTrack},
		{50, types.BucketOnTrack},
		{49.9, types.BucketAtRisk},
		{0.1, types.BucketAtRisk},
		{0, types.BucketNotStarted},
	}

	for _, tt := range tests {
		gt.Equal(t, model.ColorBucketOf(tt.percent), tt.want)
	}
}

func TestClampPercent(t *testing.T) {
	gt.Equal(t, model.ClampPercent(-1), 0.0)
	gt.Equal(t, model.ClampPercent(42), 42.0)
	gt.Equal(t, model.ClampPercent(101), 100.0)
}
