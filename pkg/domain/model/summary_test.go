package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

func TestSummarize(t *testing.T) {
	items, _ := model.NormalizeAll([]model.RawTimelineItem{
		{"name": "A", "squad": "Payments", "start": "2025-01-01", "end": "2025-01-31", "status": "Complete", "spi": 1.1},
		{"name": "B", "squad": "Payments", "start": "2025-01-01", "end": "2025-02-28", "completion": 30, "spi": 0.7},
		{"name": "C", "squad": "Discovery", "start": "2025-02-01", "end": "2025-03-31", "status": "on time"},
		{"name": "D", "start": "2025-02-01", "end": "2025-03-31"},
	})

	summary := model.Summarize(items)
	gt.Equal(t, summary.Total, 4)
	gt.Equal(t, summary.Buckets[types.BucketComplete], 1)
	gt.Equal(t, summary.Buckets[types.BucketOnTrack], 1)
	gt.Equal(t, summary.Buckets[types.BucketAtRisk], 1)
	gt.Equal(t, summary.Buckets[types.BucketNotStarted], 1)
	gt.True(t, near(summary.AverageCompletion, (100+30+75+0)/4.0))
	gt.True(t, near(summary.AverageSPI, (1.1+0.7+1+1)/4))
	gt.Equal(t, summary.BehindSchedule, 1)

	gt.Equal(t, len(summary.Groups), 3)
	gt.Equal(t, summary.Groups[0].Group, "Discovery")
	gt.Equal(t, summary.Groups[1].Group, "Payments")
	gt.Equal(t, summary.Groups[2].Group, "Unassigned")
	gt.Equal(t, summary.Groups[1].Total, 2)
	gt.True(t, near(summary.Groups[1].AverageCompletion, 65))
	gt.Equal(t, summary.Groups[1].BehindSchedule, 1)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := model.Summarize(nil)
	gt.Equal(t, summary.Total, 0)
	gt.Equal(t, summary.AverageCompletion, 0.0)
	gt.Equal(t, len(summary.Buckets), len(types.AllColorBuckets))
	gt.Equal(t, len(summary.Groups), 0)
}

func TestNeedsAttention(t *testing.T) {
	items, _ := model.NormalizeAll([]model.RawTimelineItem{
		{"name": "overdue at risk", "start": "2025-01-01", "end": "2025-01-31", "completion": 20},
		{"name": "not started behind", "start": "2025-03-01", "end": "2025-04-30", "spi": 0.5},
		{"name": "at risk but fine", "start": "2025-02-01", "end": "2025-04-30", "completion": 20},
		{"name": "overdue but on track", "start": "2025-01-01", "end": "2025-01-31", "completion": 60},
		{"name": "unparseable end", "start": "2025-01-01", "end": "TBD", "completion": 10},
	})

	result := model.NeedsAttention(items, date(2025, 2, 15))
	gt.Equal(t, len(result), 2)
	gt.Equal(t, result[0].Name, "overdue at risk")
	gt.Equal(t, result[1].Name, "not started behind")
}
