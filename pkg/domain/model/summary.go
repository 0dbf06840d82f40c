package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// KPI holds the headline metrics of a set of items
type KPI struct {
	Total             int                       `json:"total"`
	Buckets           map[types.ColorBucket]int `json:"buckets"`
	AverageCompletion float64                   `json:"averageCompletion"`
	AverageSPI        float64                   `json:"averageSpi"`
	BehindSchedule    int                       `json:"behindSchedule"`
}

// GroupKPI is the KPI of one squad/team
type GroupKPI struct {
	Group string `json:"group"`
	KPI
}

// Summary is the KPI card data of a source
type Summary struct {
	KPI
	Groups []GroupKPI `json:"groups"`
}

type kpiAccumulator struct {
	total      int
	buckets    map[types.ColorBucket]int
	completion float64
	spi        float64
	behind     int
}

func newKPIAccumulator() *kpiAccumulator {
	buckets := make(map[types.ColorBucket]int, len(types.AllColorBuckets))
	for _, b := range types.AllColorBuckets {
		buckets[b] = 0
	}
	return &kpiAccumulator{buckets: buckets}
}

func (a *kpiAccumulator) add(item NormalizedTimelineItem) {
	a.total++
	a.buckets[item.ColorBucket()]++
	a.completion += item.CompletionPercent
	a.spi += item.SPI
	if item.SPI < 1 {
		a.behind++
	}
}

func (a *kpiAccumulator) kpi() KPI {
	k := KPI{
		Total:          a.total,
		Buckets:        a.buckets,
		BehindSchedule: a.behind,
	}
	if a.total > 0 {
		k.AverageCompletion = a.completion / float64(a.total)
		k.AverageSPI = a.spi / float64(a.total)
	}
	return k
}

// Summarize computes overall and per-group KPIs. Groups are sorted by name.
func Summarize(items []NormalizedTimelineItem) Summary {
	overall := newKPIAccumulator()
	groups := make(map[string]*kpiAccumulator)

	for _, item := range items {
		overall.add(item)
		acc, ok := groups[item.Group]
		if !ok {
			acc = newKPIAccumulator()
			groups[item.Group] = acc
		}
		acc.add(item)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	summary := Summary{
		KPI:    overall.kpi(),
		Groups: make([]GroupKPI, 0, len(names)),
	}
	for _, name := range names {
		summary.Groups = append(summary.Groups, GroupKPI{Group: name, KPI: groups[name].kpi()})
	}

	return summary
}

// NeedsAttention returns at-risk and not-started items that are either past
// their end date or behind schedule (SPI below 1).
func NeedsAttention(items []NormalizedTimelineItem, today time.Time) []NormalizedTimelineItem {
	day := CalendarDate(today)
	var result []NormalizedTimelineItem

	for _, item := range items {
		bucket := item.ColorBucket()
		if bucket != types.BucketAtRisk && bucket != types.BucketNotStarted {
			continue
		}

		overdue := false
		if end, ok := ParseFlexibleDate(item.EndRaw); ok && end.Before(day) {
			overdue = true
		}
		if overdue || item.SPI < 1 {
			result = append(result, item)
		}
	}

	return result
}
