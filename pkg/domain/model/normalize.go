package model

import (
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// NormalizedTimelineItem is an item in canonical shape. StartRaw and EndRaw
// are never empty, though they may still fail to parse as dates.
type NormalizedTimelineItem struct {
	ID                string
	Name              string
	Group             string
	StartRaw          string
	EndRaw            string
	CompletionPercent float64
	RawCompletion     float64
	StatusCategory    types.StatusCategory
	SPI               float64
}

// ColorBucket returns the display bucket of the item
func (x NormalizedTimelineItem) ColorBucket() types.ColorBucket {
	return ColorBucketOf(x.CompletionPercent)
}

// Normalize converts a raw item. ok is false when the start or end date is missing.
func Normalize(raw RawTimelineItem) (*NormalizedTimelineItem, bool) {
	start := startPolicy.resolve(raw)
	end := endPolicy.resolve(raw)
	if start == "" || end == "" {
		return nil, false
	}

	completion := ResolveCompletion(raw)

	spi := 1.0
	if v, ok := raw.Number("spi"); ok {
		spi = v
	}

	id, _ := raw.Text("id")

	return &NormalizedTimelineItem{
		ID:                id,
		Name:              namePolicy.resolve(raw),
		Group:             groupPolicy.resolve(raw),
		StartRaw:          start,
		EndRaw:            end,
		CompletionPercent: completion.Percent,
		RawCompletion:     completion.Raw,
		StatusCategory:    completion.Category,
		SPI:               spi,
	}, true
}

// NormalizeAll normalizes items in order and reports how many were dropped
func NormalizeAll(raw []RawTimelineItem) ([]NormalizedTimelineItem, int) {
	items := make([]NormalizedTimelineItem, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		item, ok := Normalize(r)
		if !ok {
			dropped++
			continue
		}
		items = append(items, *item)
	}
	return items, dropped
}
