package model

import (
	"strings"

	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// Completion is the resolved progress of an item
type Completion struct {
	// Percent is clamped to [0, 100]
	Percent float64
	// Raw is the value before clamping, shown in tooltips
	Raw      float64
	Category types.StatusCategory
}

func newCompletion(v float64, category types.StatusCategory) Completion {
	return Completion{
		Percent:  ClampPercent(v),
		Raw:      v,
		Category: category,
	}
}

type matchKind int

const (
	matchExact matchKind = iota
	matchContains
)

type vocabularyTerm struct {
	kind matchKind
	term string
}

func exact(term string) vocabularyTerm    { return vocabularyTerm{kind: matchExact, term: term} }
func contains(term string) vocabularyTerm { return vocabularyTerm{kind: matchContains, term: term} }

func (v vocabularyTerm) matches(status string) bool {
	switch v.kind {
	case matchExact:
		return status == v.term
	case matchContains:
		return strings.Contains(status, v.term)
	default:
		return false
	}
}

type statusRule struct {
	category types.StatusCategory
	percent  float64
	terms    []vocabularyTerm
}

// statusVocabulary is checked top to bottom against the lower-cased status.
// Order matters: "not completed" hits the complete rule before anything else.
var statusVocabulary = []statusRule{
	{
		category: types.StatusComplete,
		percent:  100,
		terms:    []vocabularyTerm{exact("complete"), contains("done"), contains("completed")},
	},
	{
		category: types.StatusOnTime,
		percent:  75,
		terms:    []vocabularyTerm{exact("early"), exact("on time")},
	},
	{
		category: types.StatusDelayed,
		percent:  50,
		terms:    []vocabularyTerm{exact("delay"), exact("delayed")},
	},
	{
		category: types.StatusInProgress,
		percent:  25,
		terms:    []vocabularyTerm{exact("incomplete"), contains("progress")},
	},
}

// ResolveCompletion reads the completion of a raw item. A numeric "completion"
// field always wins over "status"; the two are never reconciled.
func ResolveCompletion(raw RawTimelineItem) Completion {
	if v, ok := raw.Number("completion"); ok {
		return newCompletion(v, types.StatusNumeric)
	}

	status, ok := raw.Text("status")
	if !ok {
		return Completion{Category: types.StatusUnknown}
	}
	return ClassifyStatus(status)
}

// ClassifyStatus maps a free-text status to a completion estimate
func ClassifyStatus(status string) Completion {
	s := strings.ToLower(strings.TrimSpace(status))

	for _, rule := range statusVocabulary {
		for _, term := range rule.terms {
			if term.matches(s) {
				return newCompletion(rule.percent, rule.category)
			}
		}
	}

	if v, ok := parseNumber(s); ok {
		return newCompletion(v, types.StatusNumeric)
	}

	return Completion{Category: types.StatusUnknown}
}

// ClampPercent limits v to [0, 100]
func ClampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// ColorBucketOf returns the display bucket for a completion percentage
func ColorBucketOf(percent float64) types.ColorBucket {
	switch {
	case percent >= 90:
		return types.BucketComplete
	case percent >= 50:
		return types.BucketOnTrack
	case percent > 0:
		return types.BucketAtRisk
	default:
		return types.BucketNotStarted
	}
}
