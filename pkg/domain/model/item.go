package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// RawTimelineItem is a loosely-typed record as delivered by an upstream view.
// Field names differ between sources; see the field policies below.
type RawTimelineItem map[string]any

// Text returns the trimmed textual form of a field. The second return value is
// false when the field is absent or blank.
func (r RawTimelineItem) Text(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s := strings.TrimSpace(textOf(v))
	return s, s != ""
}

// Number returns a field as a finite float64. Numeric strings are accepted.
func (r RawTimelineItem) Number(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	return numberOf(v)
}

func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(DateLayout)
	case *time.Time:
		if x == nil || x.IsZero() {
			return ""
		}
		return x.Format(DateLayout)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func numberOf(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case int32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		return parseNumber(x)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseNumber parses a numeric string. A trailing percent sign is allowed.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// fieldAccessor reads one candidate representation of a logical attribute
type fieldAccessor func(RawTimelineItem) (string, bool)

func field(key string) fieldAccessor {
	return func(r RawTimelineItem) (string, bool) {
		return r.Text(key)
	}
}

// fieldPolicy resolves a logical attribute by trying accessors in order.
// The first non-empty value wins.
type fieldPolicy struct {
	accessors []fieldAccessor
	fallback  string
}

func newFieldPolicy(fallback string, keys ...string) fieldPolicy {
	p := fieldPolicy{fallback: fallback}
	for _, k := range keys {
		p.accessors = append(p.accessors, field(k))
	}
	return p
}

func (p fieldPolicy) resolve(r RawTimelineItem) string {
	for _, get := range p.accessors {
		if v, ok := get(r); ok {
			return v
		}
	}
	return p.fallback
}

var (
	namePolicy  = newFieldPolicy("Unknown", "initiative", "name", "title")
	groupPolicy = newFieldPolicy("Unassigned", "squad", "team", "group")
	startPolicy = newFieldPolicy("", "start", "startDate", "begin")
	endPolicy   = newFieldPolicy("", "delivery", "endDate", "expectedDate", "end", "dueDate")
)

// TimelineRecord is a raw item as stored for a source
type TimelineRecord struct {
	ID         types.ItemID
	Source     types.SourceID
	Seq        int // position within the source, preserves import order
	Fields     RawTimelineItem
	ImportedAt time.Time
}

// NewTimelineRecords wraps raw items of a source into records. Items carrying
// an "id" field keep it, others get a new ID. Sequence numbers start at firstSeq.
func NewTimelineRecords(source types.SourceID, items []RawTimelineItem, firstSeq int, now time.Time) []*TimelineRecord {
	records := make([]*TimelineRecord, 0, len(items))
	for i, item := range items {
		id := types.NewItemID()
		if v, ok := item.Text("id"); ok {
			id = types.ItemID(v)
		}
		records = append(records, &TimelineRecord{
			ID:         id,
			Source:     source,
			Seq:        firstSeq + i,
			Fields:     item,
			ImportedAt: now,
		})
	}
	return records
}
