package types

// StatusCategory is the canonical category an item's progress representation resolved to
type StatusCategory string

const (
	StatusComplete   StatusCategory = "complete"
	StatusOnTime     StatusCategory = "on-time"
	StatusDelayed    StatusCategory = "delayed"
	StatusInProgress StatusCategory = "in-progress"
	// StatusNumeric means the completion came from a number rather than a label
	StatusNumeric StatusCategory = "numeric"
	StatusUnknown StatusCategory = "unknown"
)

// String returns the string representation of the category
func (s StatusCategory) String() string {
	return string(s)
}

// IsValid checks if the category is valid
func (s StatusCategory) IsValid() bool {
	switch s {
	case StatusComplete, StatusOnTime, StatusDelayed, StatusInProgress, StatusNumeric, StatusUnknown:
		return true
	default:
		return false
	}
}

// ColorBucket is the display bucket of a timeline bar
type ColorBucket string

const (
	BucketComplete   ColorBucket = "complete"
	BucketOnTrack    ColorBucket = "on-track"
	BucketAtRisk     ColorBucket = "at-risk"
	BucketNotStarted ColorBucket = "not-started"
)

// AllColorBuckets lists buckets in display order
var AllColorBuckets = []ColorBucket{BucketComplete, BucketOnTrack, BucketAtRisk, BucketNotStarted}

// String returns the string representation of the bucket
func (b ColorBucket) String() string {
	return string(b)
}

// IsValid checks if the bucket is valid
func (b ColorBucket) IsValid() bool {
	switch b {
	case BucketComplete, BucketOnTrack, BucketAtRisk, BucketNotStarted:
		return true
	default:
		return false
	}
}
