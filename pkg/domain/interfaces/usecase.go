package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// ViewOptions narrows and tunes a timeline view
type ViewOptions struct {
	// Today overrides the clock when non-zero
	Today time.Time
	// Group keeps only items of this squad/team when non-empty
	Group string
	// Viewport enables the scroll hint when measured
	Viewport model.Viewport
}

// Timeline defines timeline use case operations
type Timeline interface {
	Import(ctx context.Context, source types.SourceID, items []model.RawTimelineItem, replace bool) (int, error)
	Sources(ctx context.Context) ([]types.SourceID, error)
	View(ctx context.Context, source types.SourceID, opts ViewOptions) (*model.TimelineView, error)
	Summary(ctx context.Context, source types.SourceID) (*model.Summary, error)
	Delete(ctx context.Context, source types.SourceID) error
}

// Digest defines the Slack digest use case
type Digest interface {
	IsConfigured() bool
	Post(ctx context.Context, source types.SourceID) error
}
