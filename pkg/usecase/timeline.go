package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// Timeline provides timeline import and rendering functionality
type Timeline struct {
	repo  interfaces.Repository
	clock func() time.Time
}

// TimelineOption configures a Timeline use case
type TimelineOption func(*Timeline)

// WithClock replaces the clock that supplies "today"
func WithClock(clock func() time.Time) TimelineOption {
	return func(t *Timeline) {
		t.clock = clock
	}
}

// NewTimeline creates a new Timeline use case
func NewTimeline(repo interfaces.Repository, opts ...TimelineOption) *Timeline {
	t := &Timeline{
		repo:  repo,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Today returns the current calendar date by the injected clock
func (uc *Timeline) Today() time.Time {
	return model.CalendarDate(uc.clock())
}

func validateSource(source types.SourceID) error {
	if err := source.Validate(); err != nil {
		return goerr.Wrap(model.ErrInvalidSource, err.Error(), goerr.V("source", source))
	}
	return nil
}

// Import stores raw items under a source. With replace the source is
// overwritten, otherwise items are appended after the existing ones. Items
// with an "id" already stored are updated in place.
func (uc *Timeline) Import(ctx context.Context, source types.SourceID, items []model.RawTimelineItem, replace bool) (int, error) {
	if err := validateSource(source); err != nil {
		return 0, err
	}

	now := uc.clock()
	if replace {
		records := model.NewTimelineRecords(source, items, 0, now)
		if err := uc.repo.ReplaceRecords(ctx, source, records); err != nil {
			return 0, goerr.Wrap(err, "failed to replace records", goerr.V("source", source))
		}
	} else {
		nextSeq, err := uc.nextSeq(ctx, source)
		if err != nil {
			return 0, err
		}
		records := model.NewTimelineRecords(source, items, nextSeq, now)
		if err := uc.repo.PutRecords(ctx, source, records); err != nil {
			return 0, goerr.Wrap(err, "failed to put records", goerr.V("source", source))
		}
	}

	ctxlog.From(ctx).Info("Imported timeline items",
		"source", source,
		"count", len(items),
		"replace", replace,
	)

	return len(items), nil
}

func (uc *Timeline) nextSeq(ctx context.Context, source types.SourceID) (int, error) {
	existing, err := uc.repo.ListRecords(ctx, source)
	if err != nil {
		if errors.Is(err, model.ErrSourceNotFound) {
			return 0, nil
		}
		return 0, goerr.Wrap(err, "failed to list existing records", goerr.V("source", source))
	}

	next := 0
	for _, r := range existing {
		if r.Seq >= next {
			next = r.Seq + 1
		}
	}
	return next, nil
}

// Sources lists all known sources
func (uc *Timeline) Sources(ctx context.Context) ([]types.SourceID, error) {
	sources, err := uc.repo.ListSources(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list sources")
	}
	return sources, nil
}

// loadRaw returns the raw items of a source in import order
func (uc *Timeline) loadRaw(ctx context.Context, source types.SourceID) ([]model.RawTimelineItem, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	records, err := uc.repo.ListRecords(ctx, source)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records", goerr.V("source", source))
	}

	raw := make([]model.RawTimelineItem, 0, len(records))
	for _, r := range records {
		raw = append(raw, r.Fields)
	}
	return raw, nil
}

// loadItems returns the normalized items of a source and the number dropped
func (uc *Timeline) loadItems(ctx context.Context, source types.SourceID) ([]model.NormalizedTimelineItem, int, error) {
	raw, err := uc.loadRaw(ctx, source)
	if err != nil {
		return nil, 0, err
	}
	items, dropped := model.NormalizeAll(raw)
	if dropped > 0 {
		ctxlog.From(ctx).Warn("Dropped malformed timeline items",
			"source", source,
			"dropped", dropped,
		)
	}
	return items, dropped, nil
}

// View builds the render instructions of a source
func (uc *Timeline) View(ctx context.Context, source types.SourceID, opts interfaces.ViewOptions) (*model.TimelineView, error) {
	items, dropped, err := uc.loadItems(ctx, source)
	if err != nil {
		return nil, err
	}

	if opts.Group != "" {
		items = filterGroup(items, opts.Group)
	}

	today := opts.Today
	if today.IsZero() {
		today = uc.clock()
	}

	view := model.LayoutItems(items, today)
	view.Dropped = dropped
	view.ApplyViewport(opts.Viewport)

	ctxlog.From(ctx).Debug("Built timeline view",
		"source", source,
		"items", len(view.Items),
		"dropped", dropped,
		"axisStart", view.Axis.Start,
		"axisEnd", view.Axis.End,
	)

	return view, nil
}

func filterGroup(items []model.NormalizedTimelineItem, group string) []model.NormalizedTimelineItem {
	filtered := make([]model.NormalizedTimelineItem, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Group, group) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Summary computes the KPI summary of a source
func (uc *Timeline) Summary(ctx context.Context, source types.SourceID) (*model.Summary, error) {
	items, _, err := uc.loadItems(ctx, source)
	if err != nil {
		return nil, err
	}
	summary := model.Summarize(items)
	return &summary, nil
}

// Delete removes a source and its items
func (uc *Timeline) Delete(ctx context.Context, source types.SourceID) error {
	if err := validateSource(source); err != nil {
		return err
	}
	if err := uc.repo.DeleteSource(ctx, source); err != nil {
		return goerr.Wrap(err, "failed to delete source", goerr.V("source", source))
	}

	ctxlog.From(ctx).Info("Deleted timeline source", "source", source)
	return nil
}

var _ interfaces.Timeline = (*Timeline)(nil)
