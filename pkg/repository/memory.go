package repository

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu      sync.RWMutex
	sources map[types.SourceID]map[types.ItemID]*model.TimelineRecord
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		sources: make(map[types.SourceID]map[types.ItemID]*model.TimelineRecord),
	}
}

func copyRecord(r *model.TimelineRecord) *model.TimelineRecord {
	c := *r
	c.Fields = maps.Clone(r.Fields)
	return &c
}

func validateRecords(source types.SourceID, records []*model.TimelineRecord) error {
	if err := source.Validate(); err != nil {
		return goerr.Wrap(model.ErrInvalidSource, err.Error(), goerr.V("source", source))
	}
	for _, r := range records {
		if r == nil {
			return goerr.New("record is nil")
		}
		if r.ID == "" {
			return goerr.New("record ID is empty", goerr.V("source", source))
		}
	}
	return nil
}

// PutRecords saves records of a source into memory
func (m *Memory) PutRecords(ctx context.Context, source types.SourceID, records []*model.TimelineRecord) error {
	if err := validateRecords(source, records); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items, exists := m.sources[source]
	if !exists {
		items = make(map[types.ItemID]*model.TimelineRecord)
		m.sources[source] = items
	}
	for _, r := range records {
		c := copyRecord(r)
		c.Source = source
		items[r.ID] = c
	}
	return nil
}

// ReplaceRecords drops existing records of a source and saves the given ones
func (m *Memory) ReplaceRecords(ctx context.Context, source types.SourceID, records []*model.TimelineRecord) error {
	if err := validateRecords(source, records); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items := make(map[types.ItemID]*model.TimelineRecord, len(records))
	for _, r := range records {
		c := copyRecord(r)
		c.Source = source
		items[r.ID] = c
	}
	m.sources[source] = items
	return nil
}

// ListRecords returns copies of the records of a source ordered by Seq
func (m *Memory) ListRecords(ctx context.Context, source types.SourceID) ([]*model.TimelineRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items, exists := m.sources[source]
	if !exists {
		return nil, goerr.Wrap(model.ErrSourceNotFound, "failed to list records", goerr.V("source", source))
	}

	records := make([]*model.TimelineRecord, 0, len(items))
	for _, r := range items {
		records = append(records, copyRecord(r))
	}
	sortRecords(records)
	return records, nil
}

// ListSources returns all known sources sorted by ID
func (m *Memory) ListSources(ctx context.Context) ([]types.SourceID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sources := slices.Collect(maps.Keys(m.sources))
	slices.Sort(sources)
	if sources == nil {
		sources = []types.SourceID{}
	}
	return sources, nil
}

// DeleteSource removes a source and all of its records
func (m *Memory) DeleteSource(ctx context.Context, source types.SourceID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sources[source]; !exists {
		return goerr.Wrap(model.ErrSourceNotFound, "failed to delete source", goerr.V("source", source))
	}
	delete(m.sources, source)
	return nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}

// sortRecords orders records by Seq, then by ID for records sharing a Seq
func sortRecords(records []*model.TimelineRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Seq != records[j].Seq {
			return records[i].Seq < records[j].Seq
		}
		return records[i].ID < records[j].ID
	})
}

var _ interfaces.Repository = (*Memory)(nil) // Compile-time interface check
