package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// Repository defines the interface for timeline record persistence
type Repository interface {
	// PutRecords saves records of a source, overwriting records with the same ID
	PutRecords(ctx context.Context, source types.SourceID, records []*model.TimelineRecord) error
	// ReplaceRecords drops all records of a source and saves the given ones
	ReplaceRecords(ctx context.Context, source types.SourceID, records []*model.TimelineRecord) error
	// ListRecords returns records of a source ordered by Seq
	ListRecords(ctx context.Context, source types.SourceID) ([]*model.TimelineRecord, error)
	// ListSources returns all sources sorted by ID
	ListSources(ctx context.Context) ([]types.SourceID, error)
	// DeleteSource removes a source and its records
	DeleteSource(ctx context.Context, source types.SourceID) error

	// Close closes the repository connection
	Close() error
}
