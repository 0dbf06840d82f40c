package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	sourcesCollection = "sources"
	itemsCollection   = "items"
)

// firestoreSource is the document stored at sources/{source}
type firestoreSource struct {
	ID        string    `firestore:"id"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// firestoreRecord is the document stored at sources/{source}/items/{id}
type firestoreRecord struct {
	ID         string         `firestore:"id"`
	Seq        int            `firestore:"seq"`
	Fields     map[string]any `firestore:"fields"`
	ImportedAt time.Time      `firestore:"imported_at"`
}

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permissions
	_, err = client.Collection(sourcesCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

func (f *Firestore) sourceDoc(source types.SourceID) *firestore.DocumentRef {
	return f.client.Collection(sourcesCollection).Doc(source.String())
}

func (f *Firestore) items(source types.SourceID) *firestore.CollectionRef {
	return f.sourceDoc(source).Collection(itemsCollection)
}

// PutRecords saves records of a source, overwriting documents with the same ID
func (f *Firestore) PutRecords(ctx context.Context, source types.SourceID, records []*model.TimelineRecord) error {
	if err := validateRecords(source, records); err != nil {
		return err
	}
	return f.write(ctx, source, records, false)
}

// ReplaceRecords deletes existing item documents of a source and saves the given ones
func (f *Firestore) ReplaceRecords(ctx context.Context, source types.SourceID, records []*model.TimelineRecord) error {
	if err := validateRecords(source, records); err != nil {
		return err
	}
	return f.write(ctx, source, records, true)
}

func (f *Firestore) write(ctx context.Context, source types.SourceID, records []*model.TimelineRecord, replace bool) error {
	keep := make(map[string]struct{}, len(records))
	for _, r := range records {
		keep[r.ID.String()] = struct{}{}
	}

	bw := f.client.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob

	if replace {
		iter := f.items(source).Select().Documents(ctx)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				bw.End()
				return goerr.Wrap(err, "failed to iterate existing records", goerr.V("source", source))
			}
			if _, ok := keep[doc.Ref.ID]; ok {
				continue
			}
			job, err := bw.Delete(doc.Ref)
			if err != nil {
				iter.Stop()
				bw.End()
				return goerr.Wrap(err, "failed to enqueue record deletion", goerr.V("id", doc.Ref.ID))
			}
			jobs = append(jobs, job)
		}
		iter.Stop()
	}

	for _, r := range records {
		doc := firestoreRecord{
			ID:         r.ID.String(),
			Seq:        r.Seq,
			Fields:     r.Fields,
			ImportedAt: r.ImportedAt,
		}
		job, err := bw.Set(f.items(source).Doc(r.ID.String()), doc)
		if err != nil {
			bw.End()
			return goerr.Wrap(err, "failed to enqueue record", goerr.V("id", r.ID))
		}
		jobs = append(jobs, job)
	}

	job, err := bw.Set(f.sourceDoc(source), firestoreSource{ID: source.String(), UpdatedAt: time.Now().UTC()})
	if err != nil {
		bw.End()
		return goerr.Wrap(err, "failed to enqueue source", goerr.V("source", source))
	}
	jobs = append(jobs, job)

	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to write records to firestore", goerr.V("source", source))
		}
	}

	return nil
}

// ListRecords returns records of a source ordered by Seq
func (f *Firestore) ListRecords(ctx context.Context, source types.SourceID) ([]*model.TimelineRecord, error) {
	if err := source.Validate(); err != nil {
		return nil, goerr.Wrap(model.ErrInvalidSource, err.Error(), goerr.V("source", source))
	}

	if _, err := f.sourceDoc(source).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrSourceNotFound, "failed to list records", goerr.V("source", source))
		}
		return nil, goerr.Wrap(err, "failed to get source from firestore", goerr.V("source", source))
	}

	// Sorted in memory to avoid requiring an index
	iter := f.items(source).Documents(ctx)
	defer iter.Stop()

	records := []*model.TimelineRecord{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate records", goerr.V("source", source))
		}

		var stored firestoreRecord
		if err := doc.DataTo(&stored); err != nil {
			return nil, goerr.Wrap(err, "failed to decode record", goerr.V("id", doc.Ref.ID))
		}
		records = append(records, &model.TimelineRecord{
			ID:         types.ItemID(doc.Ref.ID),
			Source:     source,
			Seq:        stored.Seq,
			Fields:     stored.Fields,
			ImportedAt: stored.ImportedAt,
		})
	}

	sortRecords(records)
	return records, nil
}

// ListSources returns all sources sorted by ID
func (f *Firestore) ListSources(ctx context.Context) ([]types.SourceID, error) {
	refs, err := f.client.Collection(sourcesCollection).DocumentRefs(ctx).GetAll()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list sources")
	}

	sources := make([]types.SourceID, 0, len(refs))
	for _, ref := range refs {
		sources = append(sources, types.SourceID(ref.ID))
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources, nil
}

// DeleteSource removes a source document and its item documents
func (f *Firestore) DeleteSource(ctx context.Context, source types.SourceID) error {
	if err := source.Validate(); err != nil {
		return goerr.Wrap(model.ErrInvalidSource, err.Error(), goerr.V("source", source))
	}

	if _, err := f.sourceDoc(source).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrSourceNotFound, "failed to delete source", goerr.V("source", source))
		}
		return goerr.Wrap(err, "failed to get source from firestore", goerr.V("source", source))
	}

	refs, err := f.items(source).DocumentRefs(ctx).GetAll()
	if err != nil {
		return goerr.Wrap(err, "failed to list records", goerr.V("source", source))
	}

	bw := f.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs)+1)
	for _, ref := range append(refs, f.sourceDoc(source)) {
		job, err := bw.Delete(ref)
		if err != nil {
			bw.End()
			return goerr.Wrap(err, "failed to enqueue deletion", goerr.V("id", ref.ID))
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to delete source from firestore", goerr.V("source", source))
		}
	}
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
