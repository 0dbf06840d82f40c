package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Storage selects the repository backend: Firestore, then SQLite, then memory
type Storage struct {
	Firestore Firestore
	SQLite    SQLite
}

// Flags returns CLI flags of all storage backends
func (s *Storage) Flags() []cli.Flag {
	return append(s.Firestore.Flags(), s.SQLite.Flags()...)
}

// Configure creates the repository of the first configured backend
func (s *Storage) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch {
	case s.Firestore.IsConfigured():
		return s.Firestore.Configure(ctx)
	case s.SQLite.IsConfigured():
		return s.SQLite.Configure(ctx)
	default:
		ctxlog.From(ctx).Warn("Using memory database instead of firestore or sqlite. The data will be removed when shutting down")
		return repository.NewMemory(), nil
	}
}

// Backend names the backend Configure would pick
func (s *Storage) Backend() string {
	switch {
	case s.Firestore.IsConfigured():
		return "firestore"
	case s.SQLite.IsConfigured():
		return "sqlite"
	default:
		return "memory"
	}
}

// LogValue returns structured log value
func (s Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", s.Backend()),
		slog.Any("firestore", s.Firestore),
		slog.Any("sqlite", s.SQLite),
	)
}
