package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore holds Firestore configuration
type Firestore struct {
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Storage",
			Sources:     cli.EnvVars("SPRINTBOARD_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Storage",
			Value:       "(default)",
			Sources:     cli.EnvVars("SPRINTBOARD_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
	}
}

// Configure creates a Firestore repository
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		return nil, goerr.New("firestore project is not configured")
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
		)
	}

	return repo, nil
}

// IsConfigured checks if Firestore is properly configured
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
	)
}
