package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintboard/pkg/cli"
	"github.com/secmon-lab/sprintboard/pkg/repository"
)

const datasetYAML = `
sources:
  - id: roadmap
    items:
      - initiative: Checkout revamp
        squad: Payments
        start: "2025-01-06"
        delivery: "2025-03-28"
        completion: 60
      - name: Search tuning
        team: Discovery
        startDate: "2025-02-01"
        endDate: "2025-04-30"
        status: In progress
  - id: sprint-42
    items:
      - name: Ledger export
        start: "01/02/2025"
        end: "28/02/2025"
        status: Done
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(datasetYAML), 0o600)).Required()
	return path
}

func TestImportCommand(t *testing.T) {
	ctx := context.Background()
	dataset := writeDataset(t)
	db := filepath.Join(t.TempDir(), "board.db")

	err := cli.Run(ctx, []string{"sprintboard", "--log-level", "error", "import", "--dataset", dataset, "--sqlite-path", db})
	gt.NoError(t, err).Required()

	repo, err := repository.NewSQLite(ctx, db)
	gt.NoError(t, err).Required()
	defer repo.Close()

	sources, err := repo.ListSources(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(sources), 2)

	records, err := repo.ListRecords(ctx, "roadmap")
	gt.NoError(t, err).Required()
	gt.Equal(t, len(records), 2)
}

func TestImportCommandRequiresDataset(t *testing.T) {
	err := cli.Run(context.Background(), []string{"sprintboard", "--log-level", "error", "import"})
	gt.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	dataset := writeDataset(t)

	t.Run("timeline", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{"sprintboard", "--log-level", "error", "render", "--input", dataset, "--today", "2025-02-15"})
		gt.NoError(t, err)
	})

	t.Run("summary of a named source", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{"sprintboard", "--log-level", "error", "render", "-i", dataset, "-s", "sprint-42", "--summary"})
		gt.NoError(t, err)
	})

	t.Run("unknown source", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{"sprintboard", "--log-level", "error", "render", "-i", dataset, "-s", "missing"})
		gt.Error(t, err)
	})

	t.Run("invalid today", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{"sprintboard", "--log-level", "error", "render", "-i", dataset, "--today", "someday"})
		gt.Error(t, err)
	})
}

func TestDigestCommandNotConfigured(t *testing.T) {
	err := cli.Run(context.Background(), []string{"sprintboard", "--log-level", "error", "digest", "--source", "roadmap"})
	gt.Error(t, err)
}
