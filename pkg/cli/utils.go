package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// seedDataset imports every source of a dataset
func seedDataset(ctx context.Context, timelineUC *usecase.Timeline, dataset *model.Dataset, replace bool) error {
	for _, src := range dataset.Sources {
		if _, err := timelineUC.Import(ctx, src.ID, src.Items, replace); err != nil {
			return goerr.Wrap(err, "failed to import dataset source")
		}
	}
	return nil
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}
