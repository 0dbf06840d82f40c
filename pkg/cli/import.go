package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/cli/config"
	"github.com/secmon-lab/sprintboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var (
		storageCfg config.Storage
		datasetCfg config.Dataset
		appendMode bool
	)

	flags := joinFlags(
		storageCfg.Flags(),
		datasetCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "append",
				Usage:       "Append items to existing sources instead of replacing them",
				Destination: &appendMode,
			},
		},
	)

	return &cli.Command{
		Name:  "import",
		Usage: "Load a dataset file into the configured storage",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			dataset, err := datasetCfg.Configure()
			if err != nil {
				return err
			}
			if dataset == nil {
				return goerr.New("dataset file is required, set --dataset")
			}

			repo, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			logger.Info("Importing dataset",
				slog.Any("storage", storageCfg),
				slog.Any("dataset", datasetCfg),
				slog.Int("sources", len(dataset.Sources)),
				slog.Bool("append", appendMode),
			)

			if err := seedDataset(ctx, usecase.NewTimeline(repo), dataset, !appendMode); err != nil {
				return err
			}

			logger.Info("Dataset imported")
			return nil
		},
	}
}
