package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/sprintboard/pkg/cli/config"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
	"github.com/secmon-lab/sprintboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdDigest() *cli.Command {
	var (
		storageCfg config.Storage
		slackCfg   config.Slack
		clockCfg   config.Clock
		source     string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       "Source to summarize",
				Required:    true,
				Destination: &source,
			},
		},
		storageCfg.Flags(),
		slackCfg.Flags(),
		clockCfg.Flags(),
	)

	return &cli.Command{
		Name:  "digest",
		Usage: "Post the KPI and at-risk digest of a source to Slack",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("Posting digest",
				slog.String("source", source),
				slog.Any("storage", storageCfg),
				slog.Any("slack", slackCfg),
			)

			clock, err := clockCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			timelineUC := usecase.NewTimeline(repo, usecase.WithClock(clock))
			digestUC := usecase.NewDigest(timelineUC, slackCfg.Configure(logger), slackCfg.ChannelID())

			return digestUC.Post(ctx, types.SourceID(source))
		},
	}
}
