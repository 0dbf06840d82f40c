package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/cli/config"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
	"github.com/secmon-lab/sprintboard/pkg/repository"
	"github.com/secmon-lab/sprintboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		clockCfg config.Clock
		input    string
		source   string
		group    string
		summary  bool
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "YAML or JSON file with a dataset or a bare list of items",
				Required:    true,
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       "Source to render (defaults to the first source of the file)",
				Destination: &source,
			},
			&cli.StringFlag{
				Name:        "group",
				Usage:       "Only render items of this squad or team",
				Destination: &group,
			},
			&cli.BoolFlag{
				Name:        "summary",
				Usage:       "Print the KPI summary instead of the timeline",
				Destination: &summary,
			},
		},
		clockCfg.Flags(),
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Print the timeline of a dataset file as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			clock, err := clockCfg.Configure()
			if err != nil {
				return err
			}

			dataset, err := config.LoadDatasetFromFile(input)
			if err != nil {
				return err
			}

			target := types.SourceID(source)
			if target == "" {
				target = dataset.Sources[0].ID
			}
			if dataset.FindSource(target) == nil {
				return goerr.New("source not found in dataset", goerr.V("source", target), goerr.V("path", input))
			}

			timelineUC := usecase.NewTimeline(repository.NewMemory(), usecase.WithClock(clock))
			if err := seedDataset(ctx, timelineUC, dataset, true); err != nil {
				return err
			}

			ctxlog.From(ctx).Debug("Rendering dataset", "path", input, "source", target)

			if summary {
				result, err := timelineUC.Summary(ctx, target)
				if err != nil {
					return err
				}
				return printJSON(c.Root().Writer, result)
			}

			view, err := timelineUC.View(ctx, target, interfaces.ViewOptions{Group: group})
			if err != nil {
				return err
			}
			return printJSON(c.Root().Writer, view)
		},
	}
}
