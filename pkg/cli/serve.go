package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/cli/config"
	controller "github.com/secmon-lab/sprintboard/pkg/controller/http"
	"github.com/secmon-lab/sprintboard/pkg/service/watcher"
	"github.com/secmon-lab/sprintboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		storageCfg config.Storage
		slackCfg   config.Slack
		clockCfg   config.Clock
		datasetCfg config.Dataset
	)

	flags := joinFlags(
		serverCfg.Flags(),
		storageCfg.Flags(),
		slackCfg.Flags(),
		clockCfg.Flags(),
		datasetCfg.Flags(),
		datasetCfg.WatchFlags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting sprintboard server",
				slog.Any("server", serverCfg),
				slog.Any("storage", storageCfg),
				slog.Any("slack", slackCfg),
				slog.Any("today", clockCfg),
				slog.Any("dataset", datasetCfg),
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

			dataset, err := datasetCfg.Configure()
			if err != nil {
				return err
			}
			if dataset != nil {
				if err := seedDataset(ctx, timelineUC, dataset, true); err != nil {
					return err
				}
			}

			if datasetCfg.Watch && datasetCfg.Path != "" {
				w, err := watcher.New(datasetCfg.Path, func(ctx context.Context) error {
					reloaded, err := datasetCfg.Configure()
					if err != nil {
						return err
					}
					return seedDataset(ctx, timelineUC, reloaded, true)
				})
				if err != nil {
					return err
				}
				defer w.Close()

				watchCtx, stopWatch := context.WithCancel(ctx)
				defer stopWatch()
				go w.Run(watchCtx)
				logger.Info("Watching dataset for changes", slog.String("path", datasetCfg.Path))
			}

			opts := []controller.Option{
				controller.WithCORSOrigin(serverCfg.CORSOrigin),
			}
			if slackClient := slackCfg.Configure(logger); slackClient != nil {
				opts = append(opts, controller.WithDigest(
					usecase.NewDigest(timelineUC, slackClient, slackCfg.ChannelID()),
				))
			}

			server := controller.NewServer(ctx, serverCfg.Addr, timelineUC, opts...)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
