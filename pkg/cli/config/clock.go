package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Clock holds the date used as "today"
type Clock struct {
	Today string
}

// Flags returns CLI flags for Clock configuration
func (c *Clock) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "today",
			Usage:       "Render as of this date instead of the current day (e.g. 2025-02-15)",
			Sources:     cli.EnvVars("SPRINTBOARD_TODAY"),
			Destination: &c.Today,
		},
	}
}

// Configure returns the clock. With a fixed date it always reports that day.
func (c *Clock) Configure() (func() time.Time, error) {
	if c.Today == "" {
		return time.Now, nil
	}

	today, ok := model.ParseFlexibleDate(c.Today)
	if !ok {
		return nil, goerr.New("invalid today date", goerr.V("today", c.Today))
	}
	return func() time.Time { return today }, nil
}

// LogValue returns structured log value
func (c Clock) LogValue() slog.Value {
	if c.Today == "" {
		return slog.StringValue("system")
	}
	return slog.StringValue(c.Today)
}
