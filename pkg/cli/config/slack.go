package config

import (
	"log/slog"

	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
	slackSvc "github.com/secmon-lab/sprintboard/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration of the digest
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("SPRINTBOARD_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID the digest is posted to",
			Category:    "Slack",
			Sources:     cli.EnvVars("SPRINTBOARD_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// Configure creates a Slack client, or nil when no token is set
func (s *Slack) Configure(logger *slog.Logger) interfaces.SlackClient {
	if !s.IsConfigured() {
		logger.Warn("Slack not configured - digest will not be posted")
		return nil
	}

	logger.Info("Configuring Slack client", "channel", s.Channel)
	return slackSvc.New(s.OAuthToken)
}

// ChannelID returns the digest channel
func (s *Slack) ChannelID() types.ChannelID {
	return types.ChannelID(s.Channel)
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
