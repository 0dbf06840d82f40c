package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Service provides Slack messaging capabilities
type Service struct {
	client *slack.Client
}

// New creates a new Slack service. Client options such as slack.OptionAPIURL
// are passed through to the underlying client.
func New(token string, opts ...slack.Option) *Service {
	return &Service{
		client: slack.New(token, opts...),
	}
}

// PostMessage sends a message to a Slack channel
func (s *Service) PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post message to Slack", goerr.V("channel", channelID))
	}
	return channel, timestamp, nil
}
