package interfaces

//go:generate moq -out mocks/slack_mock.go -pkg mocks . SlackClient

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack API the digest uses
type SlackClient interface {
	PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
