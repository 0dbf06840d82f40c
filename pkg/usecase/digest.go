package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
	slackSvc "github.com/secmon-lab/sprintboard/pkg/service/slack"
	"github.com/slack-go/slack"
)

// Digest posts a KPI and at-risk digest of a source to Slack
type Digest struct {
	timeline *Timeline
	slack    interfaces.SlackClient
	channel  types.ChannelID
}

// NewDigest creates a new Digest use case. A nil client or empty channel
// leaves the digest unconfigured.
func NewDigest(timeline *Timeline, client interfaces.SlackClient, channel types.ChannelID) *Digest {
	return &Digest{
		timeline: timeline,
		slack:    client,
		channel:  channel,
	}
}

// IsConfigured reports whether the digest has somewhere to post
func (uc *Digest) IsConfigured() bool {
	return uc.slack != nil && uc.channel != ""
}

// Post builds the digest of a source and posts it to the configured channel
func (uc *Digest) Post(ctx context.Context, source types.SourceID) error {
	if !uc.IsConfigured() {
		return goerr.Wrap(model.ErrDigestNotConfigured, "cannot post digest", goerr.V("source", source))
	}

	items, _, err := uc.timeline.loadItems(ctx, source)
	if err != nil {
		return err
	}

	today := uc.timeline.Today()
	in := slackSvc.DigestInput{
		Source:    source,
		Today:     today,
		Summary:   model.Summarize(items),
		Attention: model.NeedsAttention(items, today),
	}

	_, ts, err := uc.slack.PostMessage(ctx, uc.channel.String(),
		slack.MsgOptionText(slackSvc.DigestText(in), false),
		slack.MsgOptionBlocks(slackSvc.BuildDigestBlocks(in)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post digest",
			goerr.V("source", source),
			goerr.V("channel", uc.channel),
		)
	}

	ctxlog.From(ctx).Info("Posted timeline digest",
		"source", source,
		"channel", uc.channel,
		"timestamp", ts,
		"attention", len(in.Attention),
	)

	return nil
}

var _ interfaces.Digest = (*Digest)(nil)
