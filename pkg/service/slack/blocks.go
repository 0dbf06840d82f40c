package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
	"github.com/slack-go/slack"
)

// maxAttentionItems caps the items listed in one digest
const maxAttentionItems = 10

// GetBucketEmoji returns the emoji shown for a color bucket
func GetBucketEmoji(bucket types.ColorBucket) string {
	switch bucket {
	case types.BucketComplete:
		return "🟢"
	case types.BucketOnTrack:
		return "🔵"
	case types.BucketAtRisk:
		return "🟠"
	default:
		return "⚪"
	}
}

// DigestInput is what a digest message is built from
type DigestInput struct {
	Source    types.SourceID
	Today     time.Time
	Summary   model.Summary
	Attention []model.NormalizedTimelineItem
}

// DigestText is the plain-text fallback of a digest, used for notifications
func DigestText(in DigestInput) string {
	return fmt.Sprintf("Timeline digest for %s (%s): %d items, %.0f%% average completion, %d need attention",
		in.Source, in.Today.Format(model.DateLayout), in.Summary.Total, in.Summary.AverageCompletion, len(in.Attention))
}

// BuildDigestBlocks creates Slack blocks summarizing a source
func BuildDigestBlocks(in DigestInput) []slack.Block {
	blocks := []slack.Block{}

	blocks = append(blocks, slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("📊 Timeline digest: %s", in.Source), true, false),
	))

	// KPI fields
	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Items:*\n%d", in.Summary.Total), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Average completion:*\n%.0f%%", in.Summary.AverageCompletion), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Average SPI:*\n%.2f", in.Summary.AverageSPI), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Behind schedule:*\n%d", in.Summary.BehindSchedule), false, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	// Bucket breakdown
	var buckets []string
	for _, b := range types.AllColorBuckets {
		buckets = append(buckets, fmt.Sprintf("%s %s: %d", GetBucketEmoji(b), b, in.Summary.Buckets[b]))
	}
	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, strings.Join(buckets, "  •  "), false, false),
	))

	blocks = append(blocks, slack.NewDividerBlock())

	if len(in.Attention) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "✅ Nothing needs attention", false, false),
			nil,
			nil,
		))
		return blocks
	}

	var lines []string
	for i, item := range in.Attention {
		if i >= maxAttentionItems {
			break
		}
		lines = append(lines, formatAttentionLine(item))
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("⚠️ *Needs attention (%d)*\n%s", len(in.Attention), strings.Join(lines, "\n")),
			false, false),
		nil,
		nil,
	))

	if rest := len(in.Attention) - maxAttentionItems; rest > 0 {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("...and %d more", rest), false, false),
		))
	}

	return blocks
}

func formatAttentionLine(item model.NormalizedTimelineItem) string {
	end := item.EndRaw
	if end == "" {
		end = "no end date"
	}
	return fmt.Sprintf("%s *%s* (%s) · ends %s · %.0f%% · SPI %.2f",
		GetBucketEmoji(item.ColorBucket()), item.Name, item.Group, end, item.CompletionPercent, item.SPI)
}
