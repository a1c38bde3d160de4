package slack

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
	"github.com/slack-go/slack"
)

// GetTierEmoji returns emoji based on tier
func GetTierEmoji(id types.TierID) string {
	switch id {
	case types.TierCritical:
		return "🚨"
	case types.TierHigh:
		return "⚠️"
	case types.TierModerate:
		return "ℹ️"
	default:
		return "✅"
	}
}

// FormatOutlook formats the days until overflow for display
func FormatOutlook(outlook model.Outlook) string {
	days, ok := outlook.Days()
	if !ok {
		return "Safe"
	}
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// BlockBuilder provides methods to build Slack message blocks
type BlockBuilder struct {
	dashboardURL string
}

// NewBlockBuilder creates a new BlockBuilder instance. dashboardURL may be
// empty, in which case no link is rendered.
func NewBlockBuilder(dashboardURL string) *BlockBuilder {
	return &BlockBuilder{dashboardURL: dashboardURL}
}

// BuildEscalationText builds the fallback text of an escalation message
func (b *BlockBuilder) BuildEscalationText(report *model.Report) string {
	return fmt.Sprintf("%s %s on %s: %s until overflow",
		GetTierEmoji(report.Tier.ID), report.Tier.Title, report.Table, FormatOutlook(report.Forecast.Outlook))
}

// BuildEscalationBlocks creates blocks announcing that a table moved to a more severe tier
func (b *BlockBuilder) BuildEscalationBlocks(report *model.Report, previous *model.AlertState) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType,
			fmt.Sprintf("%s %s: %s", GetTierEmoji(report.Tier.ID), report.Tier.Title, report.Table), true, false),
	)

	description := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, report.Tier.Description, false, false),
		nil, nil,
	)

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Days Until Overflow:*\n%s", FormatOutlook(report.Forecast.Outlook)), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*ID Growth Rate:*\n%s per day", humanize.Comma(report.GrowthPerDay)), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Current Max ID:*\n%s", humanize.Comma(report.Forecast.CurrentValue)), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Predicted Max ID in 30 Days:*\n%s", humanize.Comma(report.PredictedValue)), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*ID Usage:*\n%d%%", report.OverflowPercentage), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Remaining Capacity:*\n%s", humanize.Comma(report.RemainingCapacity)), false, false),
	}
	details := slack.NewSectionBlock(nil, fields, nil)

	blocks := []slack.Block{header, description, details}

	contextText := "First alert for this table"
	if previous != nil {
		prevTier := previous.Tier()
		contextText = fmt.Sprintf("Escalated from %s %s", GetTierEmoji(prevTier.ID), prevTier.Name)
	}
	if b.dashboardURL != "" {
		contextText += fmt.Sprintf(" | <%s|Open dashboard>", b.dashboardURL)
	}
	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, contextText, false, false),
	))

	return blocks
}

// BuildForecastBlocks renders the current projection of one table
func (b *BlockBuilder) BuildForecastBlocks(report *model.Report) []slack.Block {
	summary := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("%s *%s* is at *%s* (%s)\n%s",
				GetTierEmoji(report.Tier.ID),
				report.Table,
				report.Tier.Name,
				FormatOutlook(report.Forecast.Outlook),
				report.Tier.Description,
			), false, false),
		[]*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Current Max ID:*\n%s", humanize.Comma(report.Forecast.CurrentValue)), false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*ID Usage:*\n%d%%", report.OverflowPercentage), false, false),
		},
		nil,
	)

	blocks := []slack.Block{summary}
	if b.dashboardURL != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("<%s|Open dashboard>", b.dashboardURL), false, false),
		))
	}
	return blocks
}

// BuildSummaryBlocks renders one line per table, most severe first as given
func (b *BlockBuilder) BuildSummaryBlocks(results []*model.TableResult) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "Integer overflow forecast", true, false)),
	}

	for _, r := range results {
		var line string
		if r.Err != nil {
			line = fmt.Sprintf("❓ *%s*: forecast unavailable", r.Table)
		} else {
			line = fmt.Sprintf("%s *%s*: %s, %s until overflow, %d%% used",
				GetTierEmoji(r.Report.Tier.ID),
				r.Table,
				r.Report.Tier.Name,
				FormatOutlook(r.Report.Forecast.Outlook),
				r.Report.OverflowPercentage,
			)
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, line, false, false), nil, nil,
		))
	}

	return blocks
}
