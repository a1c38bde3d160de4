package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts overflow escalations to a Slack channel
type Notifier struct {
	service   *Service
	channelID string
	blocks    *BlockBuilder
}

var _ interfaces.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier posting to channelID
func NewNotifier(service *Service, channelID string, blocks *BlockBuilder) *Notifier {
	return &Notifier{
		service:   service,
		channelID: channelID,
		blocks:    blocks,
	}
}

// NotifyEscalation posts the report of a table that moved to a more severe tier
func (n *Notifier) NotifyEscalation(ctx context.Context, report *model.Report, previous *model.AlertState) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	_, ts, err := n.service.PostMessage(ctx, n.channelID,
		slack.MsgOptionText(n.blocks.BuildEscalationText(report), false),
		slack.MsgOptionBlocks(n.blocks.BuildEscalationBlocks(report, previous)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to notify escalation",
			goerr.V("table", report.Table),
			goerr.V("tier", report.Tier.ID))
	}

	ctxlog.From(ctx).Info("Escalation posted to Slack",
		"table", report.Table,
		"tier", report.Tier.ID,
		"channel", n.channelID,
		"ts", ts,
	)
	return nil
}
