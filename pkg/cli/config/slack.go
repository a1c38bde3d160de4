package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/idwatch/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken    string
	ChannelID     string
	SigningSecret string
	DashboardURL  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to post overflow alerts",
			Category:    "Slack",
			Sources:     cli.EnvVars("IDWATCH_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID receiving overflow alerts",
			Category:    "Slack",
			Sources:     cli.EnvVars("IDWATCH_SLACK_CHANNEL_ID"),
			Destination: &s.ChannelID,
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret enabling the /idwatch slash command",
			Category:    "Slack",
			Sources:     cli.EnvVars("IDWATCH_SLACK_SIGNING_SECRET"),
			Destination: &s.SigningSecret,
		},
		&cli.StringFlag{
			Name:        "dashboard-url",
			Usage:       "Public dashboard URL linked from alerts",
			Category:    "Slack",
			Sources:     cli.EnvVars("IDWATCH_DASHBOARD_URL"),
			Destination: &s.DashboardURL,
		},
	}
}

// Configure creates the alert notifier. It returns nil without error when
// Slack is not configured.
func (s *Slack) Configure(ctx context.Context) (interfaces.Notifier, error) {
	if !s.IsConfigured() {
		if s.OAuthToken != "" || s.ChannelID != "" {
			return nil, goerr.New("both slack-oauth-token and slack-channel-id are required",
				goerr.V("has_oauth_token", s.OAuthToken != ""),
				goerr.V("has_channel_id", s.ChannelID != ""),
			)
		}
		ctxlog.From(ctx).Warn("Slack not configured, overflow alerts are disabled")
		return nil, nil
	}

	service := slackSvc.New(s.OAuthToken)
	return slackSvc.NewNotifier(service, s.ChannelID, s.BlockBuilder()), nil
}

// BlockBuilder returns the Slack block builder linking to the dashboard
func (s *Slack) BlockBuilder() *slackSvc.BlockBuilder {
	return slackSvc.NewBlockBuilder(s.DashboardURL)
}

// IsCommandConfigured checks if the slash command endpoint can verify requests
func (s *Slack) IsCommandConfigured() bool {
	return s.SigningSecret != ""
}

// IsConfigured checks if Slack is properly configured for alerting
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel_id", s.ChannelID),
		slog.Bool("has_signing_secret", s.SigningSecret != ""),
		slog.String("dashboard_url", s.DashboardURL),
	)
}
