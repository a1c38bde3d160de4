package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
	slackSvc "github.com/secmon-lab/idwatch/pkg/service/slack"
	"github.com/secmon-lab/idwatch/pkg/utils/async"
	"github.com/slack-go/slack"
)

const helpText = "Usage: `/idwatch` for every monitored table, `/idwatch <table>` for one table"

// Dispatcher runs the forecast after the command has been acknowledged
type Dispatcher func(ctx context.Context, handler func(ctx context.Context) error)

// Handler handles the idwatch slash command
type Handler struct {
	signingSecret string
	forecast      interfaces.Forecast
	blocks        *slackSvc.BlockBuilder
	dispatch      Dispatcher
}

// Option configures Handler
type Option func(*Handler)

// WithDispatcher replaces async.Dispatch
func WithDispatcher(dispatch Dispatcher) Option {
	return func(h *Handler) {
		h.dispatch = dispatch
	}
}

// NewHandler creates a new Slack slash command handler
func NewHandler(signingSecret string, forecast interfaces.Forecast, blocks *slackSvc.BlockBuilder, opts ...Option) *Handler {
	h := &Handler{
		signingSecret: signingSecret,
		forecast:      forecast,
		blocks:        blocks,
		dispatch:      async.Dispatch,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleCommand verifies the request, acknowledges it within Slack's deadline
// and posts the forecast to the command's response URL once it is ready
func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.verifySignature(r.Header, body); err != nil {
		ctxlog.From(ctx).Warn("Invalid Slack signature", "error", err)
		writeError(w, r, goerr.Wrap(err, "invalid signature"), http.StatusUnauthorized)
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to parse slash command"), http.StatusBadRequest)
		return
	}

	text := strings.TrimSpace(cmd.Text)
	if text == "help" {
		writeMessage(w, r, &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: helpText})
		return
	}

	var table types.TableName
	if text != "" {
		table = types.TableName(text)
		if err := table.Validate(); err != nil {
			writeMessage(w, r, &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         fmt.Sprintf("Invalid table name `%s`. %s", text, helpText),
			})
			return
		}
	}

	ctxlog.From(ctx).Info("Slack command received",
		"user", cmd.UserID,
		"channel", cmd.ChannelID,
		"table", table,
	)

	responseURL := cmd.ResponseURL
	h.dispatch(ctx, func(ctx context.Context) error {
		return h.respond(ctx, responseURL, table)
	})

	writeMessage(w, r, &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "Projecting identifier growth...",
	})
}

func (h *Handler) respond(ctx context.Context, responseURL string, table types.TableName) error {
	msg := &slack.WebhookMessage{ResponseType: slack.ResponseTypeInChannel}

	if table == "" {
		results := h.forecast.ProjectAll(ctx)
		msg.Text = "Integer overflow forecast"
		msg.Blocks = &slack.Blocks{BlockSet: h.blocks.BuildSummaryBlocks(results)}
	} else {
		report, err := h.forecast.Project(ctx, table)
		switch {
		case err == nil:
			msg.Text = fmt.Sprintf("%s: %s", report.Table, report.Tier.Title)
			msg.Blocks = &slack.Blocks{BlockSet: h.blocks.BuildForecastBlocks(report)}
		case goerr.HasTag(err, model.ErrTagSourceUnavailable):
			msg.ResponseType = slack.ResponseTypeEphemeral
			msg.Text = fmt.Sprintf("The prediction source of `%s` is unavailable, try again later", table)
		default:
			msg.ResponseType = slack.ResponseTypeEphemeral
			msg.Text = fmt.Sprintf("Failed to forecast `%s`", table)
			ctxlog.From(ctx).Warn("Slack command forecast failed", "error", err, "table", table)
		}
	}

	if err := slack.PostWebhookContext(ctx, responseURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post command response", goerr.V("table", table))
	}
	return nil
}

func (h *Handler) verifySignature(header http.Header, body []byte) error {
	sv, err := slack.NewSecretsVerifier(header, h.signingSecret)
	if err != nil {
		return goerr.Wrap(err, "failed to create secrets verifier")
	}
	if _, err := sv.Write(body); err != nil {
		return goerr.Wrap(err, "failed to hash request body")
	}
	if err := sv.Ensure(); err != nil {
		return goerr.Wrap(err, "signature mismatch")
	}
	return nil
}

func writeMessage(w http.ResponseWriter, r *http.Request, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode Slack response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	message := err.Error()
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode error response", "error", err)
	}
}
