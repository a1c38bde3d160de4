package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/cli/config"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
	"github.com/secmon-lab/idwatch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdForecast() *cli.Command {
	var (
		monitorCfg   config.Monitor
		slackCfg     config.Slack
		firestoreCfg config.Firestore
		output       string
		failOn       string
	)

	flags := joinFlags(
		monitorCfg.Flags(),
		slackCfg.Flags(),
		firestoreCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output format (text, json)",
				Value:       "text",
				Destination: &output,
			},
			&cli.StringFlag{
				Name:        "fail-on",
				Usage:       "Exit with an error when any table reaches this tier (critical, high, moderate)",
				Sources:     cli.EnvVars("IDWATCH_FAIL_ON"),
				Destination: &failOn,
			},
		},
	)

	return &cli.Command{
		Name:  "forecast",
		Usage: "Project every monitored table once and print the result",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			threshold, err := parseFailOn(failOn)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Debug("Running forecast",
				slog.Any("monitor", monitorCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
			)

			// Alerts must be delivered before the process exits
			forecastUC, closer, err := buildForecast(ctx, &monitorCfg, &slackCfg, &firestoreCfg, &config.Gemini{},
				[]usecase.ForecastOption{usecase.WithDispatcher(usecase.SyncDispatcher)})
			if err != nil {
				return err
			}
			defer closer()

			results := forecastUC.ProjectAll(ctx)

			w := c.Root().Writer
			switch output {
			case "json":
				err = renderJSON(w, results)
			case "text", "":
				err = renderText(w, results)
			default:
				return goerr.New("invalid output format", goerr.V("output", output))
			}
			if err != nil {
				return err
			}

			return checkResults(results, threshold)
		},
	}
}

func parseFailOn(s string) (*model.Tier, error) {
	if s == "" {
		return nil, nil
	}
	tier := model.FindTierByID(types.TierID(s))
	if tier == nil || !tier.IsAlertable() {
		return nil, goerr.New("invalid fail-on tier", goerr.V("fail_on", s))
	}
	return tier, nil
}

// checkResults fails when a table could not be projected or reached threshold
func checkResults(results []*model.TableResult, threshold *model.Tier) error {
	var failed, reached []types.TableName
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed = append(failed, r.Table)
		case threshold != nil && !threshold.MoreSevereThan(r.Report.Tier):
			reached = append(reached, r.Table)
		}
	}

	if len(failed) > 0 {
		return goerr.New("failed to project tables", goerr.V("tables", failed))
	}
	if len(reached) > 0 {
		return goerr.New("tables reached overflow risk threshold",
			goerr.V("tables", reached),
			goerr.V("threshold", threshold.ID))
	}
	return nil
}

type jsonResult struct {
	Table  types.TableName `json:"table"`
	Report *model.Report   `json:"report,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func renderJSON(w io.Writer, results []*model.TableResult) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		item := jsonResult{Table: r.Table, Report: r.Report}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		out = append(out, item)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return goerr.Wrap(err, "failed to encode forecast")
	}
	return nil
}

func renderText(w io.Writer, results []*model.TableResult) error {
	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "%s\tERROR\t%s\n", r.Table, r.Err.Error())
		} else {
			rep := r.Report
			_, err = fmt.Fprintf(w, "%s\t%s\t%s\tcurrent=%s\tpredicted=%s\tgrowth/day=%s\tused=%d%%\n",
				rep.Table,
				rep.Tier.Name,
				rep.Forecast.Outlook.String(),
				humanize.Comma(rep.Forecast.CurrentValue),
				humanize.Comma(rep.PredictedValue),
				humanize.Comma(rep.GrowthPerDay),
				rep.OverflowPercentage,
			)
		}
		if err != nil {
			return goerr.Wrap(err, "failed to write forecast")
		}
	}
	return nil
}
