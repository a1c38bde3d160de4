package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/cli/config"
	controller "github.com/secmon-lab/idwatch/pkg/controller/http"
	slackCtrl "github.com/secmon-lab/idwatch/pkg/controller/slack"
	"github.com/secmon-lab/idwatch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		monitorCfg   config.Monitor
		slackCfg     config.Slack
		firestoreCfg config.Firestore
		geminiCfg    config.Gemini
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the dashboard and forecast API server",
		Flags: joinFlags(
			serverCfg.Flags(),
			monitorCfg.Flags(),
			slackCfg.Flags(),
			firestoreCfg.Flags(),
			geminiCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting idwatch server",
				slog.Any("server", serverCfg),
				slog.Any("monitor", monitorCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("gemini", geminiCfg),
			)

			forecastUC, closer, err := buildForecast(ctx, &monitorCfg, &slackCfg, &firestoreCfg, &geminiCfg, nil)
			if err != nil {
				return err
			}
			defer closer()

			serverOpts := []controller.Option{
				controller.WithCORSOrigins(serverCfg.CORSOrigins),
			}
			if slackCfg.IsCommandConfigured() {
				serverOpts = append(serverOpts, controller.WithSlackHandler(
					slackCtrl.NewHandler(slackCfg.SigningSecret, forecastUC, slackCfg.BlockBuilder()),
				))
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, forecastUC, serverOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// buildForecast wires the forecast use case from configuration. The returned
// function closes the alert state repository.
func buildForecast(
	ctx context.Context,
	monitorCfg *config.Monitor,
	slackCfg *config.Slack,
	firestoreCfg *config.Firestore,
	geminiCfg *config.Gemini,
	extra []usecase.ForecastOption,
) (*usecase.ForecastUseCase, func(), error) {
	monitor, sources, err := monitorCfg.Configure()
	if err != nil {
		return nil, nil, err
	}

	repo, err := firestoreCfg.Configure(ctx)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := repo.Close(); err != nil {
			ctxlog.From(ctx).Warn("Failed to close repository", "error", err)
		}
	}

	opts := []usecase.ForecastOption{}

	notifier, err := slackCfg.Configure(ctx)
	if err != nil {
		closer()
		return nil, nil, err
	}
	if notifier != nil {
		opts = append(opts, usecase.WithNotifier(notifier))
	}

	advisor, err := geminiCfg.Configure(ctx)
	if err != nil {
		closer()
		return nil, nil, err
	}
	if advisor != nil {
		opts = append(opts, usecase.WithAdvisor(advisor))
	}

	opts = append(opts, extra...)
	return usecase.NewForecast(monitor, sources, repo, opts...), closer, nil
}
