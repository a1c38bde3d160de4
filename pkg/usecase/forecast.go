package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
	"github.com/secmon-lab/idwatch/pkg/service/prediction"
	"github.com/secmon-lab/idwatch/pkg/utils/async"
	"golang.org/x/sync/errgroup"
)

// Dispatcher runs alert evaluation after a projection
type Dispatcher func(ctx context.Context, handler func(ctx context.Context) error)

// ForecastUseCase implements the Forecast interface
type ForecastUseCase struct {
	config   *model.MonitorConfig
	sources  map[types.TableName]prediction.Sources
	repo     interfaces.Repository
	notifier interfaces.Notifier
	advisor  interfaces.Advisor
	dispatch Dispatcher
	now      func() time.Time

	// alertMu serializes alert evaluation so one escalation is posted once
	alertMu sync.Mutex
}

var _ interfaces.Forecast = (*ForecastUseCase)(nil)

// ForecastOption configures ForecastUseCase
type ForecastOption func(*ForecastUseCase)

// WithNotifier enables alerting through the notifier
func WithNotifier(notifier interfaces.Notifier) ForecastOption {
	return func(uc *ForecastUseCase) {
		uc.notifier = notifier
	}
}

// WithAdvisor enables LLM mitigation advice
func WithAdvisor(advisor interfaces.Advisor) ForecastOption {
	return func(uc *ForecastUseCase) {
		uc.advisor = advisor
	}
}

// WithDispatcher replaces the asynchronous alert dispatcher
func WithDispatcher(dispatch Dispatcher) ForecastOption {
	return func(uc *ForecastUseCase) {
		uc.dispatch = dispatch
	}
}

// WithClock sets the time source
func WithClock(now func() time.Time) ForecastOption {
	return func(uc *ForecastUseCase) {
		uc.now = now
	}
}

// SyncDispatcher runs the handler in the calling goroutine and logs its error
func SyncDispatcher(ctx context.Context, handler func(ctx context.Context) error) {
	if err := handler(ctx); err != nil {
		ctxlog.From(ctx).Error("Error in alert handler", "error", err)
	}
}

// NewForecast creates a new ForecastUseCase instance. sources must contain an
// entry for every table of config.
func NewForecast(config *model.MonitorConfig, sources map[types.TableName]prediction.Sources, repo interfaces.Repository, opts ...ForecastOption) *ForecastUseCase {
	uc := &ForecastUseCase{
		config:   config,
		sources:  sources,
		repo:     repo,
		dispatch: async.Dispatch,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Tables returns the monitored table names
func (uc *ForecastUseCase) Tables() []types.TableName {
	return uc.config.TableNames()
}

// Project fetches the latest prediction of a table and builds its report
func (uc *ForecastUseCase) Project(ctx context.Context, table types.TableName) (*model.Report, error) {
	report, err := uc.project(ctx, table)
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.dispatch(ctx, func(ctx context.Context) error {
			return uc.EvaluateAlert(ctx, report)
		})
	}

	return report, nil
}

// ProjectAll projects every monitored table concurrently
func (uc *ForecastUseCase) ProjectAll(ctx context.Context) []*model.TableResult {
	tables := uc.Tables()
	results := make([]*model.TableResult, len(tables))

	var eg errgroup.Group
	for i, table := range tables {
		eg.Go(func() error {
			report, err := uc.Project(ctx, table)
			results[i] = &model.TableResult{Table: table, Report: report, Err: err}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// Advise projects a table and asks the advisor for mitigation advice
func (uc *ForecastUseCase) Advise(ctx context.Context, table types.TableName) (*model.Advice, error) {
	if uc.advisor == nil {
		return nil, goerr.Wrap(model.ErrAdvisorDisabled, "cannot advise", goerr.V("table", table))
	}

	report, err := uc.project(ctx, table)
	if err != nil {
		return nil, err
	}

	advice, err := uc.advisor.Advise(ctx, report)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate advice", goerr.V("table", table))
	}
	return advice, nil
}

// EvaluateAlert compares the report with the stored alert state of its table,
// notifies on escalation and records the new state. The state is left
// untouched if the notification fails so the next projection retries.
func (uc *ForecastUseCase) EvaluateAlert(ctx context.Context, report *model.Report) error {
	uc.alertMu.Lock()
	defer uc.alertMu.Unlock()

	prev, err := uc.repo.GetAlertState(ctx, report.Table)
	if err != nil {
		if !errors.Is(err, model.ErrAlertStateMissing) {
			return goerr.Wrap(err, "failed to get alert state", goerr.V("table", report.Table))
		}
		prev = nil
	}

	now := uc.now()
	state := &model.AlertState{
		Table:     report.Table,
		TierID:    report.Tier.ID,
		ReportID:  report.ID,
		UpdatedAt: now,
	}
	if prev != nil {
		state.NotifiedAt = prev.NotifiedAt
	}

	if model.ShouldNotify(prev, report.Tier) && uc.notifier != nil {
		if err := uc.notifier.NotifyEscalation(ctx, report, prev); err != nil {
			return goerr.Wrap(err, "failed to notify escalation", goerr.V("table", report.Table))
		}
		state.NotifiedAt = now
	}

	if err := uc.repo.PutAlertState(ctx, state); err != nil {
		return goerr.Wrap(err, "failed to save alert state", goerr.V("table", report.Table))
	}
	return nil
}

func (uc *ForecastUseCase) project(ctx context.Context, table types.TableName) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	if uc.config.FindTable(table) == nil {
		return nil, goerr.Wrap(model.ErrTableNotFound, "unknown table", goerr.V("table", table))
	}
	src, ok := uc.sources[table]
	if !ok {
		return nil, goerr.Wrap(model.ErrTableNotFound, "no sources for table", goerr.V("table", table))
	}

	pred, err := src.Prediction.Predict(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch prediction", goerr.V("table", table))
	}

	current, err := src.Current.CurrentMaxID(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch current max id", goerr.V("table", table))
	}

	if err := model.CheckDegenerate(current, pred.PredictedMaxIDIn30Days, uc.config.Ceiling); err != nil {
		logger.Warn("Degenerate projection input, treating table as safe",
			"table", table,
			"error", err,
		)
	}

	report := model.BuildReport(model.ProjectionInput{
		Table:          table,
		CurrentValue:   current,
		PredictedValue: pred.PredictedMaxIDIn30Days,
		Ceiling:        uc.config.Ceiling,
		FloorValue:     uc.config.FloorValue,
	})

	id, err := types.NewReportID()
	if err != nil {
		return nil, err
	}
	report.ID = id
	report.GeneratedAt = uc.now()

	logger.Debug("Projected table",
		"table", table,
		"current", current,
		"predicted", pred.PredictedMaxIDIn30Days,
		"outlook", report.Forecast.Outlook.String(),
		"tier", report.Tier.ID,
	)

	return &report, nil
}
