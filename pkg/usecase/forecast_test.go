package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
	"github.com/secmon-lab/idwatch/pkg/repository"
	"github.com/secmon-lab/idwatch/pkg/service/prediction"
	"github.com/secmon-lab/idwatch/pkg/usecase"
)

var fixedNow = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

func newConfig(names ...types.TableName) *model.MonitorConfig {
	cfg := &model.MonitorConfig{
		Ceiling:    model.Int32Ceiling,
		FloorValue: model.DefaultFloorValue,
	}
	for _, name := range names {
		cfg.Tables = append(cfg.Tables, model.TableConfig{
			Name:          name,
			PredictionURL: "http://predictor.internal/" + name.String(),
			CurrentMaxID:  1,
		})
	}
	return cfg
}

func staticSources(current, predicted int64) prediction.Sources {
	return prediction.Sources{
		Prediction: &mocks.PredictionSourceMock{
			PredictFunc: func(ctx context.Context) (*model.Prediction, error) {
				return &model.Prediction{PredictedMaxIDIn30Days: predicted}, nil
			},
		},
		Current: prediction.Static(current),
	}
}

func newUseCase(cfg *model.MonitorConfig, sources map[types.TableName]prediction.Sources, repo interfaces.Repository, opts ...usecase.ForecastOption) *usecase.ForecastUseCase {
	opts = append([]usecase.ForecastOption{
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithDispatcher(usecase.SyncDispatcher),
	}, opts...)
	return usecase.NewForecast(cfg, sources, repo, opts...)
}

func TestForecast_Project(t *testing.T) {
	ctx := context.Background()

	t.Run("builds a stamped report", func(t *testing.T) {
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{
			"orders": staticSources(1_900_000_000, 2_200_000_000),
		}, repository.NewMemory())

		report, err := uc.Project(ctx, "orders")
		gt.NoError(t, err)
		gt.Equal(t, types.TableName("orders"), report.Table)
		gt.NotEqual(t, types.ReportID(""), report.ID)
		gt.Equal(t, fixedNow, report.GeneratedAt)
		gt.Equal(t, types.TierHigh, report.Tier.ID)

		days, ok := report.Forecast.Outlook.Days()
		gt.True(t, ok)
		gt.Equal(t, 24, days)
		gt.Equal(t, model.SeriesLength, len(report.Series))
	})

	t.Run("unknown table", func(t *testing.T) {
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{
			"orders": staticSources(1, 2),
		}, repository.NewMemory())

		_, err := uc.Project(ctx, "users")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrTableNotFound))
	})

	t.Run("prediction source failure keeps its tag", func(t *testing.T) {
		src := prediction.Sources{
			Prediction: &mocks.PredictionSourceMock{
				PredictFunc: func(ctx context.Context) (*model.Prediction, error) {
					return nil, goerr.New("connection refused", goerr.T(model.ErrTagSourceUnavailable))
				},
			},
			Current: prediction.Static(1_000),
		}
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{"orders": src}, repository.NewMemory())

		_, err := uc.Project(ctx, "orders")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagSourceUnavailable))
	})

	t.Run("current source failure", func(t *testing.T) {
		src := prediction.Sources{
			Prediction: staticSources(0, 2_000).Prediction,
			Current: &mocks.CurrentSourceMock{
				CurrentMaxIDFunc: func(ctx context.Context) (int64, error) {
					return 0, goerr.New("timeout", goerr.T(model.ErrTagSourceUnavailable))
				},
			},
		}
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{"orders": src}, repository.NewMemory())

		_, err := uc.Project(ctx, "orders")
		gt.True(t, goerr.HasTag(err, model.ErrTagSourceUnavailable))
	})

	t.Run("degenerate input is safe", func(t *testing.T) {
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{
			"orders": staticSources(2_200_000_000, 2_200_000_000),
		}, repository.NewMemory())

		report, err := uc.Project(ctx, "orders")
		gt.NoError(t, err)
		gt.True(t, report.Forecast.Outlook.IsSafe())
		gt.Equal(t, types.TierLow, report.Tier.ID)
	})
}

func TestForecast_ProjectAll(t *testing.T) {
	failing := prediction.Sources{
		Prediction: &mocks.PredictionSourceMock{
			PredictFunc: func(ctx context.Context) (*model.Prediction, error) {
				return nil, goerr.New("bad gateway", goerr.T(model.ErrTagSourceUnavailable))
			},
		},
		Current: prediction.Static(1_000),
	}
	uc := newUseCase(newConfig("orders", "users", "events"), map[types.TableName]prediction.Sources{
		"orders": staticSources(1_900_000_000, 2_200_000_000),
		"users":  failing,
		"events": staticSources(1_000_000, 1_100_000),
	}, repository.NewMemory())

	results := uc.ProjectAll(context.Background())
	gt.Equal(t, 3, len(results))

	gt.Equal(t, types.TableName("orders"), results[0].Table)
	gt.NoError(t, results[0].Err)
	gt.Equal(t, types.TierHigh, results[0].Report.Tier.ID)

	gt.Equal(t, types.TableName("users"), results[1].Table)
	gt.Error(t, results[1].Err)
	gt.V(t, results[1].Report).Nil()

	gt.Equal(t, types.TableName("events"), results[2].Table)
	gt.Equal(t, types.TierLow, results[2].Report.Tier.ID)
}

func TestForecast_Alerting(t *testing.T) {
	ctx := context.Background()

	t.Run("first alertable projection notifies and records state", func(t *testing.T) {
		repo := repository.NewMemory()
		notifier := &mocks.NotifierMock{
			NotifyEscalationFunc: func(ctx context.Context, report *model.Report, previous *model.AlertState) error {
				gt.V(t, previous).Nil()
				return nil
			},
		}
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{
			"orders": staticSources(1_900_000_000, 2_200_000_000),
		}, repo, usecase.WithNotifier(notifier))

		report, err := uc.Project(ctx, "orders")
		gt.NoError(t, err)
		gt.Equal(t, 1, len(notifier.NotifyEscalationCalls()))

		state, err := repo.GetAlertState(ctx, "orders")
		gt.NoError(t, err)
		gt.Equal(t, types.TierHigh, state.TierID)
		gt.Equal(t, report.ID, state.ReportID)
		gt.Equal(t, fixedNow, state.NotifiedAt)
	})

	t.Run("same tier does not notify twice", func(t *testing.T) {
		repo := repository.NewMemory()
		notifier := &mocks.NotifierMock{
			NotifyEscalationFunc: func(ctx context.Context, report *model.Report, previous *model.AlertState) error {
				return nil
			},
		}
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{
			"orders": staticSources(1_900_000_000, 2_200_000_000),
		}, repo, usecase.WithNotifier(notifier))

		_, err := uc.Project(ctx, "orders")
		gt.NoError(t, err)
		_, err = uc.Project(ctx, "orders")
		gt.NoError(t, err)
		gt.Equal(t, 1, len(notifier.NotifyEscalationCalls()))
	})

	t.Run("escalation from moderate to critical notifies", func(t *testing.T) {
		repo := repository.NewMemory()
		gt.NoError(t, repo.PutAlertState(ctx, &model.AlertState{
			Table:  "orders",
			TierID: types.TierModerate,
		}))

		notifier := &mocks.NotifierMock{
			NotifyEscalationFunc: func(ctx context.Context, report *model.Report, previous *model.AlertState) error {
				gt.Equal(t, types.TierModerate, previous.TierID)
				gt.Equal(t, types.TierCritical, report.Tier.ID)
				return nil
			},
		}
		// 30 * (2147483647 - 2100000000) / (2500000000 - 2100000000) = 3 days
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{
			"orders": staticSources(2_100_000_000, 2_500_000_000),
		}, repo, usecase.WithNotifier(notifier))

		_, err := uc.Project(ctx, "orders")
		gt.NoError(t, err)
		gt.Equal(t, 1, len(notifier.NotifyEscalationCalls()))
	})

	t.Run("de-escalation updates state without notifying", func(t *testing.T) {
		repo := repository.NewMemory()
		notifiedAt := fixedNow.Add(-48 * time.Hour)
		gt.NoError(t, repo.PutAlertState(ctx, &model.AlertState{
			Table:      "orders",
			TierID:     types.TierCritical,
			NotifiedAt: notifiedAt,
		}))

		notifier := &mocks.NotifierMock{}
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{
			"orders": staticSources(1_000_000, 1_100_000),
		}, repo, usecase.WithNotifier(notifier))

		_, err := uc.Project(ctx, "orders")
		gt.NoError(t, err)
		gt.Equal(t, 0, len(notifier.NotifyEscalationCalls()))

		state, err := repo.GetAlertState(ctx, "orders")
		gt.NoError(t, err)
		gt.Equal(t, types.TierLow, state.TierID)
		gt.Equal(t, notifiedAt, state.NotifiedAt)
	})

	t.Run("failed notification leaves state untouched", func(t *testing.T) {
		repo := &mocks.RepositoryMock{
			GetAlertStateFunc: func(ctx context.Context, table types.TableName) (*model.AlertState, error) {
				return nil, goerr.Wrap(model.ErrAlertStateMissing, "no state")
			},
			PutAlertStateFunc: func(ctx context.Context, state *model.AlertState) error {
				return nil
			},
		}
		notifier := &mocks.NotifierMock{
			NotifyEscalationFunc: func(ctx context.Context, report *model.Report, previous *model.AlertState) error {
				return goerr.New("channel_not_found")
			},
		}
		uc := newUseCase(newConfig("orders"), nil, repo, usecase.WithNotifier(notifier))

		report := model.BuildReport(model.ProjectionInput{
			Table:          "orders",
			CurrentValue:   1_900_000_000,
			PredictedValue: 2_200_000_000,
		})
		err := uc.EvaluateAlert(ctx, &report)
		gt.Error(t, err)
		gt.Equal(t, 0, len(repo.PutAlertStateCalls()))
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		repo := &mocks.RepositoryMock{
			GetAlertStateFunc: func(ctx context.Context, table types.TableName) (*model.AlertState, error) {
				return nil, goerr.New("firestore unavailable")
			},
		}
		uc := newUseCase(newConfig("orders"), nil, repo, usecase.WithNotifier(&mocks.NotifierMock{}))

		report := model.BuildReport(model.ProjectionInput{Table: "orders", CurrentValue: 1, PredictedValue: 2})
		gt.Error(t, uc.EvaluateAlert(ctx, &report))
	})

	t.Run("no notifier skips alert evaluation", func(t *testing.T) {
		repo := &mocks.RepositoryMock{}
		uc := newUseCase(newConfig("orders"), map[types.TableName]prediction.Sources{
			"orders": staticSources(1_900_000_000, 2_200_000_000),
		}, repo)

		_, err := uc.Project(ctx, "orders")
		gt.NoError(t, err)
		gt.Equal(t, 0, len(repo.GetAlertStateCalls()))
	})
}

func TestForecast_Advise(t *testing.T) {
	ctx := context.Background()
	sources := map[types.TableName]prediction.Sources{
		"orders": staticSources(1_900_000_000, 2_200_000_000),
	}

	t.Run("disabled without advisor", func(t *testing.T) {
		uc := newUseCase(newConfig("orders"), sources, repository.NewMemory())
		_, err := uc.Advise(ctx, "orders")
		gt.True(t, errors.Is(err, model.ErrAdvisorDisabled))
	})

	t.Run("passes the projected report to the advisor", func(t *testing.T) {
		advisor := &mocks.AdvisorMock{
			AdviseFunc: func(ctx context.Context, report *model.Report) (*model.Advice, error) {
				gt.Equal(t, types.TierHigh, report.Tier.ID)
				return &model.Advice{
					Summary:         "Migrate to BIGINT",
					RecommendedStep: "Migrate to BIGINT",
				}, nil
			},
		}
		uc := newUseCase(newConfig("orders"), sources, repository.NewMemory(), usecase.WithAdvisor(advisor))

		advice, err := uc.Advise(ctx, "orders")
		gt.NoError(t, err)
		gt.Equal(t, "Migrate to BIGINT", advice.Summary)
		gt.Equal(t, 1, len(advisor.AdviseCalls()))
	})

	t.Run("advisor failure", func(t *testing.T) {
		advisor := &mocks.AdvisorMock{
			AdviseFunc: func(ctx context.Context, report *model.Report) (*model.Advice, error) {
				return nil, goerr.New("quota exceeded")
			},
		}
		uc := newUseCase(newConfig("orders"), sources, repository.NewMemory(), usecase.WithAdvisor(advisor))

		_, err := uc.Advise(ctx, "orders")
		gt.Error(t, err)
	})
}
