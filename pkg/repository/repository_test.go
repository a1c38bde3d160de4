package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
	"github.com/secmon-lab/idwatch/pkg/repository"
)

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("PutAlertState", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		now := time.Now()
		state := &model.AlertState{
			Table:      types.TableName(fmt.Sprintf("orders_%d", now.UnixNano())),
			TierID:     types.TierHigh,
			ReportID:   "report-1",
			UpdatedAt:  now,
			NotifiedAt: now,
		}

		gt.NoError(t, repo.PutAlertState(ctx, state))

		retrieved, err := repo.GetAlertState(ctx, state.Table)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.Table, state.Table)
		gt.Equal(t, retrieved.TierID, state.TierID)
		gt.Equal(t, retrieved.ReportID, state.ReportID)
		// Timestamp comparison with tolerance for storage precision
		gt.True(t, state.UpdatedAt.Sub(retrieved.UpdatedAt).Abs() < time.Second)
	})

	t.Run("PutAlertState_Overwrite", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		table := types.TableName(fmt.Sprintf("events_%d", time.Now().UnixNano()))

		gt.NoError(t, repo.PutAlertState(ctx, &model.AlertState{Table: table, TierID: types.TierModerate}))
		gt.NoError(t, repo.PutAlertState(ctx, &model.AlertState{Table: table, TierID: types.TierCritical}))

		retrieved, err := repo.GetAlertState(ctx, table)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.TierID, types.TierCritical)
	})

	t.Run("PutAlertState_Invalid", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.PutAlertState(ctx, nil))
		gt.Error(t, repo.PutAlertState(ctx, &model.AlertState{TierID: types.TierHigh}))
	})

	t.Run("GetAlertState_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		_, err := repo.GetAlertState(ctx, types.TableName(fmt.Sprintf("missing_%d", time.Now().UnixNano())))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrAlertStateMissing))
	})

	t.Run("ListAlertStates", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		suffix := time.Now().UnixNano()
		b := types.TableName(fmt.Sprintf("b_%d", suffix))
		a := types.TableName(fmt.Sprintf("a_%d", suffix))
		gt.NoError(t, repo.PutAlertState(ctx, &model.AlertState{Table: b, TierID: types.TierLow}))
		gt.NoError(t, repo.PutAlertState(ctx, &model.AlertState{Table: a, TierID: types.TierHigh}))

		states, err := repo.ListAlertStates(ctx)
		gt.NoError(t, err)

		var found []types.TableName
		for _, s := range states {
			if s.Table == a || s.Table == b {
				found = append(found, s.Table)
			}
		}
		gt.Equal(t, found, []types.TableName{a, b})
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	state := &model.AlertState{Table: "orders", TierID: types.TierHigh}
	gt.NoError(t, repo.PutAlertState(ctx, state))
	state.TierID = types.TierCritical

	retrieved, err := repo.GetAlertState(ctx, "orders")
	gt.NoError(t, err)
	gt.Equal(t, retrieved.TierID, types.TierHigh)
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err)
		return repo
	})
}
