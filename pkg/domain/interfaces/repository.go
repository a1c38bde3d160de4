package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
)

// Repository defines the interface for alert state persistence
type Repository interface {
	// GetAlertState returns model.ErrAlertStateMissing if the table has no state yet
	GetAlertState(ctx context.Context, table types.TableName) (*model.AlertState, error)
	PutAlertState(ctx context.Context, state *model.AlertState) error
	ListAlertStates(ctx context.Context) ([]*model.AlertState, error)

	// Close closes the repository connection
	Close() error
}
