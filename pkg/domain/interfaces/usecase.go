package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Forecast

import (
	"context"

	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
)

// Forecast defines the forecast use case consumed by controllers
type Forecast interface {
	// Tables returns the monitored table names
	Tables() []types.TableName

	// Project fetches the latest prediction of a table and runs the projection engine
	Project(ctx context.Context, table types.TableName) (*model.Report, error)

	// ProjectAll projects every monitored table. A failing table does not stop the others.
	ProjectAll(ctx context.Context) []*model.TableResult

	// Advise generates mitigation advice for the latest projection of a table
	Advise(ctx context.Context, table types.TableName) (*model.Advice, error)
}
