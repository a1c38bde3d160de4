package interfaces

//go:generate moq -out mocks/prediction_mock.go -pkg mocks . PredictionSource CurrentSource

import (
	"context"

	"github.com/secmon-lab/idwatch/pkg/domain/model"
)

// PredictionSource fetches the 30-day-ahead max id prediction of a table.
// Failures carry model.ErrTagSourceUnavailable.
type PredictionSource interface {
	Predict(ctx context.Context) (*model.Prediction, error)
}

// CurrentSource provides the current max id of a table
type CurrentSource interface {
	CurrentMaxID(ctx context.Context) (int64, error)
}
