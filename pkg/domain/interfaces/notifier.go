package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier Advisor

import (
	"context"

	"github.com/secmon-lab/idwatch/pkg/domain/model"
)

// Notifier delivers overflow alerts to operators
type Notifier interface {
	NotifyEscalation(ctx context.Context, report *model.Report, previous *model.AlertState) error
}

// Advisor produces free-form mitigation advice for a report
type Advisor interface {
	Advise(ctx context.Context, report *model.Report) (*model.Advice, error)
}
