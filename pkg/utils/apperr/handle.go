package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
)

// Handle logs an application error. Failures of an upstream prediction source
// are expected operational conditions and logged as warnings.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)

	switch {
	case goerr.HasTag(err, model.ErrTagSourceUnavailable):
		logger.Warn("prediction source unavailable", "error", err)
	case errors.Is(err, model.ErrTableNotFound), errors.Is(err, model.ErrAdvisorDisabled):
		logger.Info("request rejected", "error", err)
	default:
		logger.Error("application error", "error", err)
	}
}
