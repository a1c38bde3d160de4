package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
	"github.com/secmon-lab/idwatch/pkg/utils/apperr"
)

type handler struct {
	forecast interfaces.Forecast
}

type tableForecast struct {
	Table  types.TableName `json:"table"`
	Report *model.Report   `json:"report,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "idwatch",
	})
}

func (h *handler) listTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"tables": h.forecast.Tables(),
	})
}

func (h *handler) getForecast(w http.ResponseWriter, r *http.Request) {
	table, ok := tableParam(w, r)
	if !ok {
		return
	}

	report, err := h.forecast.Project(r.Context(), table)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, report)
}

func (h *handler) getAdvice(w http.ResponseWriter, r *http.Request) {
	table, ok := tableParam(w, r)
	if !ok {
		return
	}

	advice, err := h.forecast.Advise(r.Context(), table)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, advice)
}

func (h *handler) listForecasts(w http.ResponseWriter, r *http.Request) {
	results := h.forecast.ProjectAll(r.Context())

	forecasts := make([]tableForecast, 0, len(results))
	for _, result := range results {
		item := tableForecast{Table: result.Table, Report: result.Report}
		if result.Err != nil {
			apperr.Handle(r.Context(), result.Err)
			item.Error = errorMessage(result.Err)
		}
		forecasts = append(forecasts, item)
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"forecasts": forecasts,
	})
}

func (h *handler) listTiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"tiers": model.Tiers(),
	})
}

func (h *handler) listMitigations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"mitigations": model.Mitigations(),
	})
}

func tableParam(w http.ResponseWriter, r *http.Request) (types.TableName, bool) {
	table := types.TableName(chi.URLParam(r, "table"))
	if err := table.Validate(); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return "", false
	}
	return table, true
}

// handleError maps application errors to HTTP responses. A failing
// prediction source is answered with 502 and a fallback flag so the
// dashboard can keep rendering its last known state.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)

	switch {
	case errors.Is(err, model.ErrTableNotFound):
		writeError(w, r, err, http.StatusNotFound)
	case errors.Is(err, model.ErrAdvisorDisabled):
		writeError(w, r, err, http.StatusNotImplemented)
	case goerr.HasTag(err, model.ErrTagSourceUnavailable):
		writeJSON(w, r, http.StatusBadGateway, map[string]any{
			"error":    errorMessage(err),
			"fallback": true,
		})
	default:
		writeError(w, r, err, http.StatusInternalServerError)
	}
}

func errorMessage(err error) string {
	if goErr := goerr.Unwrap(err); goErr != nil {
		return goErr.Error()
	}
	return err.Error()
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	writeJSON(w, r, status, map[string]string{
		"error": errorMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}
