package httpapi

import (
	"encoding/json"
	"net/http"

	"chartd/internal/chart"
	"chartd/internal/dashboard"
	"chartd/internal/series"
	"chartd/internal/theme"
	"chartd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps well-known dashboard and chart errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case dashboard.IsChartNotFound(err), dashboard.IsThemeNotFound(err):
		return http.StatusNotFound
	case chart.IsEmptySeries(err), chart.IsNoMembers(err), chart.IsNoGroups(err), series.IsUnknownKind(err), theme.IsNoName(err):
		return http.StatusBadRequest
	case dashboard.IsChartExists(err):
		return http.StatusConflict
	case chart.IsDisposed(err):
		return http.StatusGone
	case dashboard.IsUnsupported(err):
		return http.StatusNotImplemented
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeServiceError writes err with its mapped status.
func writeServiceError(w http.ResponseWriter, err error) {
	writeJSONError(w, statusFor(err), err.Error())
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// writeJSON writes v as a 200 JSON response.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
