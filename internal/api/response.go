package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "augebit/internal/errors"
)

// failureField selects which JSON key carries the failure text.
type failureField int

const (
	messageField failureField = iota
	errorField
)

// writeJSON marshals v to JSON and writes it with the given status code. If
// marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Erro interno no servidor"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeServiceError maps a service error onto the failure body. Errors that
// are not *HTTPError are treated as internal. Only server failures carry
// details; client mistakes get the message alone.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, r *http.Request, err error, field failureField) {
	var httpErr *apperrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = apperrors.ErrInternal("Erro interno no servidor", err)
	}

	if httpErr.Code >= http.StatusInternalServerError {
		logger.Error("request failed",
			"path", r.URL.Path,
			"error", err,
		)
	}

	resp := FailureResponse{Success: false}
	if httpErr.Code >= http.StatusInternalServerError {
		resp.Details = httpErr.Details()
	}
	if field == errorField {
		resp.Error = httpErr.Message
	} else {
		resp.Message = httpErr.Message
	}
	writeJSON(w, httpErr.Code, resp)
}
