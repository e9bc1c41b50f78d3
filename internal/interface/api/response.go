package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"itinerary-service/internal/domain/entity"
)

// Error codes returned in error bodies
const (
	CodeInvalidInput          = "invalid_input"
	CodeNotFound              = "not_found"
	CodeRepositoryUnavailable = "repository_unavailable"
	CodeInternal              = "internal"
)

// ErrorBody is the payload of an error response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorBody under "error"
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// classifyError maps domain errors to a status, code and client-safe message
func classifyError(err error) (int, string, string) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, CodeInvalidInput, verr.Error()
	case errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidInput, err.Error()
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, err.Error()
	case errors.Is(err, entity.ErrRepositoryUnavailable):
		return http.StatusServiceUnavailable, CodeRepositoryUnavailable, "schedule store is unavailable"
	default:
		return http.StatusInternalServerError, CodeInternal, "internal error"
	}
}
