package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexthire/auth-service/internal/domain"
)

// Body is the uniform result shape of every API call:
// {"success": bool, "message": string, "data": any?}. Failures also carry a
// stable machine code.
type Body struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      any               `json:"data,omitempty"`
	Code      string            `json:"code,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success writes {"success":true,"message":msg,"data":data}.
func Success(w http.ResponseWriter, status int, msg string, data any) {
	WriteJSON(w, status, Body{Success: true, Message: msg, Data: data})
}

func OK(w http.ResponseWriter, msg string, data any) {
	Success(w, http.StatusOK, msg, data)
}

func Created(w http.ResponseWriter, msg string, data any) {
	Success(w, http.StatusCreated, msg, data)
}

// WriteError converts an error into a failed result. Domain errors keep their
// message and map Kind to status; anything else is a 500 without details.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	body := Body{
		Success:   false,
		Code:      "internal_error",
		Message:   "internal error",
		RequestID: RequestIDFromContext(r),
	}

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromKind(de.Kind)
		body.Code = de.Code
		body.Message = de.Message
		body.Meta = de.Meta
	}

	WriteJSON(w, status, body)
}

// statusFromKind maps domain error kinds to HTTP status codes.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	case domain.KindInfrastructure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
