package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/mchmarny/recipe-api/pkg/errors"
	"github.com/mchmarny/recipe-api/pkg/serializer"
)

// ErrorResponse is the error payload shape returned by every endpoint.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response with the given status and code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apierrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr translates an error into a structured response. A
// StructuredError maps its code to an HTTP status and carries its own
// message and context; anything else becomes a 500 with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	var structured *apierrors.StructuredError
	if errors.As(err, &structured) {
		merged := details
		if len(structured.Context) > 0 {
			merged = make(map[string]any, len(structured.Context)+len(details))
			for k, v := range structured.Context {
				merged[k] = v
			}
			for k, v := range details {
				merged[k] = v
			}
		}
		status := statusFromCode(structured.Code)
		WriteError(w, r, status, structured.Code, structured.Message, isRetryable(status), merged)
		return
	}

	WriteError(w, r, http.StatusInternalServerError, apierrors.ErrCodeInternal,
		fallbackMessage, true, details)
}

// statusFromCode maps structured error codes to HTTP statuses.
func statusFromCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apierrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apierrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// isRetryable reports whether a status represents a transient condition.
func isRetryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusInternalServerError:
		return true
	default:
		return false
	}
}
