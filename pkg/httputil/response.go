package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/promoworks/catalog-api/pkg/errors"
	"github.com/promoworks/catalog-api/pkg/logger"
	"github.com/promoworks/catalog-api/pkg/validator"
)

// ErrorBody is the wire shape of every error response: {"error": <message>}.
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails the headers are already sent, so nothing can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteErrorMsg writes an {"error": <message>} body with the given status.
func WriteErrorMsg(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorBody{Error: message})
}

// WriteError maps an error to its HTTP status and writes the standard error
// body. AppError messages pass through verbatim; anything else is treated as an
// internal error, logged through the request-scoped logger when the
// RequestLogger middleware is mounted, and reported with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status == http.StatusInternalServerError {
			logInternal(r, err, fallback)
		}
		WriteErrorMsg(w, appErr.Status, appErr.Message)
		return
	}

	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logInternal(r, err, fallback)
		message = "an internal error occurred"
	}
	WriteErrorMsg(w, status, message)
}

// WriteValidationError writes a 400 with the first field-level message from a
// validation failure, e.g. {"error": "quantity must be a positive integer"}.
func WriteValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteErrorMsg(w, http.StatusBadRequest, valErr.First())
		return
	}
	WriteErrorMsg(w, http.StatusBadRequest, err.Error())
}

func logInternal(r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}
	l.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}
