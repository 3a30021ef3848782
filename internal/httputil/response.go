// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/gamestats/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// MakeJSONResponse writes body as JSON with the given status code.
func MakeJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response using Gin.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, errorResponse := mapError(err)

	// Log the full error details (including wrapped errors)
	if logger != nil {
		level := slog.LevelError
		if statusCode < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// errorStatus maps wire codes to status codes and client-safe messages. Codes missing
// here are internal errors.
var errorStatus = map[string]struct {
	status  int
	message string
}{
	"not_found": {http.StatusNotFound, "The requested resource was not found"},
	"conflict":  {http.StatusConflict, "A conflict occurred with existing data"},
	// Unknown username and wrong password must produce byte-identical responses.
	"invalid_credentials": {http.StatusBadRequest, "Invalid username or password"},
	"session_invalid":     {http.StatusUnauthorized, "Session invalid. Login again."},
	"unauthorized":        {http.StatusUnauthorized, "Authentication is required"},
	"forbidden":           {http.StatusForbidden, "You don't have permission to access this resource"},
}

// mapError translates an error chain into a status code and a client-safe response body.
func mapError(err error) (int, ErrorResponse) {
	code := apperrors.Code(err)

	// Validation messages are built from request input and are safe to echo.
	if code == "invalid_input" {
		return http.StatusUnprocessableEntity, ErrorResponse{Error: code, Message: err.Error()}
	}

	entry, ok := errorStatus[code]
	if !ok {
		return http.StatusInternalServerError, ErrorResponse{
			Error:   apperrors.CodeInternal,
			Message: "An internal error occurred",
		}
	}
	return entry.status, ErrorResponse{Error: code, Message: entry.message}
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters using Gin.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	}

	c.JSON(http.StatusBadRequest, errorResponse)
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for validation errors using Gin.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	}

	c.JSON(http.StatusUnprocessableEntity, errorResponse)
}
