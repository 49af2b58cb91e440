package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/insight-dash/customer-insights-backend/internal/models"
)

// handleError maps service errors to HTTP responses
func handleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	// Check for custom AppError
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := mapErrorCodeToHTTPStatus(appErr.Code)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("code", appErr.Code),
				slog.String("error", err.Error()),
			)
			respondError(w, status, "Server Error", appErr.Message)
			return
		}
		respondError(w, status, appErr.Message, appErr.Code)
		return
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not Found", err.Error())

	default:
		// Log internal errors but don't expose details to client
		logger.Error("internal server error",
			slog.String("error", err.Error()),
		)
		respondError(w, http.StatusInternalServerError, "Server Error", "An unexpected error occurred")
	}
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case "INVALID_INPUT", "INVALID_FIELD":
		return http.StatusBadRequest
	case "NOT_FOUND":
		return http.StatusNotFound
	case "STORE_UNAVAILABLE":
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
