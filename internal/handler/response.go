package handler

import (
	"encoding/json"
	"net/http"

	"github.com/insight-dash/customer-insights-backend/internal/models"
)

// SuccessResponse is the standard success envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ListResponse is the success envelope for paged list results
type ListResponse struct {
	Success    bool                    `json:"success"`
	Data       interface{}             `json:"data"`
	Pagination models.PaginationResult `json:"pagination"`
}

// TrendResponse is the success envelope for the login trend. DefaultDate is
// null when the store is empty and no target date could be resolved.
type TrendResponse struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data"`
	DefaultDate *string     `json:"defaultDate"`
}

// FailureResponse is the standard error envelope
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// If encoding fails, we can't do much at this point
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// respondError writes a standard error response
func respondError(w http.ResponseWriter, status int, message, detail string) {
	respondJSON(w, status, FailureResponse{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// respondSuccess writes a successful response with 200 OK
func respondSuccess(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data})
}
