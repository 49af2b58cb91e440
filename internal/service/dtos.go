package service

import (
	"github.com/insight-dash/customer-insights-backend/internal/models"
)

// CustomerListResult is the outcome of a paged list query.
type CustomerListResult struct {
	Customers  []*models.Customer
	Pagination models.PaginationResult
}

// LoginTrendResult is the outcome of an hourly login trend query.
// DefaultDate is the resolved target date in ISO form, or "" when the store
// is empty and no target date could be determined.
type LoginTrendResult struct {
	Trends      []models.HourlyLoginCount
	DefaultDate string
}
