package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/insight-dash/customer-insights-backend/internal/query"
	"github.com/insight-dash/customer-insights-backend/internal/service"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService  service.CustomerService
	analyticsService service.AnalyticsService
	filterService    service.FilterService
	logger           *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	customerService service.CustomerService,
	analyticsService service.AnalyticsService,
	filterService service.FilterService,
	logger *slog.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		customerService:  customerService,
		analyticsService: analyticsService,
		filterService:    filterService,
		logger:           logger,
	}
}

// ListCustomers handles GET /api/customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Unparseable numbers fall back to zero; the plan builder applies
	// defaults and clamps.
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	params := query.Params{
		Page:            page,
		Limit:           limit,
		SortBy:          q.Get("sortBy"),
		SortOrder:       q.Get("sortOrder"),
		Search:          q.Get("search"),
		Gender:          q.Get("gender"),
		LocationType:    q.Get("locationType"),
		BrandDevice:     q.Get("brandDevice"),
		DigitalInterest: q.Get("digitalInterest"),
	}

	result, err := h.customerService.List(r.Context(), params)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, ListResponse{
		Success:    true,
		Data:       result.Customers,
		Pagination: result.Pagination,
	})
}

// GenderSummary handles GET /api/customers/summary/gender
func (h *CustomerHandler) GenderSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.GenderSummary(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, summary)
}

// GenderAgeSummary handles GET /api/customers/summary/gender-age
func (h *CustomerHandler) GenderAgeSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.GenderAgeSummary(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, summary)
}

// BrandDeviceSummary handles GET /api/customers/summary/brand-device
func (h *CustomerHandler) BrandDeviceSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.BrandDeviceSummary(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, summary)
}

// LoginTrends handles GET /api/customers/trends/login
func (h *CustomerHandler) LoginTrends(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.LoginTrends(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	var defaultDate *string
	if result.DefaultDate != "" {
		defaultDate = &result.DefaultDate
		w.Header().Set("X-Default-Date", result.DefaultDate)
	}

	respondJSON(w, http.StatusOK, TrendResponse{
		Success:     true,
		Data:        result.Trends,
		DefaultDate: defaultDate,
	})
}

// FilterValues handles GET /api/customers/filters/{field}
func (h *CustomerHandler) FilterValues(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")

	values, err := h.filterService.DistinctValues(r.Context(), field)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, values)
}
