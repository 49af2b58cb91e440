package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/insight-dash/customer-insights-backend/internal/analytics"
	"github.com/insight-dash/customer-insights-backend/internal/models"
	"github.com/insight-dash/customer-insights-backend/internal/normalize"
	"github.com/insight-dash/customer-insights-backend/internal/repository"
)

// AnalyticsService computes the four customer aggregations. Results are
// recomputed from the store on every call.
type AnalyticsService interface {
	GenderSummary(ctx context.Context) ([]models.GenderCount, error)
	GenderAgeSummary(ctx context.Context) ([]models.GenderAgeCount, error)
	BrandDeviceSummary(ctx context.Context) ([]models.BrandCount, error)

	// LoginTrends buckets logins by hour for one target date. An empty
	// isoDate selects the most recently stored date; an empty store
	// yields an empty result with no default date.
	LoginTrends(ctx context.Context, isoDate string) (*LoginTrendResult, error)
}

type analyticsService struct {
	customerRepo repository.CustomerRepository
	now          func() time.Time
	logger       *slog.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) AnalyticsService {
	return &analyticsService{
		customerRepo: customerRepo,
		now:          time.Now,
		logger:       logger,
	}
}

// GenderSummary groups all records by gender
func (s *analyticsService) GenderSummary(ctx context.Context) ([]models.GenderCount, error) {
	records, err := s.customerRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute gender summary: %w", err)
	}

	return analytics.GenderCounts(records), nil
}

// GenderAgeSummary groups all records by gender and age bucket
func (s *analyticsService) GenderAgeSummary(ctx context.Context) ([]models.GenderAgeCount, error) {
	records, err := s.customerRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute gender-age summary: %w", err)
	}

	return analytics.GenderAgeCounts(records, s.now().Year()), nil
}

// BrandDeviceSummary ranks brands by record count
func (s *analyticsService) BrandDeviceSummary(ctx context.Context) ([]models.BrandCount, error) {
	records, err := s.customerRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute brand summary: %w", err)
	}

	return analytics.BrandCounts(records), nil
}

// LoginTrends resolves the target date, fetches that date's records, and
// buckets them by normalized hour of day
func (s *analyticsService) LoginTrends(ctx context.Context, isoDate string) (*LoginTrendResult, error) {
	var storeDate, defaultDate string

	if isoDate != "" {
		converted, err := normalize.StoreDate(isoDate)
		if err != nil {
			return nil, models.ErrInvalidInput(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", isoDate))
		}
		storeDate = converted
		defaultDate = isoDate
	} else {
		maxDate, err := s.customerRepo.MaxLoginDate(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve trend date: %w", err)
		}
		if maxDate == "" {
			// Empty store: no default date, empty trend.
			return &LoginTrendResult{Trends: []models.HourlyLoginCount{}}, nil
		}

		storeDate = maxDate
		iso, err := normalize.ISODate(maxDate)
		if err != nil {
			// A malformed stored date still selects records; it just
			// cannot be reported back in ISO form.
			s.logger.Warn("stored login date is not convertible to ISO form",
				slog.String("login_date", maxDate),
			)
		} else {
			defaultDate = iso
		}
	}

	records, err := s.customerRepo.ListByLoginDate(ctx, storeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to compute login trends: %w", err)
	}

	return &LoginTrendResult{
		Trends:      analytics.HourlyLogins(records),
		DefaultDate: defaultDate,
	}, nil
}
