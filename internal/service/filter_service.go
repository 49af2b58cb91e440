package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/insight-dash/customer-insights-backend/internal/cache"
	"github.com/insight-dash/customer-insights-backend/internal/models"
	"github.com/insight-dash/customer-insights-backend/internal/repository"
)

// FilterService resolves the distinct values of a filterable field, for
// populating filter dropdowns.
type FilterService interface {
	DistinctValues(ctx context.Context, field string) ([]string, error)
}

type filterService struct {
	customerRepo repository.CustomerRepository
	cache        cache.Cache
	cacheTTL     time.Duration
	logger       *slog.Logger
}

// NewFilterService creates a new filter service. The cache may be nil, in
// which case every lookup goes to the store.
func NewFilterService(
	customerRepo repository.CustomerRepository,
	valueCache cache.Cache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) FilterService {
	return &filterService{
		customerRepo: customerRepo,
		cache:        valueCache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// DistinctValues returns the sorted distinct values of one of the four
// enumerable filter fields. Any other field name is rejected at this
// boundary; raw field names never reach the store. Cache failures degrade
// to a store read and are never surfaced.
func (s *filterService) DistinctValues(ctx context.Context, field string) ([]string, error) {
	column, ok := models.FilterableColumn(field)
	if !ok {
		return nil, models.ErrInvalidField(fmt.Sprintf("invalid filter field %q", field))
	}

	cacheKey := "filters:" + field
	if s.cache != nil {
		data, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var values []string
			if err := json.Unmarshal(data, &values); err == nil {
				return values, nil
			}
			s.logger.Warn("discarding undecodable cache entry",
				slog.String("key", cacheKey),
			)
		} else if err != cache.ErrMiss {
			s.logger.Warn("cache read failed, falling back to store",
				slog.String("key", cacheKey),
				slog.String("error", err.Error()),
			)
		}
	}

	values, err := s.customerRepo.Distinct(ctx, column)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve distinct values for %s: %w", field, err)
	}
	sort.Strings(values)

	if s.cache != nil {
		if data, err := json.Marshal(values); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL); err != nil {
				s.logger.Warn("cache write failed",
					slog.String("key", cacheKey),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	return values, nil
}
