package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/insight-dash/customer-insights-backend/internal/models"
	"github.com/insight-dash/customer-insights-backend/internal/query"
	"github.com/insight-dash/customer-insights-backend/internal/repository"
)

// CustomerService handles paged customer listing
type CustomerService interface {
	List(ctx context.Context, params query.Params) (*CustomerListResult, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// List builds a query plan from the raw parameters and runs the page fetch
// and the total count as two concurrent reads. Both are read-only with no
// ordering dependency, so neither waits on the other.
func (s *customerService) List(ctx context.Context, params query.Params) (*CustomerListResult, error) {
	plan := query.Build(params)

	var (
		customers []*models.Customer
		total     int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.customerRepo.List(gctx, plan)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.customerRepo.Count(gctx, plan)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to list customers",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &CustomerListResult{
		Customers:  customers,
		Pagination: models.NewPaginationResult(plan.Page(), plan.PageSize(), total),
	}, nil
}
