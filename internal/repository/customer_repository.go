package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/insight-dash/customer-insights-backend/internal/models"
	"github.com/insight-dash/customer-insights-backend/internal/query"
)

// customerColumns is the select list shared by every record query.
const customerColumns = `sequence_number, location_name, login_date, login_hour,
		name, age, gender, email, phone, brand_device, digital_interest, location_type`

// CustomerRepository defines read-only access to the customer record store.
type CustomerRepository interface {
	// List returns one page of records matching the plan's predicate, in
	// the plan's sort order.
	List(ctx context.Context, plan *query.Plan) ([]*models.Customer, error)

	// Count returns the total number of records matching the plan's
	// predicate, independent of the page window.
	Count(ctx context.Context, plan *query.Plan) (int64, error)

	// All returns every record, in sequence order.
	All(ctx context.Context) ([]*models.Customer, error)

	// ListByLoginDate returns every record whose stored login date equals
	// the given store-encoded date string exactly.
	ListByLoginDate(ctx context.Context, loginDate string) ([]*models.Customer, error)

	// MaxLoginDate returns the lexicographically greatest stored login
	// date, or "" when the store is empty. This is a string comparison,
	// not a calendar one: it matches calendar order only when stored
	// dates are consistently padded, which this dataset's are not. Kept
	// for compatibility with the data as stored.
	MaxLoginDate(ctx context.Context) (string, error)

	// Distinct returns the distinct non-null, non-empty values of a store
	// column. Callers must pass a column from the schema field table,
	// never a raw request string.
	Distinct(ctx context.Context, column string) ([]string, error)
}

// customerRepository implements CustomerRepository using PostgreSQL
type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// List returns one page of matching records
func (r *customerRepository) List(ctx context.Context, plan *query.Plan) ([]*models.Customer, error) {
	where, args := plan.Where()

	q := `SELECT ` + customerColumns + ` FROM customers` + where + plan.OrderBy()
	q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, plan.PageSize(), plan.Offset())

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, models.ErrStoreFailure(fmt.Errorf("list customers: %w", err))
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Count returns the total number of matching records
func (r *customerRepository) Count(ctx context.Context, plan *query.Plan) (int64, error) {
	where, args := plan.Where()

	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`+where, args...).Scan(&total)
	if err != nil {
		return 0, models.ErrStoreFailure(fmt.Errorf("count customers: %w", err))
	}

	return total, nil
}

// All returns every record for in-memory aggregation
func (r *customerRepository) All(ctx context.Context) ([]*models.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers ORDER BY sequence_number`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, models.ErrStoreFailure(fmt.Errorf("scan customers: %w", err))
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// ListByLoginDate returns records whose stored login date matches exactly
func (r *customerRepository) ListByLoginDate(ctx context.Context, loginDate string) ([]*models.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE login_date = $1 ORDER BY sequence_number`

	rows, err := r.db.QueryContext(ctx, q, loginDate)
	if err != nil {
		return nil, models.ErrStoreFailure(fmt.Errorf("list customers by login date: %w", err))
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// MaxLoginDate returns the lexicographically greatest stored login date
func (r *customerRepository) MaxLoginDate(ctx context.Context) (string, error) {
	var maxDate sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT MAX(login_date) FROM customers WHERE login_date IS NOT NULL AND login_date <> ''`,
	).Scan(&maxDate)
	if err != nil {
		return "", models.ErrStoreFailure(fmt.Errorf("max login date: %w", err))
	}

	if !maxDate.Valid {
		return "", nil
	}
	return maxDate.String, nil
}

// Distinct returns the distinct non-null, non-empty values of a column
func (r *customerRepository) Distinct(ctx context.Context, column string) ([]string, error) {
	q := fmt.Sprintf(
		`SELECT DISTINCT %s FROM customers WHERE %s IS NOT NULL AND %s <> ''`,
		column, column, column,
	)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, models.ErrStoreFailure(fmt.Errorf("distinct %s: %w", column, err))
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, models.ErrStoreFailure(fmt.Errorf("scan distinct %s: %w", column, err))
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, models.ErrStoreFailure(fmt.Errorf("iterate distinct %s: %w", column, err))
	}

	return values, nil
}

// scanCustomers drains a record result set
func scanCustomers(rows *sql.Rows) ([]*models.Customer, error) {
	customers := []*models.Customer{}
	for rows.Next() {
		customer := &models.Customer{}
		var locationName, loginDate, loginHour, name, gender, email,
			phone, brandDevice, digitalInterest, locationType sql.NullString
		var age sql.NullInt64

		err := rows.Scan(
			&customer.SequenceNumber,
			&locationName,
			&loginDate,
			&loginHour,
			&name,
			&age,
			&gender,
			&email,
			&phone,
			&brandDevice,
			&digitalInterest,
			&locationType,
		)
		if err != nil {
			return nil, models.ErrStoreFailure(fmt.Errorf("scan customer: %w", err))
		}

		customer.LocationName = locationName.String
		customer.LoginDate = loginDate.String
		customer.LoginHour = loginHour.String
		customer.Name = name.String
		customer.Gender = gender.String
		customer.Email = email.String
		customer.Phone = phone.String
		customer.BrandDevice = brandDevice.String
		customer.DigitalInterest = digitalInterest.String
		customer.LocationType = locationType.String
		if age.Valid {
			v := age.Int64
			customer.Age = &v
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, models.ErrStoreFailure(fmt.Errorf("iterate customers: %w", err))
	}

	return customers, nil
}
