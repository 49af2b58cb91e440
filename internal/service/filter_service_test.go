package service

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/insight-dash/customer-insights-backend/internal/cache"
	"github.com/insight-dash/customer-insights-backend/internal/models"
)

// mockCache is an in-memory Cache for testing
type mockCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
	sets    int
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.entries[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return data, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.entries == nil {
		m.entries = map[string][]byte{}
	}
	m.entries[key] = value
	m.sets++
	return nil
}

func (m *mockCache) Health(ctx context.Context) error { return nil }
func (m *mockCache) Close() error                     { return nil }

func TestDistinctValuesInvalidField(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := NewFilterService(repo, nil, time.Minute, testLogger())

	for _, field := range []string{"email", "password", "Gender", ""} {
		_, err := svc.DistinctValues(context.Background(), field)
		if err == nil {
			t.Errorf("DistinctValues(%q) succeeded, want invalid field error", field)
			continue
		}

		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != "INVALID_FIELD" {
			t.Errorf("DistinctValues(%q) error = %v, want AppError INVALID_FIELD", field, err)
		}

		if len(repo.distinctCalls) != 0 {
			t.Errorf("store queried for invalid field %q", field)
		}
	}
}

func TestDistinctValuesWithoutCache(t *testing.T) {
	repo := &mockCustomerRepo{distinct: map[string][]string{
		"brand_device": {"Samsung", "Apple", "Xiaomi"},
	}}
	svc := NewFilterService(repo, nil, time.Minute, testLogger())

	got, err := svc.DistinctValues(context.Background(), "brandDevice")
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}

	want := []string{"Apple", "Samsung", "Xiaomi"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctValues = %v, want sorted %v", got, want)
	}
	if !reflect.DeepEqual(repo.distinctCalls, []string{"brand_device"}) {
		t.Errorf("store queried with %v, want [brand_device]", repo.distinctCalls)
	}
}

func TestDistinctValuesCachesOnMiss(t *testing.T) {
	repo := &mockCustomerRepo{distinct: map[string][]string{
		"gender": {"M", "F"},
	}}
	c := &mockCache{}
	svc := NewFilterService(repo, c, time.Minute, testLogger())

	got, err := svc.DistinctValues(context.Background(), "gender")
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"F", "M"}) {
		t.Errorf("DistinctValues = %v, want [F M]", got)
	}
	if c.sets != 1 {
		t.Errorf("cache sets = %d, want 1", c.sets)
	}

	// Second lookup is served from the cache.
	got, err = svc.DistinctValues(context.Background(), "gender")
	if err != nil {
		t.Fatalf("DistinctValues (cached): %v", err)
	}
	if !reflect.DeepEqual(got, []string{"F", "M"}) {
		t.Errorf("cached DistinctValues = %v, want [F M]", got)
	}
	if len(repo.distinctCalls) != 1 {
		t.Errorf("store queried %d times, want 1", len(repo.distinctCalls))
	}
}

func TestDistinctValuesCacheHit(t *testing.T) {
	repo := &mockCustomerRepo{}
	data, _ := json.Marshal([]string{"Urban", "Sub urban"})
	c := &mockCache{entries: map[string][]byte{"filters:locationType": data}}
	svc := NewFilterService(repo, c, time.Minute, testLogger())

	got, err := svc.DistinctValues(context.Background(), "locationType")
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Urban", "Sub urban"}) {
		t.Errorf("DistinctValues = %v, want cached values", got)
	}
	if len(repo.distinctCalls) != 0 {
		t.Errorf("store queried %d times on cache hit, want 0", len(repo.distinctCalls))
	}
}

func TestDistinctValuesCacheFailuresDegradeToStore(t *testing.T) {
	repo := &mockCustomerRepo{distinct: map[string][]string{
		"digital_interest": {"Social Media"},
	}}
	c := &mockCache{
		getErr: errors.New("connection refused"),
		setErr: errors.New("connection refused"),
	}
	svc := NewFilterService(repo, c, time.Minute, testLogger())

	got, err := svc.DistinctValues(context.Background(), "digitalInterest")
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Social Media"}) {
		t.Errorf("DistinctValues = %v, want [Social Media]", got)
	}
}

func TestDistinctValuesStoreFailure(t *testing.T) {
	repo := &mockCustomerRepo{err: models.ErrStoreFailure(errors.New("timeout"))}
	svc := NewFilterService(repo, nil, time.Minute, testLogger())

	if _, err := svc.DistinctValues(context.Background(), "gender"); err == nil {
		t.Fatal("DistinctValues succeeded, want store failure")
	}
}
