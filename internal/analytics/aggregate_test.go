package analytics

import (
	"reflect"
	"testing"

	"github.com/insight-dash/customer-insights-backend/internal/models"
)

func ptr(v int64) *int64 { return &v }

func record(gender string, age *int64) *models.Customer {
	return &models.Customer{Gender: gender, Age: age}
}

func TestGenderCounts(t *testing.T) {
	records := []*models.Customer{
		record("F", nil),
		record("M", nil),
		record("F", nil),
	}

	got := GenderCounts(records)
	want := []models.GenderCount{
		{Gender: "F", Count: 2},
		{Gender: "M", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenderCounts = %v, want %v", got, want)
	}
}

func TestGenderCountsIncludesMissingGender(t *testing.T) {
	records := []*models.Customer{
		record("F", nil),
		record("", nil),
		record("", nil),
	}

	got := GenderCounts(records)
	want := []models.GenderCount{
		{Gender: "", Count: 2},
		{Gender: "F", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenderCounts = %v, want %v", got, want)
	}
}

func TestGenderCountsSumToTotal(t *testing.T) {
	records := []*models.Customer{
		record("F", nil), record("M", nil), record("F", nil),
		record("", nil), record("Other", nil),
	}

	var sum int64
	for _, row := range GenderCounts(records) {
		sum += row.Count
	}
	if sum != int64(len(records)) {
		t.Errorf("counts sum to %d, want %d", sum, len(records))
	}
}

func TestAgeBucket(t *testing.T) {
	tests := []struct {
		age  int64
		want string
	}{
		{age: -1, want: "Unknown"},
		{age: -100, want: "Unknown"},
		{age: 0, want: "0-19"},
		{age: 19, want: "0-19"},
		{age: 20, want: "20-29"},
		{age: 29, want: "20-29"},
		{age: 30, want: "30-39"},
		{age: 39, want: "30-39"},
		{age: 40, want: "40-49"},
		{age: 49, want: "40-49"},
		{age: 50, want: "50-59"},
		{age: 59, want: "50-59"},
		{age: 60, want: "60+"},
		{age: 120, want: "60+"},
	}

	for _, tt := range tests {
		if got := AgeBucket(tt.age); got != tt.want {
			t.Errorf("AgeBucket(%d) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestGenderAgeCounts(t *testing.T) {
	// Stored Age is treated as a birth year: 2024 - 2000 = 24 -> "20-29".
	records := []*models.Customer{
		record("F", ptr(2000)),
		record("F", ptr(1990)),
		record("F", ptr(1991)),
		record("M", ptr(2000)),
		record("M", nil),
		record("M", ptr(2060)),
	}

	got := GenderAgeCounts(records, 2024)
	want := []models.GenderAgeCount{
		{Gender: "F", AgeGroup: "20-29", Count: 1},
		{Gender: "F", AgeGroup: "30-39", Count: 2},
		{Gender: "M", AgeGroup: "20-29", Count: 1},
		{Gender: "M", AgeGroup: "Unknown", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenderAgeCounts = %v, want %v", got, want)
	}
}

func TestGenderAgeCountsSumToTotal(t *testing.T) {
	records := []*models.Customer{
		record("F", ptr(2000)), record("M", nil), record("", ptr(-5)),
		record("X", ptr(1950)), record("F", ptr(3000)),
	}

	var sum int64
	for _, row := range GenderAgeCounts(records, 2024) {
		sum += row.Count
	}
	if sum != int64(len(records)) {
		t.Errorf("counts sum to %d, want %d", sum, len(records))
	}
}

func TestBrandCountsSortedByCountDescending(t *testing.T) {
	records := []*models.Customer{
		{BrandDevice: "Samsung"},
		{BrandDevice: "Apple"},
		{BrandDevice: "Samsung"},
		{BrandDevice: "Xiaomi"},
		{BrandDevice: "Samsung"},
		{BrandDevice: "Apple"},
	}

	got := BrandCounts(records)
	want := []models.BrandCount{
		{Brand: "Samsung", Count: 3},
		{Brand: "Apple", Count: 2},
		{Brand: "Xiaomi", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BrandCounts = %v, want %v", got, want)
	}

	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Errorf("ranking not non-increasing at %d: %v", i, got)
		}
	}
}

func TestHourlyLogins(t *testing.T) {
	records := []*models.Customer{
		{LoginDate: "3/7/2024", LoginHour: "09:15:00"},
		{LoginDate: "3/7/2024", LoginHour: "09:45:12Z"},
		{LoginDate: "3/7/2024", LoginHour: "14:00:00"},
		{LoginDate: "3/7/2024", LoginHour: "not-a-time"}, // dropped
		{LoginDate: "bad-date", LoginHour: "09:15:00"},   // dropped
		{LoginDate: "", LoginHour: ""},                   // dropped
	}

	got := HourlyLogins(records)
	want := []models.HourlyLoginCount{
		{Hour: 9, LoginCount: 2},
		{Hour: 14, LoginCount: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HourlyLogins = %v, want %v", got, want)
	}
}

func TestHourlyLoginsEmptyInput(t *testing.T) {
	got := HourlyLogins(nil)
	if len(got) != 0 {
		t.Errorf("HourlyLogins(nil) = %v, want empty", got)
	}
}
