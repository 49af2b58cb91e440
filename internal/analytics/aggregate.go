// Package analytics implements the four customer aggregations as explicit
// passes over in-memory record slices: filter, derive, classify, group,
// sort. Each aggregation is a pure function so it can be tested in
// isolation; services supply the records and the reference year.
package analytics

import (
	"sort"

	"github.com/insight-dash/customer-insights-backend/internal/models"
	"github.com/insight-dash/customer-insights-backend/internal/normalize"
)

// UnknownAgeGroup is the bucket for records whose computed age is negative
// or whose age field is absent.
const UnknownAgeGroup = "Unknown"

// GenderCounts groups records by gender. Records with no stored gender group
// under the empty string. Rows are sorted by gender for stable output; the
// contract only requires set equality.
func GenderCounts(records []*models.Customer) []models.GenderCount {
	counts := map[string]int64{}
	for _, r := range records {
		counts[r.Gender]++
	}

	out := make([]models.GenderCount, 0, len(counts))
	for gender, n := range counts {
		out = append(out, models.GenderCount{Gender: gender, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gender < out[j].Gender })
	return out
}

// AgeBucket classifies a computed age into one of seven fixed groups. The
// mapping is total: every negative value lands in Unknown.
func AgeBucket(calculatedAge int64) string {
	switch {
	case calculatedAge >= 0 && calculatedAge <= 19:
		return "0-19"
	case calculatedAge >= 20 && calculatedAge <= 29:
		return "20-29"
	case calculatedAge >= 30 && calculatedAge <= 39:
		return "30-39"
	case calculatedAge >= 40 && calculatedAge <= 49:
		return "40-49"
	case calculatedAge >= 50 && calculatedAge <= 59:
		return "50-59"
	case calculatedAge >= 60:
		return "60+"
	default:
		return UnknownAgeGroup
	}
}

// GenderAgeCounts groups records by (gender, age bucket), sorted ascending
// by gender then bucket.
//
// The computed age is currentYear - Age: the source data pipeline treats the
// stored Age field as a birth year and back-computes an apparent age. That
// reading is preserved as observed; treating Age as an age directly would
// shift every bucket assignment. Records with no stored age classify as
// Unknown.
func GenderAgeCounts(records []*models.Customer, currentYear int) []models.GenderAgeCount {
	type key struct {
		gender   string
		ageGroup string
	}

	counts := map[key]int64{}
	for _, r := range records {
		group := UnknownAgeGroup
		if r.Age != nil {
			group = AgeBucket(int64(currentYear) - *r.Age)
		}
		counts[key{gender: r.Gender, ageGroup: group}]++
	}

	out := make([]models.GenderAgeCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, models.GenderAgeCount{Gender: k.gender, AgeGroup: k.ageGroup, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gender != out[j].Gender {
			return out[i].Gender < out[j].Gender
		}
		return out[i].AgeGroup < out[j].AgeGroup
	})
	return out
}

// BrandCounts groups records by brand device, sorted by count descending.
// Ties break on brand name so the ranking is deterministic.
func BrandCounts(records []*models.Customer) []models.BrandCount {
	counts := map[string]int64{}
	for _, r := range records {
		counts[r.BrandDevice]++
	}

	out := make([]models.BrandCount, 0, len(counts))
	for brand, n := range counts {
		out = append(out, models.BrandCount{Brand: brand, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Brand < out[j].Brand
	})
	return out
}

// HourlyLogins buckets records by the hour-of-day of their normalized login
// timestamp, sorted ascending by hour. Records whose date or hour cannot be
// normalized are dropped from this aggregation; a bad record never fails the
// whole computation.
func HourlyLogins(records []*models.Customer) []models.HourlyLoginCount {
	counts := map[int]int64{}
	for _, r := range records {
		t, err := normalize.Timestamp(r.LoginDate, r.LoginHour)
		if err != nil {
			continue
		}
		counts[normalize.HourOfDay(t)]++
	}

	out := make([]models.HourlyLoginCount, 0, len(counts))
	for hour, n := range counts {
		out = append(out, models.HourlyLoginCount{Hour: hour, LoginCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}
