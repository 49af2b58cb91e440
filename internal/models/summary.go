package models

// GenderCount is one row of the gender summary. A record with no stored
// gender falls into the empty-string group.
type GenderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

// GenderAgeCount is one row of the age-bucketed gender summary.
type GenderAgeCount struct {
	Gender   string `json:"gender"`
	AgeGroup string `json:"ageGroup"`
	Count    int64  `json:"count"`
}

// BrandCount is one row of the brand device ranking.
type BrandCount struct {
	Brand string `json:"brand"`
	Count int64  `json:"count"`
}

// HourlyLoginCount is one bucket of the hourly login trend. Hour is the
// hour-of-day (0-23) extracted from the normalized login timestamp.
type HourlyLoginCount struct {
	Hour       int   `json:"hour"`
	LoginCount int64 `json:"loginCount"`
}
