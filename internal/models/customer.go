package models

// Customer represents a single customer record as stored in the record store.
// Records are read-only from this service's perspective; the seeder is the
// only writer.
//
// LoginDate and LoginHour are kept as raw strings because the dataset encodes
// them inconsistently (unpadded month/day components, an optional trailing
// "Z" on the hour). Canonicalization is the normalize package's job.
type Customer struct {
	SequenceNumber  int64  `json:"number"`
	LocationName    string `json:"nameOfLocation"`
	LoginDate       string `json:"loginDate"`
	LoginHour       string `json:"loginHour"`
	Name            string `json:"name"`
	Age             *int64 `json:"age"`
	Gender          string `json:"gender"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	BrandDevice     string `json:"brandDevice"`
	DigitalInterest string `json:"digitalInterest"`
	LocationType    string `json:"locationType"`
}
