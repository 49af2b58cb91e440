package models

// PaginationResult holds pagination metadata for a list response
type PaginationResult struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
}

// NewPaginationResult creates a pagination result
func NewPaginationResult(page, pageSize int, totalCount int64) PaginationResult {
	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return PaginationResult{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		Limit:       pageSize,
	}
}

// ValidateAndSetDefaults validates pagination parameters and sets defaults
func ValidateAndSetDefaults(page, pageSize *int) {
	if *page < 1 {
		*page = 1
	}
	if *pageSize < 1 {
		*pageSize = 10
	}
}

// CalculateOffset calculates the SQL offset for pagination
func CalculateOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}
