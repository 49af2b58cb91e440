package models

import "testing"

func TestNewPaginationResult(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		pageSize       int
		totalCount     int64
		wantTotalPages int
	}{
		{name: "exact multiple", page: 1, pageSize: 10, totalCount: 100, wantTotalPages: 10},
		{name: "remainder adds a page", page: 2, pageSize: 10, totalCount: 101, wantTotalPages: 11},
		{name: "single partial page", page: 1, pageSize: 10, totalCount: 3, wantTotalPages: 1},
		{name: "empty result set", page: 1, pageSize: 10, totalCount: 0, wantTotalPages: 0},
		{name: "page size one", page: 5, pageSize: 1, totalCount: 7, wantTotalPages: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPaginationResult(tt.page, tt.pageSize, tt.totalCount)
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if got.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, want %d", got.CurrentPage, tt.page)
			}
			if got.TotalItems != tt.totalCount {
				t.Errorf("TotalItems = %d, want %d", got.TotalItems, tt.totalCount)
			}
			if got.Limit != tt.pageSize {
				t.Errorf("Limit = %d, want %d", got.Limit, tt.pageSize)
			}
		})
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "zero values get defaults", page: 0, pageSize: 0, wantPage: 1, wantPageSize: 10},
		{name: "negative values get defaults", page: -3, pageSize: -1, wantPage: 1, wantPageSize: 10},
		{name: "valid values unchanged", page: 4, pageSize: 25, wantPage: 4, wantPageSize: 25},
		{name: "large page size allowed", page: 1, pageSize: 100000, wantPage: 1, wantPageSize: 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := tt.page, tt.pageSize
			ValidateAndSetDefaults(&page, &pageSize)
			if page != tt.wantPage {
				t.Errorf("page = %d, want %d", page, tt.wantPage)
			}
			if pageSize != tt.wantPageSize {
				t.Errorf("pageSize = %d, want %d", pageSize, tt.wantPageSize)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
		want     int
	}{
		{page: 1, pageSize: 10, want: 0},
		{page: 2, pageSize: 10, want: 10},
		{page: 7, pageSize: 25, want: 150},
		{page: 1, pageSize: 1, want: 0},
	}

	for _, tt := range tests {
		if got := CalculateOffset(tt.page, tt.pageSize); got != tt.want {
			t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.pageSize, got, tt.want)
		}
	}
}
