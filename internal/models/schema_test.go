package models

import "testing"

func TestFilterableColumn(t *testing.T) {
	filterable := map[string]string{
		"gender":          "gender",
		"locationType":    "location_type",
		"brandDevice":     "brand_device",
		"digitalInterest": "digital_interest",
	}
	for name, wantCol := range filterable {
		col, ok := FilterableColumn(name)
		if !ok || col != wantCol {
			t.Errorf("FilterableColumn(%q) = %q, %v; want %q, true", name, col, ok, wantCol)
		}
	}

	for _, name := range []string{"name", "email", "number", "Gender", "password", ""} {
		if col, ok := FilterableColumn(name); ok {
			t.Errorf("FilterableColumn(%q) = %q, want not filterable", name, col)
		}
	}
}

func TestSortableColumn(t *testing.T) {
	if col, ok := SortableColumn(DefaultSortField); !ok || col != "sequence_number" {
		t.Errorf("SortableColumn(%q) = %q, %v; want sequence_number", DefaultSortField, col, ok)
	}
	if _, ok := SortableColumn("nonexistent"); ok {
		t.Error("SortableColumn accepted an unknown field")
	}
}

func TestSearchColumns(t *testing.T) {
	want := []string{"location_name", "name", "email", "brand_device"}
	got := SearchColumns()
	if len(got) != len(want) {
		t.Fatalf("SearchColumns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SearchColumns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
