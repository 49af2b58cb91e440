package models

// Field describes one customer record field: the name clients use in query
// parameters and the column it maps to in the store. The table below is the
// single source of truth for which fields are searchable, filterable, and
// sortable; request-layer code never passes raw field names through to SQL.
type Field struct {
	Name       string
	Column     string
	Searchable bool
	Filterable bool
	Sortable   bool
	Indexed    bool
}

// Fields is the fixed customer schema. Initialized once and never mutated.
var Fields = []Field{
	{Name: "number", Column: "sequence_number", Sortable: true, Indexed: true},
	{Name: "nameOfLocation", Column: "location_name", Searchable: true, Sortable: true},
	{Name: "loginDate", Column: "login_date", Sortable: true, Indexed: true},
	{Name: "loginHour", Column: "login_hour", Sortable: true},
	{Name: "name", Column: "name", Searchable: true, Sortable: true},
	{Name: "age", Column: "age", Sortable: true, Indexed: true},
	{Name: "gender", Column: "gender", Filterable: true, Sortable: true, Indexed: true},
	{Name: "email", Column: "email", Searchable: true, Sortable: true},
	{Name: "phone", Column: "phone", Sortable: true},
	{Name: "brandDevice", Column: "brand_device", Searchable: true, Filterable: true, Sortable: true, Indexed: true},
	{Name: "digitalInterest", Column: "digital_interest", Filterable: true, Sortable: true, Indexed: true},
	{Name: "locationType", Column: "location_type", Filterable: true, Sortable: true, Indexed: true},
}

// DefaultSortField is the field used when a request supplies no sort key.
const DefaultSortField = "number"

// FilterableColumn maps a request field name to its store column, if the
// field is one of the four enumerable filter fields.
func FilterableColumn(name string) (string, bool) {
	for _, f := range Fields {
		if f.Filterable && f.Name == name {
			return f.Column, true
		}
	}
	return "", false
}

// SortableColumn maps a request field name to its store column, if the field
// is sortable. Unknown names return false; callers treat that as "no sort
// contribution" rather than an error.
func SortableColumn(name string) (string, bool) {
	for _, f := range Fields {
		if f.Sortable && f.Name == name {
			return f.Column, true
		}
	}
	return "", false
}

// SearchColumns returns the columns free-text search matches against.
func SearchColumns() []string {
	cols := []string{}
	for _, f := range Fields {
		if f.Searchable {
			cols = append(cols, f.Column)
		}
	}
	return cols
}
