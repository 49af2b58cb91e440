package query

import (
	"fmt"
	"strings"

	"github.com/insight-dash/customer-insights-backend/internal/models"
)

// Params holds the raw, loosely-typed request parameters for a list query.
// Zero values mean "not supplied".
type Params struct {
	Page            int
	Limit           int
	SortBy          string
	SortOrder       string
	Search          string
	Gender          string
	LocationType    string
	BrandDevice     string
	DigitalInterest string
}

// exactMatch is one ANDed equality constraint on a store column.
type exactMatch struct {
	column string
	value  string
}

// Plan is a validated query plan: filter predicate, sort key, and page
// window. Built once per request and handed to the repository, which renders
// it into SQL.
type Plan struct {
	search     string
	exact      []exactMatch
	sortColumn string
	sortDesc   bool
	page       int
	pageSize   int
}

// Build turns raw request parameters into a validated plan.
//
// Free-text search, when present, becomes a case-insensitive substring match
// OR'd across the searchable fields. Each supplied exact-match filter is
// ANDed in. An unknown sort field is not an error: it contributes no sort
// column and the plan falls back to sequence-number order, which keeps
// result order deterministic.
func Build(p Params) *Plan {
	models.ValidateAndSetDefaults(&p.Page, &p.Limit)

	plan := &Plan{
		search:   p.Search,
		sortDesc: p.SortOrder == "desc",
		page:     p.Page,
		pageSize: p.Limit,
	}

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = models.DefaultSortField
	}
	if col, ok := models.SortableColumn(sortBy); ok {
		plan.sortColumn = col
	}

	filters := []struct {
		field string
		value string
	}{
		{"gender", p.Gender},
		{"locationType", p.LocationType},
		{"brandDevice", p.BrandDevice},
		{"digitalInterest", p.DigitalInterest},
	}
	for _, f := range filters {
		if f.value == "" {
			continue
		}
		col, ok := models.FilterableColumn(f.field)
		if !ok {
			continue
		}
		plan.exact = append(plan.exact, exactMatch{column: col, value: f.value})
	}

	return plan
}

// Page returns the 1-based page index.
func (p *Plan) Page() int { return p.page }

// PageSize returns the page size.
func (p *Plan) PageSize() int { return p.pageSize }

// Offset returns the number of records to skip for the page window.
func (p *Plan) Offset() int {
	return models.CalculateOffset(p.page, p.pageSize)
}

// Where renders the filter predicate as a SQL clause (" WHERE ..." or the
// empty string) plus its bind arguments, numbered starting at $1.
func (p *Plan) Where() (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}

	if p.search != "" {
		argPos := len(args) + 1
		args = append(args, "%"+escapeLike(p.search)+"%")

		ors := []string{}
		for _, col := range models.SearchColumns() {
			ors = append(ors, fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, col, argPos))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	for _, m := range p.exact {
		args = append(args, m.value)
		conds = append(conds, fmt.Sprintf("%s = $%d", m.column, len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// OrderBy renders the sort key as a SQL ORDER BY clause. Sequence number is
// always the final tiebreak so equal sort values page consistently.
func (p *Plan) OrderBy() string {
	if p.sortColumn == "" {
		// Unknown sort field: no sort contribution, deterministic fallback.
		return " ORDER BY sequence_number ASC"
	}

	dir := "ASC"
	if p.sortDesc {
		dir = "DESC"
	}
	if p.sortColumn == "sequence_number" {
		return fmt.Sprintf(" ORDER BY sequence_number %s", dir)
	}
	return fmt.Sprintf(" ORDER BY %s %s, sequence_number ASC", p.sortColumn, dir)
}

// escapeLike escapes LIKE metacharacters so search text is matched as a
// literal substring, never as pattern syntax.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
