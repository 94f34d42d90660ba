package repository

import (
	"sort"
	"strings"

	"gorm.io/gorm"
)

type FilterOp int

const (
	// FilterEquals matches the column exactly.
	FilterEquals FilterOp = iota
	// FilterContains does a substring match on one column.
	FilterContains
	// FilterSearch does a substring match ORed across several columns.
	FilterSearch
)

type FilterField struct {
	Op      FilterOp
	Columns []string
}

// ListSpec is the static per-resource description of what a list
// endpoint may sort and filter on. Specs are built once at startup;
// nothing here is derived from request data.
type ListSpec struct {
	SortColumns map[string]string
	DefaultSort string
	Filters     map[string]FilterField
}

type ListOptions struct {
	PageRequest
	SortBy        string
	SortDirection string
	Filters       map[string]any
}

// applyFilters adds one predicate per known filter key, ANDed together.
// Unknown keys and nil values are skipped without error; that leniency
// is part of the endpoint contract and is pinned by tests.
func (s ListSpec) applyFilters(q *gorm.DB, filters map[string]any) *gorm.DB {
	if len(filters) == 0 {
		return q
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := filters[key]
		if value == nil {
			continue
		}
		field, ok := s.Filters[key]
		if !ok || len(field.Columns) == 0 {
			continue
		}
		switch field.Op {
		case FilterEquals:
			q = q.Where(field.Columns[0]+" = ?", value)
		case FilterContains:
			str, ok := value.(string)
			if !ok || str == "" {
				continue
			}
			q = q.Where(field.Columns[0]+" LIKE ?", "%"+str+"%")
		case FilterSearch:
			str, ok := value.(string)
			if !ok || str == "" {
				continue
			}
			clauses := make([]string, len(field.Columns))
			args := make([]any, len(field.Columns))
			for i, col := range field.Columns {
				clauses[i] = col + " LIKE ?"
				args[i] = "%" + str + "%"
			}
			q = q.Where(strings.Join(clauses, " OR "), args...)
		}
	}
	return q
}

// orderClause resolves the sort column, falling back to the default on
// anything outside the allowed set. Direction is asc unless exactly
// "desc"; neither input can ever reach the SQL string unchecked.
func (s ListSpec) orderClause(sortBy, direction string) string {
	col, ok := s.SortColumns[sortBy]
	if !ok {
		col = s.SortColumns[s.DefaultSort]
	}
	if direction != "desc" {
		direction = "asc"
	}
	return col + " " + direction
}

// ListPage runs the count and page queries under identical predicates
// and assembles the page metadata. Total is the filtered row count, not
// the page's.
func ListPage[T any](db *gorm.DB, spec ListSpec, opts ListOptions) (PageResult[T], error) {
	req := normalizePageRequest(opts.PageRequest)

	var total int64
	if err := spec.applyFilters(db.Model(new(T)), opts.Filters).Count(&total).Error; err != nil {
		return PageResult[T]{}, err
	}

	var items []T
	err := spec.applyFilters(db.Model(new(T)), opts.Filters).
		Order(spec.orderClause(opts.SortBy, opts.SortDirection)).
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&items).Error
	if err != nil {
		return PageResult[T]{}, err
	}

	return PageResult[T]{
		Items:      items,
		Page:       req.Page,
		PageSize:   req.PageSize,
		Total:      total,
		TotalPages: calcTotalPages(total, req.PageSize),
	}, nil
}
