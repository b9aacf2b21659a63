package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLess      = "less"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreater   = "greater"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorIn        = "in"
	FilterIsNull            = "is_null"
	FilterIsNotNull         = "is_not_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLess:      "<",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreater:   ">",
	FilterOperatorGreaterEq: ">=",
}

// Filter is one predicate of a WHERE clause, rendered with sqlx named parameters.
// ArgName defaults to Field; set it when the same column appears twice in a query.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the predicate and its named arguments. Unknown operators
// render nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column, name := f.column(), f.argName()

	if op, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", column, op, name), args
	}

	switch f.Operator {
	case FilterOperatorIn:
		return f.in(column, name, args)
	case FilterIsNull:
		return column + " IS NULL", args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	default:
		return "", args
	}
}

// in expands a slice into one named argument per element. A scalar is treated as a
// one element list and an empty list matches nothing.
func (f *Filter) in(column, name string, args map[string]any) (string, map[string]any) {
	values := reflect.ValueOf(f.Value)
	if values.Kind() != reflect.Slice && values.Kind() != reflect.Array {
		args[name+"_0"] = f.Value

		return fmt.Sprintf("%s IN (:%s_0)", column, name), args
	}

	if values.Len() == 0 {
		return "FALSE", args
	}

	placeholders := make([]string, values.Len())
	for idx := range values.Len() {
		key := fmt.Sprintf("%s_%d", name, idx)
		args[key] = values.Index(idx).Interface()
		placeholders[idx] = ":" + key
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")), args
}

// FilterGroup joins Filters and nested FilterGroups with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func And(filters ...any) FilterGroup {
	return FilterGroup{Filters: filters, Operator: FilterGroupOperatorAnd}
}

func Or(filters ...any) FilterGroup {
	return FilterGroup{Filters: filters, Operator: FilterGroupOperatorOr}
}

// Append adds a Filter or a nested FilterGroup.
func (f *FilterGroup) Append(filter any) {
	f.Filters = append(f.Filters, filter)
}

// GetWhereClause renders the group in parentheses. Empty members are skipped and an
// empty group renders nothing.
func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(f.Filters))

	for _, member := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch typed := member.(type) {
		case Filter:
			where, arg = typed.GetWhereClause()
		case FilterGroup:
			where, arg = typed.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		parts = append(parts, where)
		maps.Copy(args, arg)
	}

	if len(parts) == 0 {
		return "", args
	}

	return "(" + strings.Join(parts, " "+f.Operator+" ") + ")", args
}
