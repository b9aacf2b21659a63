package dto

import (
	"estate/shared/constant"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"

	MaxLimit = 100
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir. Non-positive or malformed numbers
// are ignored and limit is capped at MaxLimit. With withDefaults a missing page or limit
// takes the package default.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	if page, ok := positiveInt(query.Get(constant.RequestParamPage)); ok {
		q.Page = page
	}

	if limit, ok := positiveInt(query.Get(constant.RequestParamLimit)); ok {
		q.Limit = min(limit, MaxLimit)
	}

	if sortBy := query.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Sanitize restricts SortBy to the sortable columns since it is interpolated into ORDER BY.
func (q *QueryParams) Sanitize(sortable []string, defaultColumn, defaultDir string) {
	if !slices.Contains(sortable, q.SortBy) {
		q.SortBy = defaultColumn
	}

	if q.SortDir == "" {
		q.SortDir = defaultDir
	}
}

// Offset is the number of rows skipped before the requested page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positiveInt(raw string) (int, bool) {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, false
	}

	return value, true
}
