package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/arcanum-games/chardb-backend/repository"
	"github.com/arcanum-games/chardb-backend/validation"
)

// FieldMap binds a query-string field name to the database column it sorts or
// filters on. Declaration order is the order reported in error messages.
type FieldMap struct {
	Param  string
	Column string
}

func lookupField(fields []FieldMap, param string) (string, bool) {
	for _, f := range fields {
		if f.Param == param {
			return f.Column, true
		}
	}
	return "", false
}

func fieldParams(fields []FieldMap) []string {
	params := make([]string, len(fields))
	for i, f := range fields {
		params[i] = f.Param
	}
	return params
}

// buildListOptions translates a list request's query string into the
// directives the persistence gateway consumes. Equality filters are added
// only for parameters actually present in the query string.
func (rs *Resource[T, P]) buildListOptions(query url.Values) (repository.ListOptions, *validation.Error) {
	opts := repository.ListOptions{
		SortBy:    rs.DefaultSortColumn(),
		SortOrder: "asc",
		Amount:    rs.PageSize,
		Page:      1,
		Filters:   map[string]any{},
	}

	if sortBy := query.Get("sortBy"); sortBy != "" {
		column, ok := lookupField(rs.SortFields, sortBy)
		if !ok {
			return opts, validation.BadRequest(fmt.Sprintf(
				"Invalid sortBy. Allowed values are %s", strings.Join(fieldParams(rs.SortFields), ", ")))
		}
		opts.SortBy = column
	}

	if query.Get("sortOrder") == "desc" {
		opts.SortOrder = "desc"
	}

	if amountStr := query.Get("amount"); amountStr != "" {
		amount, err := strconv.Atoi(amountStr)
		if err != nil || amount <= 0 {
			return opts, validation.BadRequest(`"amount" must be a positive number`)
		}
		if amount > rs.PageSizeMax {
			amount = rs.PageSizeMax
		}
		opts.Amount = amount
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			return opts, validation.BadRequest(`"page" must be a positive number`)
		}
		opts.Page = page
	}

	for _, f := range rs.FilterFields {
		if !query.Has(f.Param) {
			continue
		}
		opts.Filters[f.Column] = query.Get(f.Param)
	}

	return opts, nil
}
