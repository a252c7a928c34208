// Package request validates the programmatic parameters of a search call.
// Unlike query-string parsing, this path is strict: violations fail fast
// with exact, caller-asserted message text.
package request

import (
	"fmt"
	"strings"

	"github.com/mockdesk/mockdesk/internal/domain"
)

// Parameter defaults and bounds.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortFields enumerates the accepted sort_by values, in the order the
// validation error reports them.
var SortFields = []string{"created_at", "updated_at", "priority", "status", "ticket_type"}

// Request is a validated search call: raw query string plus the strict
// sort/pagination/side-loading parameters.
type Request struct {
	query     string
	sortBy    string
	sortOrder string
	page      int
	perPage   int
	include   string
}

// New validates search parameters. sortBy may be empty (no sorting);
// sortOrder defaults to ascending. Page and perPage have no implicit
// defaults here — callers supply DefaultPage/DefaultPerPage for omitted
// values so that explicit zero still fails fast.
func New(query, sortBy, sortOrder string, page, perPage int, include string) (Request, error) {
	if sortBy != "" && !validSortField(sortBy) {
		return Request{}, fmt.Errorf("%w: sort_by must be one of: %s",
			domain.ErrInvalidParameter, strings.Join(SortFields, ", "))
	}
	if sortOrder == "" {
		sortOrder = SortAsc
	}
	if sortOrder != SortAsc && sortOrder != SortDesc {
		return Request{}, fmt.Errorf("%w: sort_order must be one of: asc, desc",
			domain.ErrInvalidParameter)
	}
	if page < 1 {
		return Request{}, fmt.Errorf("%w: page must be a positive integer",
			domain.ErrInvalidParameter)
	}
	if perPage < 1 || perPage > MaxPerPage {
		return Request{}, fmt.Errorf("%w: per_page must be between 1 and %d",
			domain.ErrInvalidParameter, MaxPerPage)
	}

	return Request{
		query:     query,
		sortBy:    sortBy,
		sortOrder: sortOrder,
		page:      page,
		perPage:   perPage,
		include:   include,
	}, nil
}

// Query returns the raw search string.
func (r *Request) Query() string { return r.query }

// SortBy returns the sort field, or "" for unsorted (original order).
func (r *Request) SortBy() string { return r.sortBy }

// SortOrder returns "asc" or "desc".
func (r *Request) SortOrder() string { return r.sortOrder }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// PerPage returns the page size.
func (r *Request) PerPage() int { return r.perPage }

// Include returns the raw comma-separated side-load list.
func (r *Request) Include() string { return r.include }

func validSortField(field string) bool {
	for _, f := range SortFields {
		if f == field {
			return true
		}
	}
	return false
}
