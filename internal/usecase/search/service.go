// Package search implements the Zendesk search endpoint: a pipeline of
// parse, per-kind predicate evaluation, stable sort, bounded pagination
// and side-loading over an injected read-only store view.
package search

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/search/kind"
	"github.com/mockdesk/mockdesk/internal/domain/search/query"
	"github.com/mockdesk/mockdesk/internal/domain/search/request"
	"github.com/mockdesk/mockdesk/internal/domain/search/result"
	"github.com/mockdesk/mockdesk/internal/domain/search/term"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
)

// resultCeiling is the hard pagination limit. Requests whose window would
// extend past it are refused with the exact 422 contract message, never
// silently truncated.
const resultCeiling = 1000

const ceilingDetail = "Search results are limited to 1000 records. " +
	"Please refine your search query to get fewer results."

// DefaultBaseURL anchors the generated record and pagination links.
const DefaultBaseURL = "https://example.zendesk.com/api/v2"

// Service executes searches against a record store directory. It is a
// pure reader: no call mutates the store, and identical calls against an
// unchanged store return identical envelopes.
type Service struct {
	dir     Directory
	baseURL string
	now     func() time.Time
}

// New creates a search service over the given directory.
func New(dir Directory) *Service {
	return &Service{dir: dir, baseURL: DefaultBaseURL, now: time.Now}
}

// WithBaseURL overrides the base URL used in pagination links.
func (s *Service) WithBaseURL(base string) *Service {
	s.baseURL = strings.TrimRight(base, "/")
	return s
}

// WithClock overrides the time source for relative-date resolution.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Search runs the full pipeline for one validated request.
func (s *Service) Search(ctx context.Context, req *request.Request) (*result.Envelope, error) {
	terms := query.Parse(req.Query())

	matched := s.assemble(terms)
	s.sort(matched, req.SortBy(), req.SortOrder())

	page, envelope, err := s.paginate(matched, req)
	if err != nil {
		return nil, err
	}

	if err := s.sideload(envelope, page, req.Include()); err != nil {
		return nil, err
	}
	return envelope, nil
}

// assemble evaluates every record of every candidate kind and returns the
// hits in canonical collection order: tickets, users, organizations,
// groups. A type restriction narrows the candidate kinds up front.
func (s *Service) assemble(terms []term.Term) []Record {
	restrict, restricted := term.TypeRestriction(terms)
	include := func(k kind.Kind) bool { return !restricted || restrict == k }

	e := evaluator{now: s.now()}
	var matched []Record

	if include(kind.Ticket) {
		for _, t := range s.dir.ListTickets() {
			if e.matches(t, terms) {
				matched = append(matched, t)
			}
		}
	}
	if include(kind.User) {
		for _, u := range s.dir.ListUsers() {
			if e.matches(u, terms) {
				matched = append(matched, u)
			}
		}
	}
	if include(kind.Organization) {
		for _, o := range s.dir.ListOrganizations() {
			if e.matches(o, terms) {
				matched = append(matched, o)
			}
		}
	}
	if include(kind.Group) {
		for _, g := range s.dir.ListGroups() {
			if e.matches(g, terms) {
				matched = append(matched, g)
			}
		}
	}
	return matched
}

// sort orders matches stably by the requested field; ties keep their
// assembly order. An empty sortBy leaves the assembly order untouched.
func (s *Service) sort(matched []Record, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}
	cmp := func(a, b Record) int { return compareRecords(a, b, sortBy) }
	if sortOrder == request.SortDesc {
		inner := cmp
		cmp = func(a, b Record) int { return -inner(a, b) }
	}
	slices.SortStableFunc(matched, cmp)
}

func compareRecords(a, b Record, field string) int {
	switch field {
	case "created_at":
		return a.Created().Compare(b.Created())
	case "updated_at":
		return a.Updated().Compare(b.Updated())
	case "priority":
		return fieldOrdinal(a, "priority", zendesk.PriorityOrder) -
			fieldOrdinal(b, "priority", zendesk.PriorityOrder)
	case "status":
		return fieldOrdinal(a, "status", zendesk.StatusOrder) -
			fieldOrdinal(b, "status", zendesk.StatusOrder)
	case "ticket_type":
		return strings.Compare(fieldString(a, "ticket_type"), fieldString(b, "ticket_type"))
	default:
		return 0
	}
}

// fieldOrdinal ranks a record's field within order; records without the
// field (e.g. users sorted by priority) rank below every ranked value.
func fieldOrdinal(rec Record, field string, order []string) int {
	return ordinalRank(fieldString(rec, field), order)
}

func fieldString(rec Record, field string) string {
	v, ok := rec.Field(field)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// paginate slices the sorted matches, enforces the hard result ceiling and
// fills the envelope's pagination metadata. The returned page keeps the
// typed records for side-loading.
func (s *Service) paginate(matched []Record, req *request.Request) ([]Record, *result.Envelope, error) {
	start := (req.Page() - 1) * req.PerPage()
	end := start + req.PerPage()
	if end > resultCeiling {
		return nil, nil, domain.NewStatusError(422, ceilingDetail)
	}

	count := len(matched)
	var page []Record
	if start < count {
		if end > count {
			end = count
		}
		page = matched[start:end]
	}

	items := make([]result.Item, 0, len(page))
	for _, rec := range page {
		item, err := result.NewItem(rec, rec.Kind())
		if err != nil {
			return nil, nil, fmt.Errorf("build result item: %w", err)
		}
		items = append(items, item)
	}

	envelope := &result.Envelope{
		Results: items,
		Count:   count,
		Page:    req.Page(),
		PerPage: req.PerPage(),
	}
	if start+req.PerPage() < count {
		u := s.pageURL(req, req.Page()+1)
		envelope.NextPage = &u
	}
	if start > 0 {
		u := s.pageURL(req, req.Page()-1)
		envelope.PreviousPage = &u
	}
	return page, envelope, nil
}

func (s *Service) pageURL(req *request.Request, page int) string {
	q := url.Values{}
	q.Set("query", req.Query())
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(req.PerPage()))
	if req.SortBy() != "" {
		q.Set("sort_by", req.SortBy())
		q.Set("sort_order", req.SortOrder())
	}
	if req.Include() != "" {
		q.Set("include", req.Include())
	}
	return s.baseURL + "/search.json?" + q.Encode()
}
