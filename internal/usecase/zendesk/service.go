// Package zendesk implements the simulated Zendesk support endpoints:
// tickets, users, organizations, groups and attachment uploads. Every
// operation validates its input, consults the fault injector, mutates the
// record store and returns the documented response envelope.
package zendesk

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mockdesk/mockdesk/internal/faults"
	"github.com/mockdesk/mockdesk/internal/store"
)

// listPerPage is the fixed page size of the list endpoints, matching the
// real API's offset pagination.
const listPerPage = 100

// Service simulates the Zendesk support API against an injected store.
type Service struct {
	store    *store.Store
	faults   *faults.Injector
	baseURL  string
	now      func() time.Time
	newToken func() string
}

// New creates a Zendesk service over the given store.
func New(st *store.Store) *Service {
	return &Service{
		store:    st,
		baseURL:  "https://example.zendesk.com/api/v2",
		now:      time.Now,
		newToken: func() string { return uuid.NewString() },
	}
}

// WithFaults attaches a fault injector.
func (s *Service) WithFaults(in *faults.Injector) *Service {
	s.faults = in
	return s
}

// WithSubdomain rebases generated record URLs onto the given subdomain.
func (s *Service) WithSubdomain(sub string) *Service {
	s.baseURL = fmt.Sprintf("https://%s.zendesk.com/api/v2", sub)
	return s
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// BaseURL returns the simulated API root, e.g.
// https://example.zendesk.com/api/v2.
func (s *Service) BaseURL() string { return s.baseURL }

func (s *Service) recordURL(resource string, id int64) string {
	return fmt.Sprintf("%s/%s/%d.json", s.baseURL, resource, id)
}

// listPage slices records for one list page and derives the next/previous
// links the list envelopes carry.
func listPage[T any](s *Service, resource string, records []T, page int) ([]T, *string, *string) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * listPerPage
	end := start + listPerPage

	var slice []T
	if start < len(records) {
		if end > len(records) {
			end = len(records)
		}
		slice = records[start:end]
	}

	var next, prev *string
	if start+listPerPage < len(records) {
		u := fmt.Sprintf("%s/%s.json?page=%d", s.baseURL, resource, page+1)
		next = &u
	}
	if start > 0 {
		u := fmt.Sprintf("%s/%s.json?page=%d", s.baseURL, resource, page-1)
		prev = &u
	}
	return slice, next, prev
}

func idKey(id int64) string { return strconv.FormatInt(id, 10) }
