// Package hubspot implements the simulated HubSpot marketing endpoints:
// campaigns, forms, templates, marketing emails, marketing events and the
// single-send / transactional send surfaces. List endpoints use the v3
// cursor ("after") pagination and the {results, total, paging} envelope.
package hubspot

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mockdesk/mockdesk/internal/faults"
	"github.com/mockdesk/mockdesk/internal/store"
)

// Cursor list bounds, matching the v3 defaults.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Paging carries the next cursor of a list response.
type Paging struct {
	Next *PagingNext `json:"next,omitempty"`
}

// PagingNext is the cursor for the following page.
type PagingNext struct {
	After string `json:"after"`
}

// ListEnvelope is the common v3 collection response shape.
type ListEnvelope[T any] struct {
	Results []T     `json:"results"`
	Total   int     `json:"total"`
	Paging  *Paging `json:"paging,omitempty"`
}

// Service simulates the HubSpot marketing APIs against an injected store.
type Service struct {
	store  *store.Store
	faults *faults.Injector
	now    func() time.Time
	newID  func() string
}

// New creates a HubSpot service over the given store.
func New(st *store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// WithFaults attaches a fault injector.
func (s *Service) WithFaults(in *faults.Injector) *Service {
	s.faults = in
	return s
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// cursorPage slices records for one cursor page. The after cursor is the
// decimal offset of the first record to return; anything unparseable reads
// as the beginning.
func cursorPage[T any](records []T, limit int, after string) ListEnvelope[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	start := 0
	if after != "" {
		if n, err := strconv.Atoi(after); err == nil && n > 0 {
			start = n
		}
	}

	env := ListEnvelope[T]{Results: []T{}, Total: len(records)}
	if start >= len(records) {
		return env
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	env.Results = records[start:end]
	if end < len(records) {
		env.Paging = &Paging{Next: &PagingNext{After: strconv.Itoa(end)}}
	}
	return env
}

func idKey(id int64) string { return strconv.FormatInt(id, 10) }
