package search

import (
	"time"

	"github.com/mockdesk/mockdesk/internal/domain/search/kind"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
)

// Record is the evaluation contract every searchable resource satisfies.
// Field is a lenient accessor: unknown keys report !ok so a bad filter
// clause narrows results instead of failing the search.
type Record interface {
	RecordID() int64
	Kind() kind.Kind
	Field(name string) (any, bool)
	SearchText() []string
	Created() time.Time
	Updated() time.Time
}

// Directory is the read-only store view the search runs against: full
// scans per searchable kind plus ID lookups for side-loading. The search
// never mutates the store.
type Directory interface {
	ListTickets() []*zendesk.Ticket
	ListUsers() []*zendesk.User
	ListOrganizations() []*zendesk.Organization
	ListGroups() []*zendesk.Group

	UserByID(id int64) (*zendesk.User, bool)
	OrganizationByID(id int64) (*zendesk.Organization, bool)
	GroupByID(id int64) (*zendesk.Group, bool)
}
