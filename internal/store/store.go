// Package store holds the in-process record store every simulated endpoint
// reads and mutates. The store is an explicit dependency handed to the
// service layer (never a package-level global) so tests get isolated
// instances. Writes are immediately visible to subsequent reads; there are
// no transactions, and each collection locks itself so concurrent tool
// calls are safe.
package store

import (
	"strconv"

	"github.com/mockdesk/mockdesk/internal/domain/hubspot"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
)

// Store is the full simulator state: one collection per resource.
type Store struct {
	Tickets       *Collection[*zendesk.Ticket]
	Users         *Collection[*zendesk.User]
	Organizations *Collection[*zendesk.Organization]
	Groups        *Collection[*zendesk.Group]
	Attachments   *Collection[*zendesk.Attachment]

	Campaigns       *Collection[*hubspot.Campaign]
	Forms           *Collection[*hubspot.Form]
	Templates       *Collection[*hubspot.Template]
	MarketingEmails *Collection[*hubspot.MarketingEmail]
	MarketingEvents *Collection[*hubspot.MarketingEvent]
	EmailSends      *Collection[*hubspot.EmailSend]
}

// New creates an empty store.
func New() *Store {
	return &Store{
		Tickets:       NewCollection[*zendesk.Ticket]("tickets"),
		Users:         NewCollection[*zendesk.User]("users"),
		Organizations: NewCollection[*zendesk.Organization]("organizations"),
		Groups:        NewCollection[*zendesk.Group]("groups"),
		Attachments:   NewCollection[*zendesk.Attachment]("attachments"),

		Campaigns:       NewCollection[*hubspot.Campaign]("campaigns"),
		Forms:           NewCollection[*hubspot.Form]("forms"),
		Templates:       NewCollection[*hubspot.Template]("templates"),
		MarketingEmails: NewCollection[*hubspot.MarketingEmail]("marketing_emails"),
		MarketingEvents: NewCollection[*hubspot.MarketingEvent]("marketing_events"),
		EmailSends:      NewCollection[*hubspot.EmailSend]("email_sends"),
	}
}

// Clear resets every collection, mirroring the per-test reset discipline.
func (s *Store) Clear() {
	s.Tickets.Clear()
	s.Users.Clear()
	s.Organizations.Clear()
	s.Groups.Clear()
	s.Attachments.Clear()
	s.Campaigns.Clear()
	s.Forms.Clear()
	s.Templates.Clear()
	s.MarketingEmails.Clear()
	s.MarketingEvents.Clear()
	s.EmailSends.Clear()
}

// The methods below satisfy the search service's Directory contract: list
// access per searchable kind plus ID lookups for side-loading.

// ListTickets returns all tickets in insertion order.
func (s *Store) ListTickets() []*zendesk.Ticket { return s.Tickets.List() }

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers() []*zendesk.User { return s.Users.List() }

// ListOrganizations returns all organizations in insertion order.
func (s *Store) ListOrganizations() []*zendesk.Organization { return s.Organizations.List() }

// ListGroups returns all groups in insertion order.
func (s *Store) ListGroups() []*zendesk.Group { return s.Groups.List() }

// UserByID looks up a user by numeric ID.
func (s *Store) UserByID(id int64) (*zendesk.User, bool) {
	return s.Users.Get(strconv.FormatInt(id, 10))
}

// OrganizationByID looks up an organization by numeric ID.
func (s *Store) OrganizationByID(id int64) (*zendesk.Organization, bool) {
	return s.Organizations.Get(strconv.FormatInt(id, 10))
}

// GroupByID looks up a group by numeric ID.
func (s *Store) GroupByID(id int64) (*zendesk.Group, bool) {
	return s.Groups.Get(strconv.FormatInt(id, 10))
}
