// Package zendesk defines the wire-shaped record types the Zendesk
// simulator stores and returns. Field names and JSON tags follow the real
// API's documented schemas. Each searchable record exposes a lenient
// field accessor so query evaluation over unknown keys degrades to
// "no match" instead of failing.
package zendesk

import (
	"time"

	"github.com/mockdesk/mockdesk/internal/domain/search/kind"
)

// Ticket statuses and priorities in their Zendesk-defined escalation order.
// The orderings drive status/priority comparisons and sorting.
var (
	StatusOrder   = []string{"new", "open", "pending", "hold", "solved", "closed"}
	PriorityOrder = []string{"low", "normal", "high", "urgent"}
)

// Ticket is a support ticket record.
type Ticket struct {
	ID             int64     `json:"id"`
	URL            string    `json:"url"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	Type           string    `json:"type"`
	RequesterID    int64     `json:"requester_id"`
	AssigneeID     *int64    `json:"assignee_id"`
	OrganizationID *int64    `json:"organization_id"`
	GroupID        *int64    `json:"group_id"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RecordID returns the numeric record identifier.
func (t *Ticket) RecordID() int64 { return t.ID }

// Kind returns the resource kind for search result tagging.
func (t *Ticket) Kind() kind.Kind { return kind.Ticket }

// Created returns the creation timestamp.
func (t *Ticket) Created() time.Time { return t.CreatedAt }

// Updated returns the last-update timestamp.
func (t *Ticket) Updated() time.Time { return t.UpdatedAt }

// SearchText returns the fields free-text terms are matched against.
func (t *Ticket) SearchText() []string { return []string{t.Subject, t.Description} }

// Field looks up a query-filterable field by its external name. Nullable
// foreign keys report found with a nil value so sentinel filters like
// assignee:none can distinguish "unset" from "unknown key".
func (t *Ticket) Field(name string) (any, bool) {
	switch name {
	case "id":
		return t.ID, true
	case "subject":
		return t.Subject, true
	case "description":
		return t.Description, true
	case "status":
		return t.Status, true
	case "priority":
		return t.Priority, true
	case "type", "ticket_type":
		return t.Type, true
	case "requester", "requester_id":
		return t.RequesterID, true
	case "assignee", "assignee_id":
		if t.AssigneeID == nil {
			return nil, true
		}
		return *t.AssigneeID, true
	case "organization", "organization_id":
		if t.OrganizationID == nil {
			return nil, true
		}
		return *t.OrganizationID, true
	case "group", "group_id":
		if t.GroupID == nil {
			return nil, true
		}
		return *t.GroupID, true
	case "tags":
		return t.Tags, true
	case "created", "created_at":
		return t.CreatedAt, true
	case "updated", "updated_at":
		return t.UpdatedAt, true
	default:
		return nil, false
	}
}
