package zendesk

import (
	"time"

	"github.com/mockdesk/mockdesk/internal/domain/search/kind"
)

// Organization is a Zendesk organization record.
type Organization struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Notes     string    `json:"notes"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID returns the numeric record identifier.
func (o *Organization) RecordID() int64 { return o.ID }

// Kind returns the resource kind for search result tagging.
func (o *Organization) Kind() kind.Kind { return kind.Organization }

// Created returns the creation timestamp.
func (o *Organization) Created() time.Time { return o.CreatedAt }

// Updated returns the last-update timestamp.
func (o *Organization) Updated() time.Time { return o.UpdatedAt }

// SearchText returns the fields free-text terms are matched against.
func (o *Organization) SearchText() []string { return []string{o.Name, o.Details, o.Notes} }

// Field looks up a query-filterable field by its external name.
func (o *Organization) Field(name string) (any, bool) {
	switch name {
	case "id":
		return o.ID, true
	case "name":
		return o.Name, true
	case "details":
		return o.Details, true
	case "notes":
		return o.Notes, true
	case "tags":
		return o.Tags, true
	case "created", "created_at":
		return o.CreatedAt, true
	case "updated", "updated_at":
		return o.UpdatedAt, true
	default:
		return nil, false
	}
}
