package zendesk

import (
	"time"

	"github.com/mockdesk/mockdesk/internal/domain/search/kind"
)

// Group is an agent group record.
type Group struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordID returns the numeric record identifier.
func (g *Group) RecordID() int64 { return g.ID }

// Kind returns the resource kind for search result tagging.
func (g *Group) Kind() kind.Kind { return kind.Group }

// Created returns the creation timestamp.
func (g *Group) Created() time.Time { return g.CreatedAt }

// Updated returns the last-update timestamp.
func (g *Group) Updated() time.Time { return g.UpdatedAt }

// SearchText returns the fields free-text terms are matched against.
func (g *Group) SearchText() []string { return []string{g.Name, g.Description} }

// Field looks up a query-filterable field by its external name.
func (g *Group) Field(name string) (any, bool) {
	switch name {
	case "id":
		return g.ID, true
	case "name":
		return g.Name, true
	case "description":
		return g.Description, true
	case "created", "created_at":
		return g.CreatedAt, true
	case "updated", "updated_at":
		return g.UpdatedAt, true
	default:
		return nil, false
	}
}
