package zendesk

import (
	"time"

	"github.com/mockdesk/mockdesk/internal/domain/search/kind"
)

// Roles a user record may carry.
var UserRoles = []string{"end-user", "agent", "admin"}

// User is a Zendesk user record (end user, agent, or admin).
type User struct {
	ID             int64     `json:"id"`
	URL            string    `json:"url"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Active         bool      `json:"active"`
	Verified       bool      `json:"verified"`
	OrganizationID *int64    `json:"organization_id"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RecordID returns the numeric record identifier.
func (u *User) RecordID() int64 { return u.ID }

// Kind returns the resource kind for search result tagging.
func (u *User) Kind() kind.Kind { return kind.User }

// Created returns the creation timestamp.
func (u *User) Created() time.Time { return u.CreatedAt }

// Updated returns the last-update timestamp.
func (u *User) Updated() time.Time { return u.UpdatedAt }

// SearchText returns the fields free-text terms are matched against.
func (u *User) SearchText() []string { return []string{u.Name, u.Email} }

// Field looks up a query-filterable field by its external name.
func (u *User) Field(name string) (any, bool) {
	switch name {
	case "id":
		return u.ID, true
	case "name":
		return u.Name, true
	case "email":
		return u.Email, true
	case "role":
		return u.Role, true
	case "active":
		return u.Active, true
	case "verified":
		return u.Verified, true
	case "organization", "organization_id":
		if u.OrganizationID == nil {
			return nil, true
		}
		return *u.OrganizationID, true
	case "tags":
		return u.Tags, true
	case "created", "created_at":
		return u.CreatedAt, true
	case "updated", "updated_at":
		return u.UpdatedAt, true
	default:
		return nil, false
	}
}
