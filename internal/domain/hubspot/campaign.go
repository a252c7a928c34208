// Package hubspot defines the wire-shaped record types the HubSpot
// marketing simulator stores and returns. Shapes follow the documented v3
// marketing APIs; identifiers are GUIDs where the real API uses GUIDs and
// numeric IDs elsewhere.
package hubspot

import "time"

// Campaign is a marketing campaign record, keyed by GUID.
type Campaign struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Goal      string     `json:"goal,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
