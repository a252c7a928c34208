package hubspot

import "time"

// Template is a CMS email/page template record.
type Template struct {
	ID         int64     `json:"id"`
	Path       string    `json:"path"`
	Source     string    `json:"source"`
	Folder     string    `json:"folder,omitempty"`
	CategoryID int       `json:"category_id"`
	CreatedAt  time.Time `json:"created"`
	UpdatedAt  time.Time `json:"updated"`
}
