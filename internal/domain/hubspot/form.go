package hubspot

import "time"

// FormField is one input field in a form's single field group.
type FormField struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	FieldType string `json:"fieldType"`
	Required  bool   `json:"required"`
	Hidden    bool   `json:"hidden"`
}

// Form is a marketing form record, keyed by GUID.
type Form struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	FormType  string      `json:"formType"`
	Fields    []FormField `json:"fields"`
	Archived  bool        `json:"archived"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
