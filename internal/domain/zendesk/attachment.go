package zendesk

import "time"

// Attachment is an uploaded file record. Attachments are not searchable;
// they are referenced from upload tokens handed back by the upload
// endpoint.
type Attachment struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	FileName    string    `json:"file_name"`
	ContentURL  string    `json:"content_url"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Inline      bool      `json:"inline"`
	CreatedAt   time.Time `json:"created_at"`

	// UploadToken groups attachments created under one upload so the whole
	// batch can be deleted by token.
	UploadToken string `json:"upload_token,omitempty"`
}

// Upload pairs a reusable upload token with the attachments created under it.
type Upload struct {
	Token       string        `json:"token"`
	Attachments []*Attachment `json:"attachments"`
}
