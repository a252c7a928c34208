package hubspot

import "time"

// Marketing email lifecycle states.
const (
	EmailStateDraft     = "DRAFT"
	EmailStatePublished = "PUBLISHED"
)

// MarketingEmail is a marketing email record.
type MarketingEmail struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Subject     string     `json:"subject"`
	FromName    string     `json:"fromName,omitempty"`
	ReplyTo     string     `json:"replyTo,omitempty"`
	State       string     `json:"state"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Email send channels.
const (
	SendChannelSingleSend    = "single_send"
	SendChannelTransactional = "transactional"
)

// Send statuses as the real status endpoint reports them.
const (
	SendStatusPending    = "PENDING"
	SendStatusProcessing = "PROCESSING"
	SendStatusComplete   = "COMPLETE"
)

// EmailSend records one accepted single-send or transactional send request.
// StatusID is the handle the status endpoint is queried with.
type EmailSend struct {
	StatusID        string            `json:"statusId"`
	Channel         string            `json:"channel"`
	EmailID         int64             `json:"emailId"`
	To              string            `json:"to"`
	From            string            `json:"from,omitempty"`
	SendID          string            `json:"sendId,omitempty"`
	ContactProps    map[string]string `json:"contactProperties,omitempty"`
	CustomProps     map[string]string `json:"customProperties,omitempty"`
	Status          string            `json:"status"`
	RequestedAt     time.Time         `json:"requestedAt"`
	StatusUpdatedAt time.Time         `json:"statusUpdatedAt"`
}
