package hubspot

import "time"

// Marketing event participation states tracked by counters.
const (
	ParticipationRegistered = "registered"
	ParticipationAttended   = "attended"
	ParticipationCancelled  = "cancelled"
)

// MarketingEvent is a marketing event record, keyed by the caller-supplied
// external event ID.
type MarketingEvent struct {
	ExternalEventID  string     `json:"externalEventId"`
	EventName        string     `json:"eventName"`
	EventType        string     `json:"eventType,omitempty"`
	EventOrganizer   string     `json:"eventOrganizer"`
	EventDescription string     `json:"eventDescription,omitempty"`
	EventURL         string     `json:"eventUrl,omitempty"`
	EventCancelled   bool       `json:"eventCancelled"`
	StartDateTime    *time.Time `json:"startDateTime,omitempty"`
	EndDateTime      *time.Time `json:"endDateTime,omitempty"`
	Registrants      int        `json:"registrants"`
	Attendees        int        `json:"attendees"`
	Cancellations    int        `json:"cancellations"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
