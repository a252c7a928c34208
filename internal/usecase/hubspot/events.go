package hubspot

import (
	"context"
	"fmt"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/hubspot"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// UpsertEventInput carries the writable marketing event fields. Events are
// keyed by the caller-supplied external event ID; upserting an existing ID
// updates the record in place.
type UpsertEventInput struct {
	ExternalEventID  string     `json:"externalEventId" validate:"required"`
	EventName        string     `json:"eventName" validate:"required"`
	EventType        string     `json:"eventType"`
	EventOrganizer   string     `json:"eventOrganizer" validate:"required"`
	EventDescription string     `json:"eventDescription"`
	EventURL         string     `json:"eventUrl" validate:"omitempty,url"`
	StartDateTime    *time.Time `json:"startDateTime"`
	EndDateTime      *time.Time `json:"endDateTime"`
}

// ParticipationCounters is the subscriber-state summary for one event.
type ParticipationCounters struct {
	Registrants   int `json:"registrants"`
	Attendees     int `json:"attendees"`
	Cancellations int `json:"cancellations"`
}

// UpsertEvent creates or replaces the event with the given external ID.
// Participation counters survive an upsert.
func (s *Service) UpsertEvent(ctx context.Context, in UpsertEventInput) (*hubspot.MarketingEvent, error) {
	if err := s.faults.Intercept("hubspot.events.upsert"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	e, ok := s.store.MarketingEvents.Get(in.ExternalEventID)
	if !ok {
		e = &hubspot.MarketingEvent{ExternalEventID: in.ExternalEventID, CreatedAt: now}
	}
	e.EventName = in.EventName
	e.EventType = in.EventType
	e.EventOrganizer = in.EventOrganizer
	e.EventDescription = in.EventDescription
	e.EventURL = in.EventURL
	e.StartDateTime = in.StartDateTime
	e.EndDateTime = in.EndDateTime
	e.UpdatedAt = now

	s.store.MarketingEvents.Put(e.ExternalEventID, e)
	return e, nil
}

// GetEvent looks up one event by external ID.
func (s *Service) GetEvent(ctx context.Context, externalEventID string) (*hubspot.MarketingEvent, error) {
	if err := s.faults.Intercept("hubspot.events.get"); err != nil {
		return nil, err
	}
	e, ok := s.store.MarketingEvents.Get(externalEventID)
	if !ok {
		return nil, fmt.Errorf("marketing event %q: %w", externalEventID, domain.ErrNotFound)
	}
	return e, nil
}

// ListEvents returns one cursor page of events in insertion order.
func (s *Service) ListEvents(ctx context.Context, limit int, after string) (ListEnvelope[*hubspot.MarketingEvent], error) {
	if err := s.faults.Intercept("hubspot.events.list"); err != nil {
		return ListEnvelope[*hubspot.MarketingEvent]{}, err
	}
	return cursorPage(s.store.MarketingEvents.List(), limit, after), nil
}

// RecordParticipation applies one participation state change and returns the
// updated counters. Moving to attended or cancelled consumes a registration
// when one exists; counters never go negative.
func (s *Service) RecordParticipation(ctx context.Context, externalEventID, state string, count int) (*ParticipationCounters, error) {
	if err := s.faults.Intercept("hubspot.events.participation"); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = 1
	}
	e, ok := s.store.MarketingEvents.Get(externalEventID)
	if !ok {
		return nil, fmt.Errorf("marketing event %q: %w", externalEventID, domain.ErrNotFound)
	}

	switch state {
	case hubspot.ParticipationRegistered:
		e.Registrants += count
	case hubspot.ParticipationAttended:
		e.Attendees += count
		e.Registrants -= count
	case hubspot.ParticipationCancelled:
		e.Cancellations += count
		e.Registrants -= count
	default:
		return nil, fmt.Errorf("participation state must be one of: registered, attended, cancelled: %w", domain.ErrValidation)
	}
	if e.Registrants < 0 {
		e.Registrants = 0
	}
	e.UpdatedAt = s.now().UTC()

	s.store.MarketingEvents.Put(externalEventID, e)
	return &ParticipationCounters{
		Registrants:   e.Registrants,
		Attendees:     e.Attendees,
		Cancellations: e.Cancellations,
	}, nil
}

// CancelEvent marks the event itself as cancelled (distinct from attendee
// cancellations).
func (s *Service) CancelEvent(ctx context.Context, externalEventID string) (*hubspot.MarketingEvent, error) {
	if err := s.faults.Intercept("hubspot.events.cancel"); err != nil {
		return nil, err
	}
	e, ok := s.store.MarketingEvents.Get(externalEventID)
	if !ok {
		return nil, fmt.Errorf("marketing event %q: %w", externalEventID, domain.ErrNotFound)
	}
	e.EventCancelled = true
	e.UpdatedAt = s.now().UTC()

	s.store.MarketingEvents.Put(externalEventID, e)
	return e, nil
}

// DeleteEvent removes an event.
func (s *Service) DeleteEvent(ctx context.Context, externalEventID string) error {
	if err := s.faults.Intercept("hubspot.events.delete"); err != nil {
		return err
	}
	if !s.store.MarketingEvents.Delete(externalEventID) {
		return fmt.Errorf("marketing event %q: %w", externalEventID, domain.ErrNotFound)
	}
	return nil
}
