package zendesk

import (
	"context"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// TicketEnvelope wraps a single ticket the way the API returns it.
type TicketEnvelope struct {
	Ticket *zendesk.Ticket `json:"ticket"`
}

// TicketsEnvelope is the list response for tickets.
type TicketsEnvelope struct {
	Tickets      []*zendesk.Ticket `json:"tickets"`
	Count        int               `json:"count"`
	NextPage     *string           `json:"next_page"`
	PreviousPage *string           `json:"previous_page"`
}

// CreateTicketInput carries the writable ticket fields.
type CreateTicketInput struct {
	Subject        string   `json:"subject" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Status         string   `json:"status" validate:"omitempty,oneof=new open pending hold solved closed"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Type           string   `json:"type" validate:"omitempty,oneof=problem incident question task"`
	RequesterID    int64    `json:"requester_id" validate:"omitempty,gt=0"`
	AssigneeID     *int64   `json:"assignee_id"`
	OrganizationID *int64   `json:"organization_id"`
	GroupID        *int64   `json:"group_id"`
	Tags           []string `json:"tags"`
}

// UpdateTicketInput carries a partial update; nil fields are left unchanged.
type UpdateTicketInput struct {
	Subject        *string   `json:"subject"`
	Description    *string   `json:"description"`
	Status         *string   `json:"status" validate:"omitempty,oneof=new open pending hold solved closed"`
	Priority       *string   `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Type           *string   `json:"type" validate:"omitempty,oneof=problem incident question task"`
	AssigneeID     *int64    `json:"assignee_id"`
	OrganizationID *int64    `json:"organization_id"`
	GroupID        *int64    `json:"group_id"`
	Tags           *[]string `json:"tags"`
}

// CreateTicket stores a new ticket and returns it in its envelope.
func (s *Service) CreateTicket(ctx context.Context, in CreateTicketInput) (*TicketEnvelope, error) {
	if err := s.faults.Intercept("zendesk.tickets.create"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	t := &zendesk.Ticket{
		ID:             s.store.Tickets.NextID(),
		Subject:        in.Subject,
		Description:    in.Description,
		Status:         in.Status,
		Priority:       in.Priority,
		Type:           in.Type,
		RequesterID:    in.RequesterID,
		AssigneeID:     in.AssigneeID,
		OrganizationID: in.OrganizationID,
		GroupID:        in.GroupID,
		Tags:           in.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if t.Status == "" {
		t.Status = "new"
	}
	t.URL = s.recordURL("tickets", t.ID)

	s.store.Tickets.Put(idKey(t.ID), t)
	return &TicketEnvelope{Ticket: t}, nil
}

// GetTicket looks up one ticket by id.
func (s *Service) GetTicket(ctx context.Context, id int64) (*TicketEnvelope, error) {
	if err := s.faults.Intercept("zendesk.tickets.get"); err != nil {
		return nil, err
	}
	t, ok := s.store.Tickets.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("ticket %d: %w", id, domain.ErrNotFound)
	}
	return &TicketEnvelope{Ticket: t}, nil
}

// ListTickets returns one page of tickets in insertion order.
func (s *Service) ListTickets(ctx context.Context, page int) (*TicketsEnvelope, error) {
	if err := s.faults.Intercept("zendesk.tickets.list"); err != nil {
		return nil, err
	}
	all := s.store.Tickets.List()
	slice, next, prev := listPage(s, "tickets", all, page)
	return &TicketsEnvelope{Tickets: slice, Count: len(all), NextPage: next, PreviousPage: prev}, nil
}

// UpdateTicket applies the non-nil fields of in and bumps updated_at.
func (s *Service) UpdateTicket(ctx context.Context, id int64, in UpdateTicketInput) (*TicketEnvelope, error) {
	if err := s.faults.Intercept("zendesk.tickets.update"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	t, ok := s.store.Tickets.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("ticket %d: %w", id, domain.ErrNotFound)
	}

	if in.Subject != nil {
		t.Subject = *in.Subject
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Type != nil {
		t.Type = *in.Type
	}
	if in.AssigneeID != nil {
		t.AssigneeID = in.AssigneeID
	}
	if in.OrganizationID != nil {
		t.OrganizationID = in.OrganizationID
	}
	if in.GroupID != nil {
		t.GroupID = in.GroupID
	}
	if in.Tags != nil {
		t.Tags = *in.Tags
	}
	t.UpdatedAt = s.now().UTC()

	s.store.Tickets.Put(idKey(id), t)
	return &TicketEnvelope{Ticket: t}, nil
}

// DeleteTicket removes a ticket.
func (s *Service) DeleteTicket(ctx context.Context, id int64) error {
	if err := s.faults.Intercept("zendesk.tickets.delete"); err != nil {
		return err
	}
	if !s.store.Tickets.Delete(idKey(id)) {
		return fmt.Errorf("ticket %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
