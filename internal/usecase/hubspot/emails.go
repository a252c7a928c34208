package hubspot

import (
	"context"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/hubspot"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// CreateEmailInput carries the writable marketing email fields. New emails
// always start in DRAFT.
type CreateEmailInput struct {
	Name     string `json:"name" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	FromName string `json:"fromName"`
	ReplyTo  string `json:"replyTo" validate:"omitempty,email"`
}

// UpdateEmailInput carries a partial update.
type UpdateEmailInput struct {
	Name     *string `json:"name"`
	Subject  *string `json:"subject"`
	FromName *string `json:"fromName"`
	ReplyTo  *string `json:"replyTo" validate:"omitempty,email"`
}

// CreateEmail stores a new draft marketing email.
func (s *Service) CreateEmail(ctx context.Context, in CreateEmailInput) (*hubspot.MarketingEmail, error) {
	if err := s.faults.Intercept("hubspot.emails.create"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	m := &hubspot.MarketingEmail{
		ID:        s.store.MarketingEmails.NextID(),
		Name:      in.Name,
		Subject:   in.Subject,
		FromName:  in.FromName,
		ReplyTo:   in.ReplyTo,
		State:     hubspot.EmailStateDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.store.MarketingEmails.Put(idKey(m.ID), m)
	return m, nil
}

// GetEmail looks up one marketing email by id.
func (s *Service) GetEmail(ctx context.Context, id int64) (*hubspot.MarketingEmail, error) {
	if err := s.faults.Intercept("hubspot.emails.get"); err != nil {
		return nil, err
	}
	m, ok := s.store.MarketingEmails.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("marketing email %d: %w", id, domain.ErrNotFound)
	}
	return m, nil
}

// ListEmails returns one cursor page of marketing emails in insertion order.
func (s *Service) ListEmails(ctx context.Context, limit int, after string) (ListEnvelope[*hubspot.MarketingEmail], error) {
	if err := s.faults.Intercept("hubspot.emails.list"); err != nil {
		return ListEnvelope[*hubspot.MarketingEmail]{}, err
	}
	return cursorPage(s.store.MarketingEmails.List(), limit, after), nil
}

// UpdateEmail applies the non-nil fields of in and bumps updatedAt.
// Published emails are read-only.
func (s *Service) UpdateEmail(ctx context.Context, id int64, in UpdateEmailInput) (*hubspot.MarketingEmail, error) {
	if err := s.faults.Intercept("hubspot.emails.update"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	m, ok := s.store.MarketingEmails.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("marketing email %d: %w", id, domain.ErrNotFound)
	}
	if m.State == hubspot.EmailStatePublished {
		return nil, fmt.Errorf("marketing email %d is published and cannot be edited: %w", id, domain.ErrValidation)
	}

	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Subject != nil {
		m.Subject = *in.Subject
	}
	if in.FromName != nil {
		m.FromName = *in.FromName
	}
	if in.ReplyTo != nil {
		m.ReplyTo = *in.ReplyTo
	}
	m.UpdatedAt = s.now().UTC()

	s.store.MarketingEmails.Put(idKey(id), m)
	return m, nil
}

// PublishEmail moves a draft email to PUBLISHED and stamps the publish date.
// Publishing an already-published email is a no-op returning the record.
func (s *Service) PublishEmail(ctx context.Context, id int64) (*hubspot.MarketingEmail, error) {
	if err := s.faults.Intercept("hubspot.emails.publish"); err != nil {
		return nil, err
	}
	m, ok := s.store.MarketingEmails.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("marketing email %d: %w", id, domain.ErrNotFound)
	}
	if m.State == hubspot.EmailStatePublished {
		return m, nil
	}

	now := s.now().UTC()
	m.State = hubspot.EmailStatePublished
	m.PublishDate = &now
	m.UpdatedAt = now

	s.store.MarketingEmails.Put(idKey(id), m)
	return m, nil
}

// DeleteEmail removes a marketing email.
func (s *Service) DeleteEmail(ctx context.Context, id int64) error {
	if err := s.faults.Intercept("hubspot.emails.delete"); err != nil {
		return err
	}
	if !s.store.MarketingEmails.Delete(idKey(id)) {
		return fmt.Errorf("marketing email %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
