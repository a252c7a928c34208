package zendesk

import (
	"context"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// OrganizationEnvelope wraps a single organization.
type OrganizationEnvelope struct {
	Organization *zendesk.Organization `json:"organization"`
}

// OrganizationsEnvelope is the list response for organizations.
type OrganizationsEnvelope struct {
	Organizations []*zendesk.Organization `json:"organizations"`
	Count         int                     `json:"count"`
	NextPage      *string                 `json:"next_page"`
	PreviousPage  *string                 `json:"previous_page"`
}

// CreateOrganizationInput carries the writable organization fields.
type CreateOrganizationInput struct {
	Name    string   `json:"name" validate:"required"`
	Details string   `json:"details"`
	Notes   string   `json:"notes"`
	Tags    []string `json:"tags"`
}

// UpdateOrganizationInput carries a partial update.
type UpdateOrganizationInput struct {
	Name    *string   `json:"name"`
	Details *string   `json:"details"`
	Notes   *string   `json:"notes"`
	Tags    *[]string `json:"tags"`
}

// CreateOrganization stores a new organization. Names are unique.
func (s *Service) CreateOrganization(ctx context.Context, in CreateOrganizationInput) (*OrganizationEnvelope, error) {
	if err := s.faults.Intercept("zendesk.organizations.create"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	for _, o := range s.store.Organizations.List() {
		if o.Name == in.Name {
			return nil, fmt.Errorf("organization named %q: %w", in.Name, domain.ErrAlreadyExists)
		}
	}

	now := s.now().UTC()
	o := &zendesk.Organization{
		ID:        s.store.Organizations.NextID(),
		Name:      in.Name,
		Details:   in.Details,
		Notes:     in.Notes,
		Tags:      in.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.URL = s.recordURL("organizations", o.ID)

	s.store.Organizations.Put(idKey(o.ID), o)
	return &OrganizationEnvelope{Organization: o}, nil
}

// GetOrganization looks up one organization by id.
func (s *Service) GetOrganization(ctx context.Context, id int64) (*OrganizationEnvelope, error) {
	if err := s.faults.Intercept("zendesk.organizations.get"); err != nil {
		return nil, err
	}
	o, ok := s.store.Organizations.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("organization %d: %w", id, domain.ErrNotFound)
	}
	return &OrganizationEnvelope{Organization: o}, nil
}

// ListOrganizations returns one page of organizations in insertion order.
func (s *Service) ListOrganizations(ctx context.Context, page int) (*OrganizationsEnvelope, error) {
	if err := s.faults.Intercept("zendesk.organizations.list"); err != nil {
		return nil, err
	}
	all := s.store.Organizations.List()
	slice, next, prev := listPage(s, "organizations", all, page)
	return &OrganizationsEnvelope{Organizations: slice, Count: len(all), NextPage: next, PreviousPage: prev}, nil
}

// UpdateOrganization applies the non-nil fields of in and bumps updated_at.
func (s *Service) UpdateOrganization(ctx context.Context, id int64, in UpdateOrganizationInput) (*OrganizationEnvelope, error) {
	if err := s.faults.Intercept("zendesk.organizations.update"); err != nil {
		return nil, err
	}
	o, ok := s.store.Organizations.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("organization %d: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil {
		o.Name = *in.Name
	}
	if in.Details != nil {
		o.Details = *in.Details
	}
	if in.Notes != nil {
		o.Notes = *in.Notes
	}
	if in.Tags != nil {
		o.Tags = *in.Tags
	}
	o.UpdatedAt = s.now().UTC()

	s.store.Organizations.Put(idKey(id), o)
	return &OrganizationEnvelope{Organization: o}, nil
}

// DeleteOrganization removes an organization.
func (s *Service) DeleteOrganization(ctx context.Context, id int64) error {
	if err := s.faults.Intercept("zendesk.organizations.delete"); err != nil {
		return err
	}
	if !s.store.Organizations.Delete(idKey(id)) {
		return fmt.Errorf("organization %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
