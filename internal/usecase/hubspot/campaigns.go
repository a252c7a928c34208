package hubspot

import (
	"context"
	"fmt"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/hubspot"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// CreateCampaignInput carries the writable campaign fields.
type CreateCampaignInput struct {
	Name      string     `json:"name" validate:"required"`
	Goal      string     `json:"goal"`
	Notes     string     `json:"notes"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// UpdateCampaignInput carries a partial update; nil fields are left unchanged.
type UpdateCampaignInput struct {
	Name      *string    `json:"name"`
	Goal      *string    `json:"goal"`
	Notes     *string    `json:"notes"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// CreateCampaign stores a new campaign under a fresh GUID.
func (s *Service) CreateCampaign(ctx context.Context, in CreateCampaignInput) (*hubspot.Campaign, error) {
	if err := s.faults.Intercept("hubspot.campaigns.create"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c := &hubspot.Campaign{
		ID:        s.newID(),
		Name:      in.Name,
		Goal:      in.Goal,
		Notes:     in.Notes,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.store.Campaigns.Put(c.ID, c)
	return c, nil
}

// GetCampaign looks up one campaign by GUID.
func (s *Service) GetCampaign(ctx context.Context, id string) (*hubspot.Campaign, error) {
	if err := s.faults.Intercept("hubspot.campaigns.get"); err != nil {
		return nil, err
	}
	c, ok := s.store.Campaigns.Get(id)
	if !ok {
		return nil, fmt.Errorf("campaign %q: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// ListCampaigns returns one cursor page of campaigns in insertion order.
func (s *Service) ListCampaigns(ctx context.Context, limit int, after string) (ListEnvelope[*hubspot.Campaign], error) {
	if err := s.faults.Intercept("hubspot.campaigns.list"); err != nil {
		return ListEnvelope[*hubspot.Campaign]{}, err
	}
	return cursorPage(s.store.Campaigns.List(), limit, after), nil
}

// UpdateCampaign applies the non-nil fields of in and bumps updatedAt.
func (s *Service) UpdateCampaign(ctx context.Context, id string, in UpdateCampaignInput) (*hubspot.Campaign, error) {
	if err := s.faults.Intercept("hubspot.campaigns.update"); err != nil {
		return nil, err
	}
	c, ok := s.store.Campaigns.Get(id)
	if !ok {
		return nil, fmt.Errorf("campaign %q: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Goal != nil {
		c.Goal = *in.Goal
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	if in.StartDate != nil {
		c.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		c.EndDate = in.EndDate
	}
	c.UpdatedAt = s.now().UTC()

	s.store.Campaigns.Put(id, c)
	return c, nil
}

// DeleteCampaign removes a campaign.
func (s *Service) DeleteCampaign(ctx context.Context, id string) error {
	if err := s.faults.Intercept("hubspot.campaigns.delete"); err != nil {
		return err
	}
	if !s.store.Campaigns.Delete(id) {
		return fmt.Errorf("campaign %q: %w", id, domain.ErrNotFound)
	}
	return nil
}
