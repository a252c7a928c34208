package zendesk

import (
	"context"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// GroupEnvelope wraps a single group.
type GroupEnvelope struct {
	Group *zendesk.Group `json:"group"`
}

// GroupsEnvelope is the list response for groups.
type GroupsEnvelope struct {
	Groups       []*zendesk.Group `json:"groups"`
	Count        int              `json:"count"`
	NextPage     *string          `json:"next_page"`
	PreviousPage *string          `json:"previous_page"`
}

// CreateGroupInput carries the writable group fields.
type CreateGroupInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateGroupInput carries a partial update.
type UpdateGroupInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateGroup stores a new group.
func (s *Service) CreateGroup(ctx context.Context, in CreateGroupInput) (*GroupEnvelope, error) {
	if err := s.faults.Intercept("zendesk.groups.create"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	g := &zendesk.Group{
		ID:          s.store.Groups.NextID(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	g.URL = s.recordURL("groups", g.ID)

	s.store.Groups.Put(idKey(g.ID), g)
	return &GroupEnvelope{Group: g}, nil
}

// GetGroup looks up one group by id.
func (s *Service) GetGroup(ctx context.Context, id int64) (*GroupEnvelope, error) {
	if err := s.faults.Intercept("zendesk.groups.get"); err != nil {
		return nil, err
	}
	g, ok := s.store.Groups.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("group %d: %w", id, domain.ErrNotFound)
	}
	return &GroupEnvelope{Group: g}, nil
}

// ListGroups returns one page of groups in insertion order.
func (s *Service) ListGroups(ctx context.Context, page int) (*GroupsEnvelope, error) {
	if err := s.faults.Intercept("zendesk.groups.list"); err != nil {
		return nil, err
	}
	all := s.store.Groups.List()
	slice, next, prev := listPage(s, "groups", all, page)
	return &GroupsEnvelope{Groups: slice, Count: len(all), NextPage: next, PreviousPage: prev}, nil
}

// UpdateGroup applies the non-nil fields of in and bumps updated_at.
func (s *Service) UpdateGroup(ctx context.Context, id int64, in UpdateGroupInput) (*GroupEnvelope, error) {
	if err := s.faults.Intercept("zendesk.groups.update"); err != nil {
		return nil, err
	}
	g, ok := s.store.Groups.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("group %d: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil {
		g.Name = *in.Name
	}
	if in.Description != nil {
		g.Description = *in.Description
	}
	g.UpdatedAt = s.now().UTC()

	s.store.Groups.Put(idKey(id), g)
	return &GroupEnvelope{Group: g}, nil
}

// DeleteGroup removes a group.
func (s *Service) DeleteGroup(ctx context.Context, id int64) error {
	if err := s.faults.Intercept("zendesk.groups.delete"); err != nil {
		return err
	}
	if !s.store.Groups.Delete(idKey(id)) {
		return fmt.Errorf("group %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
