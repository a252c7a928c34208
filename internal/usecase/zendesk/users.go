package zendesk

import (
	"context"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// UserEnvelope wraps a single user.
type UserEnvelope struct {
	User *zendesk.User `json:"user"`
}

// UsersEnvelope is the list response for users.
type UsersEnvelope struct {
	Users        []*zendesk.User `json:"users"`
	Count        int             `json:"count"`
	NextPage     *string         `json:"next_page"`
	PreviousPage *string         `json:"previous_page"`
}

// CreateUserInput carries the writable user fields.
type CreateUserInput struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Role           string   `json:"role" validate:"omitempty,oneof=end-user agent admin"`
	Active         *bool    `json:"active"`
	Verified       *bool    `json:"verified"`
	OrganizationID *int64   `json:"organization_id"`
	Tags           []string `json:"tags"`
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Name           *string   `json:"name"`
	Email          *string   `json:"email" validate:"omitempty,email"`
	Role           *string   `json:"role" validate:"omitempty,oneof=end-user agent admin"`
	Active         *bool     `json:"active"`
	Verified       *bool     `json:"verified"`
	OrganizationID *int64    `json:"organization_id"`
	Tags           *[]string `json:"tags"`
}

// CreateUser stores a new user. Email addresses are unique across users.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*UserEnvelope, error) {
	if err := s.faults.Intercept("zendesk.users.create"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	for _, u := range s.store.Users.List() {
		if u.Email == in.Email {
			return nil, fmt.Errorf("user with email %q: %w", in.Email, domain.ErrAlreadyExists)
		}
	}

	now := s.now().UTC()
	u := &zendesk.User{
		ID:             s.store.Users.NextID(),
		Name:           in.Name,
		Email:          in.Email,
		Role:           in.Role,
		Active:         true,
		OrganizationID: in.OrganizationID,
		Tags:           in.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if u.Role == "" {
		u.Role = "end-user"
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if in.Verified != nil {
		u.Verified = *in.Verified
	}
	u.URL = s.recordURL("users", u.ID)

	s.store.Users.Put(idKey(u.ID), u)
	return &UserEnvelope{User: u}, nil
}

// GetUser looks up one user by id.
func (s *Service) GetUser(ctx context.Context, id int64) (*UserEnvelope, error) {
	if err := s.faults.Intercept("zendesk.users.get"); err != nil {
		return nil, err
	}
	u, ok := s.store.Users.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return &UserEnvelope{User: u}, nil
}

// ListUsers returns one page of users in insertion order.
func (s *Service) ListUsers(ctx context.Context, page int) (*UsersEnvelope, error) {
	if err := s.faults.Intercept("zendesk.users.list"); err != nil {
		return nil, err
	}
	all := s.store.Users.List()
	slice, next, prev := listPage(s, "users", all, page)
	return &UsersEnvelope{Users: slice, Count: len(all), NextPage: next, PreviousPage: prev}, nil
}

// UpdateUser applies the non-nil fields of in and bumps updated_at.
func (s *Service) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*UserEnvelope, error) {
	if err := s.faults.Intercept("zendesk.users.update"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	u, ok := s.store.Users.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}

	if in.Email != nil && *in.Email != u.Email {
		for _, other := range s.store.Users.List() {
			if other.ID != id && other.Email == *in.Email {
				return nil, fmt.Errorf("user with email %q: %w", *in.Email, domain.ErrAlreadyExists)
			}
		}
		u.Email = *in.Email
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if in.Verified != nil {
		u.Verified = *in.Verified
	}
	if in.OrganizationID != nil {
		u.OrganizationID = in.OrganizationID
	}
	if in.Tags != nil {
		u.Tags = *in.Tags
	}
	u.UpdatedAt = s.now().UTC()

	s.store.Users.Put(idKey(id), u)
	return &UserEnvelope{User: u}, nil
}

// DeleteUser removes a user.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.faults.Intercept("zendesk.users.delete"); err != nil {
		return err
	}
	if !s.store.Users.Delete(idKey(id)) {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
