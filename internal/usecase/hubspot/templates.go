package hubspot

import (
	"context"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/hubspot"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// CreateTemplateInput carries the writable template fields.
type CreateTemplateInput struct {
	Path       string `json:"path" validate:"required"`
	Source     string `json:"source" validate:"required"`
	Folder     string `json:"folder"`
	CategoryID int    `json:"category_id" validate:"omitempty,gte=0"`
}

// UpdateTemplateInput carries a partial update.
type UpdateTemplateInput struct {
	Path   *string `json:"path"`
	Source *string `json:"source"`
	Folder *string `json:"folder"`
}

// CreateTemplate stores a new template. Paths are unique.
func (s *Service) CreateTemplate(ctx context.Context, in CreateTemplateInput) (*hubspot.Template, error) {
	if err := s.faults.Intercept("hubspot.templates.create"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	for _, t := range s.store.Templates.List() {
		if t.Path == in.Path {
			return nil, fmt.Errorf("template at %q: %w", in.Path, domain.ErrAlreadyExists)
		}
	}

	now := s.now().UTC()
	t := &hubspot.Template{
		ID:         s.store.Templates.NextID(),
		Path:       in.Path,
		Source:     in.Source,
		Folder:     in.Folder,
		CategoryID: in.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.store.Templates.Put(idKey(t.ID), t)
	return t, nil
}

// GetTemplate looks up one template by id.
func (s *Service) GetTemplate(ctx context.Context, id int64) (*hubspot.Template, error) {
	if err := s.faults.Intercept("hubspot.templates.get"); err != nil {
		return nil, err
	}
	t, ok := s.store.Templates.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

// ListTemplates returns one cursor page of templates in insertion order.
func (s *Service) ListTemplates(ctx context.Context, limit int, after string) (ListEnvelope[*hubspot.Template], error) {
	if err := s.faults.Intercept("hubspot.templates.list"); err != nil {
		return ListEnvelope[*hubspot.Template]{}, err
	}
	return cursorPage(s.store.Templates.List(), limit, after), nil
}

// UpdateTemplate applies the non-nil fields of in and bumps updated.
func (s *Service) UpdateTemplate(ctx context.Context, id int64, in UpdateTemplateInput) (*hubspot.Template, error) {
	if err := s.faults.Intercept("hubspot.templates.update"); err != nil {
		return nil, err
	}
	t, ok := s.store.Templates.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}

	if in.Path != nil && *in.Path != t.Path {
		for _, other := range s.store.Templates.List() {
			if other.ID != id && other.Path == *in.Path {
				return nil, fmt.Errorf("template at %q: %w", *in.Path, domain.ErrAlreadyExists)
			}
		}
		t.Path = *in.Path
	}
	if in.Source != nil {
		t.Source = *in.Source
	}
	if in.Folder != nil {
		t.Folder = *in.Folder
	}
	t.UpdatedAt = s.now().UTC()

	s.store.Templates.Put(idKey(id), t)
	return t, nil
}

// DeleteTemplate removes a template.
func (s *Service) DeleteTemplate(ctx context.Context, id int64) error {
	if err := s.faults.Intercept("hubspot.templates.delete"); err != nil {
		return err
	}
	if !s.store.Templates.Delete(idKey(id)) {
		return fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
