package hubspot

import (
	"context"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/hubspot"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// FormFieldInput is one field definition in a form payload.
type FormFieldInput struct {
	Name      string `json:"name" validate:"required"`
	Label     string `json:"label"`
	FieldType string `json:"fieldType" validate:"omitempty,oneof=single_line_text multi_line_text email number dropdown checkbox radio"`
	Required  bool   `json:"required"`
	Hidden    bool   `json:"hidden"`
}

// CreateFormInput carries the writable form fields.
type CreateFormInput struct {
	Name     string           `json:"name" validate:"required"`
	FormType string           `json:"formType" validate:"omitempty,oneof=hubspot embedded_form"`
	Fields   []FormFieldInput `json:"fields" validate:"dive"`
}

// UpdateFormInput carries a partial update.
type UpdateFormInput struct {
	Name     *string           `json:"name"`
	Archived *bool             `json:"archived"`
	Fields   *[]FormFieldInput `json:"fields" validate:"omitempty,dive"`
}

func formFields(in []FormFieldInput) []hubspot.FormField {
	out := make([]hubspot.FormField, 0, len(in))
	for _, f := range in {
		ft := f.FieldType
		if ft == "" {
			ft = "single_line_text"
		}
		out = append(out, hubspot.FormField{
			Name:      f.Name,
			Label:     f.Label,
			FieldType: ft,
			Required:  f.Required,
			Hidden:    f.Hidden,
		})
	}
	return out
}

// CreateForm stores a new form under a fresh GUID.
func (s *Service) CreateForm(ctx context.Context, in CreateFormInput) (*hubspot.Form, error) {
	if err := s.faults.Intercept("hubspot.forms.create"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	f := &hubspot.Form{
		ID:        s.newID(),
		Name:      in.Name,
		FormType:  in.FormType,
		Fields:    formFields(in.Fields),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if f.FormType == "" {
		f.FormType = "hubspot"
	}
	s.store.Forms.Put(f.ID, f)
	return f, nil
}

// GetForm looks up one form by GUID.
func (s *Service) GetForm(ctx context.Context, id string) (*hubspot.Form, error) {
	if err := s.faults.Intercept("hubspot.forms.get"); err != nil {
		return nil, err
	}
	f, ok := s.store.Forms.Get(id)
	if !ok {
		return nil, fmt.Errorf("form %q: %w", id, domain.ErrNotFound)
	}
	return f, nil
}

// ListForms returns one cursor page of forms in insertion order. Archived
// forms are excluded unless includeArchived is set.
func (s *Service) ListForms(ctx context.Context, limit int, after string, includeArchived bool) (ListEnvelope[*hubspot.Form], error) {
	if err := s.faults.Intercept("hubspot.forms.list"); err != nil {
		return ListEnvelope[*hubspot.Form]{}, err
	}
	all := s.store.Forms.List()
	if !includeArchived {
		live := make([]*hubspot.Form, 0, len(all))
		for _, f := range all {
			if !f.Archived {
				live = append(live, f)
			}
		}
		all = live
	}
	return cursorPage(all, limit, after), nil
}

// UpdateForm applies the non-nil fields of in and bumps updatedAt.
func (s *Service) UpdateForm(ctx context.Context, id string, in UpdateFormInput) (*hubspot.Form, error) {
	if err := s.faults.Intercept("hubspot.forms.update"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	f, ok := s.store.Forms.Get(id)
	if !ok {
		return nil, fmt.Errorf("form %q: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil {
		f.Name = *in.Name
	}
	if in.Archived != nil {
		f.Archived = *in.Archived
	}
	if in.Fields != nil {
		f.Fields = formFields(*in.Fields)
	}
	f.UpdatedAt = s.now().UTC()

	s.store.Forms.Put(id, f)
	return f, nil
}

// DeleteForm removes a form.
func (s *Service) DeleteForm(ctx context.Context, id string) error {
	if err := s.faults.Intercept("hubspot.forms.delete"); err != nil {
		return err
	}
	if !s.store.Forms.Delete(id) {
		return fmt.Errorf("form %q: %w", id, domain.ErrNotFound)
	}
	return nil
}
