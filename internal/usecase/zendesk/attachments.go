package zendesk

import (
	"context"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
	"github.com/mockdesk/mockdesk/internal/fileutil"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// UploadEnvelope wraps the upload token and the attachments created under it.
type UploadEnvelope struct {
	Upload *zendesk.Upload `json:"upload"`
}

// AttachmentEnvelope wraps a single attachment.
type AttachmentEnvelope struct {
	Attachment *zendesk.Attachment `json:"attachment"`
}

// UploadInput is one file to attach. Content is either raw text or a
// base64-encoded payload per Encoding. Passing an existing Token appends
// the file to that upload batch.
type UploadInput struct {
	Filename string `json:"filename" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Encoding string `json:"encoding" validate:"omitempty,oneof=text base64"`
	Token    string `json:"token"`
}

// Upload decodes and stores one attachment, minting a fresh upload token
// unless the input carries one.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadEnvelope, error) {
	if err := s.faults.Intercept("zendesk.uploads.create"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	data, err := fileutil.Decode(in.Content, in.Encoding)
	if err != nil {
		return nil, fmt.Errorf("decode upload content: %w", err)
	}

	token := in.Token
	if token == "" {
		token = s.newToken()
	}

	a := &zendesk.Attachment{
		ID:          s.store.Attachments.NextID(),
		FileName:    in.Filename,
		ContentType: fileutil.ContentType(in.Filename),
		Size:        int64(len(data)),
		CreatedAt:   s.now().UTC(),
		UploadToken: token,
	}
	a.URL = s.recordURL("attachments", a.ID)
	a.ContentURL = fmt.Sprintf("%s/attachments/%d/content", s.baseURL, a.ID)

	s.store.Attachments.Put(idKey(a.ID), a)
	return &UploadEnvelope{Upload: &zendesk.Upload{Token: token, Attachments: s.uploadBatch(token)}}, nil
}

// GetAttachment looks up one attachment by id.
func (s *Service) GetAttachment(ctx context.Context, id int64) (*AttachmentEnvelope, error) {
	if err := s.faults.Intercept("zendesk.attachments.get"); err != nil {
		return nil, err
	}
	a, ok := s.store.Attachments.Get(idKey(id))
	if !ok {
		return nil, fmt.Errorf("attachment %d: %w", id, domain.ErrNotFound)
	}
	return &AttachmentEnvelope{Attachment: a}, nil
}

// DeleteUpload removes every attachment created under the given token.
func (s *Service) DeleteUpload(ctx context.Context, token string) error {
	if err := s.faults.Intercept("zendesk.uploads.delete"); err != nil {
		return err
	}
	batch := s.uploadBatch(token)
	if len(batch) == 0 {
		return fmt.Errorf("upload %q: %w", token, domain.ErrNotFound)
	}
	for _, a := range batch {
		s.store.Attachments.Delete(idKey(a.ID))
	}
	return nil
}

func (s *Service) uploadBatch(token string) []*zendesk.Attachment {
	var batch []*zendesk.Attachment
	for _, a := range s.store.Attachments.List() {
		if a.UploadToken == token {
			batch = append(batch, a)
		}
	}
	return batch
}
