package hubspot

import (
	"context"
	"fmt"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/hubspot"
	"github.com/mockdesk/mockdesk/internal/validate"
)

// SingleSendInput requests one single-send delivery of a published
// marketing email.
type SingleSendInput struct {
	EmailID      int64             `json:"emailId" validate:"required,gt=0"`
	To           string            `json:"to" validate:"required,email"`
	From         string            `json:"from" validate:"omitempty,email"`
	SendID       string            `json:"sendId"`
	ContactProps map[string]string `json:"contactProperties"`
	CustomProps  map[string]string `json:"customProperties"`
}

// TransactionalSendInput requests one transactional delivery.
type TransactionalSendInput struct {
	EmailID      int64             `json:"emailId" validate:"required,gt=0"`
	To           string            `json:"to" validate:"required,email"`
	From         string            `json:"from" validate:"omitempty,email"`
	SendID       string            `json:"sendId"`
	ContactProps map[string]string `json:"contactProperties"`
	CustomProps  map[string]string `json:"customProperties"`
}

// SendResponse is the accepted-send acknowledgement carrying the status
// handle for later polling.
type SendResponse struct {
	StatusID    string `json:"statusId"`
	Status      string `json:"status"`
	RequestedAt string `json:"requestedAt"`
}

// SendSingleEmail accepts a single-send request for a published email and
// records it as PENDING.
func (s *Service) SendSingleEmail(ctx context.Context, in SingleSendInput) (*SendResponse, error) {
	if err := s.faults.Intercept("hubspot.singlesend.send"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return s.acceptSend(hubspot.SendChannelSingleSend, in.EmailID, in.To, in.From, in.SendID, in.ContactProps, in.CustomProps)
}

// SendTransactionalEmail accepts a transactional send request and records it
// as PENDING.
func (s *Service) SendTransactionalEmail(ctx context.Context, in TransactionalSendInput) (*SendResponse, error) {
	if err := s.faults.Intercept("hubspot.transactional.send"); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return s.acceptSend(hubspot.SendChannelTransactional, in.EmailID, in.To, in.From, in.SendID, in.ContactProps, in.CustomProps)
}

func (s *Service) acceptSend(channel string, emailID int64, to, from, sendID string, contactProps, customProps map[string]string) (*SendResponse, error) {
	m, ok := s.store.MarketingEmails.Get(idKey(emailID))
	if !ok {
		return nil, fmt.Errorf("marketing email %d: %w", emailID, domain.ErrNotFound)
	}
	if channel == hubspot.SendChannelSingleSend && m.State != hubspot.EmailStatePublished {
		return nil, fmt.Errorf("marketing email %d is not published: %w", emailID, domain.ErrValidation)
	}

	now := s.now().UTC()
	send := &hubspot.EmailSend{
		StatusID:        s.newID(),
		Channel:         channel,
		EmailID:         emailID,
		To:              to,
		From:            from,
		SendID:          sendID,
		ContactProps:    contactProps,
		CustomProps:     customProps,
		Status:          hubspot.SendStatusPending,
		RequestedAt:     now,
		StatusUpdatedAt: now,
	}
	s.store.EmailSends.Put(send.StatusID, send)
	return &SendResponse{
		StatusID:    send.StatusID,
		Status:      send.Status,
		RequestedAt: now.Format(time.RFC3339),
	}, nil
}

// GetSendStatus reports the state of an accepted send. Simulated deliveries
// complete by the time their status is first queried.
func (s *Service) GetSendStatus(ctx context.Context, statusID string) (*hubspot.EmailSend, error) {
	if err := s.faults.Intercept("hubspot.sends.status"); err != nil {
		return nil, err
	}
	send, ok := s.store.EmailSends.Get(statusID)
	if !ok {
		return nil, fmt.Errorf("send status %q: %w", statusID, domain.ErrNotFound)
	}
	if send.Status != hubspot.SendStatusComplete {
		send.Status = hubspot.SendStatusComplete
		send.StatusUpdatedAt = s.now().UTC()
		s.store.EmailSends.Put(statusID, send)
	}
	return send, nil
}
