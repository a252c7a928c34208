package zendesk

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/faults"
	"github.com/mockdesk/mockdesk/internal/store"
)

var fixedNow = time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	svc := New(store.New()).WithClock(func() time.Time { return fixedNow })
	svc.newToken = func() string { return "token-1" }
	return svc
}

func TestCreateTicket_DefaultsAndURL(t *testing.T) {
	svc := newTestService()

	env, err := svc.CreateTicket(context.Background(), CreateTicketInput{
		Subject:     "Printer on fire",
		Description: "It is genuinely on fire.",
		RequesterID: 42,
	})
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}

	tk := env.Ticket
	if tk.ID != 1 {
		t.Errorf("ID = %d, want 1", tk.ID)
	}
	if tk.Status != "new" {
		t.Errorf("Status = %q, want default new", tk.Status)
	}
	if tk.URL != "https://example.zendesk.com/api/v2/tickets/1.json" {
		t.Errorf("URL = %q", tk.URL)
	}
	if !tk.CreatedAt.Equal(fixedNow) || !tk.UpdatedAt.Equal(fixedNow) {
		t.Error("timestamps should come from the injected clock")
	}
}

func TestCreateTicket_Validation(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateTicket(context.Background(), CreateTicketInput{Description: "no subject"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing subject: err = %v, want ErrValidation", err)
	}

	_, err = svc.CreateTicket(context.Background(), CreateTicketInput{
		Subject: "s", Description: "d", Priority: "catastrophic",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad priority: err = %v, want ErrValidation", err)
	}
}

func TestUpdateTicket_PartialUpdate(t *testing.T) {
	svc := newTestService()
	created, err := svc.CreateTicket(context.Background(), CreateTicketInput{
		Subject: "Original", Description: "d", Priority: "low",
	})
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}

	later := fixedNow.Add(time.Hour)
	svc.WithClock(func() time.Time { return later })

	status := "open"
	env, err := svc.UpdateTicket(context.Background(), created.Ticket.ID, UpdateTicketInput{Status: &status})
	if err != nil {
		t.Fatalf("UpdateTicket: %v", err)
	}
	if env.Ticket.Status != "open" {
		t.Errorf("Status = %q, want open", env.Ticket.Status)
	}
	if env.Ticket.Subject != "Original" || env.Ticket.Priority != "low" {
		t.Error("unset fields must stay unchanged")
	}
	if !env.Ticket.UpdatedAt.Equal(later) {
		t.Error("UpdatedAt should be bumped")
	}
	if !env.Ticket.CreatedAt.Equal(fixedNow) {
		t.Error("CreatedAt must not change on update")
	}
}

func TestGetTicket_NotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.GetTicket(context.Background(), 404); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTicket(t *testing.T) {
	svc := newTestService()
	env, _ := svc.CreateTicket(context.Background(), CreateTicketInput{Subject: "s", Description: "d"})

	if err := svc.DeleteTicket(context.Background(), env.Ticket.ID); err != nil {
		t.Fatalf("DeleteTicket: %v", err)
	}
	if err := svc.DeleteTicket(context.Background(), env.Ticket.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestListTickets_Pagination(t *testing.T) {
	svc := newTestService()
	for i := 0; i < 150; i++ {
		if _, err := svc.CreateTicket(context.Background(), CreateTicketInput{
			Subject: "bulk", Description: "d",
		}); err != nil {
			t.Fatalf("CreateTicket %d: %v", i, err)
		}
	}

	page1, err := svc.ListTickets(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if page1.Count != 150 || len(page1.Tickets) != 100 {
		t.Fatalf("page 1: count=%d len=%d", page1.Count, len(page1.Tickets))
	}
	if page1.NextPage == nil || !strings.Contains(*page1.NextPage, "tickets.json?page=2") {
		t.Errorf("NextPage = %v", page1.NextPage)
	}
	if page1.PreviousPage != nil {
		t.Error("first page should have no previous link")
	}

	page2, err := svc.ListTickets(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListTickets page 2: %v", err)
	}
	if len(page2.Tickets) != 50 || page2.NextPage != nil || page2.PreviousPage == nil {
		t.Errorf("page 2: len=%d next=%v prev=%v", len(page2.Tickets), page2.NextPage, page2.PreviousPage)
	}
	if page2.Tickets[0].ID != 101 {
		t.Errorf("page 2 starts at %d, want 101", page2.Tickets[0].ID)
	}
}

func TestCreateUser_UniqueEmail(t *testing.T) {
	svc := newTestService()
	in := CreateUserInput{Name: "Ada", Email: "ada@example.com"}

	env, err := svc.CreateUser(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if env.User.Role != "end-user" || !env.User.Active {
		t.Errorf("defaults: role=%q active=%v", env.User.Role, env.User.Active)
	}

	if _, err := svc.CreateUser(context.Background(), in); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("duplicate email: err = %v, want ErrAlreadyExists", err)
	}
}

func TestUpdateUser_EmailCollision(t *testing.T) {
	svc := newTestService()
	a, _ := svc.CreateUser(context.Background(), CreateUserInput{Name: "A", Email: "a@example.com"})
	if _, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "B", Email: "b@example.com"}); err != nil {
		t.Fatalf("CreateUser B: %v", err)
	}

	taken := "b@example.com"
	_, err := svc.UpdateUser(context.Background(), a.User.ID, UpdateUserInput{Email: &taken})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestCreateOrganization_UniqueName(t *testing.T) {
	svc := newTestService()
	in := CreateOrganizationInput{Name: "Acme"}

	if _, err := svc.CreateOrganization(context.Background(), in); err != nil {
		t.Fatalf("CreateOrganization: %v", err)
	}
	if _, err := svc.CreateOrganization(context.Background(), in); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("duplicate name: err = %v, want ErrAlreadyExists", err)
	}
}

func TestGroupLifecycle(t *testing.T) {
	svc := newTestService()
	env, err := svc.CreateGroup(context.Background(), CreateGroupInput{Name: "Tier 1", Description: "front line"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}

	name := "Tier One"
	updated, err := svc.UpdateGroup(context.Background(), env.Group.ID, UpdateGroupInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateGroup: %v", err)
	}
	if updated.Group.Name != "Tier One" || updated.Group.Description != "front line" {
		t.Errorf("updated group = %+v", updated.Group)
	}

	if err := svc.DeleteGroup(context.Background(), env.Group.ID); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
}

func TestUpload_TokenBatching(t *testing.T) {
	svc := newTestService()

	first, err := svc.Upload(context.Background(), UploadInput{
		Filename: "notes.txt", Content: "hello world",
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if first.Upload.Token != "token-1" {
		t.Errorf("Token = %q", first.Upload.Token)
	}
	att := first.Upload.Attachments[0]
	if att.Size != int64(len("hello world")) {
		t.Errorf("Size = %d", att.Size)
	}
	if att.ContentType != "text/plain; charset=utf-8" {
		t.Errorf("ContentType = %q", att.ContentType)
	}

	second, err := svc.Upload(context.Background(), UploadInput{
		Filename: "more.txt", Content: "more", Token: first.Upload.Token,
	})
	if err != nil {
		t.Fatalf("second Upload: %v", err)
	}
	if len(second.Upload.Attachments) != 2 {
		t.Errorf("batch size = %d, want 2", len(second.Upload.Attachments))
	}

	if err := svc.DeleteUpload(context.Background(), first.Upload.Token); err != nil {
		t.Fatalf("DeleteUpload: %v", err)
	}
	if _, err := svc.GetAttachment(context.Background(), att.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("attachment should be gone, err = %v", err)
	}
}

func TestUpload_Base64Decoding(t *testing.T) {
	svc := newTestService()
	env, err := svc.Upload(context.Background(), UploadInput{
		Filename: "blob.bin", Content: "aGVsbG8=", Encoding: "base64",
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if env.Upload.Attachments[0].Size != 5 {
		t.Errorf("Size = %d, want 5 decoded bytes", env.Upload.Attachments[0].Size)
	}

	_, err = svc.Upload(context.Background(), UploadInput{
		Filename: "bad.bin", Content: "!!!not base64!!!", Encoding: "base64",
	})
	if err == nil {
		t.Error("invalid base64 should error")
	}
}

func TestFaultInjection_InterceptsOperation(t *testing.T) {
	svc := newTestService().WithFaults(faults.New(faults.Rule{
		Operation: "zendesk.tickets.create",
		Status:    503,
		Detail:    "simulated outage",
		Times:     1,
	}))

	_, err := svc.CreateTicket(context.Background(), CreateTicketInput{Subject: "s", Description: "d"})
	var status *domain.StatusError
	if !errors.As(err, &status) || status.Status != 503 {
		t.Fatalf("err = %v, want injected 503", err)
	}

	// Rule is exhausted after one hit.
	if _, err := svc.CreateTicket(context.Background(), CreateTicketInput{Subject: "s", Description: "d"}); err != nil {
		t.Errorf("second create should succeed, err = %v", err)
	}
}

func TestWithSubdomain_RebasesURLs(t *testing.T) {
	svc := newTestService().WithSubdomain("support")
	env, err := svc.CreateTicket(context.Background(), CreateTicketInput{Subject: "s", Description: "d"})
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	if env.Ticket.URL != "https://support.zendesk.com/api/v2/tickets/1.json" {
		t.Errorf("URL = %q", env.Ticket.URL)
	}
}
