package mcptool

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/usecase/hubspot"
)

func (s *Server) registerHubSpotTools() {
	s.registerCampaignTools()
	s.registerFormTools()
	s.registerTemplateTools()
	s.registerEmailTools()
	s.registerEventTools()
	s.registerSendTools()
}

// timePtrArg reads an optional RFC 3339 timestamp argument.
func timePtrArg(args map[string]any, key string) (*time.Time, error) {
	raw, err := stringPtrArg(args, key)
	if err != nil || raw == nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an RFC 3339 timestamp", domain.ErrInvalidParameter, key)
	}
	return &t, nil
}

func (s *Server) registerCampaignTools() {
	s.register("hubspot", "campaigns.create", mcp.NewTool("hubspot_create_campaign",
		mcp.WithDescription("Create a marketing campaign"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Campaign name")),
		mcp.WithString("goal", mcp.Description("Campaign goal")),
		mcp.WithString("notes", mcp.Description("Free-form notes")),
		mcp.WithString("start_date", mcp.Description("RFC 3339 start timestamp")),
		mcp.WithString("end_date", mcp.Description("RFC 3339 end timestamp")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in hubspot.CreateCampaignInput
		var err error
		if in.Name, err = stringArg(args, "name", ""); err != nil {
			return nil, err
		}
		if in.Goal, err = stringArg(args, "goal", ""); err != nil {
			return nil, err
		}
		if in.Notes, err = stringArg(args, "notes", ""); err != nil {
			return nil, err
		}
		if in.StartDate, err = timePtrArg(args, "start_date"); err != nil {
			return nil, err
		}
		if in.EndDate, err = timePtrArg(args, "end_date"); err != nil {
			return nil, err
		}
		return s.hubspot.CreateCampaign(ctx, in)
	})

	s.register("hubspot", "campaigns.get", mcp.NewTool("hubspot_get_campaign",
		mcp.WithDescription("Fetch one campaign by GUID"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Campaign GUID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "id")
		if err != nil {
			return nil, err
		}
		return s.hubspot.GetCampaign(ctx, id)
	})

	s.register("hubspot", "campaigns.list", mcp.NewTool("hubspot_list_campaigns",
		mcp.WithDescription("List campaigns with cursor pagination"),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100 (default 10)")),
		mcp.WithString("after", mcp.Description("Cursor from the previous page")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		limit, after, err := cursorArgs(args)
		if err != nil {
			return nil, err
		}
		return s.hubspot.ListCampaigns(ctx, limit, after)
	})

	s.register("hubspot", "campaigns.update", mcp.NewTool("hubspot_update_campaign",
		mcp.WithDescription("Update fields on an existing campaign"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Campaign GUID")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("goal", mcp.Description("New goal")),
		mcp.WithString("notes", mcp.Description("New notes")),
		mcp.WithString("start_date", mcp.Description("New RFC 3339 start timestamp")),
		mcp.WithString("end_date", mcp.Description("New RFC 3339 end timestamp")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "id")
		if err != nil {
			return nil, err
		}
		var in hubspot.UpdateCampaignInput
		if in.Name, err = stringPtrArg(args, "name"); err != nil {
			return nil, err
		}
		if in.Goal, err = stringPtrArg(args, "goal"); err != nil {
			return nil, err
		}
		if in.Notes, err = stringPtrArg(args, "notes"); err != nil {
			return nil, err
		}
		if in.StartDate, err = timePtrArg(args, "start_date"); err != nil {
			return nil, err
		}
		if in.EndDate, err = timePtrArg(args, "end_date"); err != nil {
			return nil, err
		}
		return s.hubspot.UpdateCampaign(ctx, id, in)
	})

	s.register("hubspot", "campaigns.delete", mcp.NewTool("hubspot_delete_campaign",
		mcp.WithDescription("Delete a campaign"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Campaign GUID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "id")
		if err != nil {
			return nil, err
		}
		if err := s.hubspot.DeleteCampaign(ctx, id); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}

func cursorArgs(args map[string]any) (int, string, error) {
	limit, err := intArg(args, "limit", hubspot.DefaultLimit)
	if err != nil {
		return 0, "", err
	}
	after, err := stringArg(args, "after", "")
	if err != nil {
		return 0, "", err
	}
	return limit, after, nil
}

func formFieldInputs(args map[string]any) ([]hubspot.FormFieldInput, bool, error) {
	v, ok := args["fields"]
	if !ok || v == nil {
		return nil, false, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false, typeError("fields", "array", v)
	}
	out := make([]hubspot.FormFieldInput, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false, typeError("fields", "array of objects", v)
		}
		var f hubspot.FormFieldInput
		var err error
		if f.Name, err = stringArg(obj, "name", ""); err != nil {
			return nil, false, err
		}
		if f.Label, err = stringArg(obj, "label", ""); err != nil {
			return nil, false, err
		}
		if f.FieldType, err = stringArg(obj, "fieldType", ""); err != nil {
			return nil, false, err
		}
		req, err := boolPtrArg(obj, "required")
		if err != nil {
			return nil, false, err
		}
		if req != nil {
			f.Required = *req
		}
		hidden, err := boolPtrArg(obj, "hidden")
		if err != nil {
			return nil, false, err
		}
		if hidden != nil {
			f.Hidden = *hidden
		}
		out = append(out, f)
	}
	return out, true, nil
}

func (s *Server) registerFormTools() {
	s.register("hubspot", "forms.create", mcp.NewTool("hubspot_create_form",
		mcp.WithDescription("Create a marketing form"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Form name")),
		mcp.WithString("form_type", mcp.Description("hubspot or embedded_form (default hubspot)")),
		mcp.WithArray("fields", mcp.Description("Field definitions: {name, label, fieldType, required, hidden}")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in hubspot.CreateFormInput
		var err error
		if in.Name, err = stringArg(args, "name", ""); err != nil {
			return nil, err
		}
		if in.FormType, err = stringArg(args, "form_type", ""); err != nil {
			return nil, err
		}
		fields, _, err := formFieldInputs(args)
		if err != nil {
			return nil, err
		}
		in.Fields = fields
		return s.hubspot.CreateForm(ctx, in)
	})

	s.register("hubspot", "forms.get", mcp.NewTool("hubspot_get_form",
		mcp.WithDescription("Fetch one form by GUID"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Form GUID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "id")
		if err != nil {
			return nil, err
		}
		return s.hubspot.GetForm(ctx, id)
	})

	s.register("hubspot", "forms.list", mcp.NewTool("hubspot_list_forms",
		mcp.WithDescription("List forms with cursor pagination"),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100 (default 10)")),
		mcp.WithString("after", mcp.Description("Cursor from the previous page")),
		mcp.WithBoolean("include_archived", mcp.Description("Include archived forms")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		limit, after, err := cursorArgs(args)
		if err != nil {
			return nil, err
		}
		archived, err := boolPtrArg(args, "include_archived")
		if err != nil {
			return nil, err
		}
		return s.hubspot.ListForms(ctx, limit, after, archived != nil && *archived)
	})

	s.register("hubspot", "forms.update", mcp.NewTool("hubspot_update_form",
		mcp.WithDescription("Update fields on an existing form"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Form GUID")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithBoolean("archived", mcp.Description("Archive or unarchive the form")),
		mcp.WithArray("fields", mcp.Description("Replacement field definitions")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "id")
		if err != nil {
			return nil, err
		}
		var in hubspot.UpdateFormInput
		if in.Name, err = stringPtrArg(args, "name"); err != nil {
			return nil, err
		}
		if in.Archived, err = boolPtrArg(args, "archived"); err != nil {
			return nil, err
		}
		fields, present, err := formFieldInputs(args)
		if err != nil {
			return nil, err
		}
		if present {
			in.Fields = &fields
		}
		return s.hubspot.UpdateForm(ctx, id, in)
	})

	s.register("hubspot", "forms.delete", mcp.NewTool("hubspot_delete_form",
		mcp.WithDescription("Delete a form"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Form GUID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "id")
		if err != nil {
			return nil, err
		}
		if err := s.hubspot.DeleteForm(ctx, id); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}

func (s *Server) registerTemplateTools() {
	s.register("hubspot", "templates.create", mcp.NewTool("hubspot_create_template",
		mcp.WithDescription("Create a CMS template"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Unique template path, e.g. custom/email/welcome.html")),
		mcp.WithString("source", mcp.Required(), mcp.Description("Template markup")),
		mcp.WithString("folder", mcp.Description("Folder the template lives in")),
		mcp.WithNumber("category_id", mcp.Description("Template category")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in hubspot.CreateTemplateInput
		var err error
		if in.Path, err = stringArg(args, "path", ""); err != nil {
			return nil, err
		}
		if in.Source, err = stringArg(args, "source", ""); err != nil {
			return nil, err
		}
		if in.Folder, err = stringArg(args, "folder", ""); err != nil {
			return nil, err
		}
		if in.CategoryID, err = intArg(args, "category_id", 0); err != nil {
			return nil, err
		}
		return s.hubspot.CreateTemplate(ctx, in)
	})

	s.register("hubspot", "templates.get", mcp.NewTool("hubspot_get_template",
		mcp.WithDescription("Fetch one template by ID"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Template ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		return s.hubspot.GetTemplate(ctx, id)
	})

	s.register("hubspot", "templates.list", mcp.NewTool("hubspot_list_templates",
		mcp.WithDescription("List templates with cursor pagination"),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100 (default 10)")),
		mcp.WithString("after", mcp.Description("Cursor from the previous page")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		limit, after, err := cursorArgs(args)
		if err != nil {
			return nil, err
		}
		return s.hubspot.ListTemplates(ctx, limit, after)
	})

	s.register("hubspot", "templates.update", mcp.NewTool("hubspot_update_template",
		mcp.WithDescription("Update fields on an existing template"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Template ID")),
		mcp.WithString("path", mcp.Description("New unique path")),
		mcp.WithString("source", mcp.Description("New markup")),
		mcp.WithString("folder", mcp.Description("New folder")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		var in hubspot.UpdateTemplateInput
		if in.Path, err = stringPtrArg(args, "path"); err != nil {
			return nil, err
		}
		if in.Source, err = stringPtrArg(args, "source"); err != nil {
			return nil, err
		}
		if in.Folder, err = stringPtrArg(args, "folder"); err != nil {
			return nil, err
		}
		return s.hubspot.UpdateTemplate(ctx, id, in)
	})

	s.register("hubspot", "templates.delete", mcp.NewTool("hubspot_delete_template",
		mcp.WithDescription("Delete a template"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Template ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		if err := s.hubspot.DeleteTemplate(ctx, id); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}

func (s *Server) registerEmailTools() {
	s.register("hubspot", "emails.create", mcp.NewTool("hubspot_create_email",
		mcp.WithDescription("Create a draft marketing email"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Internal email name")),
		mcp.WithString("subject", mcp.Required(), mcp.Description("Subject line")),
		mcp.WithString("from_name", mcp.Description("Sender display name")),
		mcp.WithString("reply_to", mcp.Description("Reply-to address")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in hubspot.CreateEmailInput
		var err error
		if in.Name, err = stringArg(args, "name", ""); err != nil {
			return nil, err
		}
		if in.Subject, err = stringArg(args, "subject", ""); err != nil {
			return nil, err
		}
		if in.FromName, err = stringArg(args, "from_name", ""); err != nil {
			return nil, err
		}
		if in.ReplyTo, err = stringArg(args, "reply_to", ""); err != nil {
			return nil, err
		}
		return s.hubspot.CreateEmail(ctx, in)
	})

	s.register("hubspot", "emails.get", mcp.NewTool("hubspot_get_email",
		mcp.WithDescription("Fetch one marketing email by ID"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Email ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		return s.hubspot.GetEmail(ctx, id)
	})

	s.register("hubspot", "emails.list", mcp.NewTool("hubspot_list_emails",
		mcp.WithDescription("List marketing emails with cursor pagination"),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100 (default 10)")),
		mcp.WithString("after", mcp.Description("Cursor from the previous page")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		limit, after, err := cursorArgs(args)
		if err != nil {
			return nil, err
		}
		return s.hubspot.ListEmails(ctx, limit, after)
	})

	s.register("hubspot", "emails.update", mcp.NewTool("hubspot_update_email",
		mcp.WithDescription("Update a draft marketing email"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Email ID")),
		mcp.WithString("name", mcp.Description("New internal name")),
		mcp.WithString("subject", mcp.Description("New subject line")),
		mcp.WithString("from_name", mcp.Description("New sender display name")),
		mcp.WithString("reply_to", mcp.Description("New reply-to address")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		var in hubspot.UpdateEmailInput
		if in.Name, err = stringPtrArg(args, "name"); err != nil {
			return nil, err
		}
		if in.Subject, err = stringPtrArg(args, "subject"); err != nil {
			return nil, err
		}
		if in.FromName, err = stringPtrArg(args, "from_name"); err != nil {
			return nil, err
		}
		if in.ReplyTo, err = stringPtrArg(args, "reply_to"); err != nil {
			return nil, err
		}
		return s.hubspot.UpdateEmail(ctx, id, in)
	})

	s.register("hubspot", "emails.publish", mcp.NewTool("hubspot_publish_email",
		mcp.WithDescription("Publish a draft marketing email, making it sendable"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Email ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		return s.hubspot.PublishEmail(ctx, id)
	})

	s.register("hubspot", "emails.delete", mcp.NewTool("hubspot_delete_email",
		mcp.WithDescription("Delete a marketing email"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Email ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		if err := s.hubspot.DeleteEmail(ctx, id); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}

func (s *Server) registerEventTools() {
	s.register("hubspot", "events.upsert", mcp.NewTool("hubspot_upsert_event",
		mcp.WithDescription("Create or update a marketing event keyed by external event ID"),
		mcp.WithString("external_event_id", mcp.Required(), mcp.Description("Caller-assigned event key")),
		mcp.WithString("event_name", mcp.Required(), mcp.Description("Event name")),
		mcp.WithString("event_organizer", mcp.Required(), mcp.Description("Organizer name")),
		mcp.WithString("event_type", mcp.Description("Event type, e.g. WEBINAR")),
		mcp.WithString("event_description", mcp.Description("Event description")),
		mcp.WithString("event_url", mcp.Description("Event landing page URL")),
		mcp.WithString("start_date_time", mcp.Description("RFC 3339 start timestamp")),
		mcp.WithString("end_date_time", mcp.Description("RFC 3339 end timestamp")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in hubspot.UpsertEventInput
		var err error
		if in.ExternalEventID, err = stringArg(args, "external_event_id", ""); err != nil {
			return nil, err
		}
		if in.EventName, err = stringArg(args, "event_name", ""); err != nil {
			return nil, err
		}
		if in.EventOrganizer, err = stringArg(args, "event_organizer", ""); err != nil {
			return nil, err
		}
		if in.EventType, err = stringArg(args, "event_type", ""); err != nil {
			return nil, err
		}
		if in.EventDescription, err = stringArg(args, "event_description", ""); err != nil {
			return nil, err
		}
		if in.EventURL, err = stringArg(args, "event_url", ""); err != nil {
			return nil, err
		}
		if in.StartDateTime, err = timePtrArg(args, "start_date_time"); err != nil {
			return nil, err
		}
		if in.EndDateTime, err = timePtrArg(args, "end_date_time"); err != nil {
			return nil, err
		}
		return s.hubspot.UpsertEvent(ctx, in)
	})

	s.register("hubspot", "events.get", mcp.NewTool("hubspot_get_event",
		mcp.WithDescription("Fetch one marketing event by external event ID"),
		mcp.WithString("external_event_id", mcp.Required(), mcp.Description("Event key")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "external_event_id")
		if err != nil {
			return nil, err
		}
		return s.hubspot.GetEvent(ctx, id)
	})

	s.register("hubspot", "events.list", mcp.NewTool("hubspot_list_events",
		mcp.WithDescription("List marketing events with cursor pagination"),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100 (default 10)")),
		mcp.WithString("after", mcp.Description("Cursor from the previous page")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		limit, after, err := cursorArgs(args)
		if err != nil {
			return nil, err
		}
		return s.hubspot.ListEvents(ctx, limit, after)
	})

	s.register("hubspot", "events.participation", mcp.NewTool("hubspot_record_participation",
		mcp.WithDescription("Record registrations, attendance or cancellations for an event"),
		mcp.WithString("external_event_id", mcp.Required(), mcp.Description("Event key")),
		mcp.WithString("state", mcp.Required(), mcp.Description("registered, attended or cancelled")),
		mcp.WithNumber("count", mcp.Description("Number of participants (default 1)")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "external_event_id")
		if err != nil {
			return nil, err
		}
		state, err := requiredString(args, "state")
		if err != nil {
			return nil, err
		}
		count, err := intArg(args, "count", 1)
		if err != nil {
			return nil, err
		}
		return s.hubspot.RecordParticipation(ctx, id, state, count)
	})

	s.register("hubspot", "events.cancel", mcp.NewTool("hubspot_cancel_event",
		mcp.WithDescription("Mark a marketing event as cancelled"),
		mcp.WithString("external_event_id", mcp.Required(), mcp.Description("Event key")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "external_event_id")
		if err != nil {
			return nil, err
		}
		return s.hubspot.CancelEvent(ctx, id)
	})

	s.register("hubspot", "events.delete", mcp.NewTool("hubspot_delete_event",
		mcp.WithDescription("Delete a marketing event"),
		mcp.WithString("external_event_id", mcp.Required(), mcp.Description("Event key")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "external_event_id")
		if err != nil {
			return nil, err
		}
		if err := s.hubspot.DeleteEvent(ctx, id); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}

func (s *Server) registerSendTools() {
	s.register("hubspot", "singlesend.send", mcp.NewTool("hubspot_send_single_email",
		mcp.WithDescription("Send a published marketing email to one recipient via single-send"),
		mcp.WithNumber("email_id", mcp.Required(), mcp.Description("Published marketing email ID")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Recipient address")),
		mcp.WithString("from", mcp.Description("Sender override")),
		mcp.WithString("send_id", mcp.Description("Caller-supplied idempotency ID")),
		mcp.WithObject("contact_properties", mcp.Description("Contact property overrides")),
		mcp.WithObject("custom_properties", mcp.Description("Template custom properties")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in hubspot.SingleSendInput
		var err error
		if in.EmailID, err = requiredInt64(args, "email_id"); err != nil {
			return nil, err
		}
		if in.To, err = stringArg(args, "to", ""); err != nil {
			return nil, err
		}
		if in.From, err = stringArg(args, "from", ""); err != nil {
			return nil, err
		}
		if in.SendID, err = stringArg(args, "send_id", ""); err != nil {
			return nil, err
		}
		if in.ContactProps, err = stringMapArg(args, "contact_properties"); err != nil {
			return nil, err
		}
		if in.CustomProps, err = stringMapArg(args, "custom_properties"); err != nil {
			return nil, err
		}
		return s.hubspot.SendSingleEmail(ctx, in)
	})

	s.register("hubspot", "transactional.send", mcp.NewTool("hubspot_send_transactional_email",
		mcp.WithDescription("Send a transactional email to one recipient"),
		mcp.WithNumber("email_id", mcp.Required(), mcp.Description("Marketing email ID")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Recipient address")),
		mcp.WithString("from", mcp.Description("Sender override")),
		mcp.WithString("send_id", mcp.Description("Caller-supplied idempotency ID")),
		mcp.WithObject("contact_properties", mcp.Description("Contact property overrides")),
		mcp.WithObject("custom_properties", mcp.Description("Template custom properties")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in hubspot.TransactionalSendInput
		var err error
		if in.EmailID, err = requiredInt64(args, "email_id"); err != nil {
			return nil, err
		}
		if in.To, err = stringArg(args, "to", ""); err != nil {
			return nil, err
		}
		if in.From, err = stringArg(args, "from", ""); err != nil {
			return nil, err
		}
		if in.SendID, err = stringArg(args, "send_id", ""); err != nil {
			return nil, err
		}
		if in.ContactProps, err = stringMapArg(args, "contact_properties"); err != nil {
			return nil, err
		}
		if in.CustomProps, err = stringMapArg(args, "custom_properties"); err != nil {
			return nil, err
		}
		return s.hubspot.SendTransactionalEmail(ctx, in)
	})

	s.register("hubspot", "sends.status", mcp.NewTool("hubspot_get_send_status",
		mcp.WithDescription("Check the delivery status of an accepted send"),
		mcp.WithString("status_id", mcp.Required(), mcp.Description("Status handle returned by the send tools")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredString(args, "status_id")
		if err != nil {
			return nil, err
		}
		return s.hubspot.GetSendStatus(ctx, id)
	})
}
