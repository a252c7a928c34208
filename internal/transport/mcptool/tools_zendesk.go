package mcptool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mockdesk/mockdesk/internal/domain/search/request"
	"github.com/mockdesk/mockdesk/internal/usecase/zendesk"
)

func (s *Server) registerZendeskTools() {
	s.registerSearchTool()
	s.registerTicketTools()
	s.registerUserTools()
	s.registerOrganizationTools()
	s.registerGroupTools()
	s.registerAttachmentTools()
}

func (s *Server) registerSearchTool() {
	s.register("zendesk", "search", mcp.NewTool("zendesk_search",
		mcp.WithDescription("Search tickets, users, organizations and groups with the Zendesk query mini-language"),
		mcp.WithString("query", mcp.Required(),
			mcp.Description("Search query, e.g. 'type:ticket priority:urgent -status:solved \"password reset\"'")),
		mcp.WithString("sort_by",
			mcp.Description("Sort field: created_at, updated_at, priority, status or ticket_type")),
		mcp.WithString("sort_order",
			mcp.Description("asc or desc (default asc)")),
		mcp.WithNumber("page",
			mcp.Description("1-based result page (default 1)")),
		mcp.WithNumber("per_page",
			mcp.Description("Results per page, 1-100 (default 10)")),
		mcp.WithString("include",
			mcp.Description("Comma-separated side-loads: users, organizations, groups")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		query, err := requiredString(args, "query")
		if err != nil {
			return nil, err
		}
		sortBy, err := stringArg(args, "sort_by", "")
		if err != nil {
			return nil, err
		}
		sortOrder, err := stringArg(args, "sort_order", "")
		if err != nil {
			return nil, err
		}
		page, err := intArg(args, "page", request.DefaultPage)
		if err != nil {
			return nil, err
		}
		perPage, err := intArg(args, "per_page", request.DefaultPerPage)
		if err != nil {
			return nil, err
		}
		include, err := stringArg(args, "include", "")
		if err != nil {
			return nil, err
		}

		req, err := request.New(query, sortBy, sortOrder, page, perPage, include)
		if err != nil {
			return nil, err
		}
		return s.search.Search(ctx, &req)
	})
}

func (s *Server) registerTicketTools() {
	s.register("zendesk", "tickets.create", mcp.NewTool("zendesk_create_ticket",
		mcp.WithDescription("Create a support ticket"),
		mcp.WithString("subject", mcp.Required(), mcp.Description("Ticket subject line")),
		mcp.WithString("description", mcp.Required(), mcp.Description("Full ticket description")),
		mcp.WithString("status", mcp.Description("new, open, pending, hold, solved or closed (default new)")),
		mcp.WithString("priority", mcp.Description("low, normal, high or urgent")),
		mcp.WithString("type", mcp.Description("problem, incident, question or task")),
		mcp.WithNumber("requester_id", mcp.Description("ID of the requesting user")),
		mcp.WithNumber("assignee_id", mcp.Description("ID of the assigned agent")),
		mcp.WithNumber("organization_id", mcp.Description("ID of the requester's organization")),
		mcp.WithNumber("group_id", mcp.Description("ID of the assigned group")),
		mcp.WithArray("tags", mcp.Description("Ticket tags")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		in, err := ticketCreateInput(args)
		if err != nil {
			return nil, err
		}
		return s.zendesk.CreateTicket(ctx, in)
	})

	s.register("zendesk", "tickets.get", mcp.NewTool("zendesk_get_ticket",
		mcp.WithDescription("Fetch one ticket by ID"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Ticket ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		return s.zendesk.GetTicket(ctx, id)
	})

	s.register("zendesk", "tickets.list", mcp.NewTool("zendesk_list_tickets",
		mcp.WithDescription("List tickets in creation order"),
		mcp.WithNumber("page", mcp.Description("1-based page, 100 tickets per page")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		page, err := intArg(args, "page", 1)
		if err != nil {
			return nil, err
		}
		return s.zendesk.ListTickets(ctx, page)
	})

	s.register("zendesk", "tickets.update", mcp.NewTool("zendesk_update_ticket",
		mcp.WithDescription("Update fields on an existing ticket"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Ticket ID")),
		mcp.WithString("subject", mcp.Description("New subject")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithString("status", mcp.Description("New status")),
		mcp.WithString("priority", mcp.Description("New priority")),
		mcp.WithString("type", mcp.Description("New ticket type")),
		mcp.WithNumber("assignee_id", mcp.Description("New assignee")),
		mcp.WithNumber("organization_id", mcp.Description("New organization")),
		mcp.WithNumber("group_id", mcp.Description("New group")),
		mcp.WithArray("tags", mcp.Description("Replacement tag list")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		in, err := ticketUpdateInput(args)
		if err != nil {
			return nil, err
		}
		return s.zendesk.UpdateTicket(ctx, id, in)
	})

	s.register("zendesk", "tickets.delete", mcp.NewTool("zendesk_delete_ticket",
		mcp.WithDescription("Delete a ticket"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Ticket ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		if err := s.zendesk.DeleteTicket(ctx, id); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}

func ticketCreateInput(args map[string]any) (zendesk.CreateTicketInput, error) {
	var in zendesk.CreateTicketInput
	var err error
	if in.Subject, err = stringArg(args, "subject", ""); err != nil {
		return in, err
	}
	if in.Description, err = stringArg(args, "description", ""); err != nil {
		return in, err
	}
	if in.Status, err = stringArg(args, "status", ""); err != nil {
		return in, err
	}
	if in.Priority, err = stringArg(args, "priority", ""); err != nil {
		return in, err
	}
	if in.Type, err = stringArg(args, "type", ""); err != nil {
		return in, err
	}
	requester, err := int64PtrArg(args, "requester_id")
	if err != nil {
		return in, err
	}
	if requester != nil {
		in.RequesterID = *requester
	}
	if in.AssigneeID, err = int64PtrArg(args, "assignee_id"); err != nil {
		return in, err
	}
	if in.OrganizationID, err = int64PtrArg(args, "organization_id"); err != nil {
		return in, err
	}
	if in.GroupID, err = int64PtrArg(args, "group_id"); err != nil {
		return in, err
	}
	if in.Tags, err = stringSliceArg(args, "tags"); err != nil {
		return in, err
	}
	return in, nil
}

func ticketUpdateInput(args map[string]any) (zendesk.UpdateTicketInput, error) {
	var in zendesk.UpdateTicketInput
	var err error
	if in.Subject, err = stringPtrArg(args, "subject"); err != nil {
		return in, err
	}
	if in.Description, err = stringPtrArg(args, "description"); err != nil {
		return in, err
	}
	if in.Status, err = stringPtrArg(args, "status"); err != nil {
		return in, err
	}
	if in.Priority, err = stringPtrArg(args, "priority"); err != nil {
		return in, err
	}
	if in.Type, err = stringPtrArg(args, "type"); err != nil {
		return in, err
	}
	if in.AssigneeID, err = int64PtrArg(args, "assignee_id"); err != nil {
		return in, err
	}
	if in.OrganizationID, err = int64PtrArg(args, "organization_id"); err != nil {
		return in, err
	}
	if in.GroupID, err = int64PtrArg(args, "group_id"); err != nil {
		return in, err
	}
	tags, err := stringSliceArg(args, "tags")
	if err != nil {
		return in, err
	}
	if tags != nil {
		in.Tags = &tags
	}
	return in, nil
}

func (s *Server) registerUserTools() {
	s.register("zendesk", "users.create", mcp.NewTool("zendesk_create_user",
		mcp.WithDescription("Create a user (end user, agent or admin)"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Display name")),
		mcp.WithString("email", mcp.Required(), mcp.Description("Unique email address")),
		mcp.WithString("role", mcp.Description("end-user, agent or admin (default end-user)")),
		mcp.WithBoolean("active", mcp.Description("Whether the account is active (default true)")),
		mcp.WithBoolean("verified", mcp.Description("Whether the email is verified")),
		mcp.WithNumber("organization_id", mcp.Description("Organization the user belongs to")),
		mcp.WithArray("tags", mcp.Description("User tags")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in zendesk.CreateUserInput
		var err error
		if in.Name, err = stringArg(args, "name", ""); err != nil {
			return nil, err
		}
		if in.Email, err = stringArg(args, "email", ""); err != nil {
			return nil, err
		}
		if in.Role, err = stringArg(args, "role", ""); err != nil {
			return nil, err
		}
		if in.Active, err = boolPtrArg(args, "active"); err != nil {
			return nil, err
		}
		if in.Verified, err = boolPtrArg(args, "verified"); err != nil {
			return nil, err
		}
		if in.OrganizationID, err = int64PtrArg(args, "organization_id"); err != nil {
			return nil, err
		}
		if in.Tags, err = stringSliceArg(args, "tags"); err != nil {
			return nil, err
		}
		return s.zendesk.CreateUser(ctx, in)
	})

	s.register("zendesk", "users.get", mcp.NewTool("zendesk_get_user",
		mcp.WithDescription("Fetch one user by ID"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("User ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		return s.zendesk.GetUser(ctx, id)
	})

	s.register("zendesk", "users.list", mcp.NewTool("zendesk_list_users",
		mcp.WithDescription("List users in creation order"),
		mcp.WithNumber("page", mcp.Description("1-based page, 100 users per page")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		page, err := intArg(args, "page", 1)
		if err != nil {
			return nil, err
		}
		return s.zendesk.ListUsers(ctx, page)
	})

	s.register("zendesk", "users.update", mcp.NewTool("zendesk_update_user",
		mcp.WithDescription("Update fields on an existing user"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("User ID")),
		mcp.WithString("name", mcp.Description("New display name")),
		mcp.WithString("email", mcp.Description("New email address")),
		mcp.WithString("role", mcp.Description("New role")),
		mcp.WithBoolean("active", mcp.Description("New active flag")),
		mcp.WithBoolean("verified", mcp.Description("New verified flag")),
		mcp.WithNumber("organization_id", mcp.Description("New organization")),
		mcp.WithArray("tags", mcp.Description("Replacement tag list")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		var in zendesk.UpdateUserInput
		if in.Name, err = stringPtrArg(args, "name"); err != nil {
			return nil, err
		}
		if in.Email, err = stringPtrArg(args, "email"); err != nil {
			return nil, err
		}
		if in.Role, err = stringPtrArg(args, "role"); err != nil {
			return nil, err
		}
		if in.Active, err = boolPtrArg(args, "active"); err != nil {
			return nil, err
		}
		if in.Verified, err = boolPtrArg(args, "verified"); err != nil {
			return nil, err
		}
		if in.OrganizationID, err = int64PtrArg(args, "organization_id"); err != nil {
			return nil, err
		}
		tags, err := stringSliceArg(args, "tags")
		if err != nil {
			return nil, err
		}
		if tags != nil {
			in.Tags = &tags
		}
		return s.zendesk.UpdateUser(ctx, id, in)
	})

	s.register("zendesk", "users.delete", mcp.NewTool("zendesk_delete_user",
		mcp.WithDescription("Delete a user"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("User ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		if err := s.zendesk.DeleteUser(ctx, id); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}

func (s *Server) registerOrganizationTools() {
	s.register("zendesk", "organizations.create", mcp.NewTool("zendesk_create_organization",
		mcp.WithDescription("Create an organization"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Unique organization name")),
		mcp.WithString("details", mcp.Description("Free-form details")),
		mcp.WithString("notes", mcp.Description("Internal notes")),
		mcp.WithArray("tags", mcp.Description("Organization tags")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in zendesk.CreateOrganizationInput
		var err error
		if in.Name, err = stringArg(args, "name", ""); err != nil {
			return nil, err
		}
		if in.Details, err = stringArg(args, "details", ""); err != nil {
			return nil, err
		}
		if in.Notes, err = stringArg(args, "notes", ""); err != nil {
			return nil, err
		}
		if in.Tags, err = stringSliceArg(args, "tags"); err != nil {
			return nil, err
		}
		return s.zendesk.CreateOrganization(ctx, in)
	})

	s.register("zendesk", "organizations.get", mcp.NewTool("zendesk_get_organization",
		mcp.WithDescription("Fetch one organization by ID"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Organization ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		return s.zendesk.GetOrganization(ctx, id)
	})

	s.register("zendesk", "organizations.list", mcp.NewTool("zendesk_list_organizations",
		mcp.WithDescription("List organizations in creation order"),
		mcp.WithNumber("page", mcp.Description("1-based page, 100 organizations per page")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		page, err := intArg(args, "page", 1)
		if err != nil {
			return nil, err
		}
		return s.zendesk.ListOrganizations(ctx, page)
	})

	s.register("zendesk", "organizations.update", mcp.NewTool("zendesk_update_organization",
		mcp.WithDescription("Update fields on an existing organization"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Organization ID")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("details", mcp.Description("New details")),
		mcp.WithString("notes", mcp.Description("New notes")),
		mcp.WithArray("tags", mcp.Description("Replacement tag list")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		var in zendesk.UpdateOrganizationInput
		if in.Name, err = stringPtrArg(args, "name"); err != nil {
			return nil, err
		}
		if in.Details, err = stringPtrArg(args, "details"); err != nil {
			return nil, err
		}
		if in.Notes, err = stringPtrArg(args, "notes"); err != nil {
			return nil, err
		}
		tags, err := stringSliceArg(args, "tags")
		if err != nil {
			return nil, err
		}
		if tags != nil {
			in.Tags = &tags
		}
		return s.zendesk.UpdateOrganization(ctx, id, in)
	})

	s.register("zendesk", "organizations.delete", mcp.NewTool("zendesk_delete_organization",
		mcp.WithDescription("Delete an organization"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Organization ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		if err := s.zendesk.DeleteOrganization(ctx, id); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}

func (s *Server) registerGroupTools() {
	s.register("zendesk", "groups.create", mcp.NewTool("zendesk_create_group",
		mcp.WithDescription("Create an agent group"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Group name")),
		mcp.WithString("description", mcp.Description("Group description")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in zendesk.CreateGroupInput
		var err error
		if in.Name, err = stringArg(args, "name", ""); err != nil {
			return nil, err
		}
		if in.Description, err = stringArg(args, "description", ""); err != nil {
			return nil, err
		}
		return s.zendesk.CreateGroup(ctx, in)
	})

	s.register("zendesk", "groups.get", mcp.NewTool("zendesk_get_group",
		mcp.WithDescription("Fetch one group by ID"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Group ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		return s.zendesk.GetGroup(ctx, id)
	})

	s.register("zendesk", "groups.list", mcp.NewTool("zendesk_list_groups",
		mcp.WithDescription("List groups in creation order"),
		mcp.WithNumber("page", mcp.Description("1-based page, 100 groups per page")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		page, err := intArg(args, "page", 1)
		if err != nil {
			return nil, err
		}
		return s.zendesk.ListGroups(ctx, page)
	})

	s.register("zendesk", "groups.update", mcp.NewTool("zendesk_update_group",
		mcp.WithDescription("Update fields on an existing group"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Group ID")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("description", mcp.Description("New description")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		var in zendesk.UpdateGroupInput
		if in.Name, err = stringPtrArg(args, "name"); err != nil {
			return nil, err
		}
		if in.Description, err = stringPtrArg(args, "description"); err != nil {
			return nil, err
		}
		return s.zendesk.UpdateGroup(ctx, id, in)
	})

	s.register("zendesk", "groups.delete", mcp.NewTool("zendesk_delete_group",
		mcp.WithDescription("Delete a group"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Group ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		if err := s.zendesk.DeleteGroup(ctx, id); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}

func (s *Server) registerAttachmentTools() {
	s.register("zendesk", "uploads.create", mcp.NewTool("zendesk_upload_attachment",
		mcp.WithDescription("Upload a file as an attachment, minting or extending an upload token"),
		mcp.WithString("filename", mcp.Required(), mcp.Description("File name, used to infer the content type")),
		mcp.WithString("content", mcp.Required(), mcp.Description("File content, raw text or base64 per encoding")),
		mcp.WithString("encoding", mcp.Description("text or base64 (default text)")),
		mcp.WithString("token", mcp.Description("Existing upload token to append to")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var in zendesk.UploadInput
		var err error
		if in.Filename, err = stringArg(args, "filename", ""); err != nil {
			return nil, err
		}
		if in.Content, err = stringArg(args, "content", ""); err != nil {
			return nil, err
		}
		if in.Encoding, err = stringArg(args, "encoding", ""); err != nil {
			return nil, err
		}
		if in.Token, err = stringArg(args, "token", ""); err != nil {
			return nil, err
		}
		return s.zendesk.Upload(ctx, in)
	})

	s.register("zendesk", "attachments.get", mcp.NewTool("zendesk_get_attachment",
		mcp.WithDescription("Fetch one attachment's metadata by ID"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Attachment ID")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requiredInt64(args, "id")
		if err != nil {
			return nil, err
		}
		return s.zendesk.GetAttachment(ctx, id)
	})

	s.register("zendesk", "uploads.delete", mcp.NewTool("zendesk_delete_upload",
		mcp.WithDescription("Delete every attachment created under an upload token"),
		mcp.WithString("token", mcp.Required(), mcp.Description("Upload token")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		token, err := requiredString(args, "token")
		if err != nil {
			return nil, err
		}
		if err := s.zendesk.DeleteUpload(ctx, token); err != nil {
			return nil, err
		}
		return okResult{Deleted: true}, nil
	})
}
