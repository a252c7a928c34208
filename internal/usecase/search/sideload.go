package search

import (
	"strings"

	"github.com/mockdesk/mockdesk/internal/domain/search/result"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
)

// sideload attaches the related records referenced by the current result
// page. Only IDs on the page are considered, duplicates collapse to one
// record, and dangling references are skipped. Unrecognized include names
// are ignored, mirroring the real API's permissiveness.
func (s *Service) sideload(envelope *result.Envelope, page []Record, include string) error {
	if include == "" {
		return nil
	}

	done := make(map[string]bool)
	for _, name := range strings.Split(include, ",") {
		name := strings.ToLower(strings.TrimSpace(name))
		if done[name] {
			continue
		}
		done[name] = true
		switch name {
		case "users":
			for _, id := range collectIDs(page, userRefs) {
				if u, ok := s.dir.UserByID(id); ok {
					envelope.Users = append(envelope.Users, reshapeUser(u))
				}
			}
		case "organizations":
			for _, id := range collectIDs(page, organizationRefs) {
				if o, ok := s.dir.OrganizationByID(id); ok {
					envelope.Organizations = append(envelope.Organizations, reshapeOrganization(o))
				}
			}
		case "groups":
			for _, id := range collectIDs(page, groupRefs) {
				if g, ok := s.dir.GroupByID(id); ok {
					envelope.Groups = append(envelope.Groups, reshapeGroup(g))
				}
			}
		}
	}
	return nil
}

// collectIDs gathers the foreign keys refs extracts from each page record,
// deduplicated in first-seen order.
func collectIDs(page []Record, refs func(Record) []int64) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, rec := range page {
		for _, id := range refs(rec) {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func userRefs(rec Record) []int64 {
	t, ok := rec.(*zendesk.Ticket)
	if !ok {
		return nil
	}
	ids := []int64{t.RequesterID}
	if t.AssigneeID != nil {
		ids = append(ids, *t.AssigneeID)
	}
	return ids
}

func organizationRefs(rec Record) []int64 {
	switch r := rec.(type) {
	case *zendesk.Ticket:
		if r.OrganizationID != nil {
			return []int64{*r.OrganizationID}
		}
	case *zendesk.User:
		if r.OrganizationID != nil {
			return []int64{*r.OrganizationID}
		}
	}
	return nil
}

func groupRefs(rec Record) []int64 {
	if t, ok := rec.(*zendesk.Ticket); ok && t.GroupID != nil {
		return []int64{*t.GroupID}
	}
	return nil
}

// Side-loaded records carry a consistent light field subset rather than
// the full record.

func reshapeUser(u *zendesk.User) result.Item {
	return result.Item{
		"id":    u.ID,
		"url":   u.URL,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

func reshapeOrganization(o *zendesk.Organization) result.Item {
	return result.Item{
		"id":      o.ID,
		"url":     o.URL,
		"name":    o.Name,
		"details": o.Details,
	}
}

func reshapeGroup(g *zendesk.Group) result.Item {
	return result.Item{
		"id":          g.ID,
		"url":         g.URL,
		"name":        g.Name,
		"description": g.Description,
	}
}
