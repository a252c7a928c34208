package search

import (
	"testing"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain/search/query"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
)

func evalTicket() *zendesk.Ticket {
	org := int64(300)
	return &zendesk.Ticket{
		ID:             7,
		Subject:        "VPN drops every hour",
		Description:    "Connection resets while on call",
		Status:         "open",
		Priority:       "high",
		Type:           "incident",
		RequesterID:    100,
		OrganizationID: &org,
		Tags:           []string{"vip", "networking"},
		CreatedAt:      fixedNow.Add(-3 * time.Hour),
		UpdatedAt:      fixedNow.Add(-time.Hour),
	}
}

func matchQuery(t *testing.T, rec Record, raw string) bool {
	t.Helper()
	e := evaluator{now: fixedNow}
	return e.matches(rec, query.Parse(raw))
}

func TestEvaluator_FieldMatching(t *testing.T) {
	tk := evalTicket()
	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"status:open", true},
		{"status:OPEN", true}, // values compare case-insensitively
		{"status:solved", false},
		{"id:7", true},
		{"id:8", false},
		{"id:seven", false}, // uncoercible value narrows to no match
		{"tags:vip", true},
		{"tags:velvet", false},
		{"requester:100", true},
		{"requester_id:100", true},
		{"ticket_type:incident", true},
		{"organization:300", true},
		{"assignee:none", true},
		{"flavor:vanilla", false},
		{"vpn", true},
		{"VPN drops", true}, // two free-text terms, both must hit
		{"vpn -drops", false},
		{"vpn -snorkeling", true},
		{"conn*", true},
		{"znork*", false},
		{`"resets while"`, true},
		{`"resets whale"`, false},
		{"priority>normal", true},
		{"priority<high", false},
		{"priority>urgent", false},
		{"status<pending", true},
		{"created>4hours", true},
		{"created>2hours", false},
		{"created<2hours", true},
		{"updated>30hours", true},
		{"created>lastweekend", false}, // unparsable boundary matches nothing
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			if got := matchQuery(t, tk, tc.query); got != tc.want {
				t.Errorf("match(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestEvaluator_TypeEqualOnTickets(t *testing.T) {
	// "type:incident" is not a valid kind, so it degrades to a property
	// filter on the ticket's type field and matches after all.
	tk := evalTicket()
	if !matchQuery(t, tk, "type:incident") {
		t.Error("type:incident should degrade to a ticket_type property filter")
	}
}

func TestEvaluator_UserFields(t *testing.T) {
	u := &zendesk.User{
		ID: 5, Name: "Grace Agent", Email: "grace@example.com",
		Role: "agent", Active: true, Verified: false,
		CreatedAt: fixedNow.Add(-24 * time.Hour),
	}

	if !matchQuery(t, u, "role:agent email:grace@example.com") {
		t.Error("user property filters should match")
	}
	if !matchQuery(t, u, "active:true") || matchQuery(t, u, "verified:true") {
		t.Error("boolean fields should coerce from true/false values")
	}
	// ParseBool accepts 1/0 but not yes/no; unparsable values match nothing.
	if !matchQuery(t, u, "active:1") {
		t.Error("active:1 should coerce to true")
	}
	if matchQuery(t, u, "active:yes") {
		t.Error("active:yes should not match")
	}
	if !matchQuery(t, u, "organization:none") {
		t.Error("nil organization should match the none sentinel")
	}
}
