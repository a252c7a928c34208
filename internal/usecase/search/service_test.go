package search

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/domain/search/request"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
)

// --- Fixture directory ---

type fakeDirectory struct {
	tickets       []*zendesk.Ticket
	users         []*zendesk.User
	organizations []*zendesk.Organization
	groups        []*zendesk.Group
}

func (d *fakeDirectory) ListTickets() []*zendesk.Ticket             { return d.tickets }
func (d *fakeDirectory) ListUsers() []*zendesk.User                 { return d.users }
func (d *fakeDirectory) ListOrganizations() []*zendesk.Organization { return d.organizations }
func (d *fakeDirectory) ListGroups() []*zendesk.Group               { return d.groups }

func (d *fakeDirectory) UserByID(id int64) (*zendesk.User, bool) {
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

func (d *fakeDirectory) OrganizationByID(id int64) (*zendesk.Organization, bool) {
	for _, o := range d.organizations {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

func (d *fakeDirectory) GroupByID(id int64) (*zendesk.Group, bool) {
	for _, g := range d.groups {
		if g.ID == id {
			return g, true
		}
	}
	return nil, false
}

var fixedNow = time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)

func ticket(id int64, subject, status, priority string, age time.Duration) *zendesk.Ticket {
	return &zendesk.Ticket{
		ID:          id,
		Subject:     subject,
		Description: "details for " + subject,
		Status:      status,
		Priority:    priority,
		RequesterID: 100 + id,
		CreatedAt:   fixedNow.Add(-age),
		UpdatedAt:   fixedNow.Add(-age / 2),
	}
}

func fixtureDirectory() *fakeDirectory {
	assignee := int64(201)
	org := int64(301)
	group := int64(401)

	t1 := ticket(1, "Password reset fails on login", "open", "urgent", 30*time.Minute)
	t1.AssigneeID = &assignee
	t1.OrganizationID = &org
	t1.GroupID = &group
	t2 := ticket(2, "Printer offline", "pending", "normal", 48*time.Hour)
	t2.AssigneeID = &assignee
	t3 := ticket(3, "Cannot reset my password", "solved", "high", 14*24*time.Hour)

	return &fakeDirectory{
		tickets: []*zendesk.Ticket{t1, t2, t3},
		users: []*zendesk.User{
			{ID: 101, Name: "Ada End-User", Email: "ada@example.com", Role: "end-user", CreatedAt: fixedNow.Add(-90 * 24 * time.Hour)},
			{ID: 201, Name: "Grace Agent", Email: "grace@example.com", Role: "agent", OrganizationID: &org, CreatedAt: fixedNow.Add(-400 * 24 * time.Hour)},
		},
		organizations: []*zendesk.Organization{
			{ID: 301, Name: "Acme Corp", Details: "manufacturing", CreatedAt: fixedNow.Add(-500 * 24 * time.Hour)},
		},
		groups: []*zendesk.Group{
			{ID: 401, Name: "Tier 1 Support", Description: "front line", CreatedAt: fixedNow.Add(-500 * 24 * time.Hour)},
		},
	}
}

func newFixtureService(dir Directory) *Service {
	return New(dir).WithClock(func() time.Time { return fixedNow })
}

func mustRequest(t *testing.T, query, sortBy, sortOrder string, page, perPage int, include string) *request.Request {
	t.Helper()
	req, err := request.New(query, sortBy, sortOrder, page, perPage, include)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &req
}

func search(t *testing.T, svc *Service, query string) []int64 {
	t.Helper()
	req := mustRequest(t, query, "", "", 1, 100, "")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search(%q): %v", query, err)
	}
	ids := make([]int64, 0, len(env.Results))
	for _, item := range env.Results {
		// Round-tripped through JSON, so numbers come back as float64.
		ids = append(ids, int64(item["id"].(float64)))
	}
	return ids
}

// --- Query semantics ---

func TestSearch_EmptyQueryMatchesEverything(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	ids := search(t, svc, "")
	if len(ids) != 7 {
		t.Errorf("empty query matched %d records, want 7", len(ids))
	}
}

func TestSearch_PropertyFilter(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	if got := search(t, svc, "priority:urgent"); !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("priority:urgent = %v, want [1]", got)
	}
}

func TestSearch_NegatedPropertyFilter(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	got := search(t, svc, "type:ticket -priority:urgent")
	if !reflect.DeepEqual(got, []int64{2, 3}) {
		t.Errorf("-priority:urgent tickets = %v, want [2 3]", got)
	}
}

func TestSearch_QuotedPhraseIsCaseInsensitive(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	got := search(t, svc, `"password reset"`)
	if !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf(`"password reset" = %v, want [1]`, got)
	}
}

func TestSearch_FreeTextMatchesAcrossKinds(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	// "reset" appears in two ticket subjects and nowhere else.
	got := search(t, svc, "reset")
	if !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Errorf("reset = %v, want [1 3]", got)
	}
}

func TestSearch_WildcardMatchesWordPrefix(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	got := search(t, svc, "print*")
	if !reflect.DeepEqual(got, []int64{2}) {
		t.Errorf("print* = %v, want [2]", got)
	}
}

func TestSearch_TypeRestriction(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	if got := search(t, svc, "type:user"); !reflect.DeepEqual(got, []int64{101, 201}) {
		t.Errorf("type:user = %v, want [101 201]", got)
	}
	if got := search(t, svc, "type:organization acme"); !reflect.DeepEqual(got, []int64{301}) {
		t.Errorf("type:organization acme = %v, want [301]", got)
	}
}

func TestSearch_RelativeDateComparison(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	// Ticket 1 is 30 minutes old; the others are days old.
	if got := search(t, svc, "type:ticket created>2hours"); !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("created>2hours = %v, want [1]", got)
	}
	if got := search(t, svc, "type:ticket created<1week"); !reflect.DeepEqual(got, []int64{3}) {
		t.Errorf("created<1week = %v, want [3]", got)
	}
}

func TestSearch_AbsoluteDateComparison(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	// Only ticket 1 (30 minutes old) was created after June 14.
	if got := search(t, svc, "type:ticket created>2021-06-14"); !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("created>2021-06-14 = %v, want [1]", got)
	}
}

func TestSearch_OrdinalPriorityComparison(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	if got := search(t, svc, "priority>normal"); !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Errorf("priority>normal = %v, want [1 3]", got)
	}
	if got := search(t, svc, "status<solved"); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("status<solved = %v, want [1 2]", got)
	}
}

func TestSearch_UnknownKeyMatchesNothing(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	if got := search(t, svc, "flavor:vanilla"); len(got) != 0 {
		t.Errorf("unknown key matched %v, want nothing", got)
	}
}

func TestSearch_NoneSentinelMatchesNullForeignKey(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	if got := search(t, svc, "type:ticket assignee:none"); !reflect.DeepEqual(got, []int64{3}) {
		t.Errorf("assignee:none = %v, want [3]", got)
	}
}

// --- Sorting ---

func TestSearch_SortByCreatedDesc(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	req := mustRequest(t, "type:ticket", "created_at", "desc", 1, 10, "")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	var ids []int64
	for _, item := range env.Results {
		ids = append(ids, int64(item["id"].(float64)))
	}
	if !reflect.DeepEqual(ids, []int64{1, 2, 3}) {
		t.Errorf("created_at desc = %v, want [1 2 3]", ids)
	}
}

func TestSearch_SortByPriorityAsc(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	req := mustRequest(t, "type:ticket", "priority", "asc", 1, 10, "")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	var priorities []string
	for _, item := range env.Results {
		priorities = append(priorities, item["priority"].(string))
	}
	if !reflect.DeepEqual(priorities, []string{"normal", "high", "urgent"}) {
		t.Errorf("priority asc = %v", priorities)
	}
}

func TestSearch_StableSortKeepsInsertionOrderOnTies(t *testing.T) {
	dir := &fakeDirectory{}
	for i := int64(1); i <= 4; i++ {
		tk := ticket(i, fmt.Sprintf("ticket %d", i), "open", "normal", time.Hour)
		tk.CreatedAt = fixedNow.Add(-time.Hour) // identical timestamps
		dir.tickets = append(dir.tickets, tk)
	}
	svc := newFixtureService(dir)

	req := mustRequest(t, "", "created_at", "asc", 1, 10, "")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	var ids []int64
	for _, item := range env.Results {
		ids = append(ids, int64(item["id"].(float64)))
	}
	if !reflect.DeepEqual(ids, []int64{1, 2, 3, 4}) {
		t.Errorf("tied sort reordered records: %v", ids)
	}
}

// --- Pagination and the result ceiling ---

func bigDirectory(n int) *fakeDirectory {
	dir := &fakeDirectory{}
	for i := 1; i <= n; i++ {
		dir.tickets = append(dir.tickets,
			ticket(int64(i), fmt.Sprintf("bulk ticket %d", i), "open", "normal", time.Duration(i)*time.Minute))
	}
	return dir
}

func TestSearch_PaginationWindowAndLinks(t *testing.T) {
	svc := newFixtureService(bigDirectory(25))

	req := mustRequest(t, "type:ticket", "", "", 2, 10, "")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if env.Count != 25 || len(env.Results) != 10 {
		t.Fatalf("Count/len = %d/%d, want 25/10", env.Count, len(env.Results))
	}
	if first := int64(env.Results[0]["id"].(float64)); first != 11 {
		t.Errorf("page 2 starts at id %d, want 11", first)
	}
	if env.NextPage == nil || !strings.Contains(*env.NextPage, "page=3") {
		t.Errorf("NextPage = %v, want link to page 3", env.NextPage)
	}
	if env.PreviousPage == nil || !strings.Contains(*env.PreviousPage, "page=1") {
		t.Errorf("PreviousPage = %v, want link to page 1", env.PreviousPage)
	}
}

func TestSearch_LastPageHasNoNextLink(t *testing.T) {
	svc := newFixtureService(bigDirectory(25))
	req := mustRequest(t, "type:ticket", "", "", 3, 10, "")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(env.Results) != 5 || env.NextPage != nil {
		t.Errorf("last page: len=%d next=%v, want 5 and nil", len(env.Results), env.NextPage)
	}
}

func TestSearch_CeilingRefusesDeepWindows(t *testing.T) {
	svc := newFixtureService(bigDirectory(5))

	req := mustRequest(t, "", "", "", 11, 100, "")
	_, err := svc.Search(context.Background(), req)
	if err == nil {
		t.Fatal("expected ceiling error")
	}

	var status *domain.StatusError
	if !errors.As(err, &status) {
		t.Fatalf("error %T should be a StatusError", err)
	}
	if status.Status != 422 {
		t.Errorf("status = %d, want 422", status.Status)
	}
	want := "422 Unprocessable Entity: Search results are limited to 1000 records. " +
		"Please refine your search query to get fewer results."
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestSearch_CeilingBoundaryPageSucceeds(t *testing.T) {
	svc := newFixtureService(bigDirectory(5))

	// Page 10 at 100 per page ends exactly at record 1000: allowed even
	// though the window is empty.
	req := mustRequest(t, "", "", "", 10, 100, "")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("boundary page errored: %v", err)
	}
	if len(env.Results) != 0 || env.Count != 5 {
		t.Errorf("boundary page: len=%d count=%d, want 0/5", len(env.Results), env.Count)
	}
}

// --- Side-loading ---

func TestSearch_SideloadUsersReferencedByPage(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	req := mustRequest(t, "type:ticket priority:urgent", "", "", 1, 10, "users")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	// Ticket 1 references requester 101 and assignee 201.
	if len(env.Users) != 2 {
		t.Fatalf("side-loaded %d users, want 2", len(env.Users))
	}
	if env.Users[0]["id"] != int64(101) || env.Users[1]["id"] != int64(201) {
		t.Errorf("side-loaded users = %v", env.Users)
	}
	if _, ok := env.Users[0]["active"]; ok {
		t.Error("side-loaded users should carry the light field subset only")
	}
}

func TestSearch_SideloadDeduplicatesAndSkipsDangling(t *testing.T) {
	dir := fixtureDirectory()
	// Both tickets share assignee 201; ticket 3 gains a dangling requester.
	dir.tickets[2].RequesterID = 999
	svc := newFixtureService(dir)

	req := mustRequest(t, "type:ticket", "", "", 1, 10, "users,organizations,groups")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	seen := make(map[any]bool)
	for _, u := range env.Users {
		if seen[u["id"]] {
			t.Errorf("user %v side-loaded twice", u["id"])
		}
		seen[u["id"]] = true
		if u["id"] == int64(999) {
			t.Error("dangling reference should be skipped")
		}
	}
	if len(env.Organizations) != 1 || len(env.Groups) != 1 {
		t.Errorf("orgs/groups = %d/%d, want 1/1", len(env.Organizations), len(env.Groups))
	}
}

func TestSearch_RepeatedIncludeNameLoadsEachRecordOnce(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	req := mustRequest(t, "type:ticket priority:urgent", "", "", 1, 10, "users,users")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(env.Users) != 2 {
		t.Fatalf("include=users,users side-loaded %d users, want 2", len(env.Users))
	}
	if env.Users[0]["id"] != int64(101) || env.Users[1]["id"] != int64(201) {
		t.Errorf("side-loaded users = %v", env.Users)
	}
}

func TestSearch_NoIncludeLeavesSideloadsEmpty(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	req := mustRequest(t, "type:ticket", "", "", 1, 10, "")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if env.Users != nil || env.Organizations != nil || env.Groups != nil {
		t.Error("side-load slices should stay nil without include")
	}
}

// --- Read-only contract ---

func TestSearch_IsIdempotent(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	req := mustRequest(t, "reset", "created_at", "desc", 1, 10, "users")

	first, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("first Search: %v", err)
	}
	second, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("second Search: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical searches against an unchanged store should return identical envelopes")
	}
}

func TestSearch_ResultsCarryResultType(t *testing.T) {
	svc := newFixtureService(fixtureDirectory())
	req := mustRequest(t, "", "", "", 1, 100, "")
	env, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	counts := make(map[string]int)
	for _, item := range env.Results {
		counts[item.ResultType()]++
	}
	want := map[string]int{"ticket": 3, "user": 2, "organization": 1, "group": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("result_type counts = %v, want %v", counts, want)
	}
}
