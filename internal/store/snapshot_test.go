package store

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain/hubspot"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.json")
	created := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)

	src := New()
	src.Tickets.Put("1", &zendesk.Ticket{
		ID: 1, Subject: "Login broken", Status: "open", Priority: "high",
		RequesterID: 10, CreatedAt: created, UpdatedAt: created,
	})
	src.Tickets.Put("2", &zendesk.Ticket{
		ID: 2, Subject: "Follow-up", Status: "new",
		RequesterID: 10, CreatedAt: created, UpdatedAt: created,
	})
	src.Users.Put("10", &zendesk.User{ID: 10, Name: "Ada", Email: "ada@example.com", Role: "end-user"})
	src.Campaigns.Put("guid-1", &hubspot.Campaign{ID: "guid-1", Name: "Launch"})
	src.Tickets.NextID() // counter at 3

	if err := src.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := New()
	dst.Groups.Put("99", &zendesk.Group{ID: 99, Name: "stale"}) // must be cleared
	if err := dst.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if dst.Tickets.Len() != 2 || dst.Users.Len() != 1 || dst.Campaigns.Len() != 1 {
		t.Fatalf("loaded lens = %d/%d/%d", dst.Tickets.Len(), dst.Users.Len(), dst.Campaigns.Len())
	}
	if dst.Groups.Len() != 0 {
		t.Error("Load should clear pre-existing records")
	}

	tk, ok := dst.Tickets.Get("1")
	if !ok || tk.Subject != "Login broken" || !tk.CreatedAt.Equal(created) {
		t.Errorf("ticket 1 round-tripped badly: %+v", tk)
	}

	// Counter continues past both stored records and the reserved ID.
	if id := dst.Tickets.NextID(); id != 4 {
		t.Errorf("NextID after reload = %d, want 4", id)
	}
}

func TestSnapshot_LoadOrdersByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	src := New()
	for _, id := range []int64{3, 1, 2} {
		src.Tickets.Put(idString(id), &zendesk.Ticket{ID: id, Subject: "t", RequesterID: 1})
	}
	if err := src.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := New()
	if err := dst.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	ids := dst.Tickets.IDs()
	if len(ids) != 3 || ids[0] != "1" || ids[1] != "2" || ids[2] != "3" {
		t.Errorf("reloaded order = %v, want ascending IDs", ids)
	}
}

func TestSnapshot_LoadMissingFile(t *testing.T) {
	if err := New().Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load of missing file should error")
	}
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
