package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mockdesk/mockdesk/internal/domain/hubspot"
	"github.com/mockdesk/mockdesk/internal/domain/zendesk"
)

// snapshot is the flat-file JSON layout: collection name to ID to record,
// plus the ID counters so generated IDs resume after a reload.
type snapshot struct {
	Tickets       map[string]*zendesk.Ticket       `json:"tickets"`
	Users         map[string]*zendesk.User         `json:"users"`
	Organizations map[string]*zendesk.Organization `json:"organizations"`
	Groups        map[string]*zendesk.Group        `json:"groups"`
	Attachments   map[string]*zendesk.Attachment   `json:"attachments"`

	Campaigns       map[string]*hubspot.Campaign       `json:"campaigns"`
	Forms           map[string]*hubspot.Form           `json:"forms"`
	Templates       map[string]*hubspot.Template       `json:"templates"`
	MarketingEmails map[string]*hubspot.MarketingEmail `json:"marketing_emails"`
	MarketingEvents map[string]*hubspot.MarketingEvent `json:"marketing_events"`
	EmailSends      map[string]*hubspot.EmailSend      `json:"email_sends"`

	Counters map[string]int64 `json:"counters"`
}

// Save writes the whole store to path as indented JSON, creating parent
// directories as needed.
func (s *Store) Save(path string) error {
	snap := snapshot{
		Tickets:         collectionMap(s.Tickets),
		Users:           collectionMap(s.Users),
		Organizations:   collectionMap(s.Organizations),
		Groups:          collectionMap(s.Groups),
		Attachments:     collectionMap(s.Attachments),
		Campaigns:       collectionMap(s.Campaigns),
		Forms:           collectionMap(s.Forms),
		Templates:       collectionMap(s.Templates),
		MarketingEmails: collectionMap(s.MarketingEmails),
		MarketingEvents: collectionMap(s.MarketingEvents),
		EmailSends:      collectionMap(s.EmailSends),
		Counters: map[string]int64{
			s.Tickets.Name():         s.Tickets.counterValue(),
			s.Users.Name():           s.Users.counterValue(),
			s.Organizations.Name():   s.Organizations.counterValue(),
			s.Groups.Name():          s.Groups.counterValue(),
			s.Attachments.Name():     s.Attachments.counterValue(),
			s.Campaigns.Name():       s.Campaigns.counterValue(),
			s.Forms.Name():           s.Forms.counterValue(),
			s.Templates.Name():       s.Templates.counterValue(),
			s.MarketingEmails.Name(): s.MarketingEmails.counterValue(),
			s.MarketingEvents.Name(): s.MarketingEvents.counterValue(),
			s.EmailSends.Name():      s.EmailSends.counterValue(),
		},
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load replaces the store contents with the snapshot at path. Records are
// inserted in ascending ID order so insertion order is deterministic after
// a reload.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	s.Clear()
	loadCollection(s.Tickets, snap.Tickets)
	loadCollection(s.Users, snap.Users)
	loadCollection(s.Organizations, snap.Organizations)
	loadCollection(s.Groups, snap.Groups)
	loadCollection(s.Attachments, snap.Attachments)
	loadCollection(s.Campaigns, snap.Campaigns)
	loadCollection(s.Forms, snap.Forms)
	loadCollection(s.Templates, snap.Templates)
	loadCollection(s.MarketingEmails, snap.MarketingEmails)
	loadCollection(s.MarketingEvents, snap.MarketingEvents)
	loadCollection(s.EmailSends, snap.EmailSends)

	s.restoreCounters(snap.Counters)
	return nil
}

func (s *Store) restoreCounters(counters map[string]int64) {
	restore := func(name string, set func(int64)) {
		if n, ok := counters[name]; ok {
			set(n)
		}
	}
	restore(s.Tickets.Name(), s.Tickets.raiseCounter)
	restore(s.Users.Name(), s.Users.raiseCounter)
	restore(s.Organizations.Name(), s.Organizations.raiseCounter)
	restore(s.Groups.Name(), s.Groups.raiseCounter)
	restore(s.Attachments.Name(), s.Attachments.raiseCounter)
	restore(s.Campaigns.Name(), s.Campaigns.raiseCounter)
	restore(s.Forms.Name(), s.Forms.raiseCounter)
	restore(s.Templates.Name(), s.Templates.raiseCounter)
	restore(s.MarketingEmails.Name(), s.MarketingEmails.raiseCounter)
	restore(s.MarketingEvents.Name(), s.MarketingEvents.raiseCounter)
	restore(s.EmailSends.Name(), s.EmailSends.raiseCounter)
}

func collectionMap[T any](c *Collection[T]) map[string]T {
	out := make(map[string]T, c.Len())
	for _, id := range c.IDs() {
		v, _ := c.Get(id)
		out[id] = v
	}
	return out
}

func loadCollection[T any](c *Collection[T], items map[string]T) {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	for _, id := range sortedIDs(ids) {
		c.Put(id, items[id])
	}
}
