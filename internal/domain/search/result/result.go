// Package result defines the search response envelope. Result items are
// JSON-shaped shallow copies of matched records with an injected
// result_type discriminator; source records are never mutated.
package result

import (
	"encoding/json"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain/search/kind"
)

// Item is one search hit in its wire shape.
type Item map[string]any

// ResultType returns the item's result_type discriminator.
func (i Item) ResultType() string {
	s, _ := i["result_type"].(string)
	return s
}

// NewItem copies rec into its JSON field layout and tags it with the
// resource kind.
func NewItem(rec any, k kind.Kind) (Item, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	item["result_type"] = string(k)
	return item, nil
}

// Envelope is the full search response. Count is the pre-pagination match
// total; side-load arrays are present only when requested and non-empty.
type Envelope struct {
	Results       []Item  `json:"results"`
	Count         int     `json:"count"`
	Page          int     `json:"page"`
	PerPage       int     `json:"per_page"`
	NextPage      *string `json:"next_page,omitempty"`
	PreviousPage  *string `json:"previous_page,omitempty"`
	Users         []Item  `json:"users,omitempty"`
	Organizations []Item  `json:"organizations,omitempty"`
	Groups        []Item  `json:"groups,omitempty"`
}
