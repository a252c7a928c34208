package kind

// Kind identifies one of the searchable Zendesk resource kinds. It doubles
// as the result_type discriminator injected into search result items.
type Kind string

// Resource kind constants.
const (
	Ticket       Kind = "ticket"
	User         Kind = "user"
	Organization Kind = "organization"
	Group        Kind = "group"
)

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Ticket || k == User || k == Organization || k == Group
}
