package ticket

// Filter sentinels accepted at the boundary in addition to the plain enum
// values. They are validated before any query runs.
const (
	// FilterStatusNotClosed matches every status except closed.
	FilterStatusNotClosed = "not_closed"
	// FilterPriorityUntriaged matches tickets with no priority set.
	FilterPriorityUntriaged = "untriaged"
)

// Filter narrows a ticket listing. All set fields AND-combine and apply
// identically across the all, focus and queue views. Fields hold values
// already validated against their enum domains (plus the sentinels above).
type Filter struct {
	Tag      *string
	Status   *string
	Priority *string
}

// Summary is one row of an agent-facing ticket listing.
type Summary struct {
	TicketID   string
	Serial     uint64
	Status     string
	Priority   *string
	Title      string
	AuthorID   string
	AuthorName string
	Tags       []string
}

// CustomerSummary is one row of a customer's own-tickets listing.
type CustomerSummary struct {
	TicketID   string
	Status     string
	Title      string
	AuthorID   string
	AuthorName string
}

// SkillRef identifies a skill attached to a ticket.
type SkillRef struct {
	ID   string
	Name string
}

// MessageView is one conversation entry in a ticket detail.
type MessageView struct {
	AuthorID   string
	AuthorName string
	Content    string
	Visibility string
}

// Detail is the full ticket view. For customer reads the message list holds
// public messages only and skills/tags/queue are omitted.
type Detail struct {
	TicketID   string
	Serial     uint64
	Status     string
	Priority   *string
	Title      string
	AuthorID   string
	AuthorName string
	Messages   []MessageView
	Skills     []SkillRef
	Tags       []string
	QueueID    *string
}
