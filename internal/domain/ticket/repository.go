package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Repository is the persistence port for tickets, their messages and their
// associations. Mutation methods participate in the caller's transaction
// when one is present in the context.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id string) (*Ticket, error)

	// UpdateStatusPriority sets status and priority on the ticket row.
	// Returns a not-found error when the ticket does not exist.
	UpdateStatusPriority(ctx context.Context, id string, status vo.Status, priority vo.Priority) error

	// ReplaceSkills and ReplaceTags clear the full association set and
	// re-insert the given one. Callers submit the complete desired set.
	ReplaceSkills(ctx context.Context, id string, skillIDs []string) error
	ReplaceTags(ctx context.Context, id string, tagNames []string) error

	// AssignQueue replaces the ticket's single queue association.
	// A nil queueID clears it.
	AssignQueue(ctx context.Context, id string, queueID *string) error

	CreateMessage(ctx context.Context, m *Message) error

	// Listings. All agent views order by serial ascending.
	ListAll(ctx context.Context, f Filter) ([]Summary, error)
	ListFocus(ctx context.Context, agentID string, f Filter) ([]Summary, error)
	ListQueue(ctx context.Context, agentID string, f Filter) ([]Summary, error)
	ListByAuthor(ctx context.Context, authorID string) ([]Summary, error)
	ListByCustomer(ctx context.Context, customerID string, status *string) ([]CustomerSummary, error)
	ListDistinctTags(ctx context.Context) ([]string, error)

	// GetDetail returns the full agent view of one ticket.
	GetDetail(ctx context.Context, id string) (*Detail, error)
	// GetCustomerDetail returns the customer view: public messages only,
	// and not-found when the ticket is absent or authored by someone else.
	GetCustomerDetail(ctx context.Context, id, customerID string) (*Detail, error)
}

// SerialAllocator hands out the dense, strictly increasing creation serials
// used for stable display ordering.
type SerialAllocator interface {
	Next(ctx context.Context) (uint64, error)
}
