// Package ticket contains the ticket aggregate: the ticket entity, its
// append-only messages, and the repository port the visibility engine and
// mutation pipeline are built on.
package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

const maxTitleLength = 200

type Ticket struct {
	id        string
	serial    uint64
	title     string
	authorID  string
	status    vo.Status
	priority  vo.Priority
	createdAt time.Time
}

// NewTicket creates a ticket in its initial state: open and untriaged.
// The author never changes after creation.
func NewTicket(id, title, authorID string) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if authorID == "" {
		return nil, fmt.Errorf("author ID is required")
	}
	return &Ticket{
		id:        id,
		title:     title,
		authorID:  authorID,
		status:    vo.StatusOpen,
		priority:  vo.PriorityUntriaged,
		createdAt: time.Now(),
	}, nil
}

func ReconstructTicket(
	id string,
	serial uint64,
	title string,
	authorID string,
	status vo.Status,
	priority vo.Priority,
	createdAt time.Time,
) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	return &Ticket{
		id:        id,
		serial:    serial,
		title:     title,
		authorID:  authorID,
		status:    status,
		priority:  priority,
		createdAt: createdAt,
	}, nil
}

func (t *Ticket) ID() string            { return t.id }
func (t *Ticket) Serial() uint64        { return t.serial }
func (t *Ticket) Title() string         { return t.title }
func (t *Ticket) AuthorID() string      { return t.authorID }
func (t *Ticket) Status() vo.Status     { return t.status }
func (t *Ticket) Priority() vo.Priority { return t.priority }
func (t *Ticket) CreatedAt() time.Time  { return t.createdAt }

// SetSerial assigns the creation-time ordering serial. It can be set once.
func (t *Ticket) SetSerial(serial uint64) error {
	if t.serial != 0 {
		return fmt.Errorf("serial is already set")
	}
	if serial == 0 {
		return fmt.Errorf("serial cannot be zero")
	}
	t.serial = serial
	return nil
}

// IsAuthoredBy reports whether the given user created this ticket.
func (t *Ticket) IsAuthoredBy(userID string) bool {
	return t.authorID == userID
}
