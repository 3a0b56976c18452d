package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Message is one entry in a ticket's conversation. Messages are append-only;
// they are never edited or deleted. The serial is a time-ordered token
// assigned at creation and is the canonical ordering key.
type Message struct {
	id         string
	serial     string
	ticketID   string
	authorID   string
	visibility vo.Visibility
	content    string
	createdAt  time.Time
}

func NewMessage(id, serial, ticketID, authorID string, visibility vo.Visibility, content string) (*Message, error) {
	if id == "" {
		return nil, fmt.Errorf("message ID is required")
	}
	if serial == "" {
		return nil, fmt.Errorf("message serial is required")
	}
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == "" {
		return nil, fmt.Errorf("author ID is required")
	}
	if !visibility.IsValid() {
		return nil, fmt.Errorf("invalid visibility: %s", visibility)
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	return &Message{
		id:         id,
		serial:     serial,
		ticketID:   ticketID,
		authorID:   authorID,
		visibility: visibility,
		content:    content,
		createdAt:  time.Now(),
	}, nil
}

func (m *Message) ID() string                { return m.id }
func (m *Message) Serial() string            { return m.serial }
func (m *Message) TicketID() string          { return m.ticketID }
func (m *Message) AuthorID() string          { return m.authorID }
func (m *Message) Visibility() vo.Visibility { return m.visibility }
func (m *Message) Content() string           { return m.content }
func (m *Message) CreatedAt() time.Time      { return m.createdAt }
