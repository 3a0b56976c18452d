// Package valueobjects contains the ticket value objects: status, priority
// and message visibility.
package valueobjects

import "fmt"

// Status is the ticket lifecycle state.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusPending    Status = "pending"
	StatusClosed     Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusPending, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

func (s Status) IsClosed() bool { return s == StatusClosed }

// NewStatus parses and validates a status value.
func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status: %q", value)
	}
	return s, nil
}
