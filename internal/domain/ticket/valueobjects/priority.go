package valueobjects

import "fmt"

// Priority is the triage priority of a ticket. The zero value means the
// ticket has not been triaged yet and is stored as NULL.
type Priority string

const (
	PriorityUntriaged Priority = ""
	PriorityLow       Priority = "low"
	PriorityMedium    Priority = "medium"
	PriorityHigh      Priority = "high"
	PriorityUrgent    Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityUntriaged, PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p Priority) IsUntriaged() bool { return p == PriorityUntriaged }

func (p Priority) String() string { return string(p) }

// NewPriority parses and validates a priority value. The empty string is
// accepted and means untriaged.
func NewPriority(value string) (Priority, error) {
	p := Priority(value)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %q", value)
	}
	return p, nil
}
