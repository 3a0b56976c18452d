package valueobjects

import "fmt"

// Visibility controls who may see a ticket message. Internal messages are
// never shown to the ticket's customer author.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityInternal Visibility = "internal"
)

func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityInternal
}

func (v Visibility) String() string { return string(v) }

// NewVisibility parses and validates a visibility value.
func NewVisibility(value string) (Visibility, error) {
	v := Visibility(value)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid visibility: %q", value)
	}
	return v, nil
}
