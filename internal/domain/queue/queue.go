// Package queue contains the routing queue entity and its persistence port.
package queue

import (
	"fmt"
	"time"
)

// Queue is a routing destination. Agents are members of queues; a ticket
// is routed into at most one queue at a time. Queues flagged for smart
// assign are offered to the advisor as classification targets.
type Queue struct {
	id          string
	name        string
	description string
	smartAssign bool
	createdAt   time.Time
}

func NewQueue(id, name, description string, smartAssign bool) (*Queue, error) {
	if id == "" {
		return nil, fmt.Errorf("queue ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return &Queue{
		id:          id,
		name:        name,
		description: description,
		smartAssign: smartAssign,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructQueue(id, name, description string, smartAssign bool, createdAt time.Time) *Queue {
	return &Queue{
		id:          id,
		name:        name,
		description: description,
		smartAssign: smartAssign,
		createdAt:   createdAt,
	}
}

func (q *Queue) ID() string           { return q.id }
func (q *Queue) Name() string         { return q.name }
func (q *Queue) Description() string  { return q.description }
func (q *Queue) SmartAssign() bool    { return q.smartAssign }
func (q *Queue) CreatedAt() time.Time { return q.createdAt }
