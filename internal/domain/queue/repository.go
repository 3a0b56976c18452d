package queue

import "context"

// Repository is the persistence port for queues and queue membership.
// Delete cascades removal of agent memberships and ticket routings in the
// same transaction.
type Repository interface {
	Save(ctx context.Context, q *Queue) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Queue, error)
	List(ctx context.Context) ([]*Queue, error)
	ListSmartAssignEnabled(ctx context.Context) ([]*Queue, error)

	AddAgent(ctx context.Context, queueID, agentID string) error
	RemoveAgent(ctx context.Context, queueID, agentID string) error
}
