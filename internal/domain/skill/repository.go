package skill

import "context"

// Repository is the persistence port for skills and agent-skill
// associations. Delete cascades removal of agent and ticket associations
// in the same transaction.
type Repository interface {
	Save(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Skill, error)
	List(ctx context.Context) ([]*Skill, error)
	ListSmartAssignEnabled(ctx context.Context) ([]*Skill, error)

	AddAgentSkill(ctx context.Context, agentID, skillID string) error
	RemoveAgentSkill(ctx context.Context, agentID, skillID string) error
	ListByAgent(ctx context.Context, agentID string) ([]*Skill, error)
}
