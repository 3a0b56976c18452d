package usecases

import (
	"context"

	"helpdesk/internal/application/admin/dto"
)

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]dto.UserDTO, error)
}

type UpdateUserRoleExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserRoleCommand) error
}

type ListAgentsExecutor interface {
	Execute(ctx context.Context) ([]dto.AgentDTO, error)
}

type CreateSkillExecutor interface {
	Execute(ctx context.Context, cmd CreateSkillCommand) (*dto.SkillDTO, error)
}

type DeleteSkillExecutor interface {
	Execute(ctx context.Context, cmd DeleteSkillCommand) error
}

type ListSkillsExecutor interface {
	Execute(ctx context.Context) ([]dto.SkillDTO, error)
}

type AddAgentSkillExecutor interface {
	Execute(ctx context.Context, cmd AgentSkillCommand) error
}

type RemoveAgentSkillExecutor interface {
	Execute(ctx context.Context, cmd AgentSkillCommand) error
}

type CreateQueueExecutor interface {
	Execute(ctx context.Context, cmd CreateQueueCommand) (*dto.QueueDTO, error)
}

type DeleteQueueExecutor interface {
	Execute(ctx context.Context, cmd DeleteQueueCommand) error
}

type ListQueuesExecutor interface {
	Execute(ctx context.Context) ([]dto.QueueDTO, error)
}

type AssignAgentToQueueExecutor interface {
	Execute(ctx context.Context, cmd QueueAgentCommand) error
}

type RemoveAgentFromQueueExecutor interface {
	Execute(ctx context.Context, cmd QueueAgentCommand) error
}
