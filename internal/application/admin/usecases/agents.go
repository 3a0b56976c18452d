package usecases

import (
	"context"

	"helpdesk/internal/application/admin/dto"
	"helpdesk/internal/domain/skill"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

// ListAgentsUseCase returns every agent and admin together with the skills
// each one holds.
type ListAgentsUseCase struct {
	userRepo  user.Repository
	skillRepo skill.Repository
	logger    logger.Interface
}

func NewListAgentsUseCase(
	userRepo user.Repository,
	skillRepo skill.Repository,
	logger logger.Interface,
) *ListAgentsUseCase {
	return &ListAgentsUseCase{
		userRepo:  userRepo,
		skillRepo: skillRepo,
		logger:    logger,
	}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context) ([]dto.AgentDTO, error) {
	agents, err := uc.userRepo.ListAgents(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err)
		return nil, err
	}

	result := make([]dto.AgentDTO, 0, len(agents))
	for _, a := range agents {
		skills, err := uc.skillRepo.ListByAgent(ctx, a.ID())
		if err != nil {
			uc.logger.Errorw("failed to list agent skills", "agent_id", a.ID(), "error", err)
			return nil, err
		}
		result = append(result, dto.AgentDTO{
			ID:     a.ID(),
			Name:   a.Name(),
			Role:   a.Role().String(),
			Skills: dto.ToSkillDTOs(skills),
		})
	}
	return result, nil
}
