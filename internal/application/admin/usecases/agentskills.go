package usecases

import (
	"context"

	"helpdesk/internal/domain/skill"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AgentSkillCommand struct {
	AgentID string
	SkillID string
}

// AddAgentSkillUseCase grants a skill to an agent. Granting a skill the
// agent already holds is a no-op.
type AddAgentSkillUseCase struct {
	skillRepo skill.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewAddAgentSkillUseCase(
	skillRepo skill.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AddAgentSkillUseCase {
	return &AddAgentSkillUseCase{
		skillRepo: skillRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *AddAgentSkillUseCase) Execute(ctx context.Context, cmd AgentSkillCommand) error {
	if cmd.AgentID == "" || cmd.SkillID == "" {
		return errors.NewBadRequestError("agent ID and skill ID are required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		return err
	}
	if !u.Role().IsAgentOrAdmin() {
		return errors.NewBadRequestError("user is not an agent")
	}
	if _, err := uc.skillRepo.GetByID(ctx, cmd.SkillID); err != nil {
		return err
	}

	if err := uc.skillRepo.AddAgentSkill(ctx, cmd.AgentID, cmd.SkillID); err != nil {
		uc.logger.Errorw("failed to add agent skill", "agent_id", cmd.AgentID, "skill_id", cmd.SkillID, "error", err)
		return err
	}

	uc.logger.Infow("agent skill added", "agent_id", cmd.AgentID, "skill_id", cmd.SkillID)
	return nil
}

// RemoveAgentSkillUseCase revokes a skill from an agent. Revoking a skill
// the agent does not hold is a no-op.
type RemoveAgentSkillUseCase struct {
	skillRepo skill.Repository
	logger    logger.Interface
}

func NewRemoveAgentSkillUseCase(skillRepo skill.Repository, logger logger.Interface) *RemoveAgentSkillUseCase {
	return &RemoveAgentSkillUseCase{
		skillRepo: skillRepo,
		logger:    logger,
	}
}

func (uc *RemoveAgentSkillUseCase) Execute(ctx context.Context, cmd AgentSkillCommand) error {
	if cmd.AgentID == "" || cmd.SkillID == "" {
		return errors.NewBadRequestError("agent ID and skill ID are required")
	}

	if err := uc.skillRepo.RemoveAgentSkill(ctx, cmd.AgentID, cmd.SkillID); err != nil {
		uc.logger.Errorw("failed to remove agent skill", "agent_id", cmd.AgentID, "skill_id", cmd.SkillID, "error", err)
		return err
	}

	uc.logger.Infow("agent skill removed", "agent_id", cmd.AgentID, "skill_id", cmd.SkillID)
	return nil
}
