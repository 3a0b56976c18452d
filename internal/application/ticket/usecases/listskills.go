package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/skill"
	"helpdesk/internal/shared/logger"
)

// ListSkillsUseCase returns the full skill catalog, for the triage panel.
type ListSkillsUseCase struct {
	skillRepo skill.Repository
	logger    logger.Interface
}

func NewListSkillsUseCase(skillRepo skill.Repository, logger logger.Interface) *ListSkillsUseCase {
	return &ListSkillsUseCase{
		skillRepo: skillRepo,
		logger:    logger,
	}
}

func (uc *ListSkillsUseCase) Execute(ctx context.Context) ([]dto.SkillDTO, error) {
	skills, err := uc.skillRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list skills", "error", err)
		return nil, err
	}
	return dto.ToSkillDTOs(skills), nil
}
