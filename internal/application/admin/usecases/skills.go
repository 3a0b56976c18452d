package usecases

import (
	"context"

	"github.com/google/uuid"

	"helpdesk/internal/application/admin/dto"
	"helpdesk/internal/domain/skill"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateSkillCommand struct {
	Name        string
	Description string
	SmartAssign bool
}

type CreateSkillUseCase struct {
	skillRepo skill.Repository
	logger    logger.Interface
}

func NewCreateSkillUseCase(skillRepo skill.Repository, logger logger.Interface) *CreateSkillUseCase {
	return &CreateSkillUseCase{
		skillRepo: skillRepo,
		logger:    logger,
	}
}

func (uc *CreateSkillUseCase) Execute(ctx context.Context, cmd CreateSkillCommand) (*dto.SkillDTO, error) {
	newSkill, err := skill.NewSkill(uuid.NewString(), cmd.Name, cmd.Description, cmd.SmartAssign)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.skillRepo.Save(ctx, newSkill); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create skill", "name", cmd.Name, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("skill created", "skill_id", newSkill.ID(), "name", cmd.Name)
	result := dto.ToSkillDTO(newSkill)
	return &result, nil
}

type DeleteSkillCommand struct {
	SkillID string
}

// DeleteSkillUseCase removes a skill and, in the same transaction, every
// agent and ticket association that references it.
type DeleteSkillUseCase struct {
	skillRepo skill.Repository
	txMgr     *db.TransactionManager
	logger    logger.Interface
}

func NewDeleteSkillUseCase(
	skillRepo skill.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteSkillUseCase {
	return &DeleteSkillUseCase{
		skillRepo: skillRepo,
		txMgr:     txMgr,
		logger:    logger,
	}
}

func (uc *DeleteSkillUseCase) Execute(ctx context.Context, cmd DeleteSkillCommand) error {
	if cmd.SkillID == "" {
		return errors.NewBadRequestError("skill ID is required")
	}

	// The skill row and its association rows go together or not at all.
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.skillRepo.Delete(txCtx, cmd.SkillID)
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete skill", "skill_id", cmd.SkillID, "error", err)
		}
		return err
	}

	uc.logger.Infow("skill deleted", "skill_id", cmd.SkillID)
	return nil
}

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
