package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/skill"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(gormDB *gorm.DB) *SkillRepository {
	return &SkillRepository{db: gormDB}
}

func (r *SkillRepository) Save(ctx context.Context, s *skill.Skill) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := skillToModel(s)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("skill name already exists")
		}
		return fmt.Errorf("failed to save skill: %w", err)
	}
	return nil
}

// Delete removes the skill and cascades removal of its agent and ticket
// associations. The association rows disappear; agents and tickets stay.
func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id = ?", id).Delete(&models.SkillModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete skill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("skill not found")
	}
	if err := tx.Where("skill_id = ?", id).Delete(&models.AgentSkillModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete agent skill associations: %w", err)
	}
	if err := tx.Where("skill_id = ?", id).Delete(&models.TicketSkillModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket skill associations: %w", err)
	}
	return nil
}

func (r *SkillRepository) GetByID(ctx context.Context, id string) (*skill.Skill, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SkillModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("skill not found")
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}
	return skillToDomain(&model), nil
}

func (r *SkillRepository) List(ctx context.Context) ([]*skill.Skill, error) {
	return r.list(ctx, false)
}

func (r *SkillRepository) ListSmartAssignEnabled(ctx context.Context) ([]*skill.Skill, error) {
	return r.list(ctx, true)
}

func (r *SkillRepository) list(ctx context.Context, smartAssignOnly bool) ([]*skill.Skill, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("name ASC")
	if smartAssignOnly {
		query = query.Where("smart_assign = ?", true)
	}

	var skillModels []models.SkillModel
	if err := query.Find(&skillModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	skills := make([]*skill.Skill, 0, len(skillModels))
	for i := range skillModels {
		skills = append(skills, skillToDomain(&skillModels[i]))
	}
	return skills, nil
}

// AddAgentSkill is idempotent: granting an already-held skill is a no-op.
func (r *SkillRepository) AddAgentSkill(ctx context.Context, agentID, skillID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	row := models.AgentSkillModel{AgentID: agentID, SkillID: skillID}
	if err := tx.Create(&row).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to add agent skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) RemoveAgentSkill(ctx context.Context, agentID, skillID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("agent_id = ? AND skill_id = ?", agentID, skillID).
		Delete(&models.AgentSkillModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove agent skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) ListByAgent(ctx context.Context, agentID string) ([]*skill.Skill, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var skillModels []models.SkillModel
	if err := tx.Model(&models.SkillModel{}).
		Select("skills.*").
		Joins("INNER JOIN agent_skills ON agent_skills.skill_id = skills.id").
		Where("agent_skills.agent_id = ?", agentID).
		Order("skills.name ASC").
		Find(&skillModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list agent skills: %w", err)
	}

	skills := make([]*skill.Skill, 0, len(skillModels))
	for i := range skillModels {
		skills = append(skills, skillToDomain(&skillModels[i]))
	}
	return skills, nil
}

func skillToModel(s *skill.Skill) *models.SkillModel {
	return &models.SkillModel{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		SmartAssign: s.SmartAssign(),
		CreatedAt:   s.CreatedAt().UnixMilli(),
	}
}

func skillToDomain(model *models.SkillModel) *skill.Skill {
	return skill.ReconstructSkill(
		model.ID,
		model.Name,
		model.Description,
		model.SmartAssign,
		time.UnixMilli(model.CreatedAt),
	)
}
