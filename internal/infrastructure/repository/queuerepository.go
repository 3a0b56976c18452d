package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/queue"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type QueueRepository struct {
	db *gorm.DB
}

func NewQueueRepository(gormDB *gorm.DB) *QueueRepository {
	return &QueueRepository{db: gormDB}
}

func (r *QueueRepository) Save(ctx context.Context, q *queue.Queue) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := queueToModel(q)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("queue name already exists")
		}
		return fmt.Errorf("failed to save queue: %w", err)
	}
	return nil
}

// Delete removes the queue and cascades removal of its agent memberships
// and ticket routings.
func (r *QueueRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id = ?", id).Delete(&models.QueueModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete queue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("queue not found")
	}
	if err := tx.Where("queue_id = ?", id).Delete(&models.QueueAgentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete queue agent memberships: %w", err)
	}
	if err := tx.Where("queue_id = ?", id).Delete(&models.QueueTicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete queue ticket routings: %w", err)
	}
	return nil
}

func (r *QueueRepository) GetByID(ctx context.Context, id string) (*queue.Queue, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.QueueModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("queue not found")
		}
		return nil, fmt.Errorf("failed to find queue: %w", err)
	}
	return queueToDomain(&model), nil
}

func (r *QueueRepository) List(ctx context.Context) ([]*queue.Queue, error) {
	return r.list(ctx, false)
}

func (r *QueueRepository) ListSmartAssignEnabled(ctx context.Context) ([]*queue.Queue, error) {
	return r.list(ctx, true)
}

func (r *QueueRepository) list(ctx context.Context, smartAssignOnly bool) ([]*queue.Queue, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("name ASC")
	if smartAssignOnly {
		query = query.Where("smart_assign = ?", true)
	}

	var queueModels []models.QueueModel
	if err := query.Find(&queueModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list queues: %w", err)
	}

	queues := make([]*queue.Queue, 0, len(queueModels))
	for i := range queueModels {
		queues = append(queues, queueToDomain(&queueModels[i]))
	}
	return queues, nil
}

// AddAgent is idempotent: adding an existing member is a no-op.
func (r *QueueRepository) AddAgent(ctx context.Context, queueID, agentID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	row := models.QueueAgentModel{QueueID: queueID, AgentID: agentID}
	if err := tx.Create(&row).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to add queue agent: %w", err)
	}
	return nil
}

func (r *QueueRepository) RemoveAgent(ctx context.Context, queueID, agentID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("queue_id = ? AND agent_id = ?", queueID, agentID).
		Delete(&models.QueueAgentModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove queue agent: %w", err)
	}
	return nil
}

func queueToModel(q *queue.Queue) *models.QueueModel {
	return &models.QueueModel{
		ID:          q.ID(),
		Name:        q.Name(),
		Description: q.Description(),
		SmartAssign: q.SmartAssign(),
		CreatedAt:   q.CreatedAt().UnixMilli(),
	}
}

func queueToDomain(model *models.QueueModel) *queue.Queue {
	return queue.ReconstructQueue(
		model.ID,
		model.Name,
		model.Description,
		model.SmartAssign,
		time.UnixMilli(model.CreatedAt),
	)
}
