package usecases

import (
	"context"

	"github.com/google/uuid"

	"helpdesk/internal/application/admin/dto"
	"helpdesk/internal/domain/queue"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateQueueCommand struct {
	Name        string
	Description string
	SmartAssign bool
}

type CreateQueueUseCase struct {
	queueRepo queue.Repository
	logger    logger.Interface
}

func NewCreateQueueUseCase(queueRepo queue.Repository, logger logger.Interface) *CreateQueueUseCase {
	return &CreateQueueUseCase{
		queueRepo: queueRepo,
		logger:    logger,
	}
}

func (uc *CreateQueueUseCase) Execute(ctx context.Context, cmd CreateQueueCommand) (*dto.QueueDTO, error) {
	newQueue, err := queue.NewQueue(uuid.NewString(), cmd.Name, cmd.Description, cmd.SmartAssign)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.queueRepo.Save(ctx, newQueue); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create queue", "name", cmd.Name, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("queue created", "queue_id", newQueue.ID(), "name", cmd.Name)
	result := dto.ToQueueDTO(newQueue)
	return &result, nil
}

type DeleteQueueCommand struct {
	QueueID string
}

// DeleteQueueUseCase removes a queue and, in the same transaction, its
// agent memberships and ticket routings.
type DeleteQueueUseCase struct {
	queueRepo queue.Repository
	txMgr     *db.TransactionManager
	logger    logger.Interface
}

func NewDeleteQueueUseCase(
	queueRepo queue.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteQueueUseCase {
	return &DeleteQueueUseCase{
		queueRepo: queueRepo,
		txMgr:     txMgr,
		logger:    logger,
	}
}

func (uc *DeleteQueueUseCase) Execute(ctx context.Context, cmd DeleteQueueCommand) error {
	if cmd.QueueID == "" {
		return errors.NewBadRequestError("queue ID is required")
	}

	// The queue row, its memberships and its routings go together or not at all.
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.queueRepo.Delete(txCtx, cmd.QueueID)
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete queue", "queue_id", cmd.QueueID, "error", err)
		}
		return err
	}

	uc.logger.Infow("queue deleted", "queue_id", cmd.QueueID)
	return nil
}

type ListQueuesUseCase struct {
	queueRepo queue.Repository
	logger    logger.Interface
}

func NewListQueuesUseCase(queueRepo queue.Repository, logger logger.Interface) *ListQueuesUseCase {
	return &ListQueuesUseCase{
		queueRepo: queueRepo,
		logger:    logger,
	}
}

func (uc *ListQueuesUseCase) Execute(ctx context.Context) ([]dto.QueueDTO, error) {
	queues, err := uc.queueRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list queues", "error", err)
		return nil, err
	}
	return dto.ToQueueDTOs(queues), nil
}

type QueueAgentCommand struct {
	QueueID string
	AgentID string
}

// AssignAgentToQueueUseCase adds an agent to a queue's membership.
// Re-adding an existing member is a no-op.
type AssignAgentToQueueUseCase struct {
	queueRepo queue.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewAssignAgentToQueueUseCase(
	queueRepo queue.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignAgentToQueueUseCase {
	return &AssignAgentToQueueUseCase{
		queueRepo: queueRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *AssignAgentToQueueUseCase) Execute(ctx context.Context, cmd QueueAgentCommand) error {
	if cmd.QueueID == "" || cmd.AgentID == "" {
		return errors.NewBadRequestError("queue ID and agent ID are required")
	}

	if _, err := uc.queueRepo.GetByID(ctx, cmd.QueueID); err != nil {
		return err
	}
	u, err := uc.userRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		return err
	}
	if !u.Role().IsAgentOrAdmin() {
		return errors.NewBadRequestError("user is not an agent")
	}

	if err := uc.queueRepo.AddAgent(ctx, cmd.QueueID, cmd.AgentID); err != nil {
		uc.logger.Errorw("failed to assign agent to queue", "queue_id", cmd.QueueID, "agent_id", cmd.AgentID, "error", err)
		return err
	}

	uc.logger.Infow("agent assigned to queue", "queue_id", cmd.QueueID, "agent_id", cmd.AgentID)
	return nil
}

// RemoveAgentFromQueueUseCase drops an agent from a queue's membership.
// Removing a non-member is a no-op.
type RemoveAgentFromQueueUseCase struct {
	queueRepo queue.Repository
	logger    logger.Interface
}

func NewRemoveAgentFromQueueUseCase(queueRepo queue.Repository, logger logger.Interface) *RemoveAgentFromQueueUseCase {
	return &RemoveAgentFromQueueUseCase{
		queueRepo: queueRepo,
		logger:    logger,
	}
}

func (uc *RemoveAgentFromQueueUseCase) Execute(ctx context.Context, cmd QueueAgentCommand) error {
	if cmd.QueueID == "" || cmd.AgentID == "" {
		return errors.NewBadRequestError("queue ID and agent ID are required")
	}

	if err := uc.queueRepo.RemoveAgent(ctx, cmd.QueueID, cmd.AgentID); err != nil {
		uc.logger.Errorw("failed to remove agent from queue", "queue_id", cmd.QueueID, "agent_id", cmd.AgentID, "error", err)
		return err
	}

	uc.logger.Infow("agent removed from queue", "queue_id", cmd.QueueID, "agent_id", cmd.AgentID)
	return nil
}
