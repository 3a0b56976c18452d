package usecases

import (
	"context"

	"helpdesk/internal/domain/queue"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// AssignTicketToQueueCommand routes a ticket into a queue. A nil QueueID
// removes the ticket from whatever queue it is in.
type AssignTicketToQueueCommand struct {
	TicketID string
	QueueID  *string
}

type AssignTicketToQueueUseCase struct {
	ticketRepo ticket.Repository
	queueRepo  queue.Repository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewAssignTicketToQueueUseCase(
	ticketRepo ticket.Repository,
	queueRepo queue.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AssignTicketToQueueUseCase {
	return &AssignTicketToQueueUseCase{
		ticketRepo: ticketRepo,
		queueRepo:  queueRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *AssignTicketToQueueUseCase) Execute(ctx context.Context, cmd AssignTicketToQueueCommand) error {
	if cmd.TicketID == "" {
		return errors.NewBadRequestError("ticket ID is required")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return err
	}
	if cmd.QueueID != nil {
		if _, err := uc.queueRepo.GetByID(ctx, *cmd.QueueID); err != nil {
			return err
		}
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.AssignQueue(txCtx, cmd.TicketID, cmd.QueueID)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to assign ticket to queue", "ticket_id", cmd.TicketID, "error", txErr)
		return txErr
	}

	uc.logger.Infow("ticket queue assignment updated", "ticket_id", cmd.TicketID, "queue_id", cmd.QueueID)
	return nil
}
