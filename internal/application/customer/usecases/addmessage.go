package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AddMessageCommand appends a customer reply. Visibility is always public;
// customers cannot post internal notes.
type AddMessageCommand struct {
	CustomerID string
	TicketID   string
	Content    string
}

type AddMessageUseCase struct {
	ticketRepo ticket.Repository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewAddMessageUseCase(
	ticketRepo ticket.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) error {
	if cmd.TicketID == "" {
		return errors.NewBadRequestError("ticket ID is required")
	}
	if cmd.Content == "" {
		return errors.NewValidationError("content is required")
	}

	content := utils.SanitizeContent(cmd.Content)

	// Authorship is checked inside the transaction so a concurrent change
	// cannot slip a message onto someone else's ticket.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if !t.IsAuthoredBy(cmd.CustomerID) {
			// Same answer as a missing ticket, so existence is not leaked.
			return errors.NewNotFoundError("ticket not found")
		}

		msg, err := newPublicMessage(cmd.TicketID, cmd.CustomerID, content)
		if err != nil {
			return err
		}
		return uc.ticketRepo.CreateMessage(txCtx, msg)
	})
	if txErr != nil {
		if !errors.IsNotFoundError(txErr) {
			uc.logger.Errorw("failed to add customer message", "ticket_id", cmd.TicketID, "error", txErr)
		}
		return txErr
	}

	uc.logger.Infow("customer message created", "ticket_id", cmd.TicketID, "customer_id", cmd.CustomerID)
	return nil
}
