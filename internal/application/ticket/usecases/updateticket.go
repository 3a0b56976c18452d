package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateTicketCommand carries the full desired triage state. Skill and tag
// sets replace the stored sets wholesale; callers always submit the
// complete set, never a delta.
type UpdateTicketCommand struct {
	TicketID string
	Status   string
	Priority string
	SkillIDs []string
	Tags     []string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) error {
	if cmd.TicketID == "" {
		return errors.NewBadRequestError("ticket ID is required")
	}

	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	// Triage always sets a concrete priority; updates cannot return a
	// ticket to untriaged.
	if cmd.Priority == "" {
		return errors.NewValidationError("priority is required")
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	for _, id := range cmd.SkillIDs {
		if id == "" {
			return errors.NewValidationError("skill ID cannot be empty")
		}
	}
	for _, tag := range cmd.Tags {
		if tag == "" {
			return errors.NewValidationError("tag name cannot be empty")
		}
	}

	// Status, priority, skills and tags commit together or not at all.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.UpdateStatusPriority(txCtx, cmd.TicketID, status, priority); err != nil {
			return err
		}
		if err := uc.ticketRepo.ReplaceSkills(txCtx, cmd.TicketID, cmd.SkillIDs); err != nil {
			return err
		}
		return uc.ticketRepo.ReplaceTags(txCtx, cmd.TicketID, cmd.Tags)
	})
	if txErr != nil {
		if !errors.IsNotFoundError(txErr) {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", txErr)
		}
		return txErr
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID, "status", cmd.Status, "priority", cmd.Priority)
	return nil
}
