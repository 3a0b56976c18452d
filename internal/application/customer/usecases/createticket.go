package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"helpdesk/internal/application/smartassign"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const advisorTimeout = 60 * time.Second

type CreateTicketCommand struct {
	CustomerID string
	Title      string
	Content    string
}

type CreateTicketResult struct {
	TicketID string
	Serial   uint64
}

// CreateTicketUseCase opens a ticket with its initial public message in one
// transaction, then hands the ticket to the smart-assign advisor in the
// background. The advisor can never fail or delay the creation itself.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	serials    ticket.SerialAllocator
	txMgr      *db.TransactionManager
	advisor    smartassign.Advisor
	autoApply  bool
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	serials ticket.SerialAllocator,
	txMgr *db.TransactionManager,
	advisor smartassign.Advisor,
	autoApply bool,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		serials:    serials,
		txMgr:      txMgr,
		advisor:    advisor,
		autoApply:  autoApply,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if cmd.Content == "" {
		return nil, errors.NewValidationError("content is required")
	}

	newTicket, err := ticket.NewTicket(uuid.NewString(), cmd.Title, cmd.CustomerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	content := utils.SanitizeContent(cmd.Content)

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		serial, err := uc.serials.Next(txCtx)
		if err != nil {
			return fmt.Errorf("failed to allocate ticket serial: %w", err)
		}
		if err := newTicket.SetSerial(serial); err != nil {
			return err
		}
		if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
			return err
		}

		msg, err := newPublicMessage(newTicket.ID(), cmd.CustomerID, content)
		if err != nil {
			return err
		}
		return uc.ticketRepo.CreateMessage(txCtx, msg)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to create ticket", "customer_id", cmd.CustomerID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "serial", newTicket.Serial(), "customer_id", cmd.CustomerID)

	if uc.advisor != nil {
		uc.dispatchAdvisor(newTicket.ID(), cmd.Title, content)
	}

	return &CreateTicketResult{
		TicketID: newTicket.ID(),
		Serial:   newTicket.Serial(),
	}, nil
}

// dispatchAdvisor runs smart assign after the commit on a detached context
// so a slow model call outlives neither the request nor the creation.
func (uc *CreateTicketUseCase) dispatchAdvisor(ticketID, title, content string) {
	goroutine.SafeGo(uc.logger, "smart-assign", func() {
		ctx, cancel := context.WithTimeout(context.Background(), advisorTimeout)
		defer cancel()

		rec := uc.advisor.SmartAssign(ctx, title, content)
		uc.logger.Infow("smart assign recommendation", "ticket_id", ticketID, "skill_ids", rec.SkillIDs, "queue_id", rec.QueueID)

		if !uc.autoApply {
			return
		}

		applyErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			if len(rec.SkillIDs) > 0 {
				if err := uc.ticketRepo.ReplaceSkills(txCtx, ticketID, rec.SkillIDs); err != nil {
					return err
				}
			}
			if rec.QueueID != nil {
				if err := uc.ticketRepo.AssignQueue(txCtx, ticketID, rec.QueueID); err != nil {
					return err
				}
			}
			return nil
		})
		if applyErr != nil {
			uc.logger.Errorw("failed to apply smart assign recommendation", "ticket_id", ticketID, "error", applyErr)
		}
	})
}

func newPublicMessage(ticketID, authorID, content string) (*ticket.Message, error) {
	serial, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate message serial: %w", err)
	}
	return ticket.NewMessage(
		uuid.NewString(),
		serial.String(),
		ticketID,
		authorID,
		vo.VisibilityPublic,
		content,
	)
}
