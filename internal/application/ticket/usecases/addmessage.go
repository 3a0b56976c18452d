package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AddMessageCommand appends a conversation entry to a ticket. Agents may
// post public or internal messages.
type AddMessageCommand struct {
	TicketID   string
	AuthorID   string
	Content    string
	Visibility string
}

type AddMessageUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddMessageUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) error {
	visibility, err := vo.NewVisibility(cmd.Visibility)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if cmd.Content == "" {
		return errors.NewValidationError("content is required")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return err
	}

	msg, err := newTicketMessage(cmd.TicketID, cmd.AuthorID, visibility, cmd.Content)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.CreateMessage(ctx, msg); err != nil {
		uc.logger.Errorw("failed to create ticket message", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket message created", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID, "visibility", cmd.Visibility)
	return nil
}

// newTicketMessage builds a message with a fresh id and a time-ordered
// serial. UUIDv7 serials sort lexically by creation time, which is the
// conversation ordering key.
func newTicketMessage(ticketID, authorID string, visibility vo.Visibility, content string) (*ticket.Message, error) {
	serial, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate message serial: %w", err)
	}
	return ticket.NewMessage(
		uuid.NewString(),
		serial.String(),
		ticketID,
		authorID,
		visibility,
		utils.SanitizeContent(content),
	)
}
