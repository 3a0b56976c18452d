package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetMyTicketQuery struct {
	CustomerID string
	TicketID   string
}

// GetMyTicketUseCase returns the customer view of one ticket: public
// messages only, no triage data. A ticket that does not exist and a ticket
// owned by someone else are both reported as not found.
type GetMyTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetMyTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetMyTicketUseCase {
	return &GetMyTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetMyTicketUseCase) Execute(ctx context.Context, query GetMyTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID == "" {
		return nil, errors.NewBadRequestError("ticket ID is required")
	}

	detail, err := uc.ticketRepo.GetCustomerDetail(ctx, query.TicketID, query.CustomerID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to load customer ticket detail", "ticket_id", query.TicketID, "error", err)
		}
		return nil, err
	}

	return dto.ToTicketDetailDTO(detail), nil
}
