package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID string
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID == "" {
		return nil, errors.NewBadRequestError("ticket ID is required")
	}

	detail, err := uc.ticketRepo.GetDetail(ctx, query.TicketID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to load ticket detail", "ticket_id", query.TicketID, "error", err)
		}
		return nil, err
	}

	return dto.ToTicketDetailDTO(detail), nil
}
