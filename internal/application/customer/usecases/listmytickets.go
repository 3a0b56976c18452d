package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListMyTicketsQuery struct {
	CustomerID string
	Status     *string
}

type ListMyTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListMyTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, query ListMyTicketsQuery) ([]dto.CustomerTicketSummaryDTO, error) {
	if query.Status != nil && *query.Status != ticket.FilterStatusNotClosed {
		if _, err := vo.NewStatus(*query.Status); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	summaries, err := uc.ticketRepo.ListByCustomer(ctx, query.CustomerID, query.Status)
	if err != nil {
		uc.logger.Errorw("failed to list customer tickets", "customer_id", query.CustomerID, "error", err)
		return nil, err
	}

	return dto.ToCustomerTicketSummaryDTOs(summaries), nil
}
