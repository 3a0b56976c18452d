package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ListAuthorTicketsQuery fetches every ticket a given user has opened,
// newest first. Agents use it to see a customer's history alongside the
// ticket they are working.
type ListAuthorTicketsQuery struct {
	AuthorID string
}

type ListAuthorTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListAuthorTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListAuthorTicketsUseCase {
	return &ListAuthorTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListAuthorTicketsUseCase) Execute(ctx context.Context, query ListAuthorTicketsQuery) ([]dto.TicketSummaryDTO, error) {
	if query.AuthorID == "" {
		return nil, errors.NewBadRequestError("author ID is required")
	}

	summaries, err := uc.ticketRepo.ListByAuthor(ctx, query.AuthorID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets by author", "author_id", query.AuthorID, "error", err)
		return nil, err
	}

	return dto.ToTicketSummaryDTOs(summaries), nil
}
