package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ListMyTicketsExecutor interface {
	Execute(ctx context.Context, query ListMyTicketsQuery) ([]dto.CustomerTicketSummaryDTO, error)
}

type GetMyTicketExecutor interface {
	Execute(ctx context.Context, query GetMyTicketQuery) (*dto.TicketDetailDTO, error)
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) error
}
