package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketSummaryDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) error
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) error
}

type AssignTicketToQueueExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketToQueueCommand) error
}

type ListAuthorTicketsExecutor interface {
	Execute(ctx context.Context, query ListAuthorTicketsQuery) ([]dto.TicketSummaryDTO, error)
}

type ListTagsExecutor interface {
	Execute(ctx context.Context) ([]string, error)
}

type ListSkillsExecutor interface {
	Execute(ctx context.Context) ([]dto.SkillDTO, error)
}
