package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const (
	ViewAll   = "all"
	ViewFocus = "focus"
	ViewQueue = "queue"
)

type ListTicketsQuery struct {
	AgentID  string
	View     string
	Tag      *string
	Status   *string
	Priority *string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketSummaryDTO, error) {
	filter, err := buildFilter(query.Tag, query.Status, query.Priority)
	if err != nil {
		return nil, err
	}

	var summaries []ticket.Summary
	switch query.View {
	case ViewAll:
		summaries, err = uc.ticketRepo.ListAll(ctx, *filter)
	case ViewFocus:
		summaries, err = uc.ticketRepo.ListFocus(ctx, query.AgentID, *filter)
	case ViewQueue:
		summaries, err = uc.ticketRepo.ListQueue(ctx, query.AgentID, *filter)
	default:
		return nil, errors.NewBadRequestError("view must be one of all, focus, queue")
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "view", query.View, "agent_id", query.AgentID, "error", err)
		return nil, err
	}

	return dto.ToTicketSummaryDTOs(summaries), nil
}

// buildFilter validates the raw filter values against the enum domains and
// the sentinels before any query runs.
func buildFilter(tag, status, priority *string) (*ticket.Filter, error) {
	f := &ticket.Filter{}

	if tag != nil {
		if *tag == "" {
			return nil, errors.NewBadRequestError("tag filter cannot be empty")
		}
		f.Tag = tag
	}

	if status != nil {
		if *status != ticket.FilterStatusNotClosed {
			if _, err := vo.NewStatus(*status); err != nil {
				return nil, errors.NewBadRequestError(err.Error())
			}
		}
		f.Status = status
	}

	if priority != nil {
		if *priority != ticket.FilterPriorityUntriaged {
			p, err := vo.NewPriority(*priority)
			if err != nil || p.IsUntriaged() {
				return nil, errors.NewBadRequestError("invalid priority filter")
			}
		}
		f.Priority = priority
	}

	return f, nil
}
