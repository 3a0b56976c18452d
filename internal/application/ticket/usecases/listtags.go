package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

// ListTagsUseCase returns the distinct tag names in use, for filter
// dropdowns.
type ListTagsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTagsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context) ([]string, error) {
	tags, err := uc.ticketRepo.ListDistinctTags(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list ticket tags", "error", err)
		return nil, err
	}
	return tags, nil
}
