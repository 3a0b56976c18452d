package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	apperrors "helpdesk/internal/shared/errors"
)

func TestListMyTicketsUseCase_Execute(t *testing.T) {
	t.Run("lists the caller's tickets", func(t *testing.T) {
		var gotCustomer string
		repo := &mockTicketRepository{
			ListByCustomerFunc: func(ctx context.Context, customerID string, status *string) ([]ticket.CustomerSummary, error) {
				gotCustomer = customerID
				return []ticket.CustomerSummary{
					{TicketID: "t1", Status: "open", Title: "Mine"},
				}, nil
			},
		}
		uc := NewListMyTicketsUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background(), ListMyTicketsQuery{CustomerID: "c1"})
		require.NoError(t, err)
		assert.Equal(t, "c1", gotCustomer)
		require.Len(t, result, 1)
		assert.Equal(t, "t1", result[0].ID)
		assert.Equal(t, "open", result[0].Status)
	})

	t.Run("passes the status filter through", func(t *testing.T) {
		var gotStatus *string
		repo := &mockTicketRepository{
			ListByCustomerFunc: func(ctx context.Context, customerID string, status *string) ([]ticket.CustomerSummary, error) {
				gotStatus = status
				return nil, nil
			},
		}
		uc := NewListMyTicketsUseCase(repo, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListMyTicketsQuery{
			CustomerID: "c1",
			Status:     strPtr(ticket.FilterStatusNotClosed),
		})
		require.NoError(t, err)
		require.NotNil(t, gotStatus)
		assert.Equal(t, ticket.FilterStatusNotClosed, *gotStatus)
	})

	t.Run("unknown status is rejected before the query", func(t *testing.T) {
		queried := false
		repo := &mockTicketRepository{
			ListByCustomerFunc: func(ctx context.Context, customerID string, status *string) ([]ticket.CustomerSummary, error) {
				queried = true
				return nil, nil
			},
		}
		uc := NewListMyTicketsUseCase(repo, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListMyTicketsQuery{
			CustomerID: "c1",
			Status:     strPtr("resolved"),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.False(t, queried)
	})
}

func TestGetMyTicketUseCase_Execute(t *testing.T) {
	t.Run("returns the customer view", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetCustomerDetailFunc: func(ctx context.Context, id, customerID string) (*ticket.Detail, error) {
				assert.Equal(t, "t1", id)
				assert.Equal(t, "c1", customerID)
				return &ticket.Detail{
					TicketID: "t1",
					Status:   "open",
					Title:    "Mine",
					Messages: []ticket.MessageView{{AuthorID: "c1", Content: "hi", Visibility: "public"}},
					Skills:   []ticket.SkillRef{},
					Tags:     []string{},
				}, nil
			},
		}
		uc := NewGetMyTicketUseCase(repo, &mockLogger{})

		detail, err := uc.Execute(context.Background(), GetMyTicketQuery{CustomerID: "c1", TicketID: "t1"})
		require.NoError(t, err)
		assert.Equal(t, "t1", detail.ID)
		require.Len(t, detail.Messages, 1)
		assert.Empty(t, detail.Skills)
		assert.Nil(t, detail.QueueID)
	})

	t.Run("not found passes through", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetCustomerDetailFunc: func(ctx context.Context, id, customerID string) (*ticket.Detail, error) {
				return nil, apperrors.NewNotFoundError("ticket not found")
			},
		}
		uc := NewGetMyTicketUseCase(repo, &mockLogger{})

		_, err := uc.Execute(context.Background(), GetMyTicketQuery{CustomerID: "c2", TicketID: "t1"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
