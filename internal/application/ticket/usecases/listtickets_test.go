package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	apperrors "helpdesk/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func TestListTicketsUseCase_Execute(t *testing.T) {
	summary := ticket.Summary{
		TicketID:   "t1",
		Serial:     7,
		Status:     "open",
		Title:      "Broken printer",
		AuthorID:   "u1",
		AuthorName: "Alice",
		Tags:       []string{"hardware"},
	}

	t.Run("all view", func(t *testing.T) {
		repo := &mockTicketRepository{
			ListAllFunc: func(ctx context.Context, f ticket.Filter) ([]ticket.Summary, error) {
				assert.Nil(t, f.Tag)
				return []ticket.Summary{summary}, nil
			},
		}
		uc := NewListTicketsUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background(), ListTicketsQuery{AgentID: "a1", View: ViewAll})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "t1", result[0].ID)
		assert.EqualValues(t, 7, result[0].Serial)
	})

	t.Run("focus view passes the agent", func(t *testing.T) {
		var gotAgent string
		repo := &mockTicketRepository{
			ListFocusFunc: func(ctx context.Context, agentID string, f ticket.Filter) ([]ticket.Summary, error) {
				gotAgent = agentID
				return nil, nil
			},
		}
		uc := NewListTicketsUseCase(repo, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListTicketsQuery{AgentID: "a1", View: ViewFocus})
		require.NoError(t, err)
		assert.Equal(t, "a1", gotAgent)
	})

	t.Run("queue view passes the agent", func(t *testing.T) {
		var gotAgent string
		repo := &mockTicketRepository{
			ListQueueFunc: func(ctx context.Context, agentID string, f ticket.Filter) ([]ticket.Summary, error) {
				gotAgent = agentID
				return nil, nil
			},
		}
		uc := NewListTicketsUseCase(repo, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListTicketsQuery{AgentID: "a1", View: ViewQueue})
		require.NoError(t, err)
		assert.Equal(t, "a1", gotAgent)
	})

	t.Run("unknown view is rejected", func(t *testing.T) {
		uc := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListTicketsQuery{AgentID: "a1", View: "mine"})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("filter values reach the repository", func(t *testing.T) {
		var gotFilter ticket.Filter
		repo := &mockTicketRepository{
			ListAllFunc: func(ctx context.Context, f ticket.Filter) ([]ticket.Summary, error) {
				gotFilter = f
				return nil, nil
			},
		}
		uc := NewListTicketsUseCase(repo, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListTicketsQuery{
			AgentID:  "a1",
			View:     ViewAll,
			Tag:      strPtr("billing"),
			Status:   strPtr(ticket.FilterStatusNotClosed),
			Priority: strPtr(ticket.FilterPriorityUntriaged),
		})
		require.NoError(t, err)
		require.NotNil(t, gotFilter.Tag)
		assert.Equal(t, "billing", *gotFilter.Tag)
		assert.Equal(t, ticket.FilterStatusNotClosed, *gotFilter.Status)
		assert.Equal(t, ticket.FilterPriorityUntriaged, *gotFilter.Priority)
	})

	t.Run("invalid filters are rejected before any query", func(t *testing.T) {
		queried := false
		repo := &mockTicketRepository{
			ListAllFunc: func(ctx context.Context, f ticket.Filter) ([]ticket.Summary, error) {
				queried = true
				return nil, nil
			},
		}
		uc := NewListTicketsUseCase(repo, &mockLogger{})

		cases := []struct {
			name  string
			query ListTicketsQuery
		}{
			{"empty tag", ListTicketsQuery{AgentID: "a1", View: ViewAll, Tag: strPtr("")}},
			{"unknown status", ListTicketsQuery{AgentID: "a1", View: ViewAll, Status: strPtr("resolved")}},
			{"unknown priority", ListTicketsQuery{AgentID: "a1", View: ViewAll, Priority: strPtr("critical")}},
			{"empty priority", ListTicketsQuery{AgentID: "a1", View: ViewAll, Priority: strPtr("")}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tc.query)
				require.Error(t, err)
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, 400, appErr.Code)
			})
		}
		assert.False(t, queried)
	})
}
