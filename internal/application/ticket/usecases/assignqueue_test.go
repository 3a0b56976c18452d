package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/queue"
	"helpdesk/internal/domain/ticket"
	apperrors "helpdesk/internal/shared/errors"
)

func TestAssignTicketToQueueUseCase_Execute(t *testing.T) {
	existingTicket := func(ctx context.Context, id string) (*ticket.Ticket, error) {
		tk, err := ticket.NewTicket(id, "Existing", "u1")
		require.NoError(t, err)
		return tk, nil
	}
	existingQueue := func(ctx context.Context, id string) (*queue.Queue, error) {
		return queue.NewQueue(id, "support-l1", "", false)
	}

	t.Run("routes a ticket into a queue", func(t *testing.T) {
		var gotQueue *string
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: existingTicket,
			AssignQueueFunc: func(ctx context.Context, id string, queueID *string) error {
				gotQueue = queueID
				return nil
			},
		}
		queueRepo := &mockQueueRepository{GetByIDFunc: existingQueue}
		uc := NewAssignTicketToQueueUseCase(ticketRepo, queueRepo, newTestTxManager(t), &mockLogger{})

		err := uc.Execute(context.Background(), AssignTicketToQueueCommand{TicketID: "t1", QueueID: strPtr("q1")})
		require.NoError(t, err)
		require.NotNil(t, gotQueue)
		assert.Equal(t, "q1", *gotQueue)
	})

	t.Run("nil queue clears the routing without a queue lookup", func(t *testing.T) {
		queueLookedUp := false
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: existingTicket,
			AssignQueueFunc: func(ctx context.Context, id string, queueID *string) error {
				assert.Nil(t, queueID)
				return nil
			},
		}
		queueRepo := &mockQueueRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*queue.Queue, error) {
				queueLookedUp = true
				return existingQueue(ctx, id)
			},
		}
		uc := NewAssignTicketToQueueUseCase(ticketRepo, queueRepo, newTestTxManager(t), &mockLogger{})

		err := uc.Execute(context.Background(), AssignTicketToQueueCommand{TicketID: "t1"})
		require.NoError(t, err)
		assert.False(t, queueLookedUp)
	})

	t.Run("missing ticket is not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
				return nil, apperrors.NewNotFoundError("ticket not found")
			},
		}
		uc := NewAssignTicketToQueueUseCase(ticketRepo, &mockQueueRepository{}, newTestTxManager(t), &mockLogger{})

		err := uc.Execute(context.Background(), AssignTicketToQueueCommand{TicketID: "missing", QueueID: strPtr("q1")})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("missing queue is not found", func(t *testing.T) {
		assigned := false
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: existingTicket,
			AssignQueueFunc: func(ctx context.Context, id string, queueID *string) error {
				assigned = true
				return nil
			},
		}
		queueRepo := &mockQueueRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*queue.Queue, error) {
				return nil, apperrors.NewNotFoundError("queue not found")
			},
		}
		uc := NewAssignTicketToQueueUseCase(ticketRepo, queueRepo, newTestTxManager(t), &mockLogger{})

		err := uc.Execute(context.Background(), AssignTicketToQueueCommand{TicketID: "t1", QueueID: strPtr("missing")})
		assert.True(t, apperrors.IsNotFoundError(err))
		assert.False(t, assigned)
	})
}
