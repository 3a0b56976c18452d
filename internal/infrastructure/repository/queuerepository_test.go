package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/queue"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

func newQueue(t *testing.T, name string, smartAssign bool) *queue.Queue {
	t.Helper()

	q, err := queue.NewQueue(uuid.NewString(), name, "", smartAssign)
	require.NoError(t, err)
	return q
}

func TestQueueRepository_Save(t *testing.T) {
	database := setupTestDB(t)
	repo := NewQueueRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newQueue(t, "support-l1", true)))

	t.Run("duplicate name conflicts", func(t *testing.T) {
		err := repo.Save(ctx, newQueue(t, "support-l1", false))
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestQueueRepository_Delete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewQueueRepository(database)
	ctx := context.Background()

	q := newQueue(t, "support-l1", false)
	require.NoError(t, repo.Save(ctx, q))

	agentID := seedUser(t, database, "Bob", user.RoleAgent)
	customerID := seedUser(t, database, "Alice", user.RoleCustomer)
	tk := seedTicket(t, database, customerID, "Routed")

	require.NoError(t, repo.AddAgent(ctx, q.ID(), agentID))
	require.NoError(t, NewTicketRepository(database).AssignQueue(ctx, tk.ID(), strPtr(q.ID())))

	require.NoError(t, repo.Delete(ctx, q.ID()))

	t.Run("membership and routing rows are cascaded", func(t *testing.T) {
		var agentRows, ticketRows int64
		require.NoError(t, database.Model(&models.QueueAgentModel{}).Where("queue_id = ?", q.ID()).Count(&agentRows).Error)
		require.NoError(t, database.Model(&models.QueueTicketModel{}).Where("queue_id = ?", q.ID()).Count(&ticketRows).Error)
		assert.Zero(t, agentRows)
		assert.Zero(t, ticketRows)
	})

	t.Run("the routed ticket reads as unrouted", func(t *testing.T) {
		detail, err := NewTicketRepository(database).GetDetail(ctx, tk.ID())
		require.NoError(t, err)
		assert.Nil(t, detail.QueueID)
	})

	t.Run("missing queue is not found", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.NewString())
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestQueueRepository_Agents(t *testing.T) {
	database := setupTestDB(t)
	repo := NewQueueRepository(database)
	ctx := context.Background()

	agentID := seedUser(t, database, "Bob", user.RoleAgent)
	q := newQueue(t, "support-l1", false)
	require.NoError(t, repo.Save(ctx, q))

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, repo.AddAgent(ctx, q.ID(), agentID))
		require.NoError(t, repo.AddAgent(ctx, q.ID(), agentID))

		var n int64
		require.NoError(t, database.Model(&models.QueueAgentModel{}).Where("queue_id = ?", q.ID()).Count(&n).Error)
		assert.EqualValues(t, 1, n)
	})

	t.Run("remove tolerates absent memberships", func(t *testing.T) {
		require.NoError(t, repo.RemoveAgent(ctx, q.ID(), agentID))
		require.NoError(t, repo.RemoveAgent(ctx, q.ID(), agentID))

		var n int64
		require.NoError(t, database.Model(&models.QueueAgentModel{}).Where("queue_id = ?", q.ID()).Count(&n).Error)
		assert.Zero(t, n)
	})
}

func TestQueueRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewQueueRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newQueue(t, "support-l2", false)))
	require.NoError(t, repo.Save(ctx, newQueue(t, "support-l1", true)))

	t.Run("ordered by name", func(t *testing.T) {
		queues, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, queues, 2)
		assert.Equal(t, "support-l1", queues[0].Name())
		assert.Equal(t, "support-l2", queues[1].Name())
	})

	t.Run("smart assign subset", func(t *testing.T) {
		queues, err := repo.ListSmartAssignEnabled(ctx)
		require.NoError(t, err)
		require.Len(t, queues, 1)
		assert.Equal(t, "support-l1", queues[0].Name())
	})
}
