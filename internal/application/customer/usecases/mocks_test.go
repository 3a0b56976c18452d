package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/application/smartassign"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc               func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc              func(ctx context.Context, id string) (*ticket.Ticket, error)
	UpdateStatusPriorityFunc func(ctx context.Context, id string, status vo.Status, priority vo.Priority) error
	ReplaceSkillsFunc        func(ctx context.Context, id string, skillIDs []string) error
	ReplaceTagsFunc          func(ctx context.Context, id string, tagNames []string) error
	AssignQueueFunc          func(ctx context.Context, id string, queueID *string) error
	CreateMessageFunc        func(ctx context.Context, m *ticket.Message) error
	ListAllFunc              func(ctx context.Context, f ticket.Filter) ([]ticket.Summary, error)
	ListFocusFunc            func(ctx context.Context, agentID string, f ticket.Filter) ([]ticket.Summary, error)
	ListQueueFunc            func(ctx context.Context, agentID string, f ticket.Filter) ([]ticket.Summary, error)
	ListByAuthorFunc         func(ctx context.Context, authorID string) ([]ticket.Summary, error)
	ListByCustomerFunc       func(ctx context.Context, customerID string, status *string) ([]ticket.CustomerSummary, error)
	ListDistinctTagsFunc     func(ctx context.Context) ([]string, error)
	GetDetailFunc            func(ctx context.Context, id string) (*ticket.Detail, error)
	GetCustomerDetailFunc    func(ctx context.Context, id, customerID string) (*ticket.Detail, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) UpdateStatusPriority(ctx context.Context, id string, status vo.Status, priority vo.Priority) error {
	if m.UpdateStatusPriorityFunc != nil {
		return m.UpdateStatusPriorityFunc(ctx, id, status, priority)
	}
	return nil
}

func (m *mockTicketRepository) ReplaceSkills(ctx context.Context, id string, skillIDs []string) error {
	if m.ReplaceSkillsFunc != nil {
		return m.ReplaceSkillsFunc(ctx, id, skillIDs)
	}
	return nil
}

func (m *mockTicketRepository) ReplaceTags(ctx context.Context, id string, tagNames []string) error {
	if m.ReplaceTagsFunc != nil {
		return m.ReplaceTagsFunc(ctx, id, tagNames)
	}
	return nil
}

func (m *mockTicketRepository) AssignQueue(ctx context.Context, id string, queueID *string) error {
	if m.AssignQueueFunc != nil {
		return m.AssignQueueFunc(ctx, id, queueID)
	}
	return nil
}

func (m *mockTicketRepository) CreateMessage(ctx context.Context, msg *ticket.Message) error {
	if m.CreateMessageFunc != nil {
		return m.CreateMessageFunc(ctx, msg)
	}
	return nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context, f ticket.Filter) ([]ticket.Summary, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListFocus(ctx context.Context, agentID string, f ticket.Filter) ([]ticket.Summary, error) {
	if m.ListFocusFunc != nil {
		return m.ListFocusFunc(ctx, agentID, f)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListQueue(ctx context.Context, agentID string, f ticket.Filter) ([]ticket.Summary, error) {
	if m.ListQueueFunc != nil {
		return m.ListQueueFunc(ctx, agentID, f)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByAuthor(ctx context.Context, authorID string) ([]ticket.Summary, error) {
	if m.ListByAuthorFunc != nil {
		return m.ListByAuthorFunc(ctx, authorID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByCustomer(ctx context.Context, customerID string, status *string) ([]ticket.CustomerSummary, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID, status)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListDistinctTags(ctx context.Context) ([]string, error) {
	if m.ListDistinctTagsFunc != nil {
		return m.ListDistinctTagsFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetDetail(ctx context.Context, id string) (*ticket.Detail, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetCustomerDetail(ctx context.Context, id, customerID string) (*ticket.Detail, error) {
	if m.GetCustomerDetailFunc != nil {
		return m.GetCustomerDetailFunc(ctx, id, customerID)
	}
	return nil, nil
}

type mockSerialAllocator struct {
	NextFunc func(ctx context.Context) (uint64, error)
	serial   uint64
}

func (m *mockSerialAllocator) Next(ctx context.Context) (uint64, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	m.serial++
	return m.serial, nil
}

// stubAdvisor returns a fixed recommendation and closes done so tests can
// wait for the background dispatch.
type stubAdvisor struct {
	recommendation smartassign.Recommendation
	done           chan struct{}
}

func (s *stubAdvisor) SmartAssign(ctx context.Context, title, content string) smartassign.Recommendation {
	if s.done != nil {
		defer close(s.done)
	}
	return s.recommendation
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}
