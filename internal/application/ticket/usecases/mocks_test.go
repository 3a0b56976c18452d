package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/queue"
	"helpdesk/internal/domain/skill"
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

type mockSkillRepository struct {
	SaveFunc                   func(ctx context.Context, s *skill.Skill) error
	DeleteFunc                 func(ctx context.Context, id string) error
	GetByIDFunc                func(ctx context.Context, id string) (*skill.Skill, error)
	ListFunc                   func(ctx context.Context) ([]*skill.Skill, error)
	ListSmartAssignEnabledFunc func(ctx context.Context) ([]*skill.Skill, error)
	AddAgentSkillFunc          func(ctx context.Context, agentID, skillID string) error
	RemoveAgentSkillFunc       func(ctx context.Context, agentID, skillID string) error
	ListByAgentFunc            func(ctx context.Context, agentID string) ([]*skill.Skill, error)
}

func (m *mockSkillRepository) Save(ctx context.Context, s *skill.Skill) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSkillRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSkillRepository) GetByID(ctx context.Context, id string) (*skill.Skill, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSkillRepository) List(ctx context.Context) ([]*skill.Skill, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockSkillRepository) ListSmartAssignEnabled(ctx context.Context) ([]*skill.Skill, error) {
	if m.ListSmartAssignEnabledFunc != nil {
		return m.ListSmartAssignEnabledFunc(ctx)
	}
	return nil, nil
}

func (m *mockSkillRepository) AddAgentSkill(ctx context.Context, agentID, skillID string) error {
	if m.AddAgentSkillFunc != nil {
		return m.AddAgentSkillFunc(ctx, agentID, skillID)
	}
	return nil
}

func (m *mockSkillRepository) RemoveAgentSkill(ctx context.Context, agentID, skillID string) error {
	if m.RemoveAgentSkillFunc != nil {
		return m.RemoveAgentSkillFunc(ctx, agentID, skillID)
	}
	return nil
}

func (m *mockSkillRepository) ListByAgent(ctx context.Context, agentID string) ([]*skill.Skill, error) {
	if m.ListByAgentFunc != nil {
		return m.ListByAgentFunc(ctx, agentID)
	}
	return nil, nil
}

type mockQueueRepository struct {
	SaveFunc                   func(ctx context.Context, q *queue.Queue) error
	DeleteFunc                 func(ctx context.Context, id string) error
	GetByIDFunc                func(ctx context.Context, id string) (*queue.Queue, error)
	ListFunc                   func(ctx context.Context) ([]*queue.Queue, error)
	ListSmartAssignEnabledFunc func(ctx context.Context) ([]*queue.Queue, error)
	AddAgentFunc               func(ctx context.Context, queueID, agentID string) error
	RemoveAgentFunc            func(ctx context.Context, queueID, agentID string) error
}

func (m *mockQueueRepository) Save(ctx context.Context, q *queue.Queue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, q)
	}
	return nil
}

func (m *mockQueueRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockQueueRepository) GetByID(ctx context.Context, id string) (*queue.Queue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockQueueRepository) List(ctx context.Context) ([]*queue.Queue, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockQueueRepository) ListSmartAssignEnabled(ctx context.Context) ([]*queue.Queue, error) {
	if m.ListSmartAssignEnabledFunc != nil {
		return m.ListSmartAssignEnabledFunc(ctx)
	}
	return nil, nil
}

func (m *mockQueueRepository) AddAgent(ctx context.Context, queueID, agentID string) error {
	if m.AddAgentFunc != nil {
		return m.AddAgentFunc(ctx, queueID, agentID)
	}
	return nil
}

func (m *mockQueueRepository) RemoveAgent(ctx context.Context, queueID, agentID string) error {
	if m.RemoveAgentFunc != nil {
		return m.RemoveAgentFunc(ctx, queueID, agentID)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)             {}
func (m *mockLogger) Info(msg string, args ...any)              {}
func (m *mockLogger) Warn(msg string, args ...any)              {}
func (m *mockLogger) Error(msg string, args ...any)             {}
func (m *mockLogger) With(args ...any) logger.Interface         { return m }
func (m *mockLogger) Named(name string) logger.Interface        { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any)   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any)   {}

// newTestTxManager backs the transaction manager with a throwaway sqlite
// handle; mocks ignore the transactional context.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}
