package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/queue"
	"helpdesk/internal/domain/skill"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

type mockUserRepository struct {
	GetByIDFunc    func(ctx context.Context, id string) (*user.User, error)
	ListFunc       func(ctx context.Context) ([]*user.User, error)
	ListAgentsFunc func(ctx context.Context) ([]*user.User, error)
	SaveFunc       func(ctx context.Context, u *user.User) error
	UpdateRoleFunc func(ctx context.Context, id string, role user.Role) error
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListAgents(ctx context.Context) ([]*user.User, error) {
	if m.ListAgentsFunc != nil {
		return m.ListAgentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, id string, role user.Role) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, id, role)
	}
	return nil
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
