// Package models defines the gorm persistence models. Relationships are
// managed by application business logic inside transactions; there are no
// database-level foreign key constraints or gorm associations.
package models

type UserModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:200;not null"`
	Role      string `gorm:"size:20;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (UserModel) TableName() string { return "users" }

type TicketModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	Serial    uint64  `gorm:"uniqueIndex;not null"`
	Title     string  `gorm:"size:200;not null"`
	AuthorID  string  `gorm:"size:36;not null;index"`
	Status    string  `gorm:"size:20;not null;index"`
	Priority  *string `gorm:"size:20;index"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
}

func (TicketModel) TableName() string { return "tickets" }

type TicketMessageModel struct {
	ID         string `gorm:"primaryKey;size:36"`
	Serial     string `gorm:"size:36;not null;index"`
	TicketID   string `gorm:"size:36;not null;index"`
	AuthorID   string `gorm:"size:36;not null;index"`
	Visibility string `gorm:"size:20;not null"`
	Content    string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketMessageModel) TableName() string { return "ticket_messages" }

type TicketTagModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	TicketID  string `gorm:"size:36;not null;uniqueIndex:idx_ticket_tag"`
	Name      string `gorm:"size:100;not null;uniqueIndex:idx_ticket_tag;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketTagModel) TableName() string { return "ticket_tags" }

type SkillModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	SmartAssign bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (SkillModel) TableName() string { return "skills" }

type QueueModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	SmartAssign bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (QueueModel) TableName() string { return "queues" }

type AgentSkillModel struct {
	ID        uint   `gorm:"primaryKey"`
	AgentID   string `gorm:"size:36;not null;uniqueIndex:idx_agent_skill"`
	SkillID   string `gorm:"size:36;not null;uniqueIndex:idx_agent_skill;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AgentSkillModel) TableName() string { return "agent_skills" }

type TicketSkillModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  string `gorm:"size:36;not null;uniqueIndex:idx_ticket_skill"`
	SkillID   string `gorm:"size:36;not null;uniqueIndex:idx_ticket_skill;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketSkillModel) TableName() string { return "ticket_skills" }

type QueueAgentModel struct {
	ID        uint   `gorm:"primaryKey"`
	QueueID   string `gorm:"size:36;not null;uniqueIndex:idx_queue_agent"`
	AgentID   string `gorm:"size:36;not null;uniqueIndex:idx_queue_agent;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (QueueAgentModel) TableName() string { return "queue_agents" }

// QueueTicketModel routes a ticket into a queue. The unique index on
// TicketID enforces the at-most-one-queue invariant.
type QueueTicketModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  string `gorm:"size:36;not null;uniqueIndex"`
	QueueID   string `gorm:"size:36;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (QueueTicketModel) TableName() string { return "queue_tickets" }
