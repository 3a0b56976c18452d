package dto

import (
	"helpdesk/internal/domain/queue"
	"helpdesk/internal/domain/skill"
	"helpdesk/internal/domain/user"
)

type UserDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type SkillDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SmartAssign bool   `json:"smart_assign"`
}

type QueueDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SmartAssign bool   `json:"smart_assign"`
}

// AgentDTO is a user row with the skills the agent holds.
type AgentDTO struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Role   string     `json:"role"`
	Skills []SkillDTO `json:"skills"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:   u.ID(),
		Name: u.Name(),
		Role: u.Role().String(),
	}
}

func ToUserDTOs(users []*user.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, ToUserDTO(u))
	}
	return dtos
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		SmartAssign: s.SmartAssign(),
	}
}

func ToSkillDTOs(skills []*skill.Skill) []SkillDTO {
	dtos := make([]SkillDTO, 0, len(skills))
	for _, s := range skills {
		dtos = append(dtos, ToSkillDTO(s))
	}
	return dtos
}

func ToQueueDTO(q *queue.Queue) QueueDTO {
	return QueueDTO{
		ID:          q.ID(),
		Name:        q.Name(),
		Description: q.Description(),
		SmartAssign: q.SmartAssign(),
	}
}

func ToQueueDTOs(queues []*queue.Queue) []QueueDTO {
	dtos := make([]QueueDTO, 0, len(queues))
	for _, q := range queues {
		dtos = append(dtos, ToQueueDTO(q))
	}
	return dtos
}
