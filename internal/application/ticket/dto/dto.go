package dto

import (
	"helpdesk/internal/domain/skill"
	"helpdesk/internal/domain/ticket"
)

type TicketSummaryDTO struct {
	ID         string   `json:"id"`
	Serial     uint64   `json:"serial"`
	Status     string   `json:"status"`
	Priority   *string  `json:"priority"`
	Title      string   `json:"title"`
	AuthorID   string   `json:"author_id"`
	AuthorName string   `json:"author_name"`
	Tags       []string `json:"tags"`
}

type CustomerTicketSummaryDTO struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Title  string `json:"title"`
}

type MessageDTO struct {
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

type SkillRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TicketDetailDTO struct {
	ID         string        `json:"id"`
	Serial     uint64        `json:"serial"`
	Status     string        `json:"status"`
	Priority   *string       `json:"priority"`
	Title      string        `json:"title"`
	AuthorID   string        `json:"author_id"`
	AuthorName string        `json:"author_name"`
	Messages   []MessageDTO  `json:"messages"`
	Skills     []SkillRefDTO `json:"skills,omitempty"`
	Tags       []string      `json:"tags,omitempty"`
	QueueID    *string       `json:"queue_id,omitempty"`
}

type SkillDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SmartAssign bool   `json:"smart_assign"`
}

func ToTicketSummaryDTO(s ticket.Summary) TicketSummaryDTO {
	return TicketSummaryDTO{
		ID:         s.TicketID,
		Serial:     s.Serial,
		Status:     s.Status,
		Priority:   s.Priority,
		Title:      s.Title,
		AuthorID:   s.AuthorID,
		AuthorName: s.AuthorName,
		Tags:       s.Tags,
	}
}

func ToTicketSummaryDTOs(summaries []ticket.Summary) []TicketSummaryDTO {
	dtos := make([]TicketSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, ToTicketSummaryDTO(s))
	}
	return dtos
}

func ToCustomerTicketSummaryDTOs(summaries []ticket.CustomerSummary) []CustomerTicketSummaryDTO {
	dtos := make([]CustomerTicketSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, CustomerTicketSummaryDTO{
			ID:     s.TicketID,
			Status: s.Status,
			Title:  s.Title,
		})
	}
	return dtos
}

func ToTicketDetailDTO(d *ticket.Detail) *TicketDetailDTO {
	if d == nil {
		return nil
	}

	messages := make([]MessageDTO, 0, len(d.Messages))
	for _, m := range d.Messages {
		messages = append(messages, MessageDTO{
			AuthorID:   m.AuthorID,
			AuthorName: m.AuthorName,
			Content:    m.Content,
			Visibility: m.Visibility,
		})
	}

	skills := make([]SkillRefDTO, 0, len(d.Skills))
	for _, s := range d.Skills {
		skills = append(skills, SkillRefDTO{ID: s.ID, Name: s.Name})
	}

	return &TicketDetailDTO{
		ID:         d.TicketID,
		Serial:     d.Serial,
		Status:     d.Status,
		Priority:   d.Priority,
		Title:      d.Title,
		AuthorID:   d.AuthorID,
		AuthorName: d.AuthorName,
		Messages:   messages,
		Skills:     skills,
		Tags:       d.Tags,
		QueueID:    d.QueueID,
	}
}

func ToSkillDTOs(skills []*skill.Skill) []SkillDTO {
	dtos := make([]SkillDTO, 0, len(skills))
	for _, s := range skills {
		dtos = append(dtos, SkillDTO{
			ID:          s.ID(),
			Name:        s.Name(),
			Description: s.Description(),
			SmartAssign: s.SmartAssign(),
		})
	}
	return dtos
}
