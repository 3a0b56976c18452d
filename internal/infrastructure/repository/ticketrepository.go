package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

// TicketRepository persists tickets, messages and ticket associations, and
// implements the three listing views over them.
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(gormDB *gorm.DB) *TicketRepository {
	return &TicketRepository{db: gormDB}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := ticketToModel(t)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.TicketModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return ticketToDomain(&model)
}

func (r *TicketRepository) UpdateStatusPriority(ctx context.Context, id string, status vo.Status, priority vo.Priority) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":   status.String(),
			"priority": priorityToColumn(priority),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// RowsAffected is also zero when the new values equal the old ones,
		// so distinguish via an existence check.
		var count int64
		if err := tx.Model(&models.TicketModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check ticket existence: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("ticket not found")
		}
	}
	return nil
}

func (r *TicketRepository) ReplaceSkills(ctx context.Context, id string, skillIDs []string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketSkillModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear ticket skills: %w", err)
	}
	if len(skillIDs) == 0 {
		return nil
	}

	rows := make([]models.TicketSkillModel, 0, len(skillIDs))
	for _, skillID := range skillIDs {
		rows = append(rows, models.TicketSkillModel{TicketID: id, SkillID: skillID})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert ticket skills: %w", err)
	}
	return nil
}

func (r *TicketRepository) ReplaceTags(ctx context.Context, id string, tagNames []string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear ticket tags: %w", err)
	}
	if len(tagNames) == 0 {
		return nil
	}

	rows := make([]models.TicketTagModel, 0, len(tagNames))
	for _, name := range tagNames {
		rows = append(rows, models.TicketTagModel{
			ID:       uuid.NewString(),
			TicketID: id,
			Name:     name,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert ticket tags: %w", err)
	}
	return nil
}

func (r *TicketRepository) AssignQueue(ctx context.Context, id string, queueID *string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", id).Delete(&models.QueueTicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear queue assignment: %w", err)
	}
	if queueID == nil {
		return nil
	}
	row := models.QueueTicketModel{TicketID: id, QueueID: *queueID}
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to assign ticket to queue: %w", err)
	}
	return nil
}

func (r *TicketRepository) CreateMessage(ctx context.Context, m *ticket.Message) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.TicketMessageModel{
		ID:         m.ID(),
		Serial:     m.Serial(),
		TicketID:   m.TicketID(),
		AuthorID:   m.AuthorID(),
		Visibility: m.Visibility().String(),
		Content:    m.Content(),
		CreatedAt:  m.CreatedAt().UnixMilli(),
	}
	if err := tx.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// summaryRow is the scan target shared by the listing views.
type summaryRow struct {
	ID         string
	Serial     uint64
	Status     string
	Priority   *string
	Title      string
	AuthorID   string
	AuthorName string
}

const summaryColumns = "tickets.id, tickets.serial, tickets.status, tickets.priority, tickets.title, tickets.author_id, users.name AS author_name"

func (r *TicketRepository) ListAll(ctx context.Context, f ticket.Filter) ([]ticket.Summary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Table("tickets").
		Select(summaryColumns).
		Joins("INNER JOIN users ON users.id = tickets.author_id")
	query = applyFilter(query, f)

	var rows []summaryRow
	if err := query.Order("tickets.serial ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.toSummaries(ctx, rows)
}

// ListFocus returns tickets whose required-skill set is non-empty and fully
// covered by the agent's skill set: every ticket skill must be one of the
// agent's skills, and tickets without skills never match.
func (r *TicketRepository) ListFocus(ctx context.Context, agentID string, f ticket.Filter) ([]ticket.Summary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	agentSkills := tx.Table("agent_skills").
		Select("agent_skills.skill_id").
		Where("agent_skills.agent_id = ?", agentID)
	matchedCount := tx.Table("ticket_skills AS ts").
		Select("COUNT(*)").
		Where("ts.ticket_id = tickets.id").
		Where("ts.skill_id IN (?)", agentSkills)

	query := tx.Table("tickets").
		Select(summaryColumns).
		Joins("INNER JOIN users ON users.id = tickets.author_id").
		Joins("LEFT JOIN ticket_skills ON ticket_skills.ticket_id = tickets.id")
	query = applyFilter(query, f)
	query = query.
		Group("tickets.id, tickets.serial, tickets.status, tickets.priority, tickets.title, tickets.author_id, users.name").
		Having("COUNT(ticket_skills.skill_id) > 0").
		Having("COUNT(ticket_skills.skill_id) = (?)", matchedCount)

	var rows []summaryRow
	if err := query.Order("tickets.serial ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list focus tickets: %w", err)
	}
	return r.toSummaries(ctx, rows)
}

// ListQueue returns tickets routed into a queue the agent is a member of.
func (r *TicketRepository) ListQueue(ctx context.Context, agentID string, f ticket.Filter) ([]ticket.Summary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Table("tickets").
		Select(summaryColumns).
		Joins("INNER JOIN users ON users.id = tickets.author_id").
		Joins("INNER JOIN queue_tickets ON queue_tickets.ticket_id = tickets.id").
		Joins("INNER JOIN queue_agents ON queue_agents.queue_id = queue_tickets.queue_id AND queue_agents.agent_id = ?", agentID)
	query = applyFilter(query, f)

	var rows []summaryRow
	if err := query.Order("tickets.serial ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list queue tickets: %w", err)
	}
	return r.toSummaries(ctx, rows)
}

func (r *TicketRepository) ListByAuthor(ctx context.Context, authorID string) ([]ticket.Summary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Table("tickets").
		Select(summaryColumns).
		Joins("INNER JOIN users ON users.id = tickets.author_id").
		Where("tickets.author_id = ?", authorID)

	var rows []summaryRow
	// History sidebars show newest first.
	if err := query.Order("tickets.serial DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by author: %w", err)
	}
	return r.toSummaries(ctx, rows)
}

func (r *TicketRepository) ListByCustomer(ctx context.Context, customerID string, status *string) ([]ticket.CustomerSummary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Table("tickets").
		Select("tickets.id, tickets.status, tickets.title, tickets.author_id, users.name AS author_name").
		Joins("INNER JOIN users ON users.id = tickets.author_id").
		Where("tickets.author_id = ?", customerID)
	if status != nil {
		if *status == ticket.FilterStatusNotClosed {
			query = query.Where("tickets.status <> ?", vo.StatusClosed.String())
		} else {
			query = query.Where("tickets.status = ?", *status)
		}
	}

	var rows []struct {
		ID         string
		Status     string
		Title      string
		AuthorID   string
		AuthorName string
	}
	if err := query.Order("tickets.serial ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customer tickets: %w", err)
	}

	summaries := make([]ticket.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, ticket.CustomerSummary{
			TicketID:   row.ID,
			Status:     row.Status,
			Title:      row.Title,
			AuthorID:   row.AuthorID,
			AuthorName: row.AuthorName,
		})
	}
	return summaries, nil
}

func (r *TicketRepository) ListDistinctTags(ctx context.Context) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var names []string
	if err := tx.Model(&models.TicketTagModel{}).
		Distinct("name").
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return names, nil
}

func (r *TicketRepository) GetDetail(ctx context.Context, id string) (*ticket.Detail, error) {
	return r.getDetail(ctx, id, nil)
}

func (r *TicketRepository) GetCustomerDetail(ctx context.Context, id, customerID string) (*ticket.Detail, error) {
	return r.getDetail(ctx, id, &customerID)
}

// getDetail loads the full ticket view. When customerID is set the ticket
// must be authored by that customer and only public messages are returned;
// a ticket owned by someone else reads as not found so existence of other
// customers' tickets never leaks.
func (r *TicketRepository) getDetail(ctx context.Context, id string, customerID *string) (*ticket.Detail, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	headQuery := tx.Table("tickets").
		Select(summaryColumns).
		Joins("INNER JOIN users ON users.id = tickets.author_id").
		Where("tickets.id = ?", id)
	if customerID != nil {
		headQuery = headQuery.Where("tickets.author_id = ?", *customerID)
	}

	var head summaryRow
	if err := headQuery.First(&head).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	messageQuery := tx.Table("ticket_messages").
		Select("ticket_messages.author_id, users.name AS author_name, ticket_messages.content, ticket_messages.visibility").
		Joins("INNER JOIN users ON users.id = ticket_messages.author_id").
		Where("ticket_messages.ticket_id = ?", id)
	if customerID != nil {
		messageQuery = messageQuery.Where("ticket_messages.visibility = ?", vo.VisibilityPublic.String())
	}

	var messages []ticket.MessageView
	if err := messageQuery.Order("ticket_messages.serial ASC").Scan(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	detail := &ticket.Detail{
		TicketID:   head.ID,
		Serial:     head.Serial,
		Status:     head.Status,
		Priority:   head.Priority,
		Title:      head.Title,
		AuthorID:   head.AuthorID,
		AuthorName: head.AuthorName,
		Messages:   messages,
		Skills:     []ticket.SkillRef{},
		Tags:       []string{},
	}
	if detail.Messages == nil {
		detail.Messages = []ticket.MessageView{}
	}
	if customerID != nil {
		return detail, nil
	}

	if err := tx.Table("ticket_skills").
		Select("skills.id, skills.name").
		Joins("INNER JOIN skills ON skills.id = ticket_skills.skill_id").
		Where("ticket_skills.ticket_id = ?", id).
		Order("skills.name ASC").
		Scan(&detail.Skills).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket skills: %w", err)
	}

	if err := tx.Model(&models.TicketTagModel{}).
		Where("ticket_id = ?", id).
		Order("name ASC").
		Pluck("name", &detail.Tags).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket tags: %w", err)
	}

	var queueRow models.QueueTicketModel
	err := tx.Where("ticket_id = ?", id).First(&queueRow).Error
	switch {
	case err == nil:
		detail.QueueID = &queueRow.QueueID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// not routed into any queue
	default:
		return nil, fmt.Errorf("failed to load queue assignment: %w", err)
	}

	return detail, nil
}

func applyFilter(query *gorm.DB, f ticket.Filter) *gorm.DB {
	if f.Tag != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM ticket_tags WHERE ticket_tags.ticket_id = tickets.id AND ticket_tags.name = ?)",
			*f.Tag,
		)
	}
	if f.Status != nil {
		if *f.Status == ticket.FilterStatusNotClosed {
			query = query.Where("tickets.status <> ?", vo.StatusClosed.String())
		} else {
			query = query.Where("tickets.status = ?", *f.Status)
		}
	}
	if f.Priority != nil {
		if *f.Priority == ticket.FilterPriorityUntriaged {
			query = query.Where("tickets.priority IS NULL")
		} else {
			query = query.Where("tickets.priority = ?", *f.Priority)
		}
	}
	return query
}

// toSummaries converts scanned rows and batch-loads each ticket's tag set.
func (r *TicketRepository) toSummaries(ctx context.Context, rows []summaryRow) ([]ticket.Summary, error) {
	summaries := make([]ticket.Summary, 0, len(rows))
	if len(rows) == 0 {
		return summaries, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	var tagRows []models.TicketTagModel
	if err := tx.Where("ticket_id IN ?", ids).Order("name ASC").Find(&tagRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	tagsByTicket := make(map[string][]string, len(rows))
	for _, tagRow := range tagRows {
		tagsByTicket[tagRow.TicketID] = append(tagsByTicket[tagRow.TicketID], tagRow.Name)
	}

	for _, row := range rows {
		tags := tagsByTicket[row.ID]
		if tags == nil {
			tags = []string{}
		}
		summaries = append(summaries, ticket.Summary{
			TicketID:   row.ID,
			Serial:     row.Serial,
			Status:     row.Status,
			Priority:   row.Priority,
			Title:      row.Title,
			AuthorID:   row.AuthorID,
			AuthorName: row.AuthorName,
			Tags:       tags,
		})
	}
	return summaries, nil
}

func ticketToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:        t.ID(),
		Serial:    t.Serial(),
		Title:     t.Title(),
		AuthorID:  t.AuthorID(),
		Status:    t.Status().String(),
		Priority:  priorityToColumn(t.Priority()),
		CreatedAt: t.CreatedAt().UnixMilli(),
	}
}

func ticketToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority := vo.PriorityUntriaged
	if model.Priority != nil {
		priority = vo.Priority(*model.Priority)
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.Serial,
		model.Title,
		model.AuthorID,
		vo.Status(model.Status),
		priority,
		time.UnixMilli(model.CreatedAt),
	)
}

// priorityToColumn maps the untriaged priority to NULL.
func priorityToColumn(p vo.Priority) *string {
	if p.IsUntriaged() {
		return nil
	}
	s := p.String()
	return &s
}
