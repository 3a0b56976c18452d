package agent

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	listTicketsUC       usecases.ListTicketsExecutor
	getTicketUC         usecases.GetTicketExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	addMessageUC        usecases.AddMessageExecutor
	assignQueueUC       usecases.AssignTicketToQueueExecutor
	listAuthorTicketsUC usecases.ListAuthorTicketsExecutor
	listTagsUC          usecases.ListTagsExecutor
	listSkillsUC        usecases.ListSkillsExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	addMessageUC usecases.AddMessageExecutor,
	assignQueueUC usecases.AssignTicketToQueueExecutor,
	listAuthorTicketsUC usecases.ListAuthorTicketsExecutor,
	listTagsUC usecases.ListTagsExecutor,
	listSkillsUC usecases.ListSkillsExecutor,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:       listTicketsUC,
		getTicketUC:         getTicketUC,
		updateTicketUC:      updateTicketUC,
		addMessageUC:        addMessageUC,
		assignQueueUC:       assignQueueUC,
		listAuthorTicketsUC: listAuthorTicketsUC,
		listTagsUC:          listTagsUC,
		listSkillsUC:        listSkillsUC,
		logger:              logger.NewLogger(),
	}
}

// ListTickets handles GET /agent/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	query := usecases.ListTicketsQuery{
		AgentID:  middleware.CurrentUserID(c),
		View:     req.View,
		Tag:      req.Tag,
		Status:   req.Status,
		Priority: req.Priority,
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /agent/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	query := usecases.GetTicketQuery{TicketID: c.Param("id")}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /agent/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID: c.Param("id"),
		Status:   req.Status,
		Priority: req.Priority,
		SkillIDs: req.SkillIDs,
		Tags:     req.Tags,
	}

	if err := h.updateTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", nil)
}

// AddMessage handles POST /agent/tickets/:id/messages
func (h *TicketHandler) AddMessage(c *gin.Context) {
	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddMessageCommand{
		TicketID:   c.Param("id"),
		AuthorID:   middleware.CurrentUserID(c),
		Content:    req.Content,
		Visibility: req.Visibility,
	}

	if err := h.addMessageUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "Message created successfully")
}

// AssignQueue handles PUT /agent/tickets/:id/queue
func (h *TicketHandler) AssignQueue(c *gin.Context) {
	var req AssignQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignTicketToQueueCommand{
		TicketID: c.Param("id"),
		QueueID:  req.QueueID,
	}

	if err := h.assignQueueUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket queue updated successfully", nil)
}

// ListAuthorTickets handles GET /agent/authors/:id/tickets
func (h *TicketHandler) ListAuthorTickets(c *gin.Context) {
	query := usecases.ListAuthorTicketsQuery{AuthorID: c.Param("id")}

	result, err := h.listAuthorTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTags handles GET /agent/tags
func (h *TicketHandler) ListTags(c *gin.Context) {
	result, err := h.listTagsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListSkills handles GET /agent/skills
func (h *TicketHandler) ListSkills(c *gin.Context) {
	result, err := h.listSkillsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
