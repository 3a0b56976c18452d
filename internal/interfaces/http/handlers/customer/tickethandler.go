package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/customer/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type AddMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	listMyTicketsUC usecases.ListMyTicketsExecutor
	getMyTicketUC   usecases.GetMyTicketExecutor
	addMessageUC    usecases.AddMessageExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listMyTicketsUC usecases.ListMyTicketsExecutor,
	getMyTicketUC usecases.GetMyTicketExecutor,
	addMessageUC usecases.AddMessageExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		listMyTicketsUC: listMyTicketsUC,
		getMyTicketUC:   getMyTicketUC,
		addMessageUC:    addMessageUC,
		logger:          logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTicketCommand{
		CustomerID: middleware.CurrentUserID(c),
		Title:      req.Title,
		Content:    req.Content,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListMyTickets handles GET /tickets
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	query := usecases.ListMyTicketsQuery{CustomerID: middleware.CurrentUserID(c)}
	if v, ok := c.GetQuery("status"); ok {
		query.Status = &v
	}

	result, err := h.listMyTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetMyTicket handles GET /tickets/:id
func (h *TicketHandler) GetMyTicket(c *gin.Context) {
	query := usecases.GetMyTicketQuery{
		CustomerID: middleware.CurrentUserID(c),
		TicketID:   c.Param("id"),
	}

	result, err := h.getMyTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddMessage handles POST /tickets/:id/messages
func (h *TicketHandler) AddMessage(c *gin.Context) {
	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddMessageCommand{
		CustomerID: middleware.CurrentUserID(c),
		TicketID:   c.Param("id"),
		Content:    req.Content,
	}

	if err := h.addMessageUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "Message created successfully")
}
