package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/admin/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SmartAssign bool   `json:"smart_assign"`
}

type CreateQueueRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SmartAssign bool   `json:"smart_assign"`
}

type AdminHandler struct {
	listUsersUC            usecases.ListUsersExecutor
	updateUserRoleUC       usecases.UpdateUserRoleExecutor
	listAgentsUC           usecases.ListAgentsExecutor
	createSkillUC          usecases.CreateSkillExecutor
	deleteSkillUC          usecases.DeleteSkillExecutor
	addAgentSkillUC        usecases.AddAgentSkillExecutor
	removeAgentSkillUC     usecases.RemoveAgentSkillExecutor
	createQueueUC          usecases.CreateQueueExecutor
	deleteQueueUC          usecases.DeleteQueueExecutor
	listQueuesUC           usecases.ListQueuesExecutor
	assignAgentToQueueUC   usecases.AssignAgentToQueueExecutor
	removeAgentFromQueueUC usecases.RemoveAgentFromQueueExecutor
	logger                 logger.Interface
}

func NewAdminHandler(
	listUsersUC usecases.ListUsersExecutor,
	updateUserRoleUC usecases.UpdateUserRoleExecutor,
	listAgentsUC usecases.ListAgentsExecutor,
	createSkillUC usecases.CreateSkillExecutor,
	deleteSkillUC usecases.DeleteSkillExecutor,
	addAgentSkillUC usecases.AddAgentSkillExecutor,
	removeAgentSkillUC usecases.RemoveAgentSkillExecutor,
	createQueueUC usecases.CreateQueueExecutor,
	deleteQueueUC usecases.DeleteQueueExecutor,
	listQueuesUC usecases.ListQueuesExecutor,
	assignAgentToQueueUC usecases.AssignAgentToQueueExecutor,
	removeAgentFromQueueUC usecases.RemoveAgentFromQueueExecutor,
) *AdminHandler {
	return &AdminHandler{
		listUsersUC:            listUsersUC,
		updateUserRoleUC:       updateUserRoleUC,
		listAgentsUC:           listAgentsUC,
		createSkillUC:          createSkillUC,
		deleteSkillUC:          deleteSkillUC,
		addAgentSkillUC:        addAgentSkillUC,
		removeAgentSkillUC:     removeAgentSkillUC,
		createQueueUC:          createQueueUC,
		deleteQueueUC:          deleteQueueUC,
		listQueuesUC:           listQueuesUC,
		assignAgentToQueueUC:   assignAgentToQueueUC,
		removeAgentFromQueueUC: removeAgentFromQueueUC,
		logger:                 logger.NewLogger(),
	}
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateUserRole handles PATCH /admin/users/:id/role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateUserRoleCommand{
		UserID: c.Param("id"),
		Role:   req.Role,
	}
	if err := h.updateUserRoleUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User role updated successfully", nil)
}

// ListAgents handles GET /admin/agents
func (h *AdminHandler) ListAgents(c *gin.Context) {
	result, err := h.listAgentsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateSkill handles POST /admin/skills
func (h *AdminHandler) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateSkillCommand{
		Name:        req.Name,
		Description: req.Description,
		SmartAssign: req.SmartAssign,
	}
	result, err := h.createSkillUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Skill created successfully")
}

// DeleteSkill handles DELETE /admin/skills/:id
func (h *AdminHandler) DeleteSkill(c *gin.Context) {
	cmd := usecases.DeleteSkillCommand{SkillID: c.Param("id")}
	if err := h.deleteSkillUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Skill deleted successfully", nil)
}

// AddAgentSkill handles POST /admin/agents/:id/skills/:skillId
func (h *AdminHandler) AddAgentSkill(c *gin.Context) {
	cmd := usecases.AgentSkillCommand{
		AgentID: c.Param("id"),
		SkillID: c.Param("skillId"),
	}
	if err := h.addAgentSkillUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Agent skill added successfully", nil)
}

// RemoveAgentSkill handles DELETE /admin/agents/:id/skills/:skillId
func (h *AdminHandler) RemoveAgentSkill(c *gin.Context) {
	cmd := usecases.AgentSkillCommand{
		AgentID: c.Param("id"),
		SkillID: c.Param("skillId"),
	}
	if err := h.removeAgentSkillUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Agent skill removed successfully", nil)
}

// CreateQueue handles POST /admin/queues
func (h *AdminHandler) CreateQueue(c *gin.Context) {
	var req CreateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateQueueCommand{
		Name:        req.Name,
		Description: req.Description,
		SmartAssign: req.SmartAssign,
	}
	result, err := h.createQueueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Queue created successfully")
}

// DeleteQueue handles DELETE /admin/queues/:id
func (h *AdminHandler) DeleteQueue(c *gin.Context) {
	cmd := usecases.DeleteQueueCommand{QueueID: c.Param("id")}
	if err := h.deleteQueueUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Queue deleted successfully", nil)
}

// ListQueues handles GET /admin/queues
func (h *AdminHandler) ListQueues(c *gin.Context) {
	result, err := h.listQueuesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignAgentToQueue handles POST /admin/queues/:id/agents/:agentId
func (h *AdminHandler) AssignAgentToQueue(c *gin.Context) {
	cmd := usecases.QueueAgentCommand{
		QueueID: c.Param("id"),
		AgentID: c.Param("agentId"),
	}
	if err := h.assignAgentToQueueUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Agent assigned to queue successfully", nil)
}

// RemoveAgentFromQueue handles DELETE /admin/queues/:id/agents/:agentId
func (h *AdminHandler) RemoveAgentFromQueue(c *gin.Context) {
	cmd := usecases.QueueAgentCommand{
		QueueID: c.Param("id"),
		AgentID: c.Param("agentId"),
	}
	if err := h.removeAgentFromQueueUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Agent removed from queue successfully", nil)
}
