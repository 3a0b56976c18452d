package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "helpdesk/internal/interfaces/http/handlers/admin"
	"helpdesk/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler *adminhandlers.AdminHandler
	Identity     *middleware.IdentityMiddleware
}

func SetupAdminRoutes(api *gin.RouterGroup, config *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(config.Identity.Authenticated(), config.Identity.AdminOnly())
	{
		admin.GET("/users", config.AdminHandler.ListUsers)
		admin.PATCH("/users/:id/role", config.AdminHandler.UpdateUserRole)

		admin.GET("/agents", config.AdminHandler.ListAgents)
		admin.POST("/agents/:id/skills/:skillId", config.AdminHandler.AddAgentSkill)
		admin.DELETE("/agents/:id/skills/:skillId", config.AdminHandler.RemoveAgentSkill)

		admin.POST("/skills", config.AdminHandler.CreateSkill)
		admin.DELETE("/skills/:id", config.AdminHandler.DeleteSkill)

		admin.GET("/queues", config.AdminHandler.ListQueues)
		admin.POST("/queues", config.AdminHandler.CreateQueue)
		admin.DELETE("/queues/:id", config.AdminHandler.DeleteQueue)
		admin.POST("/queues/:id/agents/:agentId", config.AdminHandler.AssignAgentToQueue)
		admin.DELETE("/queues/:id/agents/:agentId", config.AdminHandler.RemoveAgentFromQueue)
	}
}
