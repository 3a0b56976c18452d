package routes

import (
	"github.com/gin-gonic/gin"

	agenthandlers "helpdesk/internal/interfaces/http/handlers/agent"
	"helpdesk/internal/interfaces/http/middleware"
)

type AgentRouteConfig struct {
	TicketHandler *agenthandlers.TicketHandler
	Identity      *middleware.IdentityMiddleware
}

func SetupAgentRoutes(api *gin.RouterGroup, config *AgentRouteConfig) {
	agent := api.Group("/agent")
	agent.Use(config.Identity.Authenticated(), config.Identity.AgentOrAdmin())
	{
		agent.GET("/skills", config.TicketHandler.ListSkills)
		agent.GET("/tags", config.TicketHandler.ListTags)

		agent.GET("/tickets", config.TicketHandler.ListTickets)
		agent.GET("/tickets/:id", config.TicketHandler.GetTicket)
		agent.PUT("/tickets/:id", config.TicketHandler.UpdateTicket)
		agent.POST("/tickets/:id/messages", config.TicketHandler.AddMessage)
		agent.PUT("/tickets/:id/queue", config.TicketHandler.AssignQueue)

		agent.GET("/authors/:id/tickets", config.TicketHandler.ListAuthorTickets)
	}
}
