package routes

import (
	"github.com/gin-gonic/gin"

	customerhandlers "helpdesk/internal/interfaces/http/handlers/customer"
	"helpdesk/internal/interfaces/http/middleware"
)

type CustomerRouteConfig struct {
	TicketHandler *customerhandlers.TicketHandler
	Identity      *middleware.IdentityMiddleware
}

func SetupCustomerRoutes(api *gin.RouterGroup, config *CustomerRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.Identity.Authenticated())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListMyTickets)
		tickets.POST("/:id/messages", config.TicketHandler.AddMessage)
		tickets.GET("/:id", config.TicketHandler.GetMyTicket)
	}
}
