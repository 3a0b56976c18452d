// Package http assembles the gin engine: repositories, use cases, handlers
// and middleware, wired from configuration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminusecases "helpdesk/internal/application/admin/usecases"
	customerusecases "helpdesk/internal/application/customer/usecases"
	"helpdesk/internal/application/smartassign"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/llm"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/services"
	adminhandlers "helpdesk/internal/interfaces/http/handlers/admin"
	agenthandlers "helpdesk/internal/interfaces/http/handlers/agent"
	customerhandlers "helpdesk/internal/interfaces/http/handlers/customer"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// NewRouter builds the fully wired HTTP engine.
func NewRouter(cfg *config.Config, database *gorm.DB, log logger.Interface) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	if len(cfg.Server.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}

	if cfg.RateLimit.Enabled && cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		engine.Use(middleware.RateLimit(limiter, ratelimit.Config{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		}))
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Infrastructure.
	txMgr := db.NewTransactionManager(database)
	userRepo := repository.NewUserRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	skillRepo := repository.NewSkillRepository(database)
	queueRepo := repository.NewQueueRepository(database)
	serials := services.NewTicketSerialAllocator(database)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)

	var advisor smartassign.Advisor
	if cfg.SmartAssign.Enabled {
		client := llm.NewOpenAIClient(llm.Config{
			BaseURL:        cfg.SmartAssign.BaseURL,
			APIKey:         cfg.SmartAssign.APIKey,
			Model:          cfg.SmartAssign.Model,
			TimeoutSeconds: cfg.SmartAssign.TimeoutSeconds,
		})
		advisor = smartassign.NewService(skillRepo, queueRepo, client, log)
	}

	identity := middleware.NewIdentityMiddleware(jwtService, userRepo, log)

	// Agent surface.
	agentHandler := agenthandlers.NewTicketHandler(
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, txMgr, log),
		ticketusecases.NewAddMessageUseCase(ticketRepo, log),
		ticketusecases.NewAssignTicketToQueueUseCase(ticketRepo, queueRepo, txMgr, log),
		ticketusecases.NewListAuthorTicketsUseCase(ticketRepo, log),
		ticketusecases.NewListTagsUseCase(ticketRepo, log),
		ticketusecases.NewListSkillsUseCase(skillRepo, log),
	)

	// Customer surface.
	customerHandler := customerhandlers.NewTicketHandler(
		customerusecases.NewCreateTicketUseCase(ticketRepo, serials, txMgr, advisor, cfg.SmartAssign.AutoApply, log),
		customerusecases.NewListMyTicketsUseCase(ticketRepo, log),
		customerusecases.NewGetMyTicketUseCase(ticketRepo, log),
		customerusecases.NewAddMessageUseCase(ticketRepo, txMgr, log),
	)

	// Admin surface.
	adminHandler := adminhandlers.NewAdminHandler(
		adminusecases.NewListUsersUseCase(userRepo, log),
		adminusecases.NewUpdateUserRoleUseCase(userRepo, log),
		adminusecases.NewListAgentsUseCase(userRepo, skillRepo, log),
		adminusecases.NewCreateSkillUseCase(skillRepo, log),
		adminusecases.NewDeleteSkillUseCase(skillRepo, txMgr, log),
		adminusecases.NewAddAgentSkillUseCase(skillRepo, userRepo, log),
		adminusecases.NewRemoveAgentSkillUseCase(skillRepo, log),
		adminusecases.NewCreateQueueUseCase(queueRepo, log),
		adminusecases.NewDeleteQueueUseCase(queueRepo, txMgr, log),
		adminusecases.NewListQueuesUseCase(queueRepo, log),
		adminusecases.NewAssignAgentToQueueUseCase(queueRepo, userRepo, log),
		adminusecases.NewRemoveAgentFromQueueUseCase(queueRepo, log),
	)

	api := engine.Group("/api")
	routes.SetupAgentRoutes(api, &routes.AgentRouteConfig{
		TicketHandler: agentHandler,
		Identity:      identity,
	})
	routes.SetupCustomerRoutes(api, &routes.CustomerRouteConfig{
		TicketHandler: customerHandler,
		Identity:      identity,
	})
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler: adminHandler,
		Identity:     identity,
	})

	return engine
}
