package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// IdentityMiddleware resolves the caller from a bearer token. The role is
// loaded from the users table on every request, never from the token, so a
// role change is effective on the caller's next request.
type IdentityMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewIdentityMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *IdentityMiddleware {
	return &IdentityMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (m *IdentityMiddleware) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Warnw("token identity has no user row", "user_id", claims.UserID, "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "unknown identity")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, u.ID())
		c.Set(ContextKeyUserRole, u.Role().String())

		c.Next()
	}
}

// AgentOrAdmin requires Authenticated to have run earlier in the chain.
func (m *IdentityMiddleware) AgentOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := user.Role(c.GetString(ContextKeyUserRole))
		if !role.IsAgentOrAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "agent or admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly requires Authenticated to have run earlier in the chain.
func (m *IdentityMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := user.Role(c.GetString(ContextKeyUserRole))
		if !role.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's user id.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}
