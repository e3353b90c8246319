package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/service"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/logger"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/response"
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// Auth validates the bearer token on every request and stores the
// authenticated identity in the gin context. Missing, malformed, expired
// or tampered tokens all produce 401; the distinction is kept in logs.
func Auth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Error(response.ErrCodeMissingToken, "authorization header required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Error(response.ErrCodeInvalidToken, "authorization header must be a bearer token"))
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			logger.Get().Debug("token rejected",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Error(response.ErrCodeInvalidToken, "invalid or expired token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireRole allows only requests whose authenticated role is in the
// given set. Runs after Auth; a valid token with the wrong role is 403,
// never 401.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		value, ok := c.Get(ContextRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Error(response.ErrCodeUnauthorized, "authentication required"))
			return
		}

		role, ok := value.(domain.Role)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				response.Forbidden("insufficient permissions"))
			return
		}

		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				response.Forbidden("insufficient permissions"))
			return
		}

		c.Next()
	}
}
