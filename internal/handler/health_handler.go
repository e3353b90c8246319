package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LawrenceKuria/task-manager-fullstack/pkg/database"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/redis"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/response"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db      *database.PostgresDB
	redis   *redis.Client
	service string
	version string
}

// NewHealthHandler creates the health handler. The redis client may be
// nil when the distributed rate limiter is disabled.
func NewHealthHandler(db *database.PostgresDB, redisClient *redis.Client, service, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		redis:   redisClient,
		service: service,
		version: version,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{
		"status":  "ok",
		"service": h.service,
		"version": h.version,
	}))
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if h.redis != nil {
		if err := h.redis.HealthCheck(c.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Error("NOT_READY", "dependency check failed"))
		return
	}

	c.JSON(http.StatusOK, response.Success(checks))
}
