package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/santamartha/hrportal/internal/app/models/dto"
	"github.com/santamartha/hrportal/internal/pkg/logger"
)

// Pinger reports storage reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves liveness and readiness probes
type HealthController struct {
	storage Pinger
	driver  string
}

// NewHealthController creates a new HealthController
func NewHealthController(storage Pinger, driver string) *HealthController {
	return &HealthController{storage: storage, driver: driver}
}

// Root is the plain-text landing response
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Backend de Farmacia Santa Martha en funcionamiento")
}

// Ping answers pong
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health is the liveness probe
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Ready checks that storage answers within two seconds
func (c *HealthController) Ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.storage.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Readiness check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Storage: c.driver})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Storage: c.driver})
}
