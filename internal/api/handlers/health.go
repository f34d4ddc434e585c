package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/retort-api/internal/config"
	"github.com/Conceptual-Machines/retort-api/internal/llm"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck returns the health status of the API. The credential itself is never echoed.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"provider": gin.H{
			"name":       h.cfg.Provider,
			"model":      llm.DefaultModelFor(h.cfg.Provider),
			"configured": h.cfg.APIKey() != "",
		},
	})
}
