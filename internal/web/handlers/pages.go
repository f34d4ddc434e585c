package handlers

import (
	"bytes"
	"net/http"

	"github.com/Conceptual-Machines/retort-api/internal/config"
	"github.com/Conceptual-Machines/retort-api/internal/logger"
	"github.com/Conceptual-Machines/retort-api/internal/models"
	"github.com/Conceptual-Machines/retort-api/internal/web/templates"
	"github.com/gin-gonic/gin"
)

type WebHandler struct {
	title string
}

func NewWebHandler(cfg *config.Config) *WebHandler {
	return &WebHandler{
		title: cfg.AppTitle,
	}
}

// Home renders the rebuttal generator page
func (h *WebHandler) Home(c *gin.Context) {
	data := templates.HomeData{
		Title:            h.title,
		DefaultIntensity: models.DefaultIntensity,
		DefaultLabel:     models.IntensityLabel(models.DefaultIntensity),
		Levels:           models.IntensityLevels(),
	}

	// Render fully before writing so a failure can still set the status
	var buf bytes.Buffer
	if err := templates.Home(data).Render(c.Request.Context(), &buf); err != nil {
		logger.Error("Failed to render home page", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
