package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"habtrack/internal/core/services"
)

type StatsHandler struct {
	sessions *services.SessionService
	svc      *services.StatsService
}

func NewStatsHandler(sessions *services.SessionService, svc *services.StatsService) *StatsHandler {
	return &StatsHandler{
		sessions: sessions,
		svc:      svc,
	}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.GET("/summary", h.Summary)
		stats.GET("/weekly", h.Weekly)
		stats.GET("/monthly", h.Monthly)
	}
}

func (h *StatsHandler) Summary(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.svc.Summary(sess))
}

func (h *StatsHandler) Weekly(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	overview, err := h.svc.Weekly(sess)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute weekly statistics"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *StatsHandler) Monthly(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	report, err := h.svc.Monthly(sess)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute monthly statistics"})
		return
	}

	c.JSON(http.StatusOK, report)
}
