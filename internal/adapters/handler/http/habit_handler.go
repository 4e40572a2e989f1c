package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"habtrack/internal/adapters/handler/http/middleware"
	"habtrack/internal/core/domain"
	"habtrack/internal/core/services"
)

type HabitHandler struct {
	sessions *services.SessionService
	svc      *services.HabitService
	stats    *services.StatsService
}

func NewHabitHandler(sessions *services.SessionService, svc *services.HabitService, stats *services.StatsService) *HabitHandler {
	return &HabitHandler{
		sessions: sessions,
		svc:      svc,
		stats:    stats,
	}
}

type habitRequest struct {
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	Category   string `json:"category"`
	TargetDays int    `json:"target_days"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.POST("", h.Create)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
	}
}

// loadSession opens the per-request session snapshot; on failure it has
// already written the error response.
func loadSession(c *gin.Context, sessions *services.SessionService) (*services.Session, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return nil, false
	}

	sess, err := sessions.Load(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load your data"})
		return nil, false
	}
	return sess, true
}

// List returns the derived per-habit views, not the raw rows: the client
// renders completion counts, streaks and the completed-today flag directly.
func (h *HabitHandler) List(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.stats.Views(sess))
}

func (h *HabitHandler) Create(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateHabitInput{
		Name:       req.Name,
		Icon:       req.Icon,
		Color:      req.Color,
		Category:   req.Category,
		TargetDays: req.TargetDays,
	}

	habit, err := h.svc.Create(c.Request.Context(), sess, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateHabitName):
			c.JSON(http.StatusConflict, gin.H{"error": domain.UserMessage(err)})
		case errors.Is(err, domain.ErrHabitNameEmpty),
			errors.Is(err, domain.ErrHabitNameTooLong),
			errors.Is(err, domain.ErrInvalidTargetDays):
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.UserMessage(err)})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, habit)
}

func (h *HabitHandler) Update(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpdateHabitInput{
		ID:         c.Param("id"),
		Name:       req.Name,
		Icon:       req.Icon,
		Color:      req.Color,
		Category:   req.Category,
		TargetDays: req.TargetDays,
	}

	habit, err := h.svc.Update(c.Request.Context(), sess, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHabitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": domain.UserMessage(err)})
		case errors.Is(err, domain.ErrDuplicateHabitName):
			c.JSON(http.StatusConflict, gin.H{"error": domain.UserMessage(err)})
		case errors.Is(err, domain.ErrHabitNameEmpty),
			errors.Is(err, domain.ErrHabitNameTooLong),
			errors.Is(err, domain.ErrInvalidTargetDays):
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.UserMessage(err)})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": domain.UserMessage(err)})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
