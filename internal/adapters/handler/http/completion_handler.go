package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"habtrack/internal/core/domain"
	"habtrack/internal/core/services"
)

type CompletionHandler struct {
	sessions *services.SessionService
	svc      *services.CompletionService
}

func NewCompletionHandler(sessions *services.SessionService, svc *services.CompletionService) *CompletionHandler {
	return &CompletionHandler{
		sessions: sessions,
		svc:      svc,
	}
}

func (h *CompletionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/habits/:id/toggle", h.Toggle)
	router.GET("/completions", h.List)
}

// Toggle flips today's completion for one habit: creates the record if today
// has none, removes it otherwise.
func (h *CompletionHandler) Toggle(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	result, err := h.svc.Toggle(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHabitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": domain.UserMessage(err)})
		case errors.Is(err, domain.ErrDuplicateCompletion):
			// A racing toggle already created today's record.
			c.JSON(http.StatusConflict, gin.H{"error": domain.UserMessage(err)})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update habit. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CompletionHandler) List(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	records := make([]*domain.Completion, 0, sess.Log.Len())
	for _, habit := range sess.Habits {
		records = append(records, sess.Log.ForHabit(habit.ID)...)
	}

	c.JSON(http.StatusOK, records)
}
