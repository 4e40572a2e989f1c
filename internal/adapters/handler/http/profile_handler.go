package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"habtrack/internal/core/domain"
	"habtrack/internal/core/services"
)

type ProfileHandler struct {
	sessions *services.SessionService
	svc      *services.ProfileService
}

func NewProfileHandler(sessions *services.SessionService, svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		sessions: sessions,
		svc:      svc,
	}
}

type updateProfileRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Goal          string  `json:"goal"`
	AvatarURL     *string `json:"avatar_url"`
	Timezone      string  `json:"timezone"`
	WeekStartsOn  string  `json:"week_starts_on"`
	Notifications *bool   `json:"notifications"`
	ReminderTime  string  `json:"reminder_time"`
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
		profile.DELETE("/data", h.ClearAllData)
		profile.POST("/reset", h.ResetApp)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, sess.Profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpdateProfileInput{
		Name:          req.Name,
		Email:         req.Email,
		Goal:          req.Goal,
		AvatarURL:     req.AvatarURL,
		Timezone:      req.Timezone,
		WeekStartsOn:  req.WeekStartsOn,
		Notifications: req.Notifications,
		ReminderTime:  req.ReminderTime,
	}

	profile, err := h.svc.Update(c.Request.Context(), sess, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWeekStart) || errors.Is(err, domain.ErrInvalidReminder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile. Please try again."})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) ClearAllData(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	if err := h.svc.ClearAllData(c.Request.Context(), sess); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear data. Please try again."})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) ResetApp(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	if err := h.svc.ResetApp(c.Request.Context(), sess); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset. Please try again."})
		return
	}

	c.JSON(http.StatusOK, sess.Profile)
}
