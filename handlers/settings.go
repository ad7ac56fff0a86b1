// File: handlers/settings.go
package handlers

import (
	"net/http"

	"taskpilot/models"
	settingsService "taskpilot/services/settings"
	"taskpilot/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the user settings endpoints.
type SettingsHandler struct {
	Service settingsService.SettingsService
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(svc settingsService.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: svc}
}

// GetSettingsHandler returns the settings document, creating defaults when
// none exists yet.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Service.GetSettings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsHandler replaces the weekly working-hours profile.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	var input struct {
		WorkingHours []models.WorkingHour `json:"workingHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	settings, err := h.Service.UpdateWorkingHours(c.Request.Context(), input.WorkingHours)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid working hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}
