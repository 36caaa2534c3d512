package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/barber-queue/internal/usecase/catalog"
)

type SettingsHandler struct {
	settings *ucCatalog.Settings
}

func NewSettingsHandler(settings *ucCatalog.Settings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type SettingsRequest struct {
	WorkStartTime           *string `json:"work_start_time"`
	WorkEndTime             *string `json:"work_end_time"`
	SMSNotificationsEnabled *bool   `json:"sms_notifications_enabled"`
	Timezone                *string `json:"timezone"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	b, err := h.settings.Get(c.Request.Context(), middleware.BarberID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req SettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.settings.Update(c.Request.Context(), middleware.BarberID(c), ucCatalog.SettingsPatch{
		WorkStartTime:           req.WorkStartTime,
		WorkEndTime:             req.WorkEndTime,
		SMSNotificationsEnabled: req.SMSNotificationsEnabled,
		Timezone:                req.Timezone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}
