package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/barber-queue/internal/usecase/catalog"
	ucQueue "github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
)

// MeHandler é o resumo do painel: perfil do barbeiro e tamanho da fila.
type MeHandler struct {
	settings *ucCatalog.Settings
	queue    *ucQueue.ListQueue
}

func NewMeHandler(settings *ucCatalog.Settings, queue *ucQueue.ListQueue) *MeHandler {
	return &MeHandler{settings: settings, queue: queue}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	barberID := middleware.BarberID(c)

	barber, err := h.settings.Get(c.Request.Context(), barberID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	view, err := h.queue.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"barber": gin.H{
			"id":       barber.ID,
			"username": barber.Username,
			"name":     barber.Name,
			"phone":    barber.Phone,
			"timezone": barber.Timezone,
		},
		"queue_length": len(view.Waiting),
	})
}
