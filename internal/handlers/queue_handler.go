package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	ucQueue "github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
)

// ======================================================
// HANDLER
// ======================================================

type QueueHandler struct {
	list    *ucQueue.ListQueue
	enqueue *ucQueue.Enqueue
	promote *ucQueue.PromoteDueAppointments
	start   *ucQueue.StartFromQueue
	remove  *ucQueue.RemoveFromQueue
}

func NewQueueHandler(
	list *ucQueue.ListQueue,
	enqueue *ucQueue.Enqueue,
	promote *ucQueue.PromoteDueAppointments,
	start *ucQueue.StartFromQueue,
	remove *ucQueue.RemoveFromQueue,
) *QueueHandler {
	return &QueueHandler{
		list:    list,
		enqueue: enqueue,
		promote: promote,
		start:   start,
		remove:  remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EnqueueRequest struct {
	ClientID    *uint  `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceID   *uint  `json:"service_id"`
}

type StartRequest struct {
	ServiceID *uint `json:"service_id"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *QueueHandler) List(c *gin.Context) {
	view, err := h.list.Execute(c.Request.Context(), middleware.BarberID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *QueueHandler) Enqueue(c *gin.Context) {
	var req EnqueueRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.enqueue.Execute(c.Request.Context(), ucQueue.EnqueueInput{
		BarberID:    middleware.BarberID(c),
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, b)
}

// Promote roda o mesmo passo do worker sob demanda.
func (h *QueueHandler) Promote(c *gin.Context) {
	promoted, err := h.promote.Execute(c.Request.Context(), middleware.BarberID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, promoted)
}

func (h *QueueHandler) Start(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req StartRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	b, err := h.start.Execute(c.Request.Context(), ucQueue.StartInput{
		BarberID:  middleware.BarberID(c),
		BookingID: id,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *QueueHandler) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.remove.Execute(c.Request.Context(), middleware.BarberID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}
