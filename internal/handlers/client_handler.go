package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	ucCatalog "github.com/BruksfildServices01/barber-queue/internal/usecase/catalog"
)

type ClientHandler struct {
	clients *ucCatalog.Clients
}

func NewClientHandler(clients *ucCatalog.Clients) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type ClientRequest struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Phone    *string `json:"phone"`
	AgeGroup *string `json:"age_group"`
	Gender   *string `json:"gender"`

	// só na criação
	AddToQueue bool  `json:"add_to_queue"`
	ServiceID  *uint `json:"service_id"`
}

func (r ClientRequest) patch() ucCatalog.ClientPatch {
	return ucCatalog.ClientPatch{
		Name:     r.Name,
		Surname:  r.Surname,
		Phone:    r.Phone,
		AgeGroup: r.AgeGroup,
		Gender:   r.Gender,
	}
}

type CreateClientResponse struct {
	Client  *models.Client  `json:"client"`
	Booking *models.Booking `json:"booking,omitempty"`
}

// ======================================================
// LIST CLIENTS (BARBEIRO)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	list, err := h.clients.List(c.Request.Context(), middleware.BarberID(c), query)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, b, err := h.clients.Create(c.Request.Context(), middleware.BarberID(c), ucCatalog.NewClientInput{
		ClientPatch: req.patch(),
		AddToQueue:  req.AddToQueue,
		ServiceID:   req.ServiceID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, CreateClientResponse{Client: client, Booking: b})
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clients.Update(c.Request.Context(), middleware.BarberID(c), id, req.patch())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), middleware.BarberID(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
