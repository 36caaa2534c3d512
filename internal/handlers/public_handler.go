package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-queue/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/barber-queue/internal/usecase/catalog"
)

// BarberLookup resolve o username da URL pública.
type BarberLookup interface {
	GetBarberByUsername(ctx context.Context, username string) (*models.Barber, error)
}

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	barbers      BarberLookup
	services     *ucCatalog.Services
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreatePublicBooking
	cancel       *ucBooking.CancelBooking
}

func NewPublicHandler(
	barbers BarberLookup,
	services *ucCatalog.Services,
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreatePublicBooking,
	cancel *ucBooking.CancelBooking,
) *PublicHandler {
	return &PublicHandler{
		barbers:      barbers,
		services:     services,
		availability: availability,
		create:       create,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicBookingRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// ======================================================
// LIST SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	barber, err := h.barbers.GetBarberByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	list, err := h.services.List(c.Request.Context(), barber.ID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// SLOTS
// ======================================================

// Slots nunca falha por dado do cliente: qualquer miss vira lista vazia.
func (h *PublicHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	out := dto.SlotsDTO{Date: date, Slots: []string{}}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httpresp.OK(c, out)
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		Username:  c.Param("username"),
		Date:      date,
		ServiceID: uint(serviceID),
	})
	switch {
	case errors.Is(err, domain.ErrBarberNotFound):
	case err != nil:
		httperr.FromError(c, err)
		return
	default:
		out.Slots = slots
	}

	httpresp.OK(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.PublicBookingInput{
		Username:  c.Param("username"),
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Name:      req.Name,
		Phone:     req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.NewPublicBooking(b).WithToken(b))
}

// ======================================================
// CANCEL PAGE
// ======================================================

func (h *PublicHandler) GetByToken(c *gin.Context) {
	b, err := h.cancel.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewPublicBooking(b))
}

func (h *PublicHandler) CancelByToken(c *gin.Context) {
	b, err := h.cancel.ByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewPublicBooking(b))
}
