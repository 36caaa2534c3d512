package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-queue/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *ucBooking.CreateAppointment
	list     *ucBooking.ListBookingsByDate
	complete *ucBooking.CompleteBooking
	cancel   *ucBooking.CancelBooking
}

func NewBookingHandler(
	create *ucBooking.CreateAppointment,
	list *ucBooking.ListBookingsByDate,
	complete *ucBooking.CompleteBooking,
	cancel *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		list:     list,
		complete: complete,
		cancel:   cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientID    *uint  `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceID   *uint  `json:"service_id"`

	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Status string `json:"status"`

	AllowOverlap bool `json:"allow_overlap"`
}

type CompleteRequest struct {
	PaymentMethod string   `json:"payment_method" binding:"required"`
	Amount        *float64 `json:"amount"`
	Notes         string   `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		BarberID:     middleware.BarberID(c),
		ClientID:     req.ClientID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Status:       req.Status,
		AllowOverlap: req.AllowOverlap,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	list, err := h.list.Execute(c.Request.Context(), middleware.BarberID(c), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *BookingHandler) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CompleteRequest
	if !bindJSON(c, &req) {
		return
	}

	b, income, err := h.complete.Execute(c.Request.Context(), ucBooking.CompleteInput{
		BarberID:      middleware.BarberID(c),
		BookingID:     id,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.CompleteDTO{Booking: b, Income: income})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.cancel.ForBarber(c.Request.Context(), middleware.BarberID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}
