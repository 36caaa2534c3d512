package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	ucIncome "github.com/BruksfildServices01/barber-queue/internal/usecase/income"
)

type IncomeHandler struct {
	incomes *ucIncome.Incomes
}

func NewIncomeHandler(incomes *ucIncome.Incomes) *IncomeHandler {
	return &IncomeHandler{incomes: incomes}
}

type RecordIncomeRequest struct {
	ClientID      *uint   `json:"client_id"`
	ServiceID     *uint   `json:"service_id"`
	ClientName    string  `json:"client_name"`
	IsWalkin      bool    `json:"is_walkin"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Date          string  `json:"date"`
	Notes         string  `json:"notes"`
}

func (h *IncomeHandler) ListByDate(c *gin.Context) {
	list, err := h.incomes.ListByDate(c.Request.Context(), middleware.BarberID(c), c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *IncomeHandler) Record(c *gin.Context) {
	var req RecordIncomeRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.incomes.Record(c.Request.Context(), middleware.BarberID(c), ucIncome.RecordInput{
		ClientID:      req.ClientID,
		ServiceID:     req.ServiceID,
		ClientName:    req.ClientName,
		IsWalkin:      req.IsWalkin,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, row)
}

// ListCredit aceita ?paid=true|false; sem o parâmetro traz todas.
func (h *IncomeHandler) ListCredit(c *gin.Context) {
	var paid *bool
	if raw := c.Query("paid"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_paid_filter", "paid must be true or false.")
			return
		}
		paid = &v
	}

	list, err := h.incomes.ListCredit(c.Request.Context(), middleware.BarberID(c), paid)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *IncomeHandler) MarkCreditPaid(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	row, err := h.incomes.MarkCreditPaid(c.Request.Context(), middleware.BarberID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, row)
}
