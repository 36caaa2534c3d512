package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
)

type AuditReader interface {
	List(ctx context.Context, q audit.Query) (*audit.Page, error)
}

type AuditLogsHandler struct {
	reader AuditReader
}

func NewAuditLogsHandler(reader AuditReader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader}
}

// List aceita action, entity, entity_id, date (atalho para from=to), from, to, page, limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q, err := auditQuery(c)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	page, err := h.reader.List(c.Request.Context(), q)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs.")
		return
	}
	httpresp.OK(c, page)
}

func auditQuery(c *gin.Context) (audit.Query, error) {
	q := audit.Query{
		BarberID: middleware.BarberID(c),
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
	}
	q.Page, _ = strconv.Atoi(c.Query("page"))
	q.Limit, _ = strconv.Atoi(c.Query("limit"))

	if raw := c.Query("entity_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return q, httperr.ErrBusiness("invalid_entity_id")
		}
		v := uint(id)
		q.EntityID = &v
	}

	from, to := c.Query("from"), c.Query("to")
	if d := c.Query("date"); d != "" {
		from, to = d, d
	}

	var err error
	if q.From, err = optionalDate(from); err != nil {
		return q, err
	}
	if q.To, err = optionalDate(to); err != nil {
		return q, err
	}
	return q, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := booking.ParseDate(s)
	if err != nil {
		return nil, booking.ErrInvalidDate
	}
	return &d, nil
}
