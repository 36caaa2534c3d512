package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type mockAuditReader struct{ mock.Mock }

func (m *mockAuditReader) List(ctx context.Context, q audit.Query) (*audit.Page, error) {
	args := m.Called(q)
	page, _ := args.Get(0).(*audit.Page)
	return page, args.Error(1)
}

func auditRouter(reader AuditReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/audit-logs", func(c *gin.Context) {
		c.Set(middleware.ContextBarberID, uint(7))
		c.Next()
	}, NewAuditLogsHandler(reader).List)
	return r
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestAuditLogs_ParsesFilters(t *testing.T) {
	reader := &mockAuditReader{}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	entityID := uint(12)

	reader.On("List", audit.Query{
		BarberID: 7,
		Action:   "booking_cancelled",
		EntityID: &entityID,
		From:     &day,
		To:       &day,
		Page:     2,
		Limit:    10,
	}).Return(&audit.Page{Page: 2, Limit: 10, Total: 11, Logs: []models.AuditLog{{ID: 1, BarberID: 7, Action: "booking_cancelled"}}}, nil)

	w := get(auditRouter(reader), "/audit-logs?action=booking_cancelled&entity_id=12&date=2026-03-02&page=2&limit=10")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":11`)
	assert.Contains(t, w.Body.String(), `"action":"booking_cancelled"`)
	reader.AssertExpectations(t)
}

func TestAuditLogs_InvalidFilters(t *testing.T) {
	reader := &mockAuditReader{}
	r := auditRouter(reader)

	w := get(r, "/audit-logs?entity_id=abc")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_entity_id")

	w = get(r, "/audit-logs?from=02/03/2026")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_date")

	reader.AssertNotCalled(t, "List", mock.Anything)
}

func TestAuditLogs_ReaderFailure(t *testing.T) {
	reader := &mockAuditReader{}
	reader.On("List", mock.Anything).Return(nil, errors.New("db down"))

	w := get(auditRouter(reader), "/audit-logs")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "audit_list_failed")
}
