package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
)

func TestRecordCountsEventsAndQueueLength(t *testing.T) {
	m := New(prometheus.NewRegistry())

	require.NoError(t, m.Record(audit.Event{BarberID: 4, Action: "booking_enqueued", Metadata: map[string]any{"queue_length": 3}}))
	require.NoError(t, m.Record(audit.Event{BarberID: 4, Action: "booking_enqueued"}))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingEvents.WithLabelValues("booking_enqueued")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.QueueLength.WithLabelValues("4")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := New(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", Handler(reg))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "barberq_http_request_duration_seconds")
}
