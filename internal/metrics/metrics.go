package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
)

const namespace = "barberq"

type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	BookingEvents   *prometheus.CounterVec
	QueueLength     *prometheus.GaugeVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		BookingEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_events_total",
			Help:      "Audited domain events by action.",
		}, []string{"action"}),

		QueueLength: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_length",
			Help:      "Waiting bookings per barber after the last queue mutation.",
		}, []string{"barber_id"}),
	}
}

// Record implementa audit.Sink.
func (m *Metrics) Record(ev audit.Event) error {
	m.BookingEvents.WithLabelValues(ev.Action).Inc()

	if n, ok := ev.Metadata["queue_length"].(int); ok {
		m.QueueLength.
			WithLabelValues(strconv.FormatUint(uint64(ev.BarberID), 10)).
			Set(float64(n))
	}
	return nil
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler expõe o registry no formato do prometheus.
func Handler(g prometheus.Gatherer) gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
