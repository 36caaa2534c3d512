package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/config"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-queue/internal/domain/income"
	"github.com/BruksfildServices01/barber-queue/internal/handlers"
	"github.com/BruksfildServices01/barber-queue/internal/metrics"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-queue/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/barber-queue/internal/usecase/catalog"
	ucIncome "github.com/BruksfildServices01/barber-queue/internal/usecase/income"
	ucQueue "github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
)

// Store junta os contratos implementados pelo repositório gorm (e pelo de memória).
type Store interface {
	booking.Repository
	catalog.Repository
	income.Repository
}

// Deps são os singletons criados no main.
type Deps struct {
	Store         Store
	DB            *gorm.DB
	Config        *config.Config
	Audit         *audit.Dispatcher
	Confirmations ucBooking.ConfirmationSender
	Metrics       *metrics.Metrics
	Gatherer      prometheus.Gatherer
	Clock         timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.Config.CORS.AllowedOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}

	opts := ucBooking.OptionsFromConfig(d.Config)

	// ======================================================
	// 🧠 USE CASES — QUEUE
	// ======================================================
	listQueueUC := ucQueue.NewListQueue(d.Store)
	enqueueUC := ucQueue.NewEnqueue(d.Store, d.Audit, d.Clock)
	promoteUC := ucQueue.NewPromoteDueAppointments(d.Store, d.Audit, d.Clock)
	startUC := ucQueue.NewStartFromQueue(d.Store, d.Audit, d.Clock)
	removeUC := ucQueue.NewRemoveFromQueue(d.Store, d.Audit)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(d.Store, d.Audit, d.Clock, opts)
	createPublicUC := ucBooking.NewCreatePublicBooking(d.Store, d.Audit, d.Clock, d.Confirmations, opts)
	listByDateUC := ucBooking.NewListBookingsByDate(d.Store)
	completeUC := ucBooking.NewCompleteBooking(d.Store, d.Audit, d.Clock)
	cancelUC := ucBooking.NewCancelBooking(d.Store, d.Audit)
	availabilityUC := ucBooking.NewGetAvailability(d.Store, opts)

	// ======================================================
	// 🧠 USE CASES — CATALOG / INCOME
	// ======================================================
	servicesUC := ucCatalog.NewServices(d.Store, d.Audit)
	clientsUC := ucCatalog.NewClients(d.Store, d.Audit, enqueueUC)
	settingsUC := ucCatalog.NewSettings(d.Store, d.Audit)
	incomesUC := ucIncome.NewIncomes(d.Store, d.Audit, d.Clock)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler(settingsUC, listQueueUC)
	queueHandler := handlers.NewQueueHandler(listQueueUC, enqueueUC, promoteUC, startUC, removeUC)
	bookingHandler := handlers.NewBookingHandler(createAppointmentUC, listByDateUC, completeUC, cancelUC)
	publicHandler := handlers.NewPublicHandler(d.Store, servicesUC, availabilityUC, createPublicUC, cancelUC)
	serviceHandler := handlers.NewServiceHandler(servicesUC)
	clientHandler := handlers.NewClientHandler(clientsUC)
	settingsHandler := handlers.NewSettingsHandler(settingsUC)
	incomeHandler := handlers.NewIncomeHandler(incomesUC)

	// ======================================================
	// 🔧 OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", metrics.Handler(d.Gatherer))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:username/services", publicHandler.ListServices)
			publicAPI.GET("/:username/slots", publicHandler.Slots)
			publicAPI.POST("/:username/bookings", publicHandler.CreateBooking)

			publicAPI.GET("/bookings/:token", publicHandler.GetByToken)
			publicAPI.POST("/bookings/:token/cancel", publicHandler.CancelByToken)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(d.Config.JWT.Secret))
		{
			secured.GET("", meHandler.GetMe)

			secured.GET("/settings", settingsHandler.Get)
			secured.PATCH("/settings", settingsHandler.Update)

			// ------------------------------
			// QUEUE
			// ------------------------------
			secured.GET("/queue", queueHandler.List)
			secured.POST("/queue", queueHandler.Enqueue)
			secured.POST("/queue/promote", queueHandler.Promote)
			secured.POST("/queue/:id/start", queueHandler.Start)
			secured.POST("/queue/:id/remove", queueHandler.Remove)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.ListByDate)
			secured.POST("/bookings", bookingHandler.Create)
			secured.POST("/bookings/:id/complete", bookingHandler.Complete)
			secured.POST("/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// INCOME
			// ------------------------------
			secured.GET("/incomes", incomeHandler.ListByDate)
			secured.POST("/incomes", incomeHandler.Record)
			secured.GET("/incomes/credit", incomeHandler.ListCredit)
			secured.POST("/incomes/:id/credit-paid", incomeHandler.MarkCreditPaid)

			if d.DB != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB))
				secured.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
