package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/ai"
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/payments"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// Deps agrupa os serviços opcionais montados no main. Images, AI e
// Payments podem vir nil quando o ambiente não os configura; os
// handlers respondem 503 nessas rotas.
type Deps struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Images   *storage.ImageStore
	AI       *ai.Service
	Payments *payments.Client
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	db := deps.DB
	cfg := deps.Cfg

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listUserAppointmentsUC := ucAppointment.NewListUserAppointments(appointmentRepo)
	listBarberScheduleUC := ucAppointment.NewListBarberSchedule(appointmentRepo)
	rebuildMirrorsUC := ucAppointment.NewRebuildMirrors(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, deps.Images)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, deps.Images)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createAppointmentUC,
		cancelAppointmentUC,
		rescheduleAppointmentUC,
		listUserAppointmentsUC,
		deps.Payments,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		db,
		listBarberScheduleUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		rebuildMirrorsUC,
	)

	publicHandler := handlers.NewPublicHandler(db, getAvailabilityUC)
	insightsHandler := handlers.NewInsightsHandler(deps.AI)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (vitrine por slug)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.Profile)
			publicAPI.GET("/:slug/services", publicHandler.Services)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register-client", authHandler.RegisterClient)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)
			secured.POST("/me/image", meHandler.UploadImage)

			// ------------------------------
			// BOOKINGS (cliente)
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/upcoming", bookingHandler.Upcoming)
			secured.GET("/bookings/past", bookingHandler.Past)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/reschedule", bookingHandler.Reschedule)
			secured.POST("/bookings/:id/payment-link", bookingHandler.PaymentLink)

			// ------------------------------
			// ÁREA DO BARBEIRO
			// ------------------------------
			barber := secured.Group("/me")
			barber.Use(middleware.RequireBarber())
			{
				barber.GET("/clients", clientHandler.List)

				barber.GET("/services", serviceHandler.List)
				barber.POST("/services", serviceHandler.Create)
				barber.PATCH("/services/:id", serviceHandler.Update)
				barber.POST("/services/:id/image", serviceHandler.UploadImage)

				barber.GET("/working-hours", workingHoursHandler.Get)
				barber.PUT("/working-hours", workingHoursHandler.Update)

				barber.GET("/schedule", scheduleHandler.ByDate)
				barber.GET("/schedule/month", scheduleHandler.ByMonth)
				barber.PATCH("/schedule/:id/confirm", scheduleHandler.Confirm)
				barber.PATCH("/schedule/:id/cancel", scheduleHandler.Cancel)
				barber.POST("/schedule/:id/rebuild-mirrors", scheduleHandler.RebuildMirrors)

				barber.POST("/insights/weekly-coach", insightsHandler.WeeklyCoach)
				barber.POST("/insights/service-pricing", insightsHandler.ServicePricing)

				barber.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
