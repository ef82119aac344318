package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/mamede573/BarberManager/internal/config"
	"github.com/mamede573/BarberManager/internal/handlers"
	infraRepo "github.com/mamede573/BarberManager/internal/infra/repository"
	"github.com/mamede573/BarberManager/internal/media"
	"github.com/mamede573/BarberManager/internal/middleware"
	"github.com/mamede573/BarberManager/internal/notify"
	"github.com/mamede573/BarberManager/internal/redisx"
	ucAppointment "github.com/mamede573/BarberManager/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	bookingLock := redisx.NewBookingLock(rdb)

	notifyStore := notify.NewStore(db)
	notifyDispatcher := notify.NewDispatcher(notifyStore)

	uploader := media.NewUploader(media.UploaderConfig{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		CDNURL:    cfg.MediaCDNURL,
	})

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		availabilityUC,
		bookingLock,
		notifyDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		availabilityUC,
		bookingLock,
		notifyDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		notifyDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		notifyDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		notifyDispatcher,
	)

	payAppointmentUC := ucAppointment.NewMarkAppointmentPaid(appointmentRepo)

	listMyAppointmentsUC := ucAppointment.NewListMyAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barberHandler := handlers.NewBarberHandler(db, uploader)
	serviceHandler := handlers.NewServiceHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		availabilityUC,
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		payAppointmentUC,
		listMyAppointmentsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CATÁLOGO PÚBLICO
		// ------------------------------
		api.GET("/categories", categoryHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.GET("/barbers/:id/services", serviceHandler.ListByBarber)
		api.GET("/barbers/:id/availability", appointmentHandler.Availability)
		api.GET("/services", serviceHandler.List)

		// ------------------------------
		// ÁREA DO CLIENTE
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.GET("/appointments/:id", appointmentHandler.GetMine)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/payment", appointmentHandler.Pay)

			secured.GET("/notifications", notificationHandler.ListMine)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
		}

		// ------------------------------
		// ADMIN (gestão do catálogo)
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.POST("/categories", categoryHandler.Create)

			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.POST("/barbers/:id/image", barberHandler.UploadImage)

			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		}
	}
}
