package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fsw-barber/booking-api/internal/audit"
	"github.com/fsw-barber/booking-api/internal/cache"
	"github.com/fsw-barber/booking-api/internal/config"
	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/handlers"
	infraRepo "github.com/fsw-barber/booking-api/internal/infra/repository"
	"github.com/fsw-barber/booking-api/internal/media"
	"github.com/fsw-barber/booking-api/internal/middleware"
	"github.com/fsw-barber/booking-api/internal/payments"
	ucBooking "github.com/fsw-barber/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	store := infraRepo.NewBookingGormRepository(db)
	views := cache.NewViews(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var paymentLinks domain.PaymentLinks
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Warn("mercado pago disabled", zap.Error(err))
		} else {
			paymentLinks = mp
		}
	}

	var uploader *media.Uploader
	if cfg.S3Bucket != "" {
		uploader = media.NewUploader(cfg)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	submitUC := ucBooking.NewSubmit(store, views, paymentLinks, auditDispatcher, log)
	listUC := ucBooking.NewListForUser(store, views, log)
	cancelUC := ucBooking.NewCancel(store, views, auditDispatcher, domain.RealClock{}, log)
	dayTimesUC := ucBooking.NewDayTimes(store)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	publicHandler := handlers.NewPublicHandler(db, views, dayTimesUC, log)
	bookingHandler := handlers.NewBookingHandler(submitUC, listUC, cancelUC)
	serviceHandler := handlers.NewServiceHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db, uploader, views, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbershops", publicHandler.ListBarbershops)
			publicAPI.GET("/barbershops/:slug", publicHandler.GetBarbershop)
			publicAPI.GET("/barbershops/:slug/day-times", publicHandler.DayTimes)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// BOOKINGS (optional auth: the submitter decides)
		// ------------------------------
		api.POST("/bookings", middleware.AuthOptional(cfg), bookingHandler.Create)

		// ------------------------------
		// CUSTOMER
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthRequired(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
		}

		// ------------------------------
		// OWNER
		// ------------------------------
		owner := api.Group("/owner")
		owner.Use(middleware.AuthRequired(cfg), middleware.OwnerOnly())
		{
			owner.GET("/barbershop", barbershopHandler.GetMine)
			owner.POST("/barbershop/image", barbershopHandler.UploadImage)

			owner.GET("/services", serviceHandler.List)
			owner.POST("/services", serviceHandler.Create)
			owner.PATCH("/services/:id", serviceHandler.Update)

			owner.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
