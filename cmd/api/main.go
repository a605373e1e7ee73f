package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fsw-barber/booking-api/internal/config"
	dbpkg "github.com/fsw-barber/booking-api/internal/db"
	"github.com/fsw-barber/booking-api/internal/logger"
	"github.com/fsw-barber/booking-api/internal/middleware"
	"github.com/fsw-barber/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()

	logger.Init(cfg.IsProduction())
	log := logger.L()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
