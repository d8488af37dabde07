package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PunitTak2005/restaurant-qr-menu/configs"
	"github.com/PunitTak2005/restaurant-qr-menu/middlewares"
	"github.com/PunitTak2005/restaurant-qr-menu/routes"
	"github.com/PunitTak2005/restaurant-qr-menu/ws"
)

func main() {
	cfg := configs.LoadConfig()

	var logger *zap.Logger
	var err error
	if cfg.Env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	// Seed
	if err := configs.SeedAdmin(db, cfg, logger); err != nil {
		logger.Fatal("seed admin failed", zap.Error(err))
	}
	if cfg.Env == "development" {
		if err := configs.SeedDemoData(db, logger); err != nil {
			logger.Fatal("seed demo data failed", zap.Error(err))
		}
	}

	// Real-time fan-out
	hub := ws.NewOrderHub(logger)
	go hub.Run()

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.CORSMiddleware(cfg.ClientURLs))

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("🚀 server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
