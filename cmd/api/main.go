package main

import (
	"fmt"
	"log"
	"os"

	"aurora-grid/internal/api/handlers"
	"aurora-grid/internal/api/middleware"
	"aurora-grid/internal/config"
	"aurora-grid/internal/warehouse"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_FILE")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	store, err := warehouse.NewFSStore(cfg.Warehouse.Dir, cfg.Warehouse.CacheTTL)
	if err != nil {
		logger.Fatal("Failed to open warehouse", zap.Error(err))
	}
	logger.Info("warehouse ready", zap.String("dir", cfg.Warehouse.Dir))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	ingestHandler := handlers.NewIngestHandler(store, logger)
	forecastHandler := handlers.NewForecastHandler(store, cfg.Defaults)
	optimizeHandler := handlers.NewOptimizeHandler(store, cfg.Defaults)
	rankHandler := handlers.NewRankHandler(store, cfg.Defaults)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	router.POST("/ingest/:name", ingestHandler.Upload)
	router.GET("/datasets", ingestHandler.List)
	router.GET("/forecast/price", forecastHandler.Price)
	router.POST("/optimize/storage", optimizeHandler.Storage)
	router.GET("/rank/zones", rankHandler.Zones)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Server.Env != "production" {
		zcfg = zap.NewDevelopmentConfig()
	}
	if err := zcfg.Level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", cfg.Logging.Level, err)
	}
	return zcfg.Build()
}
