package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/prepslot/interview-scheduler/internal/config"
	dbpkg "github.com/prepslot/interview-scheduler/internal/db"
	"github.com/prepslot/interview-scheduler/internal/middleware"
	"github.com/prepslot/interview-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := newLogger(cfg.Environment)
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, logger)

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	var zcfg zap.Config
	if env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{"stdout"}

	logger, err := zcfg.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}
