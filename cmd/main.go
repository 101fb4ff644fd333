package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/task-management-api/config"
	"github.com/oksasatya/task-management-api/internal/container"
	"github.com/oksasatya/task-management-api/internal/infrastructure/mongodb"
	"github.com/oksasatya/task-management-api/internal/interface/middleware"
	"github.com/oksasatya/task-management-api/internal/router"
	"github.com/oksasatya/task-management-api/pkg/helpers"
	"github.com/oksasatya/task-management-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	// MongoDB: the gateway connects lazily, ping once for fail-fast startup
	mongoClient := mongodb.NewClient(cfg.MongoURI, cfg.DatabaseName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongoClient.Ping(ctx); err != nil {
		cancel()
		logger.Fatalf("failed to connect to mongodb: %v", err)
	}
	if err := mongodb.NewUserRepository(mongoClient).EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Warn("failed to ensure user indexes")
	}
	cancel()

	// JWT
	jwtManager, err := helpers.NewJWTManager(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenTTL)
	if err != nil {
		logger.Fatalf("failed to init JWT manager: %v", err)
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetMongo(mongoClient)
	container.SetJWT(jwtManager)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger))
	}

	// CORS
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Task Management API"})
	})

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r, cfg.APIPrefix)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	if err := mongoClient.Close(ctxShutdown); err != nil {
		logger.WithError(err).Warn("mongodb disconnect failed")
	}
	logger.Info("server exited properly")
}
