package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notes-api/docs"
	"notes-api/internal/config"
	"notes-api/internal/handlers"
	"notes-api/internal/middleware"
	"notes-api/pkg/logger"
	"notes-api/pkg/server"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Notes API
// @version 1.0
// @description List, create and delete short text notes

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.Environment, false)

	container, err := server.NewContainer(context.Background(), cfg, server.WithLogger(log))
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newEngine(container),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.WithFields(logrus.Fields{
		"port":  cfg.Port,
		"store": cfg.Store.Type,
	}).Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exited")
}

// newEngine mounts the notes router behind the local middleware stack.
// Every path without an explicit route is handed to the notes router so
// it can apply its own routing table and 404 body.
func newEngine(container *server.Container) *gin.Engine {
	cfg := container.Config
	log := container.Logger

	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.StructuredLogger(log))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.ErrorHandler(log))
	engine.Use(middleware.RateLimiter(log, cfg.Server.RateLimit, cfg.Server.RateBurst))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"store":     cfg.Store.Type,
			"timestamp": time.Now().UTC(),
			"version":   "1.0.0",
		})
	})

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	notes := handlers.NewRouter(container.NoteService)
	engine.NoRoute(notes.GinHandler())

	return engine
}
