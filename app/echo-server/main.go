package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lingxi/app/echo-server/router"
	customerService "lingxi/business/customer"
	feedbackService "lingxi/business/feedback"
	productService "lingxi/business/product"
	"lingxi/business/recommend"
	userService "lingxi/business/user"
	"lingxi/internal/middleware"
	"lingxi/internal/repository/memory"
	"lingxi/internal/repository/notification"
	psqlRepo "lingxi/internal/repository/postgres"
	"lingxi/internal/rest"
	"lingxi/pkg/config"
	"lingxi/pkg/database"
	"lingxi/pkg/logger"
	"lingxi/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting LingXi", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Notifier: Mailjet when configured, log-only otherwise
	var notifier userService.NotificationRepository
	if cfg.Mailjet.MailjetBaseUrl != "" {
		notifier = notification.NewMailjetRepository(
			notification.MailjetConfig{
				MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
				MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
				MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
				MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
				MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
			},
		)
	} else {
		notifier = notification.NewLogRepository()
	}

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	catalogRepo := memory.NewCatalogRepository()
	feedbackRepo := memory.NewFeedbackRepository()

	// Init service
	resolver := customerService.NewResolver()
	users := userService.NewUserService(userRepo, validate, notifier, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	products := productService.NewProductService(catalogRepo)
	feedbacks := feedbackService.NewService(feedbackRepo, catalogRepo)
	recommender := recommend.NewRecommendService(catalogRepo, resolver, feedbackRepo, recommend.DefaultConfig())

	// Init handler
	userHandler := rest.NewUserHandler(users)
	productHandler := rest.NewProductHandler(products, recommender)
	customerHandler := rest.NewCustomerHandler(resolver, recommender, feedbacks)
	feedbackHandler := rest.NewFeedbackHandler(feedbacks)
	recommendHandler := rest.NewRecommendHandler(recommender)
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Version, catalogRepo, feedbackRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()
	selfOrAdmin := middleware.SelfOrAdmin()

	e.GET("/api/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly, selfOrAdmin)
	router.SetupProductRoutes(api, productHandler)
	router.SetupCustomerRoutes(api, customerHandler, feedbackHandler, recommendHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
