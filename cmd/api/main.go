package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agency-contact-backend/config"
	_ "agency-contact-backend/docs" // Important for Swagger
	v1 "agency-contact-backend/internal/delivery/http/v1"
	"agency-contact-backend/internal/usecase"
	"agency-contact-backend/pkg/email"
	"agency-contact-backend/pkg/logger"
	"agency-contact-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Agency Contact API
// @version         1.0
// @description     Contact form backend of the agency website: validates submissions and dispatches notification and confirmation emails.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting agency contact backend", "port", cfg.Port)
	gin.SetMode(cfg.GinMode)

	// 3. Setup Email Transport (credentials stay inside the sender)
	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUsername,
		Password:    cfg.SMTPPassword,
		Timeout:     cfg.SMTPTimeout,
		ImplicitTLS: cfg.SMTPImplicitTLS,
	})
	if !sender.IsConfigured() {
		logger.Log.Warn("Email transport not configured - contact submissions will fail")
	}

	// 4. Setup Renderer
	location, err := email.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		logger.Log.Error("Invalid display timezone", "timezone", cfg.DisplayTimezone, "error", err)
		os.Exit(1)
	}
	renderer := email.NewRenderer(email.RendererConfig{
		AgencyName:   cfg.AgencyName,
		FromAddress:  cfg.SMTPFromEmail,
		InboxAddress: cfg.ContactEmailTo,
		Website:      cfg.AgencyWebsite,
		Location:     location,
	})

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(usecase.ContactDeps{
		Validator: usecase.NewContactValidator(validation.New()),
		Renderer:  renderer,
		Sender:    sender,
		Logger:    logger.Component("contact"),
	})
	healthUC := usecase.NewHealthUsecase(sender)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
		Logger:    logger.Component("http"),
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// In-flight dispatches may still be waiting on the relay
	ctx, cancel := context.WithTimeout(context.Background(), cfg.SMTPTimeout*2+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
