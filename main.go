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

	"github.com/Rachana0206/dream-frame-studio/applications/booking"
	"github.com/Rachana0206/dream-frame-studio/applications/contact"
	"github.com/Rachana0206/dream-frame-studio/applications/gallery"
	"github.com/Rachana0206/dream-frame-studio/applications/notify"
	"github.com/Rachana0206/dream-frame-studio/configs"
	"github.com/Rachana0206/dream-frame-studio/controllers"
	"github.com/Rachana0206/dream-frame-studio/db"
	"github.com/Rachana0206/dream-frame-studio/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Continuing...")
	}

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Configuration loading failed: %v", err)
	}

	logger.Log.Info("[main] program started")

	// --- DATABASE CONNECTION ---
	logger.Log.Info("[main] Attempting to connect to PostgreSQL...")
	conn, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Database connection failed: %v", err))
		log.Fatalf("Database initialization failed: %v", err)
	}
	logger.Log.Info("[main] Database connection successful.")
	defer conn.Close()

	logger.Log.Info("[main] Running database migrations...")
	if err := db.RunMigrations(conn); err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Database migration failed: %v", err))
		log.Fatalf("Database migration failed: %v", err)
	}

	// --- SERVICES ---
	mailer := notify.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	dispatcher := notify.NewDispatcher(mailer)

	store := booking.NewStore(conn)
	bookingService := booking.NewService(store, dispatcher, cfg.ContactEmail, cfg.AppURL)
	contactService := contact.NewService(dispatcher, cfg.ContactEmail)
	gallerySource := gallery.NewSource(cfg.GalleryFile)

	bookingController := controllers.NewBookingController(bookingService)
	contactController := controllers.NewContactController(contactService)
	galleryController := controllers.NewGalleryController(gallerySource)

	// --- HTTP SERVER ---
	e := echo.New()
	e.HideBanner = true

	logger.Log.Info("[main] Configuring global middleware.")
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	logger.Log.Info("[router] Registering public routes.")
	e.Static("/", cfg.PublicDir)
	e.File("/admin", cfg.PublicDir+"/admin.html")

	api := e.Group("/api")
	api.GET("/instagram", galleryController.Instagram)
	api.POST("/bookings", bookingController.Create)
	api.GET("/bookings", bookingController.List)
	api.PUT("/bookings/:id", bookingController.UpdateStatus)
	api.DELETE("/bookings/:id", bookingController.Delete)
	api.POST("/contact", contactController.Submit)
	logger.Log.Info("[router] Booking and contact routes configured.")

	// --- LIFECYCLE ---
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info(fmt.Sprintf("[main] Starting Echo server on http://localhost:%s", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("[main] Shutdown signal received; stopping HTTP server.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Server exited with error: %v", err))
	}

	// Let in-flight notification attempts finish, then let go.
	dispatcher.Drain(5 * time.Second)
	logger.Log.Info("[main] Shutdown complete. Database connection closed.")
}
