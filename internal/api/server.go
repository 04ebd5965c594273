package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"stagedoor/internal/cache"
	"stagedoor/internal/config"
	"stagedoor/internal/database"
	"stagedoor/internal/handlers"
	"stagedoor/internal/logger"
	"stagedoor/internal/mail"
	"stagedoor/internal/messaging"
	"stagedoor/internal/middleware"
	"stagedoor/internal/repository"
	"stagedoor/internal/service"
)

// Server wires the HTTP API together: storage, cache, messaging, mail,
// services, and routes.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	otps     *cache.Client
	services *service.Services
	repos    *repository.Repositories
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}

	otps, err := cache.New(cfg.Cache)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}

	mailer := mail.NewMailer(cfg.Mail)

	repos := repository.NewRepositories(db)
	services := service.NewServices(cfg, repos, otps, natsClient, mailer)

	if err := seedOperator(cfg, repos); err != nil {
		logger.Fatal("Failed to seed operator account", "error", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		otps:     otps,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

// seedOperator ensures the single operator account exists. Without a
// configured password the server still starts, but the authenticated
// endpoints stay unusable.
func seedOperator(cfg *config.Config, repos *repository.Repositories) error {
	if cfg.OperatorPassword == "" {
		logger.Get().Warn("OPERATOR_PASSWORD not set, skipping operator account seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OperatorPassword), cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash operator password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return repos.Users.EnsureOperator(ctx, cfg.OperatorEmail, string(hash))
}

func (s *Server) setupRoutes() {
	h := handlers.New(s.services)

	api := s.router.Group("/api")
	{
		events := api.Group("/events")
		{
			events.POST("", h.CreateEvent)
			events.GET("", h.ListEvents)
			events.GET("/:id", h.GetEvent)
			events.DELETE("/:id", h.DeleteEvent)
		}

		seats := api.Group("/seats")
		{
			seats.POST("/initialize", h.InitializeSeats)
			seats.GET("", h.ListSeats)
			seats.GET("/by-ids", h.ListSeatsByIDs)
			seats.POST("/book", middleware.RequireAuth(s.config.JWTSecret), h.BookSeat)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", middleware.RequireAuth(s.config.JWTSecret), h.Me)
			auth.POST("/forgot-password", h.ForgotPassword)
			auth.POST("/verify-otp", h.VerifyOTP)
			auth.POST("/reset-password", h.ResetPassword)
		}
	}

	s.router.GET("/health", h.HealthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter exposes the router for embedding in an http.Server.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes external connections in reverse dependency order.
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			logger.Get().Error("Error closing NATS connection", "error", err)
		}
	}

	if s.otps != nil {
		if err := s.otps.Close(); err != nil {
			logger.Get().Error("Error closing Redis connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Get().Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
