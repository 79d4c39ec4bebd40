// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"

	"gatorkut/internal/auth"
	"gatorkut/internal/config"
	"gatorkut/internal/database"
	"gatorkut/internal/middleware"
	"gatorkut/internal/repository"
	"gatorkut/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config        *config.Config
	db            *gorm.DB
	tokens        *auth.TokenService
	uploads       *service.UploadService
	userRepo      repository.UserRepository
	postRepo      repository.PostRepository
	commentRepo   repository.CommentRepository
	communityRepo repository.CommunityRepository
	friendRepo    repository.FriendRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the store.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{
		config:        cfg,
		db:            db,
		tokens:        auth.NewTokenService(cfg.JWTSecret),
		uploads:       service.NewUploadService(cfg),
		userRepo:      repository.NewUserRepository(db),
		postRepo:      repository.NewPostRepository(db),
		commentRepo:   repository.NewCommentRepository(db),
		communityRepo: repository.NewCommunityRepository(db),
		friendRepo:    repository.NewFriendRepository(db),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into the logger
	app.Use(middleware.ContextMiddleware())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	authRequired := middleware.AuthRequired(s.tokens)

	// Auth routes
	authGroup := app.Group("/auth")
	authGroup.Post("/register", s.Register)
	authGroup.Post("/login", s.Login)

	// User routes
	app.Get("/users", s.GetUsers)
	app.Get("/users/me", authRequired, s.GetMyProfile)
	app.Post("/users/me", authRequired, s.UpdateMyProfile)

	// Post routes
	app.Get("/posts", s.GetPosts)
	app.Post("/posts", authRequired, s.CreatePost)
	app.Post("/posts/:id/like", authRequired, s.LikePost)
	app.Post("/posts/:id/meow", authRequired, s.MeowPost)
	app.Get("/posts/:id/comments", s.GetComments)
	app.Post("/posts/:id/comments", authRequired, s.CreateComment)

	// Community routes
	app.Get("/communities", s.GetCommunities)
	app.Post("/communities", authRequired, s.CreateCommunity)
	app.Post("/communities/:id/join", authRequired, s.JoinCommunity)
	app.Post("/communities/:id/leave", authRequired, s.LeaveCommunity)

	// Friend routes
	app.Post("/friends/request", authRequired, s.SendFriendRequest)
	app.Post("/friends/:id/accept", authRequired, s.AcceptFriendRequest)
	app.Get("/friends/requests", authRequired, s.GetFriendRequests)

	// Uploaded assets are public social-media content; no auth on purpose.
	app.Static(service.URLPrefix, s.config.UploadDir)
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(_ context.Context) error {
	return database.Close(s.db)
}
