package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/database"
	"github.com/emilythestrangee/hackernews-clone/backend/internal/events"
	"github.com/emilythestrangee/hackernews-clone/backend/internal/handlers"
	"github.com/emilythestrangee/hackernews-clone/backend/internal/middleware"
)

type Server struct {
	db      database.Service
	hub     *events.Hub
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Initialize database
	db := database.New()

	// Change notifier shared by write handlers and the SSE stream
	hub := events.NewHub(logrus.StandardLogger())

	// Create unified handler
	handler := handlers.NewHandler(db.GetDB(), hub)

	// Create server instance
	newServer := &Server{
		db:      db,
		hub:     hub,
		handler: handler,
	}

	// Configure Gin router
	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logrus.Printf("🚀 Server starting on port %s", port)

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/signup", s.handler.Auth.Signup)
		api.POST("/login", s.handler.Auth.Login)

		// Feed and link routes (public reads)
		api.GET("/feed", s.handler.Feed.GetFeed)
		api.GET("/links", s.handler.Link.ListLinks)
		api.GET("/links/:id", s.handler.Link.GetLink)

		// Live event stream (public)
		api.GET("/events", s.handler.Events.Stream)

		// Link submission allows anonymous callers; a bad token is still
		// rejected rather than treated as anonymous
		api.POST("/links", middleware.OptionalAuth(), s.handler.Link.CreateLink)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("/me", s.handler.Auth.GetMe)
			protected.POST("/links/:id/vote", s.handler.Vote.Vote)
		}
	}

	return r
}
