// Package http provides the API server, its router and the operational endpoints.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/atluixx/lynkt/internal/auth/http"
	authService "github.com/atluixx/lynkt/internal/auth/service"
	linkHTTP "github.com/atluixx/lynkt/internal/link/http"
	"github.com/atluixx/lynkt/internal/metrics"
	userHTTP "github.com/atluixx/lynkt/internal/user/http"
)

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
}

// RouterConfig carries the settings the router needs beyond the handlers.
type RouterConfig struct {
	FrontendSecret   string
	CORSEnabled      bool
	CORSAllowOrigins string
	MetricsNamespace string
}

// Handlers groups the domain handlers mounted by SetupRouter.
type Handlers struct {
	Auth  *authHTTP.AuthHandler
	User  *userHTTP.UserHandler
	Link  *linkHTTP.LinkHandler
	Group *linkHTTP.GroupHandler

	// Profiles resolves :slug for the ownership gate on mutating routes.
	Profiles authHTTP.ProfileResolver
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port),
	}
}

// SetupRouter builds the gin engine with the middleware stack and every API route.
// All API groups sit behind the frontend gate. Owner-only routes add the token gate
// followed by the ownership gate, so foreign callers are refused before any body is read.
func (s *Server) SetupRouter(
	cfg RouterConfig,
	handlers Handlers,
	tokenCodec authService.TokenCodec,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			metricsProvider.MeterProvider(),
			cfg.MetricsNamespace,
			healthPath,
			readyPath,
		))
	}

	router.GET(healthPath, s.healthHandler)
	router.GET(readyPath, s.readinessHandler)

	frontendGate := authHTTP.FrontendSecretMiddleware(cfg.FrontendSecret, s.logger)
	tokenGate := authHTTP.AuthenticationMiddleware(tokenCodec, s.logger)
	ownerGate := authHTTP.OwnershipMiddleware(handlers.Profiles, s.logger)

	api := router.Group("/", frontendGate)

	auth := api.Group("/auth")
	{
		auth.POST("/register/", handlers.Auth.RegisterHandler)
		auth.POST("/login/", handlers.Auth.LoginHandler)
		auth.POST("/me/", tokenGate, authHTTP.WithClaims(handlers.Auth.MeHandler))
		auth.POST("/logout/", handlers.Auth.LogoutHandler)
	}

	api.GET("/slug/check/:slug/", handlers.User.SlugCheckHandler)

	users := api.Group("/users")
	{
		users.GET("/", handlers.User.ListHandler)
		users.GET("/:slug/", handlers.User.GetHandler)
		users.PATCH("/:slug/", tokenGate, ownerGate, authHTTP.WithClaims(handlers.User.UpdateHandler))
		users.DELETE("/:slug/", tokenGate, ownerGate, authHTTP.WithClaims(handlers.User.DeleteHandler))

		links := users.Group("/:slug/links")
		{
			links.GET("/", handlers.Link.ListHandler)
			links.POST("/", tokenGate, ownerGate, authHTTP.WithClaims(handlers.Link.CreateHandler))
			links.GET("/:id/", handlers.Link.GetHandler)
			links.PATCH("/:id/", tokenGate, ownerGate, authHTTP.WithClaims(handlers.Link.UpdateHandler))
			links.DELETE("/:id/", tokenGate, ownerGate, authHTTP.WithClaims(handlers.Link.DeleteHandler))
			links.POST("/:id/click/", handlers.Link.ClickHandler)
		}

		groups := users.Group("/:slug/groups")
		{
			groups.GET("/", handlers.Group.ListHandler)
			groups.POST("/", tokenGate, ownerGate, authHTTP.WithClaims(handlers.Group.CreateHandler))
			groups.PATCH("/:id/", tokenGate, ownerGate, authHTTP.WithClaims(handlers.Group.RenameHandler))
			groups.DELETE("/:id/", tokenGate, ownerGate, authHTTP.WithClaims(handlers.Group.DeleteHandler))
		}
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router
	return serve(s.server, s.logger, "api")
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return shutdown(ctx, s.server, s.logger, "api")
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only while the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
