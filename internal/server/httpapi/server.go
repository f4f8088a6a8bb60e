// Package httpapi exposes the account flows over HTTP using gin. Flow
// errors are converted to a status code and a short message at this
// boundary; no internal detail ever reaches the client.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Decanton/Twitter-Clone/internal/logging"
	"github.com/Decanton/Twitter-Clone/internal/server/auth"
	"github.com/Decanton/Twitter-Clone/internal/server/config"
	"github.com/Decanton/Twitter-Clone/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	origins []string
	logger  logging.Logger
	users   *users.Service
	issuer  *auth.CookieIssuer
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service) *Server {
	return &Server{
		address: cfg.Address,
		origins: strings.Split(cfg.CORSAllowedOrigins, ","),
		logger:  l.With("module", "http_server"),
		users:   us,
		issuer:  auth.NewCookieIssuer(cfg),
	}
}

// Router assembles the gin engine: recovery, CORS with credentials, and the
// auth routes.
func (s *Server) Router() *gin.Engine {

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = s.origins
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.handleHealth)

	api := router.Group("/api/auth")
	{
		api.POST("/signup", s.handleSignup)
		api.POST("/login", s.handleLogin)
		api.POST("/logout", s.handleLogout)
		api.GET("/me", s.requireAuth(), s.handleGetMe)
	}

	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
