package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/studioforma/contact-api/internal/api/handlers"
	"github.com/studioforma/contact-api/internal/api/middleware"
	"github.com/studioforma/contact-api/internal/api/validation"
	"github.com/studioforma/contact-api/internal/config"
	"github.com/studioforma/contact-api/internal/logging"
	"github.com/studioforma/contact-api/internal/mailer"
	"github.com/studioforma/contact-api/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// Server owns the HTTP engine, the rate-limit table and its sweeper
type Server struct {
	cfg     *config.Config
	router  *gin.Engine
	limiter *ratelimit.Limiter
	sweeper *ratelimit.Sweeper
	sender  mailer.Sender
}

// New assembles the full service. The limiter and sweeper live here, not in
// package-level state, so tests can build isolated instances.
func New(cfg *config.Config) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own logger is replaced by our request logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	validation.RegisterDefault()

	limiter := ratelimit.NewLimiter()
	sender := mailer.NewBrevoClient(cfg.BrevoAPIKey, !cfg.IsProduction())

	s := &Server{
		cfg:     cfg,
		router:  gin.New(),
		limiter: limiter,
		sweeper: ratelimit.NewSweeper(limiter, ratelimit.DefaultSweepInterval),
		sender:  sender,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	logger := logging.GetLogger()

	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger(logger))
	s.router.Use(middleware.CORS(s.cfg.AllowedOrigins, s.cfg.IsProduction()))
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))

	healthHandler := handlers.NewHealthHandler()
	contactHandler := handlers.NewContactHandler(s.cfg, s.limiter, s.sender)

	s.router.GET("/health", healthHandler.Check)

	api := s.router.Group("/api")
	{
		api.POST("/contact", contactHandler.Submit)
		// Preflights are answered by the CORS middleware with 204
		api.OPTIONS("/contact", func(c *gin.Context) {})
	}
}

// Router exposes the engine for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully and stops
// the background sweeper
func (s *Server) Run(ctx context.Context) error {
	logger := logging.GetLogger()

	s.sweeper.Start()
	defer s.sweeper.Stop()

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	logger.Info("contact API listening on :%s (env=%s)", s.cfg.Port, s.cfg.Environment)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
