// Package server assembles the gin engine and runs it until the context is
// cancelled.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fyyur/database"
	"fyyur/internal/config"
	"fyyur/internal/http-api/handler"
	"fyyur/internal/http-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Handlers struct {
	Venues  *handler.VenueHandler
	Artists *handler.ArtistHandler
	Shows   *handler.ShowHandler
}

// NewRouter mounts every route. Write routes share one per-IP rate limiter.
func NewRouter(cfg *config.Config, log *slog.Logger, db *gorm.DB, h Handlers) *gin.Engine {
	r := gin.New()
	// client IP comes from the socket, not from forwarded headers
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("trusted_proxies_not_set", "error", err)
	}

	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	if cfg.PrometheusEnabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/check-conn", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			log.Error("database_ping_failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	h.Venues.RegisterRoutes(r.Group("/venues"), limiter.Middleware())
	h.Artists.RegisterRoutes(r.Group("/artists"), limiter.Middleware())
	h.Shows.RegisterRoutes(r.Group("/shows"), limiter.Middleware())

	return r
}

// Run serves h on addr until ctx is done, then drains in-flight
// requests for up to shutdownTimeout.
func Run(ctx context.Context, log *slog.Logger, addr string, h http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info("http_server_started", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		log.Info("http_server_stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
