// Package api exposes the footprint calculator over HTTP.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/footprint/internal/footprint"
)

// Server timeouts.
const (
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 10 * time.Second
)

// Options configure NewRouter.
type Options struct {
	Benchmarks footprint.Benchmarks
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string
	Logger         zerolog.Logger
	Version        string
}

// NewRouter builds the gin engine with logging, recovery and CORS applied.
func NewRouter(opts Options) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(RequestLogger(opts.Logger))
	router.Use(Recovery())

	h := NewHandler(opts.Benchmarks, opts.Version)

	router.GET("/health", h.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/presets", h.ListPresets)
		v1.POST("/calculate", h.Calculate)
		v1.POST("/export", h.Export)
	}

	router.NoRoute(func(c *gin.Context) {
		writeJSON(c, http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "NOT_FOUND", Message: "Not found"},
		})
	})

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID", "Content-Disposition"},
	}).Handler(router)
}

// Serve runs handler on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
