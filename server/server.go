package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	algovista "github.com/iayr1/algovista-sub001"
	"github.com/iayr1/algovista-sub001/metric"
)

// Config configures a Server. Zero values select the defaults.
type Config struct {
	// Addr is the TCP listen address. Default ":8080".
	Addr string

	// RateLimit is the sustained number of requests per second across all
	// clients. <= 0 disables rate limiting.
	RateLimit float64

	// Burst is the rate limiter bucket size. Default: max(1, RateLimit).
	Burst int

	// Gzip enables response compression.
	Gzip bool

	// GzipMinSize is the smallest response body that is compressed.
	// Default 1024.
	GzipMinSize int

	// Metrics, when set, instruments requests and serves /metrics.
	Metrics *metric.PrometheusCollector

	// ReadHeaderTimeout bounds reading request headers. Default 5s.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default 10s.
	ShutdownTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Burst <= 0 {
		c.Burst = max(1, int(c.RateLimit))
	}
	if c.GzipMinSize <= 0 {
		c.GzipMinSize = 1024
	}
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = 5 * time.Second
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// Server serves one Site.
type Server struct {
	site    *algovista.Site
	cfg     Config
	logger  *algovista.Logger
	handler http.Handler
}

// New builds the handler chain for site.
func New(site *algovista.Site, cfg Config) (*Server, error) {
	cfg.applyDefaults()
	s := &Server{site: site, cfg: cfg, logger: site.Logger()}

	var h http.Handler = s.routes()
	if cfg.Gzip {
		wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(cfg.GzipMinSize))
		if err != nil {
			return nil, fmt.Errorf("server: gzip: %w", err)
		}
		h = wrap(h)
	}
	if cfg.RateLimit > 0 {
		h = rateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst), h)
	}
	if cfg.Metrics != nil {
		h = cfg.Metrics.InstrumentHandler(h)
	}
	h = logRequests(s.logger, h)
	h = recoverPanics(s.logger, h)

	s.handler = h
	return s, nil
}

// Handler returns the full handler chain.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on Config.Addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within Config.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.InfoContext(ctx, "server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.InfoContext(shutdownCtx, "server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
