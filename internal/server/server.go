// Package server implements the preview server. It renders routes on
// demand from an in-memory Site and, with live reload enabled, reloads the
// site when content changes and tells connected browsers to refresh.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/shanksdocs/internal/config"
	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/logfields"
	"git.home.luguber.info/inful/shanksdocs/internal/metrics"
	"git.home.luguber.info/inful/shanksdocs/internal/retry"
	"git.home.luguber.info/inful/shanksdocs/internal/server/middleware"
	"git.home.luguber.info/inful/shanksdocs/internal/site"
)

// Route paths served next to the site pages.
const (
	HealthPath     = "/healthz"
	MetricsPath    = "/metrics"
	LiveReloadPath = "/livereload"
)

const shutdownTimeout = 5 * time.Second

// Loader produces a freshly loaded site.
type Loader func() (*site.Site, error)

// Server serves one Site and swaps it on reload.
type Server struct {
	cfg      *config.Config
	load     Loader
	logger   *slog.Logger
	adapter  *ferrors.HTTPErrorAdapter
	registry *prom.Registry
	recorder metrics.Recorder
	hub      *LiveReloadHub
	policy   retry.Policy

	mu   sync.RWMutex
	site *site.Site
}

// Option configures a Server.
type Option func(*Server)

// WithLogger overrides the request and lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader overrides how the site is (re)loaded.
func WithLoader(fn Loader) Option {
	return func(s *Server) {
		if fn != nil {
			s.load = fn
		}
	}
}

// WithReloadPolicy overrides the configured reload retry policy. Saves
// from some editors briefly leave files truncated or missing.
func WithReloadPolicy(p retry.Policy) Option {
	return func(s *Server) { s.policy = p }
}

// New loads the site once and prepares the handler tree. Load errors are
// returned so a broken content directory fails fast at startup.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: slog.Default(),
		policy: cfg.Server.Reload.Policy(),
	}
	s.registry = prom.NewRegistry()
	s.recorder = metrics.NewPrometheusRecorder(s.registry)
	if s.LiveReload() {
		s.hub = NewLiveReloadHub()
	}
	s.load = func() (*site.Site, error) {
		return site.Load(s.cfg, site.WithRecorder(s.recorder), site.WithLiveReload(s.hub != nil))
	}
	for _, opt := range opts {
		opt(s)
	}
	s.adapter = ferrors.NewHTTPErrorAdapter(s.logger)

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	s.site = st
	return s, nil
}

// LiveReload reports whether content watching is active. The embedded site
// never changes, so it is only watched when pages come from disk.
func (s *Server) LiveReload() bool {
	return s.cfg.Server.LiveReload && !s.cfg.UsesEmbeddedContent()
}

// Site returns the currently served site.
func (s *Server) Site() *site.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Reload loads the site again and swaps it in, retrying per the reload
// policy. On failure the previous site keeps serving.
func (s *Server) Reload(ctx context.Context) error {
	var st *site.Site
	err := s.policy.Do(ctx, func() error {
		var err error
		st, err = s.load()
		if err != nil {
			s.logger.Debug("Site reload attempt failed", logfields.Error(err))
		}
		return err
	})
	s.recorder.IncSiteReload(err == nil)
	if err != nil {
		s.logger.Warn("Site reload failed; keeping previous version", logfields.Error(err))
		return err
	}
	s.mu.Lock()
	s.site = st
	s.mu.Unlock()
	s.logger.Info("Site reloaded", logfields.Count(len(st.Routes())))
	if s.hub != nil {
		s.hub.Broadcast()
	}
	return nil
}

// Handler returns the full handler tree wrapped in middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+HealthPath, s.handleHealth)
	mux.HandleFunc("GET "+site.StylesheetPath, s.handleCSS)
	if !s.cfg.Server.DisableMetrics {
		mux.Handle("GET "+MetricsPath, metrics.HTTPHandler(s.registry))
	}
	if s.hub != nil {
		mux.Handle("GET "+LiveReloadPath, s.hub)
	}
	mux.HandleFunc("GET /", s.handlePage)
	return middleware.Chain(s.logger, s.adapter, s.recorder)(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	css, err := s.Site().CSS()
	if err != nil {
		s.adapter.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(css)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	status := http.StatusOK
	body, err := st.Render(r.URL.Path)
	if ferrors.HasCategory(err, ferrors.CategoryNotFound) && !wantsJSON(r) {
		status = http.StatusNotFound
		body, err = st.RenderNotFound(r.URL.Path)
	}
	if err != nil {
		s.adapter.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// wantsJSON reports whether the client asked for JSON over HTML.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// ListenAndServe binds the configured address and serves until ctx is
// canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to bind preview server").
			WithContext("addr", s.cfg.Server.Addr).
			Fatal().
			Build()
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled. With live reload enabled the
// content directory and navigation file are watched for the same lifetime.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	var w *Watcher
	if s.hub != nil {
		var err error
		if w, err = NewWatcher(s.cfg.Content.Directory, s.cfg.Content.NavFile); err != nil {
			_ = ln.Close()
			return err
		}
	}

	eg, egctx := errgroup.WithContext(ctx)

	// WriteTimeout stays unset: live reload streams are long-lived.
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return egctx
		},
	}

	if w != nil {
		eg.Go(func() error {
			return w.Run(egctx, func() { _ = s.Reload(egctx) })
		})
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return ferrors.WrapError(err, ferrors.CategoryRuntime, "preview server failed").Build()
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		if s.hub != nil {
			s.hub.Shutdown()
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(egctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("HTTP server shutdown error", logfields.Error(err))
		}
		return nil
	})

	s.logger.Info("Preview server listening",
		logfields.Addr(ln.Addr().String()),
		slog.Bool("live_reload", s.hub != nil))

	if err := eg.Wait(); err != nil {
		return err
	}
	s.logger.Info("Preview server stopped")
	return nil
}
