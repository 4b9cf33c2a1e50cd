package preview

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hewgo/hew/internal/dev"
	"github.com/hewgo/hew/pkg/middleware"
)

// Options configures the preview server.
type Options struct {
	// SiteDir is the directory of rendered files to serve.
	SiteDir string

	// Host is the address to bind to (default: "localhost").
	Host string

	// Port is the port to listen on (default: 3000).
	Port int

	// LiveReload enables the reload endpoint, script injection, and
	// file watching.
	LiveReload bool

	// Metrics enables the /metrics endpoint and request metrics.
	Metrics bool

	// Tracing enables the OpenTelemetry middleware.
	Tracing bool

	// OnReload is called after a reload broadcast with the number of
	// connected clients.
	OnReload func(clients int)

	// Logger overrides the default logger.
	Logger *slog.Logger
}

// Server serves a rendered site with live reload.
type Server struct {
	opts       Options
	reload     *dev.ReloadServer
	watcher    *dev.Watcher
	httpServer *http.Server
	logger     *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewServer creates a preview server for the given options.
func NewServer(opts Options) *Server {
	if opts.Host == "" {
		opts.Host = "localhost"
	}
	if opts.Port == 0 {
		opts.Port = 3000
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default().With("component", "preview")
	}

	s := &Server{
		opts:   opts,
		logger: logger,
	}
	if opts.LiveReload {
		s.reload = dev.NewReloadServer()
		s.watcher = dev.NewWatcher(dev.WatcherConfig{
			Paths: []string{opts.SiteDir},
		})
	}
	return s
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.opts.Host, fmt.Sprint(s.opts.Port))
}

// Handler builds the HTTP handler: site files plus the service
// endpoints. Exposed for tests and embedding.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	if s.opts.Metrics {
		r.Use(middleware.Metrics())
	}
	if s.opts.Tracing {
		r.Use(middleware.OpenTelemetry())
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	if s.opts.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	if s.reload != nil {
		r.Get("/_hew/reload", s.reload.HandleWebSocket)
	}
	r.NotFound(s.serveSite)

	return r
}

// Start runs the server until ctx is cancelled. When live reload is on,
// the watcher runs alongside and file changes broadcast to connected
// browsers.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.watcher != nil {
		s.watcher.OnChange(s.onChange)
		go s.watcher.Start(ctx) //nolint:errcheck // exits with ctx
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.Addr(), "site", s.opts.SiteDir)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false

	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// onChange maps a file change to the narrowest reload that covers it.
func (s *Server) onChange(change dev.Change) {
	switch change.Type {
	case dev.ChangeCSS:
		s.logger.Debug("css changed", "path", change.Path)
		s.reload.NotifyCSS(filepath.Base(change.Path))
	default:
		s.logger.Debug("file changed", "path", change.Path)
		s.reload.NotifyReload()
	}
	if s.opts.OnReload != nil {
		s.opts.OnReload(s.reload.ClientCount())
	}
}

// serveSite serves files from the site directory, injecting the reload
// client script into HTML responses when live reload is enabled.
func (s *Server) serveSite(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.opts.SiteDir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path = filepath.Join(path, "index.html")
		_, err = os.Stat(path)
	}
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if s.reload != nil && strings.HasSuffix(path, ".html") {
		s.serveInjected(w, r, path)
		return
	}
	http.ServeFile(w, r, path)
}

// serveInjected writes an HTML file with the reload script spliced in
// before </body>, or appended when no closing tag is present.
func (s *Server) serveInjected(w http.ResponseWriter, r *http.Request, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	html := string(data)
	if idx := strings.LastIndex(html, "</body>"); idx >= 0 {
		html = html[:idx] + dev.ClientScript + html[idx:]
	} else {
		html += dev.ClientScript
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}
