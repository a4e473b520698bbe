package web

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PreviewServer serves a directory of rendered HTML with live reload.
// Connected browsers hold a websocket to /_livereload; when a file in
// the directory changes, the server broadcasts a reload message.
type PreviewServer struct {
	dir          string
	pollInterval time.Duration
	router       chi.Router
	upgrader     websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// PreviewOption configures a PreviewServer.
type PreviewOption func(*PreviewServer)

// WithPollInterval sets how often the watched directory is scanned for
// changes (default: 500ms).
func WithPollInterval(d time.Duration) PreviewOption {
	return func(s *PreviewServer) {
		s.pollInterval = d
	}
}

// NewPreviewServer creates a preview server for the given directory.
func NewPreviewServer(dir string, opts ...PreviewOption) *PreviewServer {
	s := &PreviewServer{
		dir:          dir,
		pollInterval: 500 * time.Millisecond,
		clients:      make(map[*websocket.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(Metrics())
	r.Use(OpenTelemetry())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/_livereload", s.handleLiveReload)
	r.Handle("/*", http.FileServer(http.Dir(dir)))
	s.router = r

	return s
}

// Router returns the underlying chi router, for mounting into a larger
// application.
func (s *PreviewServer) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *PreviewServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server and the change watcher. It blocks
// until the context is canceled or the listener fails.
func (s *PreviewServer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	go s.watch(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("preview server listening", "addr", addr, "dir", s.dir)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// handleLiveReload upgrades the connection and parks it until the
// client disconnects or a reload is broadcast.
func (s *PreviewServer) handleLiveReload(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("livereload upgrade failed", "error", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()
	if globalMetrics != nil {
		globalMetrics.watchClients.Inc()
	}

	// Drain reads so close frames are processed.
	go func() {
		defer s.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *PreviewServer) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	if _, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		if globalMetrics != nil {
			globalMetrics.watchClients.Dec()
		}
	}
	s.mu.Unlock()
	conn.Close()
}

// broadcastReload tells every connected client to reload.
func (s *PreviewServer) broadcastReload() {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			s.dropClient(conn)
		}
	}
	if globalMetrics != nil && len(conns) > 0 {
		globalMetrics.reloadsSent.Inc()
	}
}

// watch polls the directory for modification-time changes and
// broadcasts a reload when anything changed.
func (s *PreviewServer) watch(ctx context.Context) {
	last := s.snapshot()
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := s.snapshot()
			if changed(last, current) {
				slog.Debug("output changed, broadcasting reload", "dir", s.dir)
				s.broadcastReload()
			}
			last = current
		}
	}
}

// snapshot records the modification time of every regular file under
// the watched directory.
func (s *PreviewServer) snapshot() map[string]time.Time {
	snap := make(map[string]time.Time)
	filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := os.Stat(path); err == nil {
			snap[path] = info.ModTime()
		}
		return nil
	})
	return snap
}

func changed(a, b map[string]time.Time) bool {
	if len(a) != len(b) {
		return true
	}
	for path, mtime := range b {
		if prev, ok := a[path]; !ok || !prev.Equal(mtime) {
			return true
		}
	}
	return false
}
