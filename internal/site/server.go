package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/apidoc/internal/config"
)

// Server serves a generated site and rebuilds it when the source changes.
type Server struct {
	cfg     *config.Config
	gen     *Generator
	log     logrus.FieldLogger
	metrics *metrics
	hub     *reloadHub
	router  chi.Router

	mu   sync.Mutex // serialises rebuilds
	last *Result
}

// NewServer creates a Server for gen. Pages built through it reconnect to
// the live reload endpoint.
func NewServer(cfg *config.Config, gen *Generator, log logrus.FieldLogger) *Server {
	m := newMetrics()
	gen.LiveReload = true
	s := &Server{
		cfg:     cfg,
		gen:     gen,
		log:     log,
		metrics: m,
		hub:     newReloadHub(log, m),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.log, NoColor: true}))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.Server.CORSAllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/stats", s.handleStats)
	r.Handle("/metrics", s.metrics.handler())
	r.Get("/ws/reload", s.hub.handleWebSocket)

	// Static files (must be registered after API routes).
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.OutputDir)))

	return r
}

// Handler returns the HTTP handler serving the site.
func (s *Server) Handler() http.Handler { return s.router }

// statsResponse is the JSON response for /api/stats.
type statsResponse struct {
	Built     bool `json:"built"`
	Packages  int  `json:"packages"`
	Cards     int  `json:"cards"`
	Sections  int  `json:"sections"`
	Functions int  `json:"functions"`
	Expanded  int  `json:"expanded"`
	Warnings  int  `json:"warnings"`
	Clients   int  `json:"reload_clients"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := statsResponse{Clients: s.hub.count()}
	if res := s.last; res != nil {
		resp.Built = true
		resp.Packages = res.Packages
		resp.Cards = res.Stats.Cards
		resp.Sections = res.Stats.Sections
		resp.Functions = res.Stats.Functions
		resp.Expanded = res.Expanded
		resp.Warnings = len(res.Warnings)
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Rebuild regenerates the site and tells connected pages to reload.
func (s *Server) Rebuild(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	res, err := s.gen.Generate(ctx)
	s.metrics.observeBuild(res, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("rebuilding site: %w", err)
	}
	s.last = res

	clients := s.hub.broadcast(reloadMessage)
	s.log.WithFields(logrus.Fields{
		"duration": time.Since(start).Round(time.Millisecond),
		"sections": res.Stats.Sections,
		"clients":  clients,
	}).Info("site rebuilt")
	return res, nil
}

// Watch rebuilds the site whenever the source file or a template override
// changes, waiting for the configured delay after the last change. It
// returns when ctx is cancelled.
func (s *Server) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories so editors that replace files are still seen.
	dirs := []string{filepath.Dir(s.cfg.Source)}
	if s.cfg.TemplatesDir != "" {
		dirs = append(dirs, s.cfg.TemplatesDir)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	delay := time.Duration(s.cfg.Server.WatchDelayMS) * time.Millisecond
	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	s.log.WithField("source", s.cfg.Source).Info("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.relevant(event) {
				continue
			}
			s.log.WithField("file", event.Name).Debug("change detected")
			if timer == nil {
				timer = time.AfterFunc(delay, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(delay)
			}

		case <-fire:
			if _, err := s.Rebuild(ctx); err != nil {
				s.log.WithError(err).Error("rebuild failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.WithError(err).Warn("watcher error")
		}
	}
}

// relevant reports whether event touches the source or a template override.
func (s *Server) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	if name == filepath.Clean(s.cfg.Source) {
		return true
	}
	return s.cfg.TemplatesDir != "" &&
		filepath.Dir(name) == filepath.Clean(s.cfg.TemplatesDir) &&
		filepath.Ext(name) == ".tmpl"
}

// ListenAndServe serves the site until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.WithField("url", fmt.Sprintf("http://localhost:%d", s.cfg.Server.Port)).Info("serving documentation")
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.hub.closeAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
