// Package httpapi is the thin HTTP front-end (C7) mapping URL paths onto
// imgFS store operations. It owns everything spec.md keeps out of the
// storage engine's scope: the net/http listener, request logging,
// correlation IDs, and reply-status conventions.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"imgfs/internal/imgfs"
)

// Server wraps the imgFS store with the HTTP route table and structured
// request logging.
type Server struct {
	store     *imgfs.Store
	staticDir string
	log       *slog.Logger
	mux       *http.ServeMux
	debug     bool
}

// New builds a Server over an already-opened store. staticDir is the
// directory serving the index page (spec §4.7 "serve a static HTML file
// from disk").
func New(store *imgfs.Store, staticDir string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		store:     store,
		staticDir: staticDir,
		log:       log,
		mux:       http.NewServeMux(),
		debug:     os.Getenv("IMGFS_DEBUG") != "",
	}

	s.mux.HandleFunc("/{$}", s.handleIndex)
	s.mux.HandleFunc("/index.html", s.handleIndex)
	s.mux.HandleFunc("/imgfs/list", s.handleList)
	s.mux.HandleFunc("/imgfs/read", s.handleRead)
	s.mux.HandleFunc("/imgfs/delete", s.handleDelete)
	s.mux.HandleFunc("/imgfs/insert", s.handleInsert)
	// Anything else: spec §4.7 routes unmatched requests to a 500 error
	// reply, not net/http's default 404 — "/" here is the ServeMux
	// catch-all pattern, shadowed by the exact patterns registered above.
	s.mux.HandleFunc("/", s.handleUnmatched)

	return s
}

// ServeHTTP implements http.Handler, wrapping every request with structured
// logging and a correlation ID (spec §6.2 elaboration).
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := uuid.NewString()

	ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
	r = r.WithContext(ctx)

	if s.debug {
		s.log.Debug("dispatching request", "request_id", reqID, "method", r.Method, "path", r.URL.Path)
	}

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)

	s.log.Info("request handled",
		"request_id", reqID,
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start),
	)
}

type requestIDKey struct{}

// statusRecorder captures the status code written by a handler so it can
// be logged after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.staticDir+"/index.html")
}
