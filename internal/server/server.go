package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/eduforge/intern-matcher/internal/services"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

type matchRunner interface {
	Run(ctx context.Context, input models.UserInput) models.MatchRun
}

type runReader interface {
	GetByID(ctx context.Context, runID string) (*models.MatchRun, error)
	GetRecent(ctx context.Context, limit int) ([]models.MatchRun, error)
}

// Server is the HTTP boundary: request validation and delegation only, no
// matching logic of its own.
type Server struct {
	httpServer *http.Server
	pipeline   matchRunner
	runs       runReader
	profiling  *services.ProfilingService
	validate   *validator.Validate
}

func New(port int, pipeline matchRunner, runs runReader, profiling *services.ProfilingService) *Server {

	s := &Server{
		pipeline:  pipeline,
		runs:      runs,
		profiling: profiling,
		validate:  validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/match", s.handleMatch)
	mux.HandleFunc("GET /api/runs", s.handleListRuns)
	mux.HandleFunc("GET /api/runs/{id}", s.handleGetRun)
	mux.HandleFunc("POST /api/profiling/sessions", s.handleStartSession)
	mux.HandleFunc("GET /api/profiling/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /api/profiling/sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /api/profiling/sessions/{id}/messages", s.handleSessionMessage)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           requestLogger(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Run() error {
	log.Infof("api listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debugf("%s %s handled in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
