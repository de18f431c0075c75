package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/eduforge/intern-matcher/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type matchRequest struct {
	AcademicYear int      `json:"academic_year" validate:"required,gte=1,lte=5"`
	Track        string   `json:"track" validate:"required"`
	Skills       []string `json:"skills"`
	Preference   string   `json:"preference" validate:"omitempty,oneof=egypt remote abroad hybrid"`
	Notes        string   `json:"notes"`
}

type startSessionRequest struct {
	StudentName string `json:"student_name"`
}

type sessionMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	preference, ok := models.ToLocationPreference(req.Preference)
	if !ok {
		preference = models.PreferenceEgypt
	}

	run := s.pipeline.Run(r.Context(), models.UserInput{
		AcademicYear: req.AcademicYear,
		Track:        req.Track,
		Skills:       req.Skills,
		Preference:   preference,
		Notes:        req.Notes,
	})

	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = parsed
	}

	runs, err := s.runs.GetRecent(r.Context(), limit)
	if err != nil {
		log.Errorf("failed to list runs: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {

	run, err := s.runs.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Errorf("failed to get run: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get run")
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}

	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {

	var req startSessionRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	session := s.profiling.StartSession(req.StudentName)
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {

	session, err := s.profiling.GetSession(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get session")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {

	if err := s.profiling.DeleteSession(r.PathValue("id")); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionMessage(w http.ResponseWriter, r *http.Request) {

	var req sessionMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := s.profiling.ProcessMessage(r.Context(), r.PathValue("id"), req.Message)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		log.Errorf("failed to process session message: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
