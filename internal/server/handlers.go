package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/rgehrsitz/readyvault/internal/config"
	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/rgehrsitz/readyvault/internal/store"
)

// maxBodyBytes bounds profile uploads
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems,omitempty"`
}

type analysesResponse struct {
	Analyses []domain.RetirementAnalysis `json:"analyses"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "readyvault",
		"storage": s.store != nil,
	})
}

// handleAnalyze runs the requested methods against the posted profile
// without persisting anything
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	methods, ok := s.methodsParam(w, r)
	if !ok {
		return
	}
	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}

	analyses, err := s.analyze(r.Context(), profile, methods)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, analysesResponse{Analyses: analyses})
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	userID := chi.URLParam(r, "userID")
	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}

	if err := s.store.SaveProfile(r.Context(), userID, profile); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("Failed to save profile")
		s.writeError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	profile, ok := s.loadProfile(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

// handleCreateAnalyses analyses the stored profile and appends the results
// to the user's history
func (s *Server) handleCreateAnalyses(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	methods, ok := s.methodsParam(w, r)
	if !ok {
		return
	}
	profile, ok := s.loadProfile(w, r)
	if !ok {
		return
	}

	analyses, err := s.analyze(r.Context(), profile, methods)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	userID := chi.URLParam(r, "userID")
	for i := range analyses {
		if _, err := s.store.SaveAnalysis(r.Context(), userID, &analyses[i]); err != nil {
			s.log.Error().Err(err).Str("user_id", userID).Msg("Failed to save analysis")
			s.writeError(w, http.StatusInternalServerError, "failed to save analysis")
			return
		}
	}
	s.writeJSON(w, http.StatusCreated, analysesResponse{Analyses: analyses})
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var method domain.Method
	if raw := r.URL.Query().Get("method"); raw != "" {
		m, err := domain.ParseMethod(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		method = m
	}

	userID := chi.URLParam(r, "userID")
	analyses, err := s.store.ListAnalyses(r.Context(), userID, method)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("Failed to list analyses")
		s.writeError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []domain.RetirementAnalysis{}
	}
	s.writeJSON(w, http.StatusOK, analysesResponse{Analyses: analyses})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	userID := chi.URLParam(r, "userID")
	if err := s.store.DeleteUser(r.Context(), userID); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("Failed to delete user")
		s.writeError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// analyze runs each method, serving deterministic methods from the cache
func (s *Server) analyze(ctx context.Context, profile *domain.FinancialProfile, methods []domain.Method) ([]domain.RetirementAnalysis, error) {
	results := make([]domain.RetirementAnalysis, 0, len(methods))
	for _, m := range methods {
		var key string
		if Cacheable(m) {
			k, err := CacheKey(profile, m)
			if err != nil {
				return nil, err
			}
			key = k
			if cached, ok := s.cache.Get(ctx, key); ok {
				cached.CalculatedAt = s.now()
				results = append(results, *cached)
				continue
			}
		}

		a, err := s.engine.Analyze(profile, m)
		if err != nil {
			return nil, err
		}
		if key != "" {
			if err := s.cache.Set(ctx, key, a); err != nil {
				s.log.Warn().Err(err).Str("method", string(m)).Msg("Failed to cache analysis")
			}
		}
		results = append(results, *a)
	}
	return results, nil
}

// methodsParam reads ?method=; empty or "all" selects every method
func (s *Server) methodsParam(w http.ResponseWriter, r *http.Request) ([]domain.Method, bool) {
	raw := r.URL.Query().Get("method")
	if raw == "" || raw == "all" {
		return domain.AllMethods(), true
	}
	m, err := domain.ParseMethod(raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return []domain.Method{m}, true
}

// decodeProfile parses and validates a JSON profile body
func (s *Server) decodeProfile(w http.ResponseWriter, r *http.Request) (*domain.FinancialProfile, bool) {
	var profile domain.FinancialProfile
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&profile); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	if err := s.parser.ValidateProfile(&profile); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid profile", Problems: verr.Problems})
			return nil, false
		}
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &profile, true
}

func (s *Server) loadProfile(w http.ResponseWriter, r *http.Request) (*domain.FinancialProfile, bool) {
	userID := chi.URLParam(r, "userID")
	profile, err := s.store.LoadProfile(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "profile not found")
		return nil, false
	}
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
		s.writeError(w, http.StatusInternalServerError, "failed to load profile")
		return nil, false
	}
	return profile, true
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "storage is not configured")
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
