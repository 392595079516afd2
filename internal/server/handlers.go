package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/hyperjump/atsumeru/internal/auth"
	"github.com/hyperjump/atsumeru/internal/models"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if r.Method == http.MethodPost {
		var req models.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		query = req.Query
	}
	s.logger.Debug("search request", zap.String("query", query))
	response := s.aggregator.Search(r.Context(), query)
	s.respondJSON(w, http.StatusOK, response)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, err := s.aggregator.Auth().Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyCredentials) {
			s.respondError(w, http.StatusBadRequest, "check your credentials")
			return
		}
		s.logger.Error("login failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.logger.Info("login", zap.String("username", req.Username))
	s.respondJSON(w, http.StatusOK, map[string]any{"authenticated": true, "token": token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.aggregator.Auth().Logout()
	s.logger.Info("logout")
	s.respondJSON(w, http.StatusOK, map[string]any{"authenticated": false})
}

func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"authenticated": s.aggregator.Auth().Authenticated(),
	})
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"sources": s.aggregator.Sources()})
}

// handleConfig exposes the settings the SPA needs, not the whole config.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"ui": map[string]any{"debounce_ms": s.config.UI.DebounceMS},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
