// Package agent implements the privileged host agent's HTTP surface. The
// gateway talks to it with a bearer token; the agent performs the actual
// input injection and display wake on the controlled machine.
package agent

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/backend"
	"github.com/hassanali167/remote-desktop/internal/constants"
	"github.com/hassanali167/remote-desktop/internal/protocol"
)

// Server is the agent's HTTP handler set. Input and wake are delegated to
// a LocalBackend: from the agent's point of view the controlled desktop
// is always local.
type Server struct {
	token  string
	local  *backend.LocalBackend
	logger *zap.Logger
}

func NewServer(token string, local *backend.LocalBackend, logger *zap.Logger) *Server {
	return &Server{token: token, local: local, logger: logger}
}

// Handler builds the route table. /api/health is deliberately
// unauthenticated so the gateway can probe reachability without leaking
// the token into logs of a misconfigured agent.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/keepalive", s.auth(s.handleKeepAlive))
	mux.HandleFunc("/api/input", s.auth(s.handleInput))
	mux.HandleFunc("/api/wake", s.auth(s.handleWake))
	return mux
}

func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	expected := sha256.Sum256([]byte("Bearer " + s.token))
	return func(w http.ResponseWriter, r *http.Request) {
		provided := sha256.Sum256([]byte(r.Header.Get("Authorization")))
		if subtle.ConstantTimeCompare(provided[:], expected[:]) != 1 {
			writeJSON(w, http.StatusUnauthorized, protocol.ErrorResponse{Error: "invalid token"})
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, protocol.HealthResponse{
		Status: "ok",
		Time:   float64(time.Now().UnixNano()) / float64(time.Second),
	})
}

func (s *Server) handleKeepAlive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, protocol.ErrorResponse{Error: constants.MsgMethodNotAllowed})
		return
	}
	s.logger.Debug("keepalive ping received")
	writeJSON(w, http.StatusOK, protocol.StatusResponse{Status: "ok"})
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, protocol.ErrorResponse{Error: constants.MsgMethodNotAllowed})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxInputBodySize)
	var ev protocol.InputEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeJSON(w, http.StatusBadRequest, protocol.ErrorResponse{Error: constants.MsgInvalidJSON})
		return
	}

	if err := s.local.SendInput(r.Context(), ev); err != nil {
		s.logger.Warn("input injection failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, protocol.ErrorResponse{Error: "injection failed"})
		return
	}
	writeJSON(w, http.StatusOK, protocol.StatusResponse{Status: "queued"})
}

func (s *Server) handleWake(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, protocol.ErrorResponse{Error: constants.MsgMethodNotAllowed})
		return
	}

	if _, err := s.local.Wake(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, protocol.ErrorResponse{Error: "wake failed"})
		return
	}
	writeJSON(w, http.StatusOK, protocol.StatusResponse{Status: "ok", Message: "Wake executed"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
