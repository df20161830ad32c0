package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/backend"
	"github.com/hassanali167/remote-desktop/internal/constants"
	"github.com/hassanali167/remote-desktop/internal/protocol"
	"github.com/hassanali167/remote-desktop/internal/session"
)

// sessionFromRequest resolves the signed session cookie to a live session.
func (s *Server) sessionFromRequest(r *http.Request) (*session.Session, bool) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil {
		return nil, false
	}
	id, ok := s.signer.Verify(cookie.Value)
	if !ok {
		return nil, false
	}
	return s.store.Get(id)
}

// requirePage gates HTML pages: unauthenticated visitors go to the login
// form.
func (s *Server) requirePage(next func(http.ResponseWriter, *http.Request, *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.sessionFromRequest(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r, sess)
	}
}

// requireAPI gates API endpoints and the stream: unauthenticated access
// fails closed with 401 before any action runs.
func (s *Server) requireAPI(next func(http.ResponseWriter, *http.Request, *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.sessionFromRequest(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, protocol.ErrorResponse{Error: constants.MsgUnauthorized})
			return
		}
		next(w, r, sess)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ip := s.clientIP.ClientIP(r)
	var loginError string

	if r.Method == http.MethodPost {
		r.Body = http.MaxBytesReader(w, r.Body, constants.MaxLoginBodySize)

		if s.limiter.IsLimited(ip) {
			// Credentials are deliberately not consulted while limited.
			loginError = constants.MsgTooManyAttempts
		} else {
			username := strings.TrimSpace(r.FormValue("username"))
			password := strings.TrimSpace(r.FormValue("password"))

			if s.creds.Verify(username, password) {
				sess, err := s.store.Create()
				if err != nil {
					s.logger.Error("session create failed", zap.Error(err))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				s.limiter.Clear(ip)
				s.setSessionCookie(w, r, sess.ID)
				s.logger.Info("login succeeded", zap.String("ip", ip))
				http.Redirect(w, r, "/dashboard", http.StatusFound)
				return
			}

			s.limiter.RecordFailure(ip)
			s.logger.Info("login failed", zap.String("ip", ip))
			loginError = constants.MsgInvalidCredentials
		}
	}

	if _, ok := s.sessionFromRequest(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	s.templates.Render(w, "login.html", map[string]interface{}{"Error": loginError})
}

func (s *Server) setSessionCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    s.signer.Sign(id),
		Path:     "/",
		MaxAge:   int(constants.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: constants.SessionCookieSameSite,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	s.store.MarkActive(sess.ID)
	s.templates.Render(w, "dashboard.html", map[string]interface{}{
		"ScreenWidth":  s.geom.Width,
		"ScreenHeight": s.geom.Height,
		"AgentEnabled": s.backend.Name() == "remote",
	})
}

// handleStream pushes JPEG frames as a multipart/x-mixed-replace body
// until the client disconnects or a capture fails. A capture failure ends
// this stream only; other streams and the process are unaffected.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-store")

	s.store.MarkActive(sess.ID)
	defer s.store.ClearActive(sess.ID)

	ctx := r.Context()
	for {
		frame, err := s.capture.NextFrame()
		if err != nil {
			s.logger.Warn("capture failed, ending stream", zap.Error(err))
			return
		}

		if _, err := fmt.Fprintf(w, "--frame\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\n", len(frame.Data)); err != nil {
			return
		}
		if _, err := w.Write(frame.Data); err != nil {
			return
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return
		}
		flusher.Flush()

		s.store.Touch(sess.ID)
		s.store.MarkActive(sess.ID)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.cfg.CaptureInterval):
		}
	}
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request, sess *session.Session) {
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

	s.store.Touch(sess.ID)
	s.store.MarkActive(sess.ID)

	if err := s.dispatchInput(r, ev); err != nil {
		writeJSON(w, http.StatusBadGateway, protocol.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, protocol.StatusResponse{Status: "ok"})
}

// dispatchInput routes one event to the selected backend. A failing
// remote backend surfaces the error; the local backend is never attempted
// as a fallback.
func (s *Server) dispatchInput(r *http.Request, ev protocol.InputEvent) error {
	err := s.backend.SendInput(r.Context(), ev)
	if err != nil {
		var agentErr *backend.AgentError
		if errors.As(err, &agentErr) {
			s.logger.Warn("agent rejected input", zap.Error(agentErr))
		}
	}
	return err
}

func (s *Server) handleWake(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, protocol.ErrorResponse{Error: constants.MsgMethodNotAllowed})
		return
	}

	body, err := s.backend.Wake(r.Context())
	if err != nil {
		s.logger.Warn("wake failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, protocol.ErrorResponse{Error: err.Error()})
		return
	}
	writeRaw(w, http.StatusOK, body)
}

func (s *Server) handleAgentHealth(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	body, err := s.backend.Health(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"status": "error", "detail": err.Error()})
		return
	}
	writeRaw(w, http.StatusOK, body)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.sessionFromRequest(r); ok {
		s.store.ClearActive(sess.ID)
		s.store.Delete(sess.ID)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
