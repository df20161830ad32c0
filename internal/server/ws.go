package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/protocol"
	"github.com/hassanali167/remote-desktop/internal/session"
)

const (
	wsReadLimit    = 4 * 1024
	wsReadDeadline = 60 * time.Second
)

// handleInputSocket accepts one WebSocket carrying a stream of input
// events, an alternative to per-event POSTs for high-rate mouse movement.
// Events follow the same dispatch path as /api/input; malformed messages
// are dropped, backend failures close the socket.
func (s *Server) handleInputSocket(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("input socket closed", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))

		var ev protocol.InputEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			// Browser input streams are noisy; bad frames are not fatal.
			continue
		}

		s.store.Touch(sess.ID)
		s.store.MarkActive(sess.ID)

		if err := s.dispatchInput(r, ev); err != nil {
			s.logger.Warn("input socket dispatch failed", zap.Error(err))
			return
		}
	}
}
