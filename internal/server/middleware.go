package server

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/constants"
)

// accessControl denies every request whose source IP is outside the
// allowed subnets, the login page included. The 403 carries no detail.
func (s *Server) accessControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := s.clientIP.ClientIP(r)
		if !s.gate.Allowed(ip) {
			s.logger.Info("request denied by allow-list", zap.String("ip", ip), zap.String("path", r.URL.Path))
			http.Error(w, constants.MsgForbidden, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("panic recovered",
					zap.Any("panic", err),
					zap.ByteString("stack", debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
