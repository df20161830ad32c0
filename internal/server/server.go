// Package server implements the gateway's HTTP surface: login, the MJPEG
// stream, input dispatch and the wake/health APIs.
package server

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/hassanali167/remote-desktop/internal/backend"
	"github.com/hassanali167/remote-desktop/internal/capture"
	"github.com/hassanali167/remote-desktop/internal/config"
	"github.com/hassanali167/remote-desktop/internal/security"
	"github.com/hassanali167/remote-desktop/internal/session"
	"github.com/hassanali167/remote-desktop/internal/ui"
)

type Server struct {
	cfg       *config.Config
	logger    *zap.Logger
	store     session.Store
	limiter   *security.LoginLimiter
	gate      *security.AccessGate
	clientIP  *security.ClientIPResolver
	creds     *security.Credentials
	signer    *session.CookieSigner
	capture   *capture.Service
	geom      capture.Geometry
	backend   backend.Backend
	templates *TemplateManager
	upgrader  websocket.Upgrader
}

func New(cfg *config.Config, logger *zap.Logger, store session.Store, capSvc *capture.Service, geom capture.Geometry, be backend.Backend) (*Server, error) {
	templates, err := NewTemplateManager(logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		limiter:   security.NewLoginLimiter(cfg.RateLimitAttempts, cfg.RateLimitWindow),
		gate:      security.NewAccessGate(cfg.AllowedSubnets, logger),
		clientIP:  security.NewClientIPResolver(cfg.TrustedProxies, logger),
		creds:     security.NewCredentials(cfg.Username, cfg.Password, cfg.PasswordHash),
		signer:    session.NewCookieSigner(cfg.Secret),
		capture:   capSvc,
		geom:      geom,
		backend:   be,
		templates: templates,
		upgrader: websocket.Upgrader{
			// Cookies already gate the endpoint; the origin check would
			// only reject same-LAN clients behind odd proxies.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// Handler builds the full middleware/route chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleLogin)
	mux.HandleFunc("/dashboard", s.requirePage(s.handleDashboard))
	mux.HandleFunc("/stream", s.requireAPI(s.handleStream))
	mux.HandleFunc("/api/input", s.requireAPI(s.handleInput))
	mux.HandleFunc("/ws/input", s.requireAPI(s.handleInputSocket))
	mux.HandleFunc("/api/host/wake", s.requireAPI(s.handleWake))
	mux.HandleFunc("/api/agent/health", s.requireAPI(s.handleAgentHealth))
	mux.HandleFunc("/logout", s.handleLogout)

	static, _ := fs.Sub(ui.Files, "js")
	mux.Handle("/static/js/", http.StripPrefix("/static/js/", http.FileServer(http.FS(static))))

	var handler http.Handler = mux
	handler = security.SecurityHeaders(handler)
	handler = s.accessControl(handler)
	handler = s.recovery(handler)
	return handler
}

// Run serves until SIGINT/SIGTERM or ctx cancellation, then drains.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Host + ":" + s.cfg.Port,
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	s.logger.Info("gateway listening",
		zap.String("addr", httpServer.Addr),
		zap.String("backend", s.backend.Name()))

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("forced shutdown", zap.Error(err))
	}
	return s.store.Close()
}
