package main

import (
	"context"
	"fmt"
	"net"
	"os"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/backend"
	"github.com/hassanali167/remote-desktop/internal/capture"
	"github.com/hassanali167/remote-desktop/internal/config"
	"github.com/hassanali167/remote-desktop/internal/input"
	"github.com/hassanali167/remote-desktop/internal/keepalive"
	"github.com/hassanali167/remote-desktop/internal/server"
	"github.com/hassanali167/remote-desktop/internal/session"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	capturer, geom, err := capture.NewDisplayCapturer(0)
	if err != nil {
		logger.Fatal("unable to initialize screen capture", zap.Error(err))
	}
	captureSvc := capture.NewService(capturer, cfg.JPEGQuality)

	store := session.NewStore(cfg, logger)

	var be backend.Backend
	if cfg.AgentEnabled {
		be = backend.NewRemoteBackend(cfg.AgentBaseURL, cfg.AgentToken, cfg.AgentTimeout, logger)
	} else {
		be = backend.NewLocalBackend(input.RobotInjector{}, geom, cfg.WakeCommands, logger)
	}

	srv, err := server.New(cfg, logger, store, captureSvc, geom, be)
	if err != nil {
		logger.Fatal("server init failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := keepalive.NewWorker(store, be, cfg.KeepAliveInterval, cfg.AgentEnabled, logger)
	go worker.Run(ctx)

	if cfg.PrintQR {
		printAccessQR(cfg)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// printAccessQR renders the gateway URL as a terminal QR code so a phone
// on the same network can open the login page without typing the address.
func printAccessQR(cfg *config.Config) {
	url := fmt.Sprintf("http://%s:%s/", advertiseHost(cfg.Host), cfg.Port)
	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return
	}
	fmt.Println(url)
	fmt.Println(code.ToSmallString(false))
}

// advertiseHost picks the address to put in the access URL. The bind
// address is usually the unspecified one, which a phone cannot dial, so
// it is replaced with the machine's first routable IPv4 address.
func advertiseHost(host string) string {
	ip := net.ParseIP(host)
	if host != "" && ip == nil {
		return host // explicit hostname
	}
	if ip != nil && !ip.IsUnspecified() {
		return host
	}

	addrs, err := net.InterfaceAddrs()
	if err == nil {
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok || ipNet.IP.IsLoopback() {
				continue
			}
			if v4 := ipNet.IP.To4(); v4 != nil {
				return v4.String()
			}
		}
	}
	return "127.0.0.1"
}
