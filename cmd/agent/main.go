// The host agent runs privileged on the controlled machine and exposes
// input injection and display wake over an authenticated HTTP API.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/agent"
	"github.com/hassanali167/remote-desktop/internal/backend"
	"github.com/hassanali167/remote-desktop/internal/capture"
	"github.com/hassanali167/remote-desktop/internal/config"
	"github.com/hassanali167/remote-desktop/internal/constants"
	"github.com/hassanali167/remote-desktop/internal/input"
)

func main() {
	_ = godotenv.Load()

	bind := config.GetEnv("HOST_AGENT_BIND", constants.DefaultAgentBind)
	port := config.GetEnv("HOST_AGENT_PORT", constants.DefaultAgentPort)
	token := config.GetEnv("HOST_AGENT_TOKEN", "replace-this-agent-token")
	wakeCommands := splitCommands(config.GetEnv("HOST_AGENT_WAKE_COMMANDS", constants.DefaultWakeCommands))

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	_, geom, err := capture.NewDisplayCapturer(0)
	if err != nil {
		logger.Fatal("unable to resolve display geometry", zap.Error(err))
	}

	local := backend.NewLocalBackend(input.RobotInjector{}, geom, wakeCommands, logger)
	srv := agent.NewServer(token, local, logger)

	httpServer := &http.Server{
		Addr:              bind + ":" + port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("host agent listening", zap.String("addr", httpServer.Addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("agent server error", zap.Error(err))
	}
}

func splitCommands(val string) []string {
	var out []string
	for _, cmd := range strings.Split(val, ";") {
		if cmd = strings.TrimSpace(cmd); cmd != "" {
			out = append(out, cmd)
		}
	}
	return out
}
