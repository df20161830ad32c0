package backend

import (
	"context"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// RunShellCommands executes each command through the shell with its own
// timeout. Failures are logged at debug and otherwise ignored; the return
// value reports whether at least one command exited successfully. Display
// wake behavior varies wildly across environments, so every command is
// always attempted.
func RunShellCommands(ctx context.Context, logger *zap.Logger, commands []string, timeout time.Duration) bool {
	ranAny := false
	for _, command := range commands {
		if runShellCommand(ctx, logger, command, timeout) {
			ranAny = true
		}
	}
	return ranAny
}

func runShellCommand(ctx context.Context, logger *zap.Logger, command string, timeout time.Duration) bool {
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, "sh", "-c", command)
	if err := cmd.Run(); err != nil {
		logger.Debug("wake command failed", zap.String("command", command), zap.Error(err))
		return false
	}
	return true
}
