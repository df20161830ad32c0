// Package keepalive runs the background loop that keeps the controlled
// display from sleeping while an operator session is active.
package keepalive

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/backend"
	"github.com/hassanali167/remote-desktop/internal/constants"
	"github.com/hassanali167/remote-desktop/internal/session"
)

// resetCommands is the fixed list of best-effort display keep-alive
// nudges run each tick. Distinct from the operator-triggered wake
// commands, which are configurable.
var resetCommands = []string{"xset s reset", "loginctl unlock-sessions"}

// Worker ticks for the process lifetime. Each tick is best-effort: every
// failure is swallowed, this is a liveness nudge, not a correctness path.
type Worker struct {
	store    session.Store
	backend  backend.Backend
	interval time.Duration
	remote   bool
	logger   *zap.Logger
}

func NewWorker(store session.Store, be backend.Backend, interval time.Duration, remote bool, logger *zap.Logger) *Worker {
	return &Worker{
		store:    store,
		backend:  be,
		interval: interval,
		remote:   remote,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	if !w.store.AnyActive() {
		return
	}

	backend.RunShellCommands(ctx, w.logger, resetCommands, constants.ResetCommandTimeout)

	if w.remote {
		if err := w.backend.KeepAlive(ctx); err != nil {
			w.logger.Debug("agent keep-alive failed", zap.Error(err))
		}
	}
}
