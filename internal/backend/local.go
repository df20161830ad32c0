package backend

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/capture"
	"github.com/hassanali167/remote-desktop/internal/constants"
	"github.com/hassanali167/remote-desktop/internal/input"
	"github.com/hassanali167/remote-desktop/internal/protocol"
)

// LocalBackend executes input and wake actions in-process against the
// local desktop.
type LocalBackend struct {
	injector input.Injector
	geom     capture.Geometry
	commands []string
	logger   *zap.Logger

	// sleep between jiggle steps, shortened in tests
	stepDelay time.Duration
}

func NewLocalBackend(injector input.Injector, geom capture.Geometry, wakeCommands []string, logger *zap.Logger) *LocalBackend {
	return &LocalBackend{
		injector:  injector,
		geom:      geom,
		commands:  wakeCommands,
		logger:    logger,
		stepDelay: 50 * time.Millisecond,
	}
}

func (b *LocalBackend) Name() string { return "local" }

func (b *LocalBackend) SendInput(ctx context.Context, ev protocol.InputEvent) error {
	input.Apply(b.injector, input.Translate(ev, b.geom))
	return nil
}

// Wake runs the configured wake commands best-effort, then always
// performs the synthetic-input jiggle: commands alone are not reliable
// enough across display servers to skip it even when they succeed.
func (b *LocalBackend) Wake(ctx context.Context) (json.RawMessage, error) {
	ranCommands := RunShellCommands(ctx, b.logger, b.commands, constants.WakeCommandTimeout)

	b.jiggle()

	if os.Getenv("DISPLAY") != "" {
		RunShellCommands(ctx, b.logger, []string{"xset dpms force on", "xset s reset"}, constants.ResetCommandTimeout)
	}

	return json.Marshal(protocol.WakeResponse{
		Status:      "ok",
		CommandsRun: ranCommands,
		Message:     "Wake signal sent. Display should activate shortly.",
	})
}

func (b *LocalBackend) KeepAlive(ctx context.Context) error {
	return nil
}

func (b *LocalBackend) Health(ctx context.Context) (json.RawMessage, error) {
	return json.Marshal(protocol.HealthResponse{Status: "disabled"})
}

// jiggle moves the pointer in a small pattern around the display center
// and taps a few wake-associated keys.
func (b *LocalBackend) jiggle() {
	cx, cy := b.geom.Center()
	for _, offset := range [][2]int{{0, 0}, {5, 5}, {-5, -5}, {0, 0}} {
		b.injector.Move(cx+offset[0], cy+offset[1])
		time.Sleep(b.stepDelay)
	}

	for _, key := range []string{"shift", "ctrl", "space"} {
		b.injector.KeyDown(key)
		time.Sleep(b.stepDelay / 2)
		b.injector.KeyUp(key)
		time.Sleep(b.stepDelay / 2)
	}
}
