package backend

import (
	"context"
	"encoding/json"

	"github.com/hassanali167/remote-desktop/internal/protocol"
)

// Backend executes input and wake actions, either in-process (Local) or
// on a remote privileged agent (Remote). The selection is fixed at
// process start; there is no runtime failover between the two.
type Backend interface {
	Name() string
	// SendInput applies one wire event.
	SendInput(ctx context.Context, ev protocol.InputEvent) error
	// Wake nudges the display awake and returns the JSON body to relay
	// to the caller.
	Wake(ctx context.Context) (json.RawMessage, error)
	// KeepAlive is a best-effort liveness nudge for the controlled host.
	KeepAlive(ctx context.Context) error
	// Health returns the agent health body, or a disabled marker for the
	// local backend.
	Health(ctx context.Context) (json.RawMessage, error)
}
