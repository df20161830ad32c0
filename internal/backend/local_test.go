package backend

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/capture"
	"github.com/hassanali167/remote-desktop/internal/protocol"
)

type recordingInjector struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingInjector) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recordingInjector) Move(x, y int)        { r.record("move") }
func (r *recordingInjector) Click(button string)  { r.record("click:" + button) }
func (r *recordingInjector) Scroll(deltaY int)    { r.record("scroll") }
func (r *recordingInjector) KeyDown(key string)   { r.record("down:" + key) }
func (r *recordingInjector) KeyUp(key string)     { r.record("up:" + key) }
func (r *recordingInjector) KeyTap(key string)    { r.record("tap:" + key) }

func newTestLocal(inj *recordingInjector, commands []string) *LocalBackend {
	b := NewLocalBackend(inj, capture.Geometry{Width: 800, Height: 600}, commands, zap.NewNop())
	b.stepDelay = 0
	return b
}

func TestLocalSendInputInjects(t *testing.T) {
	inj := &recordingInjector{}
	b := newTestLocal(inj, nil)

	err := b.SendInput(context.Background(), protocol.InputEvent{
		Type:   protocol.TypeMouse,
		Action: protocol.ActionClick,
		Button: "left",
		Double: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"click:left", "click:left"}
	if len(inj.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", inj.calls, want)
	}
	for i := range want {
		if inj.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", inj.calls, want)
		}
	}
}

func TestLocalSendInputIgnoresNoise(t *testing.T) {
	inj := &recordingInjector{}
	b := newTestLocal(inj, nil)

	if err := b.SendInput(context.Background(), protocol.InputEvent{Type: "bogus"}); err != nil {
		t.Fatal(err)
	}
	if len(inj.calls) != 0 {
		t.Fatalf("calls = %v, want none", inj.calls)
	}
}

func TestLocalWakeJigglesDespiteFailingCommands(t *testing.T) {
	inj := &recordingInjector{}
	b := newTestLocal(inj, []string{"false", "exit 1"})

	raw, err := b.Wake(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var resp protocol.WakeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if resp.CommandsRun {
		t.Error("commands_run = true, want false: every command failed")
	}

	var moves, downs int
	for _, call := range inj.calls {
		switch {
		case call == "move":
			moves++
		case len(call) > 5 && call[:5] == "down:":
			downs++
		}
	}
	if moves < 4 {
		t.Errorf("jiggle made %d moves, want at least 4", moves)
	}
	if downs != 3 {
		t.Errorf("jiggle pressed %d keys, want 3", downs)
	}
}

func TestLocalWakeWithoutCommands(t *testing.T) {
	inj := &recordingInjector{}
	b := newTestLocal(inj, nil)

	raw, err := b.Wake(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var resp protocol.WakeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.CommandsRun {
		t.Error("commands_run = true, want false")
	}
	if len(inj.calls) == 0 {
		t.Error("jiggle did not run")
	}
}

func TestLocalHealthReportsDisabled(t *testing.T) {
	b := newTestLocal(&recordingInjector{}, nil)

	raw, err := b.Health(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var resp protocol.HealthResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "disabled" {
		t.Errorf("status = %q, want disabled", resp.Status)
	}
}
