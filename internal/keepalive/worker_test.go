package keepalive

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/protocol"
	"github.com/hassanali167/remote-desktop/internal/session"
)

type fakeStore struct {
	active bool
}

func (s *fakeStore) Create() (*session.Session, error)    { return &session.Session{}, nil }
func (s *fakeStore) Get(id string) (*session.Session, bool) { return nil, false }
func (s *fakeStore) Delete(id string)                     {}
func (s *fakeStore) Touch(id string)                      {}
func (s *fakeStore) MarkActive(id string)                 {}
func (s *fakeStore) ClearActive(id string)                {}
func (s *fakeStore) AnyActive() bool                      { return s.active }
func (s *fakeStore) Close() error                         { return nil }

type fakeBackend struct {
	keepAlives int32
	err        error
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) SendInput(ctx context.Context, ev protocol.InputEvent) error { return nil }

func (b *fakeBackend) Wake(ctx context.Context) (json.RawMessage, error) { return nil, nil }

func (b *fakeBackend) KeepAlive(ctx context.Context) error {
	atomic.AddInt32(&b.keepAlives, 1)
	return b.err
}

func (b *fakeBackend) Health(ctx context.Context) (json.RawMessage, error) { return nil, nil }

func TestTickSkipsWhenNoActiveSession(t *testing.T) {
	be := &fakeBackend{}
	w := NewWorker(&fakeStore{active: false}, be, time.Minute, true, zap.NewNop())

	w.tick(context.Background())

	if n := atomic.LoadInt32(&be.keepAlives); n != 0 {
		t.Fatalf("keep-alive called %d times, want 0", n)
	}
}

func TestTickForwardsKeepAliveToRemoteAgent(t *testing.T) {
	be := &fakeBackend{}
	w := NewWorker(&fakeStore{active: true}, be, time.Minute, true, zap.NewNop())

	w.tick(context.Background())

	if n := atomic.LoadInt32(&be.keepAlives); n != 1 {
		t.Fatalf("keep-alive called %d times, want 1", n)
	}
}

func TestTickSkipsAgentForLocalBackend(t *testing.T) {
	be := &fakeBackend{}
	w := NewWorker(&fakeStore{active: true}, be, time.Minute, false, zap.NewNop())

	w.tick(context.Background())

	if n := atomic.LoadInt32(&be.keepAlives); n != 0 {
		t.Fatalf("keep-alive called %d times, want 0 for local backend", n)
	}
}

func TestTickSwallowsAgentError(t *testing.T) {
	be := &fakeBackend{err: errors.New("agent down")}
	w := NewWorker(&fakeStore{active: true}, be, time.Minute, true, zap.NewNop())

	// Must not panic or abort; the loop is best-effort.
	w.tick(context.Background())
	w.tick(context.Background())

	if n := atomic.LoadInt32(&be.keepAlives); n != 2 {
		t.Fatalf("keep-alive called %d times, want 2", n)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	be := &fakeBackend{}
	w := NewWorker(&fakeStore{}, be, 10*time.Millisecond, true, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
