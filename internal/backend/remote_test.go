package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/protocol"
)

func TestRemoteSendInputForwardsEvent(t *testing.T) {
	var gotAuth, gotPath string
	var gotEvent protocol.InputEvent

	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotEvent); err != nil {
			t.Error(err)
		}
		w.Write([]byte(`{"status":"queued"}`))
	}))
	defer agent.Close()

	b := NewRemoteBackend(agent.URL, "secret-token", time.Second, zap.NewNop())
	err := b.SendInput(context.Background(), protocol.InputEvent{
		Type:   protocol.TypeMouse,
		Action: protocol.ActionMove,
		X:      0.25,
		Y:      0.75,
	})
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/api/input" {
		t.Errorf("path = %q, want /api/input", gotPath)
	}
	if gotEvent.Action != protocol.ActionMove || gotEvent.X != 0.25 || gotEvent.Y != 0.75 {
		t.Errorf("agent received %+v", gotEvent)
	}
}

func TestRemoteNon2xxBecomesAgentError(t *testing.T) {
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "injector unavailable", http.StatusInternalServerError)
	}))
	defer agent.Close()

	b := NewRemoteBackend(agent.URL, "t", time.Second, zap.NewNop())
	err := b.SendInput(context.Background(), protocol.InputEvent{Type: protocol.TypeMouse})
	if err == nil {
		t.Fatal("expected error")
	}

	var agentErr *AgentError
	if !errors.As(err, &agentErr) {
		t.Fatalf("error type %T, want *AgentError", err)
	}
	if agentErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", agentErr.StatusCode)
	}
	if !strings.Contains(agentErr.Body, "injector unavailable") {
		t.Errorf("body = %q", agentErr.Body)
	}
}

func TestRemoteTransportErrorBecomesAgentError(t *testing.T) {
	b := NewRemoteBackend("http://127.0.0.1:1", "t", 200*time.Millisecond, zap.NewNop())

	var agentErr *AgentError
	if err := b.KeepAlive(context.Background()); !errors.As(err, &agentErr) {
		t.Fatalf("error = %v, want *AgentError", err)
	}
	if agentErr.StatusCode != 0 {
		t.Errorf("status = %d, want 0 for transport failure", agentErr.StatusCode)
	}
}

func TestRemoteWakePassesBodyThrough(t *testing.T) {
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/wake" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"status":"ok","message":"Wake executed"}`))
	}))
	defer agent.Close()

	b := NewRemoteBackend(agent.URL, "t", time.Second, zap.NewNop())
	raw, err := b.Wake(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"status":"ok","message":"Wake executed"}` {
		t.Errorf("body = %s", raw)
	}
}

func TestRemoteHealthUsesGet(t *testing.T) {
	var calls int32
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Write([]byte(`{"status":"ok","time":1}`))
	}))
	defer agent.Close()

	b := NewRemoteBackend(agent.URL, "t", time.Second, zap.NewNop())
	if _, err := b.Health(context.Background()); err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("agent called %d times, want 1", calls)
	}
}
