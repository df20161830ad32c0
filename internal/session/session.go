package session

import (
	"time"

	"github.com/hassanali167/remote-desktop/internal/constants"
)

// Session is an authenticated operator session. Sessions are created only
// after a successful login; there is no anonymous session state.
type Session struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"created_at"`
	LastActiveAt  time.Time `json:"last_active_at"`
}

// Expired reports whether the session has been idle past its TTL.
func (s *Session) Expired() bool {
	return time.Since(s.LastActiveAt) > constants.SessionTTL
}

// Store tracks authenticated sessions and their "active" markers. The
// active marker is separate from session validity: a session stays valid
// while idle, but only counts as active for keep-alive purposes while it
// has recent stream or input activity.
type Store interface {
	// Create mints a new authenticated session.
	Create() (*Session, error)
	// Get returns the session if it exists and has not expired.
	Get(id string) (*Session, bool)
	Delete(id string)
	// Touch refreshes the session's last-activity timestamp.
	Touch(id string)

	MarkActive(id string)
	ClearActive(id string)
	// AnyActive reports whether any session had stream or input activity
	// within the active window.
	AnyActive() bool

	Close() error
}
