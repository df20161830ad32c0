package constants

import (
	"net/http"
	"time"
)

// Network defaults
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = "5000"

	DefaultAgentBind = "127.0.0.1"
	DefaultAgentPort = "8787"
)

// Session settings
const (
	SessionCookieName     = "remote_desktop_session"
	SessionTTL            = 12 * time.Hour
	SessionCookieSameSite = http.SameSiteStrictMode
	CleanupInterval       = 30 * time.Second

	// ActiveWindow bounds how long a session counts as "active" after its
	// last stream frame or input event, for keep-alive purposes.
	ActiveWindow = 2 * time.Minute
)

// Capture defaults
const (
	DefaultCaptureInterval = 800 * time.Millisecond
	DefaultJPEGQuality     = 60
)

// Login rate limiting
const (
	DefaultRateLimitWindow   = time.Minute
	DefaultRateLimitAttempts = 5
)

// Wake / keep-alive
const (
	DefaultKeepAliveInterval = 30 * time.Second
	WakeCommandTimeout       = 5 * time.Second
	ResetCommandTimeout      = 2 * time.Second
)

// Agent defaults
const (
	DefaultAgentBaseURL = "http://127.0.0.1:8787"
	DefaultAgentTimeout = 5 * time.Second
)

// Request limits
const (
	MaxInputBodySize = 4 * 1024
	MaxLoginBodySize = 16 * 1024
	MaxAgentBodySize = 1 * 1024 * 1024
)

// Messages
const (
	MsgInvalidCredentials = "Invalid username or password."
	MsgTooManyAttempts    = "Too many attempts. Please wait and try again."
	MsgUnauthorized       = "Unauthorized"
	MsgForbidden          = "Forbidden"
	MsgMethodNotAllowed   = "Method not allowed"
	MsgInvalidJSON        = "Invalid JSON"
)

// DefaultTrustedProxies are the peers whose forwarding headers are
// believed when extracting the client IP: loopback and RFC1918, the
// ranges a local reverse proxy would occupy.
const DefaultTrustedProxies = "127.0.0.0/8,::1/128,10.0.0.0/8,172.16.0.0/12,192.168.0.0/16"

// DefaultAllowedSubnets admits loopback and RFC1918 ranges only; the
// gateway is meant to sit on a LAN or behind a VPN, never on the open
// internet.
const DefaultAllowedSubnets = "127.0.0.1/8,10.0.0.0/8,172.16.0.0/12,192.168.0.0/16"

// DefaultWakeCommands covers X11 DPMS, systemd unlock and console
// blanking; individual command failures are expected and ignored.
const DefaultWakeCommands = "xset dpms force on;xset s reset;loginctl unlock-sessions 2>/dev/null;setterm -blank 0 -powerdown 0 2>/dev/null"
