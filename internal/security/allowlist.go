package security

import (
	"net"
	"strings"

	"go.uber.org/zap"
)

// AccessGate admits or denies requests by source IP against a static set
// of CIDR blocks. The set is parsed once at startup and never changes.
type AccessGate struct {
	networks []*net.IPNet
	logger   *zap.Logger
}

// NewAccessGate parses the configured CIDR list. Entries that fail to
// parse are skipped with a warning rather than aborting startup.
func NewAccessGate(cidrs []string, logger *zap.Logger) *AccessGate {
	gate := &AccessGate{logger: logger}
	for _, cidr := range cidrs {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			logger.Warn("skipping invalid allowed subnet", zap.String("cidr", cidr), zap.Error(err))
			continue
		}
		gate.networks = append(gate.networks, network)
	}
	return gate
}

// Allowed reports whether addr falls inside any configured subnet.
// Unparsable addresses are denied.
func (g *AccessGate) Allowed(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, network := range g.networks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
