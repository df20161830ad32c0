package security

import (
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ClientIPResolver extracts the client IP from a request, trusting
// forwarding headers only when the direct peer is a known proxy. The
// proxy set is parsed once at construction, like the allowlist.
type ClientIPResolver struct {
	proxies []*net.IPNet
}

// NewClientIPResolver parses the trusted-proxy CIDR list. Entries that
// fail to parse are skipped with a warning rather than aborting startup.
func NewClientIPResolver(cidrs []string, logger *zap.Logger) *ClientIPResolver {
	resolver := &ClientIPResolver{}
	for _, cidr := range cidrs {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			logger.Warn("skipping invalid trusted proxy", zap.String("cidr", cidr), zap.Error(err))
			continue
		}
		resolver.proxies = append(resolver.proxies, network)
	}
	return resolver
}

func (rv *ClientIPResolver) trusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, network := range rv.proxies {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP returns the request's client IP, following X-Forwarded-For
// and X-Real-Ip only when the direct peer is a trusted proxy.
func (rv *ClientIPResolver) ClientIP(r *http.Request) string {
	directIP, _, _ := net.SplitHostPort(r.RemoteAddr)
	if directIP == "" {
		directIP = r.RemoteAddr
	}

	if rv.trusted(directIP) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			clientIP := strings.TrimSpace(strings.Split(xff, ",")[0])
			if net.ParseIP(clientIP) != nil {
				return clientIP
			}
		}
		if xri := r.Header.Get("X-Real-Ip"); xri != "" {
			xri = strings.TrimSpace(xri)
			if net.ParseIP(xri) != nil {
				return xri
			}
		}
	}

	return directIP
}
