package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// CookieSigner signs session IDs into tamper-evident cookie values. The
// key is derived from the configured secret so all workers of one
// deployment accept each other's cookies.
type CookieSigner struct {
	key []byte
}

func NewCookieSigner(secret string) *CookieSigner {
	key := sha256.Sum256([]byte("remote-desktop-cookie:" + secret))
	return &CookieSigner{key: key[:]}
}

// Sign produces "id:signature".
func (c *CookieSigner) Sign(id string) string {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(id))
	sig := hex.EncodeToString(mac.Sum(nil))
	return id + ":" + sig
}

// Verify validates a cookie value and returns the embedded session ID.
func (c *CookieSigner) Verify(value string) (string, bool) {
	parts := splitCookieValue(value)
	if parts == nil {
		return "", false
	}
	id := parts[0]
	providedSig := parts[1]

	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(id))
	expectedSig := hex.EncodeToString(mac.Sum(nil))

	if subtle.ConstantTimeCompare([]byte(providedSig), []byte(expectedSig)) != 1 {
		return "", false
	}
	return id, true
}

func splitCookieValue(value string) []string {
	idx := -1
	for i := len(value) - 1; i >= 0; i-- {
		if value[i] == ':' {
			idx = i
			break
		}
	}
	if idx <= 0 || idx >= len(value)-1 {
		return nil
	}
	return []string{value[:idx], value[idx+1:]}
}
