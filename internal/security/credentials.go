package security

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials verifies the single operator account. When a bcrypt hash is
// configured it takes precedence over the plaintext password.
type Credentials struct {
	username     string
	password     string
	passwordHash string
}

func NewCredentials(username, password, passwordHash string) *Credentials {
	return &Credentials{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
	}
}

// Verify checks both fields and never reveals which one was wrong. The
// username comparison always runs so failures take the same path either
// way.
func (c *Credentials) Verify(username, password string) bool {
	userOK := constantTimeEquals(username, c.username)

	var passOK bool
	if c.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(password)) == nil
	} else {
		passOK = constantTimeEquals(password, c.password)
	}

	return userOK && passOK
}

// constantTimeEquals hashes both inputs before comparing so length
// differences do not short-circuit the comparison.
func constantTimeEquals(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
