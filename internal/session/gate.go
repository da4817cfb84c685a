// Package session implements the admin gate: a single shared flag toggled
// by a passcode check. It controls which editing affordances the site
// exposes; it is a convenience gate for the sole operator, not a security
// boundary, and the content store deliberately does not consult it.
package session

import (
	"crypto/subtle"
	"errors"
	"sync"
)

// ErrPasscodeMismatch is reported when a login attempt fails. There is no
// lockout and no rate limiting beyond the HTTP layer's per-IP limiter.
var ErrPasscodeMismatch = errors.New("incorrect passcode")

// Gate holds the admin flag. The flag always starts false and is never
// persisted; a restart locks the site again.
type Gate struct {
	passcode string

	mu    sync.RWMutex
	admin bool
}

// NewGate creates a Gate guarded by the given passcode.
// PRE: passcode is non-empty
func NewGate(passcode string) *Gate {
	return &Gate{passcode: passcode}
}

// Login compares the attempt against the passcode. On match the admin
// flag is set and true is returned; otherwise the flag is unchanged.
func (g *Gate) Login(attempt string) bool {
	if subtle.ConstantTimeCompare([]byte(attempt), []byte(g.passcode)) != 1 {
		return false
	}
	g.mu.Lock()
	g.admin = true
	g.mu.Unlock()
	return true
}

// Logout clears the admin flag unconditionally.
func (g *Gate) Logout() {
	g.mu.Lock()
	g.admin = false
	g.mu.Unlock()
}

// IsAdmin reports whether admin mode is active.
func (g *Gate) IsAdmin() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.admin
}
