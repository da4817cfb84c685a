package session_test

import (
	"testing"

	"rilliex/internal/session"
)

func TestGate_Login(t *testing.T) {
	gate := session.NewGate("correct")

	if gate.IsAdmin() {
		t.Fatal("fresh gate must start locked")
	}

	if gate.Login("wrong") {
		t.Error("Login with wrong passcode returned true")
	}
	if gate.IsAdmin() {
		t.Error("failed login flipped the admin flag")
	}

	if !gate.Login("correct") {
		t.Error("Login with correct passcode returned false")
	}
	if !gate.IsAdmin() {
		t.Error("successful login did not set the admin flag")
	}
}

func TestGate_LogoutAlwaysClears(t *testing.T) {
	gate := session.NewGate("correct")

	// Logout from the locked state is a no-op, not an error
	gate.Logout()
	if gate.IsAdmin() {
		t.Error("logout from locked state set the flag")
	}

	gate.Login("correct")
	gate.Logout()
	if gate.IsAdmin() {
		t.Error("logout did not clear the admin flag")
	}
}

func TestGate_FailedLoginAfterSuccessKeepsFlag(t *testing.T) {
	gate := session.NewGate("correct")
	gate.Login("correct")

	// A later bad attempt leaves the flag unchanged
	if gate.Login("wrong") {
		t.Error("wrong passcode accepted")
	}
	if !gate.IsAdmin() {
		t.Error("failed login cleared an active admin flag")
	}
}
