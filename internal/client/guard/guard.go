// Package guard implements the client-side gate applied to every protected
// screen: wait for session hydration, then either authorize or redirect to
// the public entry point. This is a UX convenience only; it confers no
// server-side access control.
package guard

import (
	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/client/session"
)

// State is the gate's verdict for one evaluation.
type State int

const (
	// StateChecking: hydration has not completed; render a blocking
	// indicator and do not assume the absence of an identity.
	StateChecking State = iota

	// StateAuthorized: an identity is present; the screen may proceed to
	// its data fetch.
	StateAuthorized

	// StateRedirecting: hydration completed with no identity; the screen
	// must hand control back to the public entry and render nothing else.
	StateRedirecting
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthorized:
		return "authorized"
	case StateRedirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// Evaluate is the pure gating rule shared by every protected screen.
func Evaluate(hydrated bool, identity *models.User) State {
	if !hydrated {
		return StateChecking
	}
	if identity == nil {
		return StateRedirecting
	}
	return StateAuthorized
}

// Guard binds the gating rule to the live session provider.
type Guard struct {
	provider *session.Provider
}

func New(provider *session.Provider) *Guard {
	return &Guard{provider: provider}
}

// Check evaluates the gate against the provider's current state.
func (g *Guard) Check() State {
	return Evaluate(g.provider.Hydrated(), g.provider.Current())
}

// Watch re-evaluates the gate on every session transition, so a logout in
// another part of the UI re-triggers gating on a mounted screen. The
// returned cancel function detaches the watcher.
func (g *Guard) Watch(onChange func(State)) func() {
	return g.provider.Subscribe(func(identity *models.User) {
		onChange(Evaluate(g.provider.Hydrated(), identity))
	})
}
