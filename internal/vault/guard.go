package vault

import (
	"github.com/wheval/vault/internal/types"
)

// Guard status values. Zero means "not entered" so that the zero value of
// ReentrancyGuard is ready to use.
const (
	notEntered uint32 = iota
	entered
)

// ReentrancyGuard rejects nested entry into guarded operations. There is a
// single flag shared by every guarded entry point, not one per account.
//
// Calls nest on one goroutine, so no other frame can interleave between the
// status check and the status write in Enter.
type ReentrancyGuard struct {
	status uint32
}

func NewReentrancyGuard() *ReentrancyGuard {
	return &ReentrancyGuard{}
}

// Enter marks the guard as entered. If a guarded operation is already in
// flight it fails with ReentrantCall and leaves the status untouched.
func (g *ReentrancyGuard) Enter() error {
	if g.status == entered {
		return types.NewError(types.ErrorReentrantCall)
	}
	g.status = entered
	return nil
}

// Exit unconditionally resets the guard. Callers are expected to pair it with
// exactly one successful Enter, but calling it again is harmless.
func (g *ReentrancyGuard) Exit() {
	g.status = notEntered
}

// IsEntered reports whether a guarded operation is currently in flight.
func (g *ReentrancyGuard) IsEntered() bool {
	return g.status == entered
}
