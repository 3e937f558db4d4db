package session

import (
	"context"
	"errors"
)

var ErrNoSession = errors.New("no active session")

// Store keeps one Session per opaque scope token. Implementations must not
// let callers share memory with what is stored.
type Store interface {
	Get(ctx context.Context, scope string) (*Session, error)
	Set(ctx context.Context, scope string, s *Session) error
	Clear(ctx context.Context, scope string) error
}
