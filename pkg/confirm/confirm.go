// Package confirm models destructive actions as deferred continuations: an
// action is staged, described back to the user, and only executed once the
// matching token is confirmed. At most one action is pending at a time;
// staging another replaces it. There is no queue and no timeout.
package confirm

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNoPending     = errors.New("no confirmation is pending")
	ErrTokenMismatch = errors.New("confirmation token does not match the pending action")
)

// Action is the continuation executed on confirmation. It receives the
// confirming caller's context, not the context of the request that staged it.
type Action func(ctx context.Context) error

type pending struct {
	token   string
	summary string
	run     Action
}

type Registry struct {
	mu      sync.Mutex
	pending *pending
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Stage registers an action and returns its confirmation token. Any
// previously pending action is discarded.
func (r *Registry) Stage(summary string, run Action) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := uuid.NewString()
	r.pending = &pending{token: token, summary: summary, run: run}
	return token
}

// Resolve executes the pending action if the token matches, clearing the
// slot either way on success. A mismatched token leaves the pending action
// in place.
func (r *Registry) Resolve(ctx context.Context, token string) error {
	r.mu.Lock()
	p := r.pending
	if p == nil {
		r.mu.Unlock()
		return ErrNoPending
	}
	if p.token != token {
		r.mu.Unlock()
		return ErrTokenMismatch
	}
	r.pending = nil
	r.mu.Unlock()

	return p.run(ctx)
}

// Cancel discards the pending action, if any.
func (r *Registry) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
}

// Pending returns the summary of the staged action, if one exists.
func (r *Registry) Pending() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		return "", false
	}
	return r.pending.summary, true
}
