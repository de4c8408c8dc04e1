// Package scrolllock provides reference-counted suppression of page
// scrolling.
//
// Any number of surfaces may hold the lock at once; suppression is active
// exactly while at least one token is outstanding, and the originally
// captured style is restored verbatim when the last token is released.
package scrolllock

import (
	"github.com/google/uuid"

	"github.com/go-drift/headless/pkg/dom"
	"github.com/go-drift/headless/pkg/errors"
)

// suppressedStyle is applied to the scroll container while any token is
// outstanding.
const suppressedStyle = "hidden"

// Token is an opaque handle returned by Acquire. Releasing the same token
// twice has no effect.
type Token struct {
	id uuid.UUID
}

// Lock counts outstanding acquisitions against one scroll container.
type Lock struct {
	target   dom.ScrollContainer
	tokens   map[uuid.UUID]struct{}
	captured string
}

// NewLock returns a lock over the given scroll container.
func NewLock(target dom.ScrollContainer) *Lock {
	return &Lock{
		target: target,
		tokens: make(map[uuid.UUID]struct{}),
	}
}

// Acquire suppresses scrolling and returns the token that keeps it
// suppressed. On the transition from zero to one outstanding token the
// container's current inline style is captured before the suppressing style
// is applied.
func (l *Lock) Acquire() Token {
	tok := Token{id: uuid.New()}
	if len(l.tokens) == 0 {
		l.captured = l.target.OverflowStyle()
		l.target.SetOverflowStyle(suppressedStyle)
	}
	l.tokens[tok.id] = struct{}{}
	return tok
}

// Release returns one token. On the transition from one to zero outstanding
// tokens the originally captured style is restored verbatim. Releasing an
// unknown or already-released token is a no-op, and restoration against a
// misbehaving container is best-effort: it never panics.
func (l *Lock) Release(tok Token) {
	defer errors.Recover("scrolllock.Release")
	if _, ok := l.tokens[tok.id]; !ok {
		return
	}
	delete(l.tokens, tok.id)
	if len(l.tokens) == 0 {
		l.target.SetOverflowStyle(l.captured)
		l.captured = ""
	}
}

// Active reports whether suppression is currently in effect.
func (l *Lock) Active() bool { return len(l.tokens) > 0 }

// Outstanding returns the number of unreleased tokens.
func (l *Lock) Outstanding() int { return len(l.tokens) }
