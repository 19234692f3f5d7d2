// Package browser holds the state for one interactive run: the navigation
// stack of resource views, the per-view refresh bookkeeping, the command
// and filter grammar, and the gate every mutating action passes through.
// Everything here is mutated from the event loop alone; asynchronous work
// reports back as messages rather than touching state directly.
package browser

import (
	"github.com/google/uuid"

	"github.com/tonetui/tone/internal/resource"
)

// Session is the root of all browsing state.
type Session struct {
	endpoint string
	username string
	readonly bool

	stack  []*View
	status string
}

// NewSession starts a session with a single root view of the default
// resource kind.
func NewSession(endpoint, username string, readonly bool) *Session {
	return &Session{
		endpoint: endpoint,
		username: username,
		readonly: readonly,
		stack:    []*View{newView(resource.Vms)},
	}
}

// Endpoint returns the XML-RPC endpoint the session talks to.
func (s *Session) Endpoint() string { return s.endpoint }

// Username returns the authenticated user.
func (s *Session) Username() string { return s.username }

// Readonly reports whether mutating actions are disabled.
func (s *Session) Readonly() bool { return s.readonly }

// Current returns the top of the navigation stack, the only view that
// receives input.
func (s *Session) Current() *View {
	return s.stack[len(s.stack)-1]
}

// Push opens a fresh view of kind on top of the stack and returns it. The
// caller is expected to start a refresh for it.
func (s *Session) Push(kind resource.Kind) *View {
	v := newView(kind)
	s.stack = append(s.stack, v)
	return v
}

// Pop discards the current view and returns to the previous one, exactly
// as the user left it. At the root there is nowhere to go back to, so Pop
// reports a status and keeps the stack intact.
func (s *Session) Pop() bool {
	if len(s.stack) == 1 {
		s.status = "Already at the root view"
		return false
	}
	s.stack = s.stack[:len(s.stack)-1]
	return true
}

// Depth returns the navigation stack size.
func (s *Session) Depth() int { return len(s.stack) }

// ViewByID finds a stack entry by id. Async completions are tagged with
// the view id they belong to; results for popped views resolve to nil and
// are dropped.
func (s *Session) ViewByID(id uuid.UUID) *View {
	for _, v := range s.stack {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// Breadcrumb lists the stack's kinds from root to current.
func (s *Session) Breadcrumb() []string {
	crumbs := make([]string, len(s.stack))
	for i, v := range s.stack {
		crumbs[i] = v.Kind.String()
	}
	return crumbs
}

// Status returns the transient status line message, if any.
func (s *Session) Status() string { return s.status }

// SetStatus replaces the status line message.
func (s *Session) SetStatus(msg string) { s.status = msg }

// ClearStatus blanks the status line.
func (s *Session) ClearStatus() { s.status = "" }
