package tui

import (
	"context"

	"github.com/tonetui/tone/internal/one"
	"github.com/tonetui/tone/internal/resource"
)

// Provider is the gateway to the cloud platform whose inventory the
// interface browses. Calls block and are made from bubbletea commands,
// never from the update loop.
type Provider interface {
	// List fetches the current pool of items of the given kind.
	List(ctx context.Context, kind resource.Kind) ([]resource.Item, error)
	// Detail fetches the full document for a single resource.
	Detail(ctx context.Context, kind resource.Kind, id string) (*one.Document, error)
	// InvokeAction submits a state-changing action on a resource.
	InvokeAction(ctx context.Context, kind resource.Kind, id string, action resource.Action) error
}
