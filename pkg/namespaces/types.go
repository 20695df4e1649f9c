// Package namespaces resolves and provisions per-user workspace namespaces
// and maintains the user information secrets inside them.
package namespaces

import (
	"context"
)

// Actor identifies the user an operation is performed for. Every public
// operation takes the actor explicitly; there is no ambient request context.
type Actor struct {
	UserID   string
	UserName string
}

// Meta describes a resolved workspace namespace.
type Meta struct {
	// Name is the namespace name.
	Name string `json:"name"`

	// Attributes carries additional namespace metadata such as its phase.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// ResolutionContext carries the identity fields the namespace name template
// is evaluated against.
type ResolutionContext struct {
	UserID   string
	UserName string
}

// Resolver resolves, provisions, and names workspace namespaces.
// All methods may fail with an infrastructure error.
type Resolver interface {
	// List returns the workspace namespaces owned by the actor.
	List(ctx context.Context, actor Actor) ([]Meta, error)

	// Provision ensures the actor's workspace namespace exists and returns it.
	Provision(ctx context.Context, actor Actor) (*Meta, error)

	// EvaluateName computes the namespace name for the given identity without
	// touching the cluster.
	EvaluateName(ctx context.Context, resolutionCtx ResolutionContext) (string, error)
}
