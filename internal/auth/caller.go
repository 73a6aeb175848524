package auth

import (
	"context"

	"github.com/veridian-studio/backoffice/internal/adminuser"
)

// Caller is the resolved identity behind a request. Services take it as
// an explicit argument rather than reading ambient session state.
type Caller struct {
	AdminID string
	UserID  string
	Name    string
	Email   string
	Role    adminuser.Role
}

type contextKey struct{}

// WithCaller stores the caller in the request context.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// CallerFrom extracts the caller placed by the gate middleware.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(contextKey{}).(Caller)
	return c, ok
}
