package auth

import (
	"context"
	"net/http"
)

// identityKey is the context key for the verified identity label.
type identityKey struct{}

// WithIdentity returns a shallow copy of r whose context carries the
// verified identity label.
func WithIdentity(r *http.Request, identity string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey{}, identity))
}

// IdentityFromContext retrieves the verified identity label, if any.
func IdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey{}).(string)
	return identity, ok && identity != ""
}
