// Package auth implements the credential check that gates access to the
// todo API. Verification is behind an interface so that the static
// shared-secret check can be swapped for signed tokens or an external
// identity provider without touching the HTTP layer.
package auth

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// Decision is the outcome of a credential check. Identity is only set
// when Allowed is true.
type Decision struct {
	Allowed  bool
	Identity string
}

// Verifier decides whether a request's headers carry a valid credential.
// Implementations never fail: a missing or malformed credential is simply
// a deny.
type Verifier interface {
	Verify(headers http.Header) Decision
}

// StaticTokenVerifier compares a single configured secret against the
// value of one request header. The header name is matched
// case-insensitively; the value comparison is exact.
type StaticTokenVerifier struct {
	header   string
	secret   string
	identity string
}

// NewStaticTokenVerifier creates a verifier for the given header name and
// secret. identity is the fixed label attached to allowed decisions.
func NewStaticTokenVerifier(header, secret, identity string) *StaticTokenVerifier {
	return &StaticTokenVerifier{
		header:   header,
		secret:   secret,
		identity: identity,
	}
}

// Verify checks the credential header and logs the decision for
// operational diagnosis. It never panics and never touches any store.
func (v *StaticTokenVerifier) Verify(headers http.Header) Decision {
	value, present := headerLookup(headers, v.header)

	allowed := present && v.secret != "" &&
		subtle.ConstantTimeCompare([]byte(value), []byte(v.secret)) == 1

	slog.Info("auth decision",
		"header", v.header,
		"present", present,
		"allowed", allowed,
	)

	if !allowed {
		return Decision{}
	}

	return Decision{Allowed: true, Identity: v.identity}
}

// headerLookup finds a header value by case-insensitive name. http.Header
// canonicalizes keys set through its own methods, but headers built by
// hand (tests, non-HTTP transports) may carry arbitrary casing.
func headerLookup(headers http.Header, name string) (string, bool) {
	if vs, ok := headers[http.CanonicalHeaderKey(name)]; ok && len(vs) > 0 {
		return vs[0], true
	}

	for k, vs := range headers {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0], true
		}
	}

	return "", false
}
