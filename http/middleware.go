package http

import (
	"net/http"
	"strings"

	"todod/auth"
)

const (
	// DefaultCredentialHeader carries the shared-secret value.
	DefaultCredentialHeader = "X-Auth-Token"

	allowMethods = "OPTIONS,GET,POST,PUT,DELETE"
)

// CORSConfig holds the CORS layer configuration.
type CORSConfig struct {
	// AllowedOrigins lists allowed origins; empty means "*".
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// CredentialHeader is the header name carrying the shared secret.
	// It must appear in Access-Control-Allow-Headers or browsers will
	// refuse to send it on the real request.
	CredentialHeader string `mapstructure:"credential_header"`
}

func (c CORSConfig) origin() string {
	if len(c.AllowedOrigins) == 0 {
		return "*"
	}
	return strings.Join(c.AllowedOrigins, ",")
}

func (c CORSConfig) credentialHeader() string {
	if c.CredentialHeader == "" {
		return DefaultCredentialHeader
	}
	return c.CredentialHeader
}

// CORSMiddleware stamps the full CORS header set on every response,
// success or error, and short-circuits OPTIONS preflight requests with a
// fixed 200 body. Preflights never reach the verifier or the store:
// browsers do not attach the credential header to them, so they must
// succeed unconditionally.
func CORSMiddleware(cfg CORSConfig) func(http.Handler) http.Handler {
	origin := cfg.origin()
	allowHeaders := "Content-Type," + cfg.credentialHeader()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", allowMethods)
			h.Set("Access-Control-Allow-Headers", allowHeaders)

			if r.Method == http.MethodOptions {
				_ = WriteJSON(w, http.StatusOK, PreflightResponse{Message: "CORS preflight OK"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware creates middleware that runs the credential check before
// the handler. Pass nil to disable authentication (public access). A deny
// rejects the request before any store access.
func AuthMiddleware(verifier auth.Verifier) func(http.Handler) http.Handler {
	if verifier == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := verifier.Verify(r.Header)
			if !decision.Allowed {
				WriteError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid credential")
				return
			}

			next.ServeHTTP(w, auth.WithIdentity(r, decision.Identity))
		})
	}
}
