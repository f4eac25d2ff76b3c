// Package config loads the todod server configuration from defaults,
// config files, environment variables and CLI flags, in increasing order
// of precedence, and validates the result.
package config
