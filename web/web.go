// Package web embeds the static browser client for the todo API.
package web

import "embed"

// FS holds the static frontend assets.
//
//go:embed index.html
var FS embed.FS
