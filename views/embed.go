// Package views embeds the guest page templates and their static assets.
package views

import "embed"

//go:embed *.html layouts/*.html errors/*.html static
var FS embed.FS
