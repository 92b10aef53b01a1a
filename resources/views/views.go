// Package views embeds the HTML templates so the binary is self-contained.
package views

import "embed"

//go:embed *.html
var FS embed.FS
