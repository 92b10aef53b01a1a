// Package static embeds the public assets served under /static/.
package static

import "embed"

//go:embed *.css
var FS embed.FS
