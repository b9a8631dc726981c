// Package templates embeds the default mail templates and layouts.
package templates

import "embed"

// FS holds "<name>.md" templates at the root and HTML layouts under layouts/.
//
//go:embed *.md layouts/*.html
var FS embed.FS
