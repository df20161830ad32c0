// Package ui embeds the gateway's HTML templates and static assets.
package ui

import "embed"

//go:embed *.html js
var Files embed.FS
