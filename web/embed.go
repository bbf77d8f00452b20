// Package web embeds the single-page blog UI served at the root path.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// FS returns the static UI assets rooted at the directory containing
// index.html.
func FS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
