package techinsights

import (
	"embed"
	"io/fs"
)

// EmbeddedAssets contains static assets shipped with the binary:
// site.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// Stylesheet returns the embedded site stylesheet.
func Stylesheet() ([]byte, error) {
	return fs.ReadFile(EmbeddedAssets, "embedded/site.css")
}
