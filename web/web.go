// Package web holds the server-rendered pages and their static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Templates parses every page template. Page templates are addressed by file
// name, e.g. "profile.html".
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}

// Static returns the embedded static asset tree rooted at its css/ and js/
// directories.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
