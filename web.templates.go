package main

import (
	"embed"
	"html/template"
)

//go:embed templates
var templatesFS embed.FS

// ParseWebTemplates loads the embedded views used by the web handlers.
func ParseWebTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html.tmpl")
}
