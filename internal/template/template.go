package template

import (
	"embed"
	"text/template"
)

// SummaryTemplateName is the name of the Markdown summary template.
const SummaryTemplateName = "summary.md.tmpl"

//go:embed templates/*.tmpl
var templatesFS embed.FS

// NewTemplate parses the embedded template with the given name.
// text/template is used on purpose: SARIF messages and snippets are written verbatim, not HTML-escaped.
func NewTemplate(name string) (*template.Template, error) {
	return template.New(name).
		Option("missingkey=error").
		ParseFS(templatesFS, "templates/"+name)
}

// NewSummaryTemplate parses the Markdown summary template.
func NewSummaryTemplate() (*template.Template, error) {
	return NewTemplate(SummaryTemplateName)
}
