package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderReport renders the Report struct to a markdown string.
func RenderReport(r *Report) string {
	return renderTemplate("report.md", r, "report_title.md", "report_stocks.md", "report_index.md")
}

// renderTemplate executes the embedded template file main on data.
//
// Partials are embedded files too, main includes them by file name. Any
// failure is rendered as a one line message instead of the document.
func renderTemplate(main string, data any, partials ...string) string {
	files := append([]string{main}, partials...)
	tmpl, err := template.New(main).ParseFS(templates, files...)
	if err != nil {
		return fmt.Sprintf("error loading templates %v: %v", files, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", main, err)
	}
	return b.String()
}
