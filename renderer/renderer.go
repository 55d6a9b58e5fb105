package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates = mustSub(templatesFS, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// partials used by the assemblies, by template name.
var partials = map[string]string{
	"report_title":     "report_title.md",
	"report_overview":  "report_overview.md",
	"allocation_table": "allocation_table.md",
	"history_table":    "history_table.md",
}

// RenderReport renders the full portfolio report to a markdown string.
func RenderReport(r *Report) string {
	return renderTemplate("report", "report.md", partials, r)
}

// RenderAllocation renders a single allocation table.
func RenderAllocation(t *AllocationTable) string {
	return renderTemplate("allocation", "allocation.md", partials, t)
}

// RenderHistory renders the value of the portfolio day by day.
func RenderHistory(h *HistoryTable) string {
	return renderTemplate("history", "history.md", partials, h)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
