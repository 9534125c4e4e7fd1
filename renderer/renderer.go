// Package renderer turns rebalancing reports into markdown, aligned text, or ledger entries.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/rebalance"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates holds the markdown templates at its root.
var templates = mustSub(templatesFS, "templates")

func mustSub(f fs.FS, dir string) fs.ReadDirFS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub.(fs.ReadDirFS)
}

// Markdown renders the report as a markdown document: a title, the allocation table and
// the spread before and after the contribution.
func Markdown(r *rebalance.Report) string {
	return RenderAllocation(NewAllocation(r))
}

// RenderAllocation renders the Allocation struct to a markdown string.
func RenderAllocation(a *Allocation) string {
	partials := map[string]string{
		"allocation_title":  "allocation_title.md",
		"allocation_table":  "allocation_table.md",
		"allocation_spread": "allocation_spread.md",
	}
	return renderTemplate("allocation", "allocation.md", partials, a)
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
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
