// render/page.go

// Package render builds the group listing page.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/ViniZap4/groupboard/domain"
	"github.com/ViniZap4/groupboard/filesystem"
	"github.com/ViniZap4/groupboard/markup"
	"github.com/ViniZap4/groupboard/search"
)

// Placeholder is replaced in the template with the rendered table rows.
const Placeholder = "{{groups}}"

const noResultsRow = `<tr><td colspan="4">No results found</td></tr>`

// Source supplies the groups to list. Implementations are expected to
// return fresh data on every call.
type Source interface {
	Groups(ctx context.Context) ([]domain.Group, error)
}

// Page is a rendered document.
type Page struct {
	HTML string
	// Matched is the number of groups listed; Total is the number loaded.
	Matched int
	Total   int
}

type Renderer struct {
	source       Source
	templatePath string
}

func NewRenderer(source Source, templatePath string) *Renderer {
	return &Renderer{source: source, templatePath: templatePath}
}

// Render loads the groups, keeps those matching term and substitutes them
// into the template. Both the groups and the template are read again on
// every call. Any load failure aborts the render.
func (r *Renderer) Render(ctx context.Context, term string) (Page, error) {
	groups, err := r.source.Groups(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("failed to load groups: %w", err)
	}

	matched := search.Filter(term, groups)
	rows := Rows(matched, term)

	tmpl, err := filesystem.ReadTemplate(r.templatePath)
	if err != nil {
		return Page{}, fmt.Errorf("failed to load template: %w", err)
	}

	return Page{
		HTML:    strings.Replace(tmpl, Placeholder, rows, 1),
		Matched: len(matched),
		Total:   len(groups),
	}, nil
}

// Rows renders one table row per group, or a single "No results found" row
// when groups is empty. A non-empty term is highlighted in names and
// descriptions.
func Rows(groups []domain.Group, term string) string {
	if len(groups) == 0 {
		return noResultsRow
	}

	var b strings.Builder
	for _, g := range groups {
		writeRow(&b, g, term)
	}
	return b.String()
}

func writeRow(b *strings.Builder, g domain.Group, term string) {
	name := g.Name
	description := markup.ToHTML(g.Description)
	if term != "" {
		name = markup.Highlight(name, term)
		description = markup.Highlight(description, term)
	}

	b.WriteString("<tr>\n")
	fmt.Fprintf(b, "    <td>%s</td>\n", name)
	fmt.Fprintf(b, "    <td>%s</td>\n", description)
	b.WriteString("    <td><ul>")
	for _, tag := range g.Tags {
		fmt.Fprintf(b, "<li>%s</li>", tag)
	}
	b.WriteString("</ul></td>\n")
	fmt.Fprintf(b, "    <td><a href=\"%s\">Join Group</a></td>\n", g.URL)
	b.WriteString("</tr>\n")
}
