// Package view renders the canvas dashboard and its print surface as HTML.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/dgallion1/bmcanvas/internal/config"
	"github.com/dgallion1/bmcanvas/internal/section"
	"github.com/samber/lo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html templates/*.css
var templateFS embed.FS

// Mode selects the dashboard layout.
type Mode string

const (
	ModeGrid Mode = "grid"
	ModeTabs Mode = "tabs"
)

// ParseMode maps a query value to a Mode, defaulting to the grid.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(s)) == ModeTabs {
		return ModeTabs
	}
	return ModeGrid
}

// PrintDelayMS is how long the print page waits for layout before opening
// the print dialog.
const PrintDelayMS = 1000

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl  *template.Template
	md    goldmark.Markdown
	brand config.Branding
}

// New parses the templates for one branding.
func New(b config.Branding) (*Renderer, error) {
	r := &Renderer{
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
		brand: b,
	}
	css, err := templateFS.ReadFile("templates/canvas.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"markdown":   r.markdown,
		"stylesheet": func() template.CSS { return template.CSS(css) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// card is one section as placed on the dashboard.
type card struct {
	Section  section.Section
	Color    string
	Question string
	Label    string
	Span     int
	Spacer   bool
}

type row struct {
	Columns int
	Cards   []card
}

type page struct {
	Brand      config.Branding
	Mode       Mode
	Sections   []section.Section
	Rows       []row
	Tabs       []card
	Count      int
	SourceDir  string
	PrintDelay int
}

// slot positions a section order in the traditional canvas grid. Order 0 is
// the empty continuation cell under the value proposition.
type slot struct {
	order int
	span  int
}

var gridRows = []struct {
	columns int
	slots   []slot
}{
	{5, []slot{{8, 1}, {6, 1}, {1, 1}, {4, 1}, {2, 1}}},
	{5, []slot{{7, 2}, {0, 1}, {3, 2}}},
	{2, []slot{{9, 1}, {5, 1}}},
}

// Dashboard renders the interactive canvas.
func (r *Renderer) Dashboard(w io.Writer, sections []section.Section, mode Mode, sourceDir string) error {
	store := section.NewStore(sections)
	p := page{
		Brand:     r.brand,
		Mode:      mode,
		Sections:  store.All(),
		Count:     store.Len(),
		SourceDir: sourceDir,
	}
	if mode == ModeTabs {
		p.Tabs = lo.Map(store.All(), func(s section.Section, _ int) card { return r.card(s, 1) })
	} else {
		p.Rows = r.grid(store)
	}
	return r.execute(w, "dashboard.html", p)
}

// Print renders the vertical print surface.
func (r *Renderer) Print(w io.Writer, sections []section.Section, sourceDir string) error {
	store := section.NewStore(sections)
	return r.execute(w, "print.html", page{
		Brand:      r.brand,
		Sections:   store.All(),
		Count:      store.Len(),
		SourceDir:  sourceDir,
		PrintDelay: PrintDelayMS,
	})
}

func (r *Renderer) grid(store *section.Store) []row {
	rows := make([]row, 0, len(gridRows))
	for _, gr := range gridRows {
		out := row{Columns: gr.columns}
		for _, sl := range gr.slots {
			if sl.order == 0 {
				out.Cards = append(out.Cards, card{Spacer: true, Span: sl.span})
				continue
			}
			if s, ok := store.ByOrder(sl.order); ok {
				out.Cards = append(out.Cards, r.card(s, sl.span))
			}
		}
		rows = append(rows, out)
	}
	return rows
}

func (r *Renderer) card(s section.Section, span int) card {
	return card{
		Section:  s,
		Color:    r.brand.CardColor(s.ID),
		Question: r.brand.Questions[s.Order],
		Label:    TabLabel(s.Title),
		Span:     span,
	}
}

// TabLabel shortens a title to its first two words.
func TabLabel(title string) string {
	words := strings.Split(title, " ")
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render section markdown: %w", err)
	}
	// Raw HTML in the source is omitted by goldmark's default renderer.
	return template.HTML(buf.String()), nil
}

func (r *Renderer) execute(w io.Writer, name string, data page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
