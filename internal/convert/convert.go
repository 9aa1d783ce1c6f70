// Package convert turns section markdown into structural document nodes
// for layout engines that do not understand markdown.
package convert

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/dgallion1/bmcanvas/internal/document"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Converter renders markdown to HTML with goldmark and classifies the result.
type Converter struct {
	md  goldmark.Markdown
	log *slog.Logger
}

// New returns a Converter. Raw HTML in the source is passed through so that
// inline tags written by hand reach the classifier. List items and hard line
// breaks are rendered without the newlines goldmark normally puts after them.
func New(log *slog.Logger) *Converter {
	if log == nil {
		log = slog.Default()
	}
	return &Converter{
		md: goldmark.New(
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
				renderer.WithNodeRenderers(util.Prioritized(newLineRenderer(), lineRendererPriority)),
			),
		),
		log: log,
	}
}

// Convert never fails. If rendering errors or panics, the original markdown
// comes back as one raw paragraph.
func (c *Converter) Convert(markdown string) (nodes []document.Node) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("converting markdown", "error", fmt.Sprint(r))
			nodes = []document.Node{document.RawParagraph(markdown)}
		}
	}()

	rendered, err := c.HTML(markdown)
	if err != nil {
		c.log.Error("converting markdown", "error", err)
		return []document.Node{document.RawParagraph(markdown)}
	}
	return ConvertHTML(rendered)
}

// HTML renders markdown to an HTML fragment.
func (c *Converter) HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
