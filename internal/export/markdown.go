package export

import (
	"fmt"
	"io"

	"github.com/dgallion1/bmcanvas/internal/report"
	"github.com/dgallion1/bmcanvas/internal/section"
)

// MarkdownFilename is the download name of the markdown report.
const MarkdownFilename = "business-model-canvas.md"

// MarkdownExporter writes the markdown report.
type MarkdownExporter struct {
	opts Options
}

func (e *MarkdownExporter) Filename() string    { return MarkdownFilename }
func (e *MarkdownExporter) ContentType() string { return "text/markdown" }

func (e *MarkdownExporter) Export(w io.Writer, sections []section.Section) error {
	if _, err := io.WriteString(w, report.Generate(sections, e.opts.Branding)); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
