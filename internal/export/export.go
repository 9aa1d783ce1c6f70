// Package export renders a canvas into downloadable documents.
package export

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/bmcanvas/internal/config"
	"github.com/dgallion1/bmcanvas/internal/convert"
	"github.com/dgallion1/bmcanvas/internal/section"
)

// Exporter writes one document format for a list of sections.
type Exporter interface {
	Export(w io.Writer, sections []section.Section) error
	Filename() string
	ContentType() string
}

// ErrUnsupportedFormat is returned by ForFormat for unknown names.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Options carries everything the exporters need besides the sections.
type Options struct {
	Branding  config.Branding
	Theme     Theme
	Converter *convert.Converter
	Now       func() time.Time
	Log       *slog.Logger
}

// DefaultOptions uses the built-in branding, theme and wall clock.
func DefaultOptions(log *slog.Logger) Options {
	return Options{
		Branding:  config.DefaultBranding(),
		Theme:     DefaultTheme(),
		Converter: convert.New(log),
		Now:       time.Now,
		Log:       log,
	}
}

func (o Options) withDefaults() Options {
	if o.Log == nil {
		o.Log = slog.Default()
	}
	if o.Converter == nil {
		o.Converter = convert.New(o.Log)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Theme.Margins == ([4]float64{}) {
		o.Theme = DefaultTheme()
	}
	if o.Branding.Title == "" {
		o.Branding = config.DefaultBranding()
	}
	return o
}

// Formats lists the names accepted by ForFormat.
var Formats = []string{"markdown", "pdf", "docx"}

// ForFormat returns the exporter for a format name.
func ForFormat(format string, opts Options) (Exporter, error) {
	opts = opts.withDefaults()
	switch strings.ToLower(format) {
	case "markdown", "md":
		return &MarkdownExporter{opts: opts}, nil
	case "pdf":
		return &PDFExporter{opts: opts}, nil
	case "docx":
		return &DOCXExporter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
