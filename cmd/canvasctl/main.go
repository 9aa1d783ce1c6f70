// Command canvasctl exports a business model canvas to files, either from a
// directory of section files or from a running server.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/dgallion1/bmcanvas/internal/canvasclient"
	"github.com/dgallion1/bmcanvas/internal/config"
	"github.com/dgallion1/bmcanvas/internal/export"
	"github.com/dgallion1/bmcanvas/internal/section"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

type ctlFlags struct {
	sections string
	url      string
	formats  []string
	out      string
	branding string
	list     bool
	verbose  bool
}

func parseFlags(args []string) (*ctlFlags, error) {
	f := &ctlFlags{}
	fs := flag.NewFlagSet("canvasctl", flag.ContinueOnError)
	fs.StringVarP(&f.sections, "sections", "s", "", "directory of section markdown files")
	fs.StringVarP(&f.url, "url", "u", "", "base URL of a running canvas server")
	fs.StringSliceVarP(&f.formats, "format", "f", export.Formats, "export formats: markdown, pdf, docx")
	fs.StringVarP(&f.out, "out", "o", ".", "output directory")
	fs.StringVarP(&f.branding, "branding", "b", "", "branding YAML file (local exports only)")
	fs.BoolVarP(&f.list, "list", "l", false, "print the sections instead of exporting")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if (f.sections == "") == (f.url == "") {
		return nil, errors.New("exactly one of --sections or --url is required")
	}
	if f.url != "" && f.branding != "" {
		return nil, errors.New("--branding applies to --sections exports only")
	}
	return f, nil
}

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, afero.NewOsFs(), flags, os.Stdout, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, fs afero.Fs, f *ctlFlags, stdout io.Writer, log *slog.Logger) error {
	if f.url != "" {
		client := canvasclient.NewClient(f.url, log)
		defer client.Close()
		if f.list {
			return list(stdout, client.FetchSections(ctx))
		}
		return remoteExport(ctx, fs, client, f, stdout)
	}

	sections, err := section.NewLoader(fs, f.sections, log).LoadE()
	if err != nil {
		return err
	}
	if f.list {
		return list(stdout, sections)
	}

	opts := export.DefaultOptions(log)
	if f.branding != "" {
		b, err := config.LoadBranding(f.branding)
		if err != nil {
			return err
		}
		opts.Branding = b
	}
	return localExport(fs, sections, opts, f, stdout)
}

func list(w io.Writer, sections []section.Section) error {
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%d. %s (%s)\n", s.Order, s.Title, s.Filename); err != nil {
			return err
		}
	}
	return nil
}

func localExport(fs afero.Fs, sections []section.Section, opts export.Options, f *ctlFlags, stdout io.Writer) error {
	// Resolve every format before writing anything.
	exporters := make([]export.Exporter, 0, len(f.formats))
	for _, name := range f.formats {
		exp, err := export.ForFormat(name, opts)
		if err != nil {
			return err
		}
		exporters = append(exporters, exp)
	}

	for _, exp := range exporters {
		var buf bytes.Buffer
		if err := exp.Export(&buf, sections); err != nil {
			return fmt.Errorf("export %s: %w", exp.Filename(), err)
		}
		if err := writeOutput(fs, f.out, exp.Filename(), buf.Bytes(), stdout); err != nil {
			return err
		}
	}
	return nil
}

func remoteExport(ctx context.Context, fs afero.Fs, client *canvasclient.Client, f *ctlFlags, stdout io.Writer) error {
	for _, name := range f.formats {
		var buf bytes.Buffer
		filename, err := client.Export(ctx, name, &buf)
		if err != nil {
			return err
		}
		if filename == "" {
			filename = "business-model-canvas." + name
		}
		if err := writeOutput(fs, f.out, filename, buf.Bytes(), stdout); err != nil {
			return err
		}
	}
	return nil
}

func writeOutput(fs afero.Fs, dir, filename string, data []byte, stdout io.Writer) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, filepath.Base(filename))
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	_, err := fmt.Fprintf(stdout, "wrote %s (%d bytes)\n", path, len(data))
	return err
}
