package section

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Loader reads canvas sections from a directory of markdown files.
type Loader struct {
	fs  afero.Fs
	dir string
	log *slog.Logger
}

// NewLoader creates a Loader over dir on fs.
func NewLoader(fs afero.Fs, dir string, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{fs: fs, dir: dir, log: log}
}

// Dir returns the source directory.
func (l *Loader) Dir() string { return l.dir }

// Load reads every section. Read failures are logged and yield an empty
// slice, so a broken directory looks the same as an empty one.
func (l *Loader) Load() []Section {
	sections, err := l.LoadE()
	if err != nil {
		l.log.Error("reading canvas sections", "dir", l.dir, "error", err)
		return []Section{}
	}
	return sections
}

// LoadE is Load with the underlying error exposed.
func (l *Loader) LoadE() ([]Section, error) {
	entries, err := afero.ReadDir(l.fs, l.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", l.dir, err)
	}

	// ReadDir returns entries sorted by name.
	sections := make([]Section, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		data, err := afero.ReadFile(l.fs, filepath.Join(l.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		sections = append(sections, New(e.Name(), string(data)))
	}

	SortByOrder(sections)
	l.log.Debug("loaded canvas sections", "dir", l.dir, "count", len(sections))
	return sections, nil
}
