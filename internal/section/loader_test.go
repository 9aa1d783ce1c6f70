package section

import (
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFiles(t *testing.T, fs afero.Fs, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, dir+"/"+name, []byte(body), 0o644))
	}
}

func TestLoader_OrdersByPrefix(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "areas", map[string]string{
		"2.b.md": "# X\n",
		"1.a.md": "# X\n",
		"9.c.md": "# X\n",
	})

	got := NewLoader(fs, "areas", quietLogger()).Load()
	require.Len(t, got, 3)

	var names []string
	for _, s := range got {
		names = append(names, s.Filename)
		assert.Equal(t, "X", s.Title)
	}
	assert.Equal(t, []string{"1.a.md", "2.b.md", "9.c.md"}, names)
	assert.Equal(t, []int{1, 2, 9}, []int{got[0].Order, got[1].Order, got[2].Order})
}

func TestLoader_SkipsNonMarkdownAndDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "areas", map[string]string{
		"1.a.md":    "# A\n",
		"notes.txt": "ignored",
		"README":    "ignored",
	})
	require.NoError(t, fs.MkdirAll("areas/sub.md", 0o755))

	got := NewLoader(fs, "areas", quietLogger()).Load()
	require.Len(t, got, 1)
	assert.Equal(t, "1.a", got[0].ID)
}

func TestLoader_UnprefixedLast(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "areas", map[string]string{
		"appendix.md": "",
		"3.c.md":      "# C\n",
	})

	got := NewLoader(fs, "areas", quietLogger()).Load()
	require.Len(t, got, 2)
	assert.Equal(t, "3.c.md", got[0].Filename)
	assert.Equal(t, UnorderedSentinel, got[1].Order)
	assert.Equal(t, "Appendix", got[1].Title)
}

func TestLoader_MissingDirYieldsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := NewLoader(fs, "nope", quietLogger())

	got := l.Load()
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err := l.LoadE()
	assert.Error(t, err)
}

func TestLoader_EmptyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("areas", 0o755))

	got, err := NewLoader(fs, "areas", quietLogger()).LoadE()
	require.NoError(t, err)
	assert.Empty(t, got)
}
