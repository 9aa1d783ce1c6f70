package canvasclient

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const canvasJSON = `[
  {"id":"1.value_proposition","title":"Value Proposition","content":"# Value Proposition","filename":"1.value_proposition.md","order":1},
  {"id":"2.customer_segments","title":"Customer Segments","content":"- SMEs","filename":"2.customer_segments.md","order":2}
]`

func TestSections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/canvas", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(canvasJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", quietLogger())
	defer c.Close()

	got, err := c.Sections(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Customer Segments", got[1].Title)
	assert.Equal(t, 2, got[1].Order)
	assert.Equal(t, "2.customer_segments.md", got[1].Filename)
}

func TestFetchSections_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"Failed to load canvas sections"}`, http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"a list"`))
		}},
		{"null body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`null`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			got := NewClient(srv.URL, quietLogger()).FetchSections(context.Background())
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestFetchSections_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	got := NewClient(url, quietLogger()).FetchSections(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/export/markdown":
			w.Header().Set("Content-Disposition", "attachment; filename=business-model-canvas.md")
			w.Write([]byte("# Business Model Canvas\n"))
		default:
			http.Error(w, `{"error":"unsupported export format"}`, http.StatusNotFound)
		}
	}))
	defer srv.Close()
	c := NewClient(srv.URL, quietLogger())

	var buf bytes.Buffer
	name, err := c.Export(context.Background(), "markdown", &buf)
	require.NoError(t, err)
	assert.Equal(t, "business-model-canvas.md", name)
	assert.Equal(t, "# Business Model Canvas\n", buf.String())

	_, err = c.Export(context.Background(), "odt", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "a.pdf", attachmentName(`attachment; filename="a.pdf"`))
	assert.Empty(t, attachmentName(""))
	assert.Empty(t, attachmentName("inline"))
}
