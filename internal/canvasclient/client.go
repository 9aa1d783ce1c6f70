// Package canvasclient talks to a running canvas server.
package canvasclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dgallion1/bmcanvas/internal/section"
)

// Client queries the canvas HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Sections fetches GET /api/canvas.
func (c *Client) Sections(ctx context.Context) ([]section.Section, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/canvas", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get canvas: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("get canvas: status %d: %s", resp.StatusCode, string(respBody))
	}

	var sections []section.Section
	if err := json.NewDecoder(resp.Body).Decode(&sections); err != nil {
		return nil, fmt.Errorf("decode canvas: %w", err)
	}
	if sections == nil {
		sections = []section.Section{}
	}
	return sections, nil
}

// FetchSections is Sections with failures logged and reported as an empty
// canvas.
func (c *Client) FetchSections(ctx context.Context) []section.Section {
	sections, err := c.Sections(ctx)
	if err != nil {
		c.log.Error("fetch canvas sections", "url", c.baseURL, "error", err)
		return []section.Section{}
	}
	return sections
}

// Export downloads GET /export/{format} into w and returns the filename the
// server suggested, if any.
func (c *Client) Export(ctx context.Context, format string, w io.Writer) (string, error) {
	u := c.baseURL + "/export/" + url.PathEscape(format)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", format, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("export %s: status %d: %s", format, resp.StatusCode, string(respBody))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("read %s export: %w", format, err)
	}
	return attachmentName(resp.Header.Get("Content-Disposition")), nil
}

func attachmentName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
