package view

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/bmcanvas/internal/config"
	"github.com/dgallion1/bmcanvas/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var titles = []string{
	"Value Proposition", "Customer Segments", "Channels", "Customer Relationship",
	"Revenue Streams", "Key Resources", "Key Activities", "Key Partnerships", "Cost Structure",
}

func nineSections() []section.Section {
	out := make([]section.Section, 0, len(titles))
	for i := len(titles) - 1; i >= 0; i-- {
		order := i + 1
		id := fmt.Sprintf("%d-%d-%s", order, order, strings.ToLower(strings.ReplaceAll(titles[i], " ", "-")))
		out = append(out, section.Section{
			ID:       id,
			Title:    titles[i],
			Content:  fmt.Sprintf("# %s\n\nSome **bold** text for %d.\n", titles[i], order),
			Filename: id + ".md",
			Order:    order,
		})
	}
	return out
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(config.DefaultBranding())
	require.NoError(t, err)
	return r
}

func parse(t *testing.T, buf *bytes.Buffer) *html.Node {
	t.Helper()
	doc, err := html.Parse(buf)
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func orders(nodes []*html.Node) []string {
	var out []string
	for _, n := range nodes {
		if v, ok := attr(n, "data-order"); ok {
			out = append(out, v)
		} else if hasClass(n, "spacer") {
			out = append(out, "-")
		}
	}
	return out
}

func TestDashboard_GridLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Dashboard(&buf, nineSections(), ModeGrid, "areas"))
	doc := parse(t, &buf)

	rows := findAll(doc, func(n *html.Node) bool { return hasClass(n, "grid") })
	require.Len(t, rows, 3)

	cells := func(row *html.Node) []*html.Node {
		return findAll(row, func(n *html.Node) bool { return hasClass(n, "card") || hasClass(n, "spacer") })
	}
	assert.Equal(t, []string{"8", "6", "1", "4", "2"}, orders(cells(rows[0])))
	assert.Equal(t, []string{"7", "-", "3"}, orders(cells(rows[1])))
	assert.Equal(t, []string{"9", "5"}, orders(cells(rows[2])))

	wide := findAll(doc, func(n *html.Node) bool { return hasClass(n, "span-2") })
	assert.Equal(t, []string{"7", "3"}, orders(wide))
}

func TestDashboard_CardDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Dashboard(&buf, nineSections(), ModeGrid, "areas"))
	doc := parse(t, &buf)

	cards := findAll(doc, func(n *html.Node) bool {
		id, _ := attr(n, "id")
		return id == "section-1-1-value-proposition"
	})
	require.Len(t, cards, 1)
	card := cards[0]

	assert.True(t, hasClass(card, "bg-blue-50"))
	assert.Contains(t, textContent(card), config.DefaultBranding().Questions[1])

	bold := findAll(card, func(n *html.Node) bool { return n.Data == "strong" })
	require.NotEmpty(t, bold)
	assert.Equal(t, "bold", textContent(bold[0]))
}

func TestDashboard_MissingSectionsOmitted(t *testing.T) {
	secs := nineSections()[:2] // orders 9 and 8
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Dashboard(&buf, secs, ModeGrid, "areas"))
	doc := parse(t, &buf)

	cards := findAll(doc, func(n *html.Node) bool { return hasClass(n, "card") })
	assert.Equal(t, []string{"8", "9"}, orders(cards))
}

func TestDashboard_Tabs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Dashboard(&buf, nineSections(), ModeTabs, "areas"))
	doc := parse(t, &buf)

	tabs := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-tab"); return ok })
	require.Len(t, tabs, 9)
	assert.True(t, hasClass(tabs[0], "active"))
	assert.Equal(t, "1 Value Proposition", strings.Join(strings.Fields(textContent(tabs[0])), " "))
	assert.Equal(t, "4 Customer Relationship", strings.Join(strings.Fields(textContent(tabs[3])), " "))

	panels := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-panel"); return ok })
	require.Len(t, panels, 9)
	for i, p := range panels {
		_, hidden := attr(p, "hidden")
		assert.Equal(t, i != 0, hidden, "panel %d", i)
	}
}

func TestDashboard_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Dashboard(&buf, nil, ModeGrid, "areas"))
	out := buf.String()
	assert.Contains(t, out, "No Canvas Sections Found")
	assert.Contains(t, out, "&#39;areas&#39; directory")
	assert.NotContains(t, out, `class="card`)
}

func TestDashboard_RawHTMLOmitted(t *testing.T) {
	secs := []section.Section{{ID: "x", Title: "X", Order: 1, Content: "<script>alert(1)</script>\n\nok"}}
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Dashboard(&buf, secs, ModeGrid, "areas"))
	doc := parse(t, &buf)

	card := findAll(doc, func(n *html.Node) bool { return hasClass(n, "card") })
	require.Len(t, card, 1)
	scripts := findAll(card[0], func(n *html.Node) bool { return n.Data == "script" })
	assert.Empty(t, scripts)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Print(&buf, nineSections(), "areas"))
	out := buf.String()
	doc := parse(t, bytes.NewBufferString(out))

	secs := findAll(doc, func(n *html.Node) bool { return hasClass(n, "print-section") })
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, orders(secs))
	assert.Contains(t, out, "Complete overview of all 9 business model components")
	assert.Contains(t, out, "window.print()")
	assert.Contains(t, out, "1000")
}

func TestPrint_EmptyDoesNotAutoPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Print(&buf, nil, "areas"))
	assert.Contains(t, buf.String(), "No Canvas Sections Found")
	assert.NotContains(t, buf.String(), "window.print()")
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeTabs, ParseMode("tabs"))
	assert.Equal(t, ModeTabs, ParseMode("TABS"))
	assert.Equal(t, ModeGrid, ParseMode("grid"))
	assert.Equal(t, ModeGrid, ParseMode(""))
	assert.Equal(t, ModeGrid, ParseMode("cards"))
}

func TestTabLabel(t *testing.T) {
	assert.Equal(t, "Key Partnerships", TabLabel("Key Partnerships"))
	assert.Equal(t, "Customer Relationship", TabLabel("Customer Relationship Management"))
	assert.Equal(t, "Channels", TabLabel("Channels"))
}
