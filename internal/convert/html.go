package convert

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dgallion1/bmcanvas/internal/document"
)

var (
	headingOpenRe = regexp.MustCompile(`^<h([1-3])>`)
	headingTagRe  = regexp.MustCompile(`</?h[1-3]>`)
	listTagRe     = regexp.MustCompile(`</?(li|ul|ol)>`)
	paraTagRe     = regexp.MustCompile(`</?p>`)
	strongRe      = regexp.MustCompile(`<strong>(.*?)</strong>`)
	breakRe       = regexp.MustCompile(`<br\s*/?>`)
	anyTagRe      = regexp.MustCompile(`<[^>]*>`)

	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// ConvertHTML classifies rendered HTML line by line into document nodes.
// Lines that match no rule are dropped.
func ConvertHTML(html string) []document.Node {
	nodes := []document.Node{}

	for _, line := range strings.Split(html, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "<p></p>" {
			continue
		}

		switch {
		case line == "<hr>":
			nodes = append(nodes, document.Rule())

		case headingOpenRe.MatchString(line):
			level, _ := strconv.Atoi(headingOpenRe.FindStringSubmatch(line)[1])
			text := headingTagRe.ReplaceAllString(line, "")
			nodes = append(nodes, document.Heading(level, CleanText(text)))

		case strings.Contains(line, "<li>"):
			text := listTagRe.ReplaceAllString(line, "")
			if strings.TrimSpace(text) != "" {
				nodes = append(nodes, document.ListItem(ParseInline(text)...))
			}

		case strings.Contains(line, "<p>") || !strings.Contains(line, "<"):
			text := paraTagRe.ReplaceAllString(line, "")
			if strings.TrimSpace(text) != "" {
				nodes = append(nodes, document.Paragraph(ParseInline(text)...))
			}
		}
	}

	return nodes
}

// ParseInline splits text into plain and bold spans around <strong> pairs.
// Whitespace between spans is kept so words do not run together; the outer
// edges of the sequence are trimmed.
func ParseInline(text string) []document.Span {
	var spans []document.Span
	last := 0

	for _, m := range strongRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, document.Plain(decode(text[last:m[0]])))
		}
		spans = append(spans, document.Bold(decode(text[m[2]:m[3]])))
		last = m[1]
	}

	if last < len(text) {
		spans = append(spans, document.Plain(decode(text[last:])))
	}

	if len(spans) == 0 {
		return []document.Span{document.Plain(CleanText(text))}
	}

	spans[0].Text = strings.TrimLeftFunc(spans[0].Text, unicode.IsSpace)
	spans[len(spans)-1].Text = strings.TrimRightFunc(spans[len(spans)-1].Text, unicode.IsSpace)
	if len(spans) == 1 {
		return spans
	}

	kept := spans[:0]
	for _, sp := range spans {
		if sp.Text != "" {
			kept = append(kept, sp)
		}
	}
	if len(kept) == 0 {
		return []document.Span{document.Plain("")}
	}
	return kept
}

// CleanText strips markup, decodes the basic HTML entities and trims.
func CleanText(text string) string {
	return strings.TrimSpace(decode(text))
}

// decode turns line breaks into spaces, strips the remaining tags and
// decodes entities.
func decode(text string) string {
	text = breakRe.ReplaceAllString(text, " ")
	return entityReplacer.Replace(anyTagRe.ReplaceAllString(text, ""))
}
