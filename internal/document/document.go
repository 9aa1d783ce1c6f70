package document

import "strings"

// Kind identifies the structural role of a Node.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindListItem
	KindRule
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list_item"
	case KindRule:
		return "rule"
	default:
		return "paragraph"
	}
}

// Span is a run of inline text with uniform emphasis.
type Span struct {
	Text string
	Bold bool
}

// Node is one structural block of a section body, ready for layout.
type Node struct {
	Kind  Kind
	Level int    // Heading level 1-3 (0 for other kinds)
	Text  string // Heading text
	Spans []Span // Paragraph and list item content
	Raw   bool   // Unparsed fallback paragraph
}

// Heading returns a heading node at the given level.
func Heading(level int, text string) Node {
	return Node{Kind: KindHeading, Level: level, Text: text}
}

// Paragraph returns a paragraph node.
func Paragraph(spans ...Span) Node {
	return Node{Kind: KindParagraph, Spans: spans}
}

// ListItem returns a list item node.
func ListItem(spans ...Span) Node {
	return Node{Kind: KindListItem, Spans: spans}
}

// Rule returns a horizontal rule node.
func Rule() Node {
	return Node{Kind: KindRule}
}

// RawParagraph wraps unconverted source text as a single plain paragraph.
func RawParagraph(text string) Node {
	return Node{Kind: KindParagraph, Spans: []Span{{Text: text}}, Raw: true}
}

// Plain returns a span without emphasis.
func Plain(text string) Span { return Span{Text: text} }

// Bold returns a bold span.
func Bold(text string) Span { return Span{Text: text, Bold: true} }

// PlainText concatenates the text of all spans.
func (n Node) PlainText() string {
	if n.Kind == KindHeading {
		return n.Text
	}
	var b strings.Builder
	for _, s := range n.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
