package section

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnorderedSentinel is the order given to files without a numeric prefix,
// placing them after every numbered section.
const UnorderedSentinel = 999

// Section is one markdown-sourced canvas component.
type Section struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Filename string `json:"filename"`
	Order    int    `json:"order"`
}

var (
	orderPrefixRe  = regexp.MustCompile(`^(\d+)\.`)
	titlePrefixRe  = regexp.MustCompile(`^\d+\.\s*`)
	firstHeadingRe = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	whitespaceRe   = regexp.MustCompile(`\s+`)

	titleCaser = cases.Title(language.English, cases.NoLower)
)

// New builds a Section from a source filename and its markdown body.
func New(filename, content string) Section {
	return Section{
		ID:       IDFromFilename(filename),
		Title:    ExtractTitle(filename, content),
		Content:  content,
		Filename: filename,
		Order:    ExtractOrder(filename),
	}
}

// ExtractOrder returns the numeric "<N>." filename prefix, or UnorderedSentinel.
func ExtractOrder(filename string) int {
	m := orderPrefixRe.FindStringSubmatch(filename)
	if m == nil {
		return UnorderedSentinel
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return UnorderedSentinel
	}
	return n
}

// ExtractTitle prefers the first level-one heading in content and falls back
// to a title-cased form of the filename.
func ExtractTitle(filename, content string) string {
	if m := firstHeadingRe.FindStringSubmatch(content); m != nil {
		return StripIcon(m[1])
	}

	name := titlePrefixRe.ReplaceAllString(filename, "")
	name = strings.Replace(name, ".md", "", 1)
	name = strings.ReplaceAll(name, "_", " ")
	return titleCaser.String(name)
}

// IDFromFilename lowercases the extensionless filename and hyphenates whitespace.
func IDFromFilename(filename string) string {
	id := strings.TrimSuffix(filename, ".md")
	id = whitespaceRe.ReplaceAllString(id, "-")
	return strings.ToLower(id)
}

// StripIcon removes a leading emoji or pictograph and the whitespace around it.
func StripIcon(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.Is(unicode.So, r) ||
			unicode.Is(unicode.Sk, r) ||
			r == '\uFE0F' || r == '\u200D' ||
			unicode.IsSpace(r)
	})
	return strings.TrimSpace(s)
}

// SortByOrder sorts sections ascending by Order, keeping input order for ties.
func SortByOrder(sections []Section) {
	slices.SortStableFunc(sections, func(a, b Section) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

// Sorted returns an ordered copy, leaving the input untouched.
func Sorted(sections []Section) []Section {
	out := slices.Clone(sections)
	SortByOrder(out)
	return out
}
