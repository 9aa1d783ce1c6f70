// Package report serializes a canvas back into a single markdown document.
package report

import (
	"fmt"
	"strings"

	"github.com/dgallion1/bmcanvas/internal/config"
	"github.com/dgallion1/bmcanvas/internal/section"
)

// Generate renders the header, every section in ascending order and the
// summary footer. Section content is copied verbatim.
func Generate(sections []section.Section, b config.Branding) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", b.Title)
	fmt.Fprintf(&sb, "**Business name:** %s\n", b.BusinessName)
	fmt.Fprintf(&sb, "**Website:** %s\n", b.Website)
	fmt.Fprintf(&sb, "**Date:** %s\n\n", b.Date)
	fmt.Fprintf(&sb, "## %s\n\n", purposeHeading(b))
	fmt.Fprintf(&sb, "%s\n\n---\n\n", b.Purpose)

	for _, s := range section.Sorted(sections) {
		fmt.Fprintf(&sb, "## %d. %s\n\n%s\n\n---\n\n", s.Order, s.Title, s.Content)
	}

	sb.WriteString("\n## Summary\n\n")
	fmt.Fprintf(&sb, "This %s contains %d key sections that outline the complete business model for %s.\n\n",
		b.Title, len(sections), b.BusinessName)
	fmt.Fprintf(&sb, "*%s ❤️ %s*\n", b.Credit, b.BusinessName)

	return sb.String()
}

func purposeHeading(b config.Branding) string {
	if b.PurposeIcon == "" {
		return "Business Purpose"
	}
	return b.PurposeIcon + " Business Purpose"
}
