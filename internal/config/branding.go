package config

import (
	"fmt"
	"maps"
	"os"

	"github.com/goccy/go-yaml"
)

// Branding is the business metadata and presentation tables shared by the
// report, the exporters and the views.
type Branding struct {
	Title        string
	BusinessName string
	Website      string
	Date         string
	LogoText     string
	PurposeIcon  string
	Purpose      string
	Credit       string
	PDFFilename  string

	// Colors maps a section ID to the CSS classes of its card.
	Colors map[string]string
	// Questions maps a section order to the prompt shown above its card.
	Questions map[int]string
}

// DefaultCardColor applies to sections without an entry in Colors.
const DefaultCardColor = "bg-gray-50 border-gray-200"

func DefaultBranding() Branding {
	return Branding{
		Title:        "Business Model Canvas",
		BusinessName: "Flying Web Solutions",
		Website:      "www.flyingweb.ie",
		Date:         "06/2025",
		LogoText:     "FWS",
		PurposeIcon:  "🎯",
		Purpose: "My company Flying Web Solutions provides web development and automation services. " +
			"It solves the problem of businesses struggling with poor online presence and manual processes " +
			"that limit growth. It delivers customized websites, lead generation systems, and AI workflows " +
			"that return increased sales, improved conversion rates, and streamlined operations for " +
			"entrepreneurs who want to scale their business model online.",
		Credit:      "Built by Davide Del Gatto",
		PDFFilename: "Business-Model-Canvas-Flying-Web-Solutions.pdf",
		Colors: map[string]string{
			"1-1-value-proposition":     "bg-blue-50 border-blue-200",
			"2-2-customer-segments":     "bg-green-50 border-green-200",
			"3-3-channels":              "bg-purple-50 border-purple-200",
			"4-4-customer-relationship": "bg-orange-50 border-orange-200",
			"5-5-revenue-streams":       "bg-yellow-50 border-yellow-200",
			"6-6-key-resources":         "bg-red-50 border-red-200",
			"7-7-key-activities":        "bg-indigo-50 border-indigo-200",
			"8-8-key-partnerships":      "bg-pink-50 border-pink-200",
			"9-9-cost-structure":        "bg-gray-50 border-gray-200",
		},
		Questions: map[int]string{
			1: "What are the problems that we are trying to solve for our customer segment?",
			2: "Who are our customers and why would they use our solution?",
			3: "How do we reach our customers and let them know about our solution?",
			4: "How do we get, keep & grow our customers?",
			5: "How do we make money from our solution?",
			6: "What are the most important assets required to make the business model work?",
			7: "What are the most important activities required to make the business model work?",
			8: "Who are the key partners and suppliers needed to make the business model work?",
			9: "What are the costs to operate the business model?",
		},
	}
}

// CardColor returns the CSS classes for a section card.
func (b Branding) CardColor(id string) string {
	if c, ok := b.Colors[id]; ok {
		return c
	}
	return DefaultCardColor
}

// brandingFile mirrors the YAML layout. Empty fields keep their defaults.
type brandingFile struct {
	Title        string            `yaml:"title"`
	BusinessName string            `yaml:"business_name"`
	Website      string            `yaml:"website"`
	Date         string            `yaml:"date"`
	LogoText     string            `yaml:"logo_text"`
	PurposeIcon  string            `yaml:"purpose_icon"`
	Purpose      string            `yaml:"purpose"`
	Credit       string            `yaml:"credit"`
	PDFFilename  string            `yaml:"pdf_filename"`
	Colors       map[string]string `yaml:"colors"`
	Questions    map[int]string    `yaml:"questions"`
}

// LoadBranding reads a YAML branding file over the defaults. An empty path
// returns the defaults.
func LoadBranding(path string) (Branding, error) {
	b := DefaultBranding()
	if path == "" {
		return b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("read branding file: %w", err)
	}
	return ParseBranding(data)
}

// ParseBranding decodes YAML branding data over the defaults. Unknown keys
// are rejected.
func ParseBranding(data []byte) (Branding, error) {
	b := DefaultBranding()

	var f brandingFile
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.Strict()); err != nil {
		return b, fmt.Errorf("parse branding: %w", err)
	}

	override(&b.Title, f.Title)
	override(&b.BusinessName, f.BusinessName)
	override(&b.Website, f.Website)
	override(&b.Date, f.Date)
	override(&b.LogoText, f.LogoText)
	override(&b.PurposeIcon, f.PurposeIcon)
	override(&b.Purpose, f.Purpose)
	override(&b.Credit, f.Credit)
	override(&b.PDFFilename, f.PDFFilename)
	maps.Copy(b.Colors, f.Colors)
	maps.Copy(b.Questions, f.Questions)

	return b, nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
