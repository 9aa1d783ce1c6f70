package export

// Style is the font treatment for one kind of text in the PDF.
type Style struct {
	Size       float64 // points
	Bold       bool
	Color      string // #RRGGBB
	LineHeight float64
}

// Box is the fill and border colour of a framed block.
type Box struct {
	Fill   string
	Border string
}

// Line is a horizontal rule.
type Line struct {
	Color string
	Width float64
}

// Theme is the complete PDF style table. Callers pass it in so that other
// brandings can restyle the document without code changes.
type Theme struct {
	// Page margins in points: left, top, right, bottom.
	Margins [4]float64

	LogoText          Style
	CompanyName       Style
	Header            Style
	BusinessInfo      Style
	PurposeTitle      Style
	BusinessPurpose   Style
	SectionsHeader    Style
	SectionsSubheader Style
	SectionNumber     Style
	SectionTitle      Style
	ContentH1         Style
	ContentH2         Style
	ContentH3         Style
	Paragraph         Style
	ListItem          Style
	BulletPoint       Style
	FooterTitle       Style
	FooterSubtitle    Style
	FooterCredit      Style

	LogoBox    Box
	InfoBox    Box
	PurposeBox Box
	ContentBox Box
	FooterBox  Box
	NumberFill string

	SectionRule Line
	ContentRule Line
}

// DefaultTheme reproduces the reference canvas layout.
func DefaultTheme() Theme {
	return Theme{
		Margins: [4]float64{30, 50, 30, 50},

		LogoText:          Style{Size: 20, Bold: true, Color: "#3B82F6"},
		CompanyName:       Style{Size: 14, Bold: true, Color: "#1F2937"},
		Header:            Style{Size: 24, Bold: true, Color: "#1F2937"},
		BusinessInfo:      Style{Size: 10, Color: "#374151"},
		PurposeTitle:      Style{Size: 14, Bold: true, Color: "#065F46"},
		BusinessPurpose:   Style{Size: 11, Color: "#047857", LineHeight: 1.4},
		SectionsHeader:    Style{Size: 16, Bold: true, Color: "#1F2937"},
		SectionsSubheader: Style{Size: 11, Color: "#6B7280"},
		SectionNumber:     Style{Size: 12, Bold: true, Color: "#1D4ED8"},
		SectionTitle:      Style{Size: 16, Bold: true, Color: "#1F2937"},
		ContentH1:         Style{Size: 16, Bold: true, Color: "#1F2937"},
		ContentH2:         Style{Size: 14, Bold: true, Color: "#151515"},
		ContentH3:         Style{Size: 12, Bold: true, Color: "#151515"},
		Paragraph:         Style{Size: 11, Color: "#374151", LineHeight: 1.4},
		ListItem:          Style{Size: 11, Color: "#374151", LineHeight: 1.2},
		BulletPoint:       Style{Size: 11, Bold: true, Color: "#3B82F6"},
		FooterTitle:       Style{Size: 11, Bold: true, Color: "#374151"},
		FooterSubtitle:    Style{Size: 9, Color: "#6B7280"},
		FooterCredit:      Style{Size: 8, Color: "#9CA3AF"},

		LogoBox:    Box{Fill: "#F8FAFC", Border: "#E2E8F0"},
		InfoBox:    Box{Fill: "#F9FAFB", Border: "#E5E7EB"},
		PurposeBox: Box{Fill: "#ECFDF5", Border: "#10B981"},
		ContentBox: Box{Fill: "#FFFFFF", Border: "#D1D5DB"},
		FooterBox:  Box{Fill: "#F9FAFB", Border: "#E5E7EB"},
		NumberFill: "#DBEAFE",

		SectionRule: Line{Color: "#3B82F6", Width: 2},
		ContentRule: Line{Color: "#D1D5DB", Width: 1},
	}
}

// Heading returns the content heading style for level 1-3.
func (t Theme) Heading(level int) Style {
	switch level {
	case 1:
		return t.ContentH1
	case 2:
		return t.ContentH2
	default:
		return t.ContentH3
	}
}

func (s Style) lineHeight() float64 {
	lh := s.LineHeight
	if lh <= 0 {
		lh = 1.2
	}
	return s.Size * lh
}

func (s Style) fontStyle() string {
	if s.Bold {
		return "B"
	}
	return ""
}
