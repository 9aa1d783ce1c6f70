package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/bmcanvas/internal/document"
	"github.com/dgallion1/bmcanvas/internal/section"
	"github.com/fumiama/go-docx"
)

// DOCXFilename is the download name of the Word export.
const DOCXFilename = "business-model-canvas.docx"

// DOCXContentType is the media type of a WordprocessingML document.
const DOCXContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DOCXExporter renders the same node stream as the PDF into a Word document.
type DOCXExporter struct {
	opts Options
}

func (e *DOCXExporter) Filename() string { return DOCXFilename }

func (e *DOCXExporter) ContentType() string { return DOCXContentType }

// Export builds and writes the document. A panic inside go-docx is returned
// as an error.
func (e *DOCXExporter) Export(w io.Writer, sections []section.Section) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render docx: %v", r)
		}
	}()

	t, b := e.opts.Theme, e.opts.Branding
	doc := docx.New().WithDefaultTheme()

	para := doc.AddParagraph().Justification("center")
	styled(para.AddText(b.LogoText), t.LogoText)
	para = doc.AddParagraph().Justification("center")
	styled(para.AddText(b.BusinessName), t.CompanyName)
	para = doc.AddParagraph().Justification("center")
	styled(para.AddText(b.Title), t.Header)

	para = doc.AddParagraph()
	styled(para.AddText(fmt.Sprintf("Business: %s    Website: %s    Date: %s", b.BusinessName, b.Website, b.Date)), t.BusinessInfo)

	styled(doc.AddParagraph().AddText("Business Purpose"), t.PurposeTitle)
	styled(doc.AddParagraph().AddText(b.Purpose), t.BusinessPurpose)

	styled(doc.AddParagraph().AddText("Canvas Sections"), t.SectionsHeader)
	styled(doc.AddParagraph().AddText(
		fmt.Sprintf("Complete overview of all %d business model components", len(sections))), t.SectionsSubheader)

	for _, s := range section.Sorted(sections) {
		para = doc.AddParagraph()
		styled(para.AddText(strconv.Itoa(s.Order)+"  "), t.SectionNumber)
		styled(para.AddText(s.Title), t.SectionTitle)
		docxRule(doc, t.SectionRule.Color)

		for _, n := range e.opts.Converter.Convert(s.Content) {
			docxNode(doc, t, n)
		}
	}

	footer := doc.AddParagraph().Justification("center")
	styled(footer.AddText(b.Title+" - Complete Overview"), t.FooterTitle)
	footer = doc.AddParagraph().Justification("center")
	styled(footer.AddText(fmt.Sprintf("%d Canvas Sections • Generated on %s",
		len(sections), e.opts.Now().Format("02/01/2006"))), t.FooterSubtitle)
	footer = doc.AddParagraph().Justification("center")
	styled(footer.AddText(b.Credit+" - "+b.BusinessName), t.FooterCredit)

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func docxNode(doc *docx.Docx, t Theme, n document.Node) {
	switch n.Kind {
	case document.KindRule:
		docxRule(doc, t.ContentRule.Color)
	case document.KindHeading:
		styled(doc.AddParagraph().AddText(n.Text), t.Heading(n.Level))
	case document.KindListItem:
		para := doc.AddParagraph()
		styled(para.AddText("• "), t.BulletPoint)
		docxSpans(para, t.ListItem, n.Spans)
	case document.KindParagraph:
		if n.Raw {
			raw := Style{Size: t.Paragraph.Size - 1, Color: t.Paragraph.Color}
			for _, line := range strings.Split(n.PlainText(), "\n") {
				styled(doc.AddParagraph().AddText(line), raw)
			}
			return
		}
		docxSpans(doc.AddParagraph(), t.Paragraph, n.Spans)
	}
}

func docxSpans(para *docx.Paragraph, base Style, spans []document.Span) {
	for _, sp := range spans {
		s := base
		s.Bold = sp.Bold
		styled(para.AddText(sp.Text), s)
	}
}

func docxRule(doc *docx.Docx, color string) {
	styled(doc.AddParagraph().AddText(strings.Repeat("─", 40)), Style{Size: 8, Color: color})
}

// styled applies a theme style to a run. Word sizes are in half-points.
func styled(r *docx.Run, s Style) {
	r.Size(strconv.Itoa(int(s.Size * 2)))
	if s.Color != "" {
		r.Color(strings.TrimPrefix(s.Color, "#"))
	}
	if s.Bold {
		r.Bold()
	}
}
