package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dgallion1/bmcanvas/internal/config"
	"github.com/dgallion1/bmcanvas/internal/document"
	"github.com/dgallion1/bmcanvas/internal/section"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFont            = "Helvetica"
	rawFont            = "Courier"
	sectionBadgeWidth  = 25.0
	sectionTitleIndent = 8.0
	listIndent         = 15.0
)

// PDFExporter lays the canvas out on A4 pages.
type PDFExporter struct {
	opts Options
}

func (e *PDFExporter) Filename() string {
	if e.opts.Branding.PDFFilename == "" {
		return "business-model-canvas.pdf"
	}
	return e.opts.Branding.PDFFilename
}

func (e *PDFExporter) ContentType() string { return "application/pdf" }

// Export lays out and writes the document. A panic inside gofpdf is
// returned as an error.
func (e *PDFExporter) Export(w io.Writer, sections []section.Section) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render pdf: %v", r)
		}
	}()

	pdf := e.build(section.Sorted(sections), len(sections))
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func (e *PDFExporter) build(sections []section.Section, count int) *gofpdf.Fpdf {
	t, b := e.opts.Theme, e.opts.Branding
	now := e.opts.Now()

	pdf := gofpdf.New("P", "pt", "A4", "")
	left, top, right, bottom := t.Margins[0], t.Margins[1], t.Margins[2], t.Margins[3]
	pdf.SetMargins(left, top, right)
	pdf.SetAutoPageBreak(true, bottom)
	pdf.SetTitle(b.Title+" - "+b.BusinessName, true)
	pdf.SetAuthor(b.BusinessName, true)
	pdf.SetSubject(b.Title, true)
	pdf.SetCreator("bmcanvas", true)
	pdf.SetCreationDate(now)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	d := &pdfDoc{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		theme: t,
		brand: b,
		left:  left,
		width: pageW - left - right,
	}

	d.logo()
	d.title()
	d.info()
	d.purpose()
	d.sectionsHeader(count)
	for i, s := range sections {
		d.section(i, s, e.opts.Converter.Convert(s.Content))
	}
	d.footer(count, now)

	return pdf
}

type pdfDoc struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	theme Theme
	brand config.Branding
	left  float64
	width float64
}

func (d *pdfDoc) font(s Style) {
	d.pdf.SetFont(pdfFont, s.fontStyle(), s.Size)
	d.pdf.SetTextColor(rgb(s.Color))
}

func (d *pdfDoc) textHeight(s Style, text string, w float64) float64 {
	d.font(s)
	// SplitLines works on the translated single-byte text; SplitText would
	// decode it as UTF-8.
	n := len(d.pdf.SplitLines([]byte(d.tr(text)), w))
	if n == 0 {
		n = 1
	}
	return float64(n) * s.lineHeight()
}

func (d *pdfDoc) text(s Style, text string, x, w float64, align string) {
	d.font(s)
	d.pdf.SetX(x)
	d.pdf.MultiCell(w, s.lineHeight(), d.tr(text), "", align, false)
}

// ensureSpace starts a new page when h points do not fit above the bottom margin.
func (d *pdfDoc) ensureSpace(h float64) {
	_, pageH := d.pdf.GetPageSize()
	_, _, _, bottom := d.pdf.GetMargins()
	if d.pdf.GetY()+h > pageH-bottom {
		d.pdf.AddPage()
	}
}

func (d *pdfDoc) frame(box Box, x, y, w, h float64) {
	d.pdf.SetFillColor(rgb(box.Fill))
	d.pdf.SetDrawColor(rgb(box.Border))
	d.pdf.SetLineWidth(1)
	d.pdf.Rect(x, y, w, h, "FD")
}

// hr draws a rule between the current margins.
func (d *pdfDoc) hr(l Line) {
	left, _, right, _ := d.pdf.GetMargins()
	pageW, _ := d.pdf.GetPageSize()
	y := d.pdf.GetY()
	d.pdf.SetDrawColor(rgb(l.Color))
	d.pdf.SetLineWidth(l.Width)
	d.pdf.Line(left, y, pageW-right, y)
	d.pdf.SetY(y + l.Width)
}

func (d *pdfDoc) logo() {
	t := d.theme
	const pad = 8.0
	h := pad + 5 + t.LogoText.lineHeight() + t.CompanyName.lineHeight() + 5 + pad

	d.ensureSpace(h)
	y := d.pdf.GetY()
	d.frame(t.LogoBox, d.left, y, d.width, h)
	d.pdf.SetY(y + pad + 5)
	d.text(t.LogoText, d.brand.LogoText, d.left+pad, d.width-2*pad, "C")
	d.text(t.CompanyName, d.brand.BusinessName, d.left+pad, d.width-2*pad, "C")
	d.pdf.SetY(y + h + 15)
}

func (d *pdfDoc) title() {
	d.text(d.theme.Header, d.brand.Title, d.left, d.width, "C")
	d.pdf.Ln(15)
}

func (d *pdfDoc) info() {
	t := d.theme
	const pad = 4.0
	cells := []string{
		"Business: " + d.brand.BusinessName,
		"Website: " + d.brand.Website,
		"Date: " + d.brand.Date,
	}
	colW := d.width / float64(len(cells))

	h := 0.0
	for _, c := range cells {
		h = max(h, d.textHeight(t.BusinessInfo, c, colW-2*pad))
	}
	h += 2 * pad

	d.ensureSpace(h)
	y := d.pdf.GetY()
	for i, c := range cells {
		x := d.left + float64(i)*colW
		d.frame(t.InfoBox, x, y, colW, h)
		d.pdf.SetXY(x+pad, y+pad)
		d.font(t.BusinessInfo)
		d.pdf.MultiCell(colW-2*pad, t.BusinessInfo.lineHeight(), d.tr(c), "", "L", false)
	}
	d.pdf.SetY(y + h + 20)
}

func (d *pdfDoc) purpose() {
	t := d.theme
	const padX, padY = 12.0, 10.0
	inner := d.width - 2*padX
	h := padY + t.PurposeTitle.lineHeight() + 8 + d.textHeight(t.BusinessPurpose, d.brand.Purpose, inner) + padY

	d.ensureSpace(h)
	y := d.pdf.GetY()
	d.frame(t.PurposeBox, d.left, y, d.width, h)
	d.pdf.SetY(y + padY)
	d.text(t.PurposeTitle, "Business Purpose", d.left+padX, inner, "L")
	d.pdf.Ln(8)
	d.text(t.BusinessPurpose, d.brand.Purpose, d.left+padX, inner, "L")
	d.pdf.SetY(y + h + 25)
}

func (d *pdfDoc) sectionsHeader(count int) {
	d.text(d.theme.SectionsHeader, "Canvas Sections", d.left, d.width, "L")
	d.pdf.Ln(5)
	d.text(d.theme.SectionsSubheader,
		fmt.Sprintf("Complete overview of all %d business model components", count),
		d.left, d.width, "L")
	d.pdf.Ln(20)
}

func (d *pdfDoc) section(i int, s section.Section, nodes []document.Node) {
	t := d.theme
	if i > 0 {
		d.pdf.Ln(15)
	}

	head := max(t.SectionTitle.lineHeight(), t.SectionNumber.lineHeight()+4)
	// Keep the heading on the same page as the first lines of content.
	d.ensureSpace(head + 8 + t.SectionRule.Width + 10 + 40)
	y := d.pdf.GetY()

	d.pdf.SetFillColor(rgb(t.NumberFill))
	d.pdf.Rect(d.left, y, sectionBadgeWidth, head, "F")
	d.font(t.SectionNumber)
	d.pdf.SetXY(d.left, y)
	d.pdf.CellFormat(sectionBadgeWidth, head, strconv.Itoa(s.Order), "", 0, "CM", false, 0, "")

	offset := sectionBadgeWidth + sectionTitleIndent
	d.pdf.SetXY(d.left+offset, y)
	d.font(t.SectionTitle)
	d.pdf.MultiCell(d.width-offset, t.SectionTitle.lineHeight(), d.tr(s.Title), "", "L", false)
	d.pdf.SetY(max(d.pdf.GetY(), y+head) + 8)

	d.hr(t.SectionRule)
	d.pdf.Ln(10)
	d.content(nodes)
	d.pdf.Ln(15)
}

// content renders converter output inside a bordered, padded block that may
// run over several pages.
func (d *pdfDoc) content(nodes []document.Node) {
	const padX, padY = 12.0, 10.0

	startPage, startY := d.pdf.PageNo(), d.pdf.GetY()
	left, _, right, _ := d.pdf.GetMargins()
	d.pdf.SetLeftMargin(left + padX)
	d.pdf.SetRightMargin(right + padX)
	d.pdf.SetY(startY + padY)

	for _, n := range nodes {
		d.node(n)
	}

	endY := d.pdf.GetY() + padY
	d.pdf.SetLeftMargin(left)
	d.pdf.SetRightMargin(right)
	d.border(d.theme.ContentBox.Border, startPage, startY, endY)
	d.pdf.SetY(endY)
}

func (d *pdfDoc) border(color string, startPage int, startY, endY float64) {
	pdf := d.pdf
	endPage := pdf.PageNo()
	_, pageH := pdf.GetPageSize()
	_, top, _, bottom := pdf.GetMargins()
	x0, x1 := d.left, d.left+d.width

	pdf.SetDrawColor(rgb(color))
	pdf.SetLineWidth(1)
	for p := startPage; p <= endPage; p++ {
		pdf.SetPage(p)
		y0, y1 := top, pageH-bottom
		if p == startPage {
			y0 = startY
			pdf.Line(x0, y0, x1, y0)
		}
		if p == endPage {
			y1 = endY
			pdf.Line(x0, y1, x1, y1)
		}
		pdf.Line(x0, y0, x0, y1)
		pdf.Line(x1, y0, x1, y1)
	}
	pdf.SetPage(endPage)
}

func (d *pdfDoc) node(n document.Node) {
	t := d.theme
	switch n.Kind {
	case document.KindRule:
		d.pdf.Ln(8)
		d.hr(t.ContentRule)
		d.pdf.Ln(8)

	case document.KindHeading:
		s := t.Heading(n.Level)
		if n.Level == 1 {
			d.pdf.Ln(12)
		} else {
			d.pdf.Ln(8)
		}
		d.font(s)
		// The core fonts have no glyphs for emoji icons.
		d.pdf.MultiCell(0, s.lineHeight(), d.tr(section.StripIcon(n.Text)), "", "L", false)
		d.pdf.Ln(4)

	case document.KindListItem:
		d.pdf.Ln(2)
		left, _, _, _ := d.pdf.GetMargins()
		d.pdf.SetLeftMargin(left + listIndent)
		d.pdf.SetX(left + listIndent)
		d.font(t.BulletPoint)
		d.pdf.Write(t.ListItem.lineHeight(), d.tr("• "))
		d.spans(t.ListItem, n.Spans)
		d.pdf.SetLeftMargin(left)
		d.pdf.Ln(t.ListItem.lineHeight() + 2)

	case document.KindParagraph:
		if n.Raw {
			d.raw(n.PlainText())
			return
		}
		d.spans(t.Paragraph, n.Spans)
		d.pdf.Ln(t.Paragraph.lineHeight() + 6)
	}
}

// raw prints unconverted markdown as preformatted source.
func (d *pdfDoc) raw(text string) {
	s := d.theme.Paragraph
	d.pdf.SetFont(rawFont, "", s.Size-1)
	d.pdf.SetTextColor(rgb(s.Color))
	d.pdf.MultiCell(0, s.lineHeight(), d.tr(text), "", "L", false)
	d.pdf.Ln(6)
}

func (d *pdfDoc) spans(base Style, spans []document.Span) {
	for _, sp := range spans {
		s := base
		s.Bold = sp.Bold
		d.font(s)
		d.pdf.Write(base.lineHeight(), d.tr(sp.Text))
	}
}

func (d *pdfDoc) footer(count int, now time.Time) {
	t := d.theme
	const padX, padY = 12.0, 8.0
	inner := d.width - 2*padX
	subtitle := fmt.Sprintf("%d Canvas Sections • Generated on %s", count, now.Format("02/01/2006"))
	credit := d.brand.Credit + " - " + d.brand.BusinessName
	title := d.brand.Title + " - Complete Overview"

	d.pdf.Ln(20)
	h := padY +
		d.textHeight(t.FooterTitle, title, inner) + 5 +
		d.textHeight(t.FooterSubtitle, subtitle, inner) + 3 +
		d.textHeight(t.FooterCredit, credit, inner) +
		padY

	d.ensureSpace(h)
	y := d.pdf.GetY()
	d.frame(t.FooterBox, d.left, y, d.width, h)
	d.pdf.SetY(y + padY)
	d.text(t.FooterTitle, title, d.left+padX, inner, "C")
	d.pdf.Ln(5)
	d.text(t.FooterSubtitle, subtitle, d.left+padX, inner, "C")
	d.pdf.Ln(3)
	d.text(t.FooterCredit, credit, d.left+padX, inner, "C")
	d.pdf.SetY(y + h)
}
