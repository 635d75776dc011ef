// Package render lays out classified blocks as a PDF using gofpdf. It is a
// pure consumer of markdown.Block values and a style.Theme.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/studyguide/internal/markdown"
	"github.com/hyperifyio/studyguide/internal/style"
)

// DefaultTitle is used when neither options nor the document name a title.
const DefaultTitle = "Study Guide"

// cellPadding is the inner padding of table cells, in points.
const cellPadding = 4.0

// Options configure one rendering. The zero value renders with the default
// theme on A4.
type Options struct {
	Theme    style.Theme
	Title    string
	Subtitle string
	Edition  string
	// PageSize is a gofpdf size name such as "A4" or "Letter".
	PageSize string
	Fonts    Fonts
}

// Result describes a finished rendering.
type Result struct {
	Pages        int
	FontFallback bool
}

// RenderFile writes blocks as a PDF to outPath.
func RenderFile(blocks []markdown.Block, outPath string, opts Options) (Result, error) {
	pdf, res := build(blocks, opts)
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return res, fmt.Errorf("write pdf: %w", err)
	}
	return res, nil
}

// Render writes blocks as a PDF to w.
func Render(w io.Writer, blocks []markdown.Block, opts Options) (Result, error) {
	pdf, res := build(blocks, opts)
	if err := pdf.Output(w); err != nil {
		return res, fmt.Errorf("write pdf: %w", err)
	}
	return res, nil
}

type renderer struct {
	pdf    *gofpdf.Fpdf
	theme  style.Theme
	reg    *style.Registry
	opts   Options
	family string
	tr     func(string) string
}

func build(blocks []markdown.Block, opts Options) (*gofpdf.Fpdf, Result) {
	if opts.Theme.Styles == nil {
		opts.Theme = style.GetTheme("")
	}
	if strings.TrimSpace(opts.PageSize) == "" {
		opts.PageSize = "A4"
	}
	if strings.TrimSpace(opts.Title) == "" {
		opts.Title = DocumentTitle(blocks)
	}
	if strings.TrimSpace(opts.Title) == "" {
		opts.Title = DefaultTitle
	}

	pdf := gofpdf.New("P", "pt", opts.PageSize, "")
	r := &renderer{pdf: pdf, theme: opts.Theme, reg: opts.Theme.Styles, opts: opts, tr: cp1252()}
	res := Result{}
	if loadFonts(pdf, opts.Fonts) {
		r.family = customFamily
		r.tr = passthrough
	} else if !opts.Fonts.Empty() {
		res.FontFallback = true
	}

	page := opts.Theme.Page
	top := page.Margin
	if floor := page.BannerHeight + 18; top < floor {
		top = floor
	}
	pdf.SetMargins(page.Margin, top, page.Margin)
	pdf.SetAutoPageBreak(true, page.Margin)
	pdf.SetTitle(opts.Title, true)
	pdf.SetSubject(opts.Subtitle, true)
	pdf.SetCreator("studyguide", true)
	pdf.AliasNbPages("")
	pdf.SetHeaderFuncMode(r.header, true)
	pdf.SetFooterFunc(r.footer)
	pdf.AddPage()

	for _, b := range blocks {
		switch v := b.(type) {
		case markdown.Paragraph:
			r.paragraph(v)
		case markdown.Table:
			r.table(v)
		case markdown.Spacer:
			r.space(v.Height)
		case markdown.PageBreak:
			r.pageBreak()
		}
	}
	res.Pages = pdf.PageNo()
	log.Debug().Int("pages", res.Pages).Int("blocks", len(blocks)).Str("theme", string(opts.Theme.Name)).Msg("layout complete")
	return pdf, res
}

func (r *renderer) setFont(a style.Attributes, bold, italic bool) {
	s := a.FontStyle()
	if bold && !a.Bold {
		s = "B" + s
	}
	if italic && !a.Italic {
		s += "I"
	}
	family := a.Font
	if r.family != "" {
		family = r.family
	}
	r.pdf.SetFont(family, s, a.Size)
}

func (r *renderer) space(h float64) {
	if h > 0 {
		r.pdf.Ln(h)
	}
}

// pageBreak starts a new page unless nothing has been drawn on the current
// one yet.
func (r *renderer) pageBreak() {
	_, top, _, _ := r.pdf.GetMargins()
	if r.pdf.GetY() <= top+0.5 {
		return
	}
	r.pdf.AddPage()
}

func (r *renderer) paragraph(p markdown.Paragraph) {
	a := r.reg.Lookup(p.Role)
	runs := parseRuns(p.Text)
	if a.Uppercase {
		runs = upperRuns(runs)
	}
	if len(runs) == 0 {
		return
	}

	r.space(a.SpaceBefore)
	left, _, _, _ := r.pdf.GetMargins()
	if a.Indent > 0 {
		r.pdf.SetLeftMargin(left + a.Indent)
		defer r.pdf.SetLeftMargin(left)
	}
	r.pdf.SetX(left + a.Indent)
	r.pdf.SetTextColor(a.Color.R, a.Color.G, a.Color.B)

	if bold, italic, ok := uniform(runs); ok {
		r.setFont(a, bold, italic)
		if a.Filled {
			r.pdf.SetFillColor(a.Fill.R, a.Fill.G, a.Fill.B)
		}
		r.pdf.MultiCell(0, a.Leading, r.tr(plainText(runs)), "", string(a.Align), a.Filled)
	} else {
		r.mixed(runs, a, left+a.Indent)
	}
	r.space(a.SpaceAfter)
}

// word is a measured piece of a mixed-style line. Text includes the space
// that separates it from the previous word on the same line.
type word struct {
	text   string
	bold   bool
	italic bool
	width  float64
}

// mixed lays out runs of differing font styles. Lines are filled word by word,
// then positioned according to the role's alignment so centered and filled
// roles look the same whether or not they mix styles.
func (r *renderer) mixed(runs []run, a style.Attributes, x0 float64) {
	_, _, right, bottom := r.pdf.GetMargins()
	pageW, pageH := r.pdf.GetPageSize()
	avail := pageW - right - x0

	lines, widths := r.layoutLines(runs, a, avail)
	if a.Filled {
		r.pdf.SetFillColor(a.Fill.R, a.Fill.G, a.Fill.B)
	}
	for i, line := range lines {
		y := r.pdf.GetY()
		if y+a.Leading > pageH-bottom {
			r.pdf.AddPage()
			y = r.pdf.GetY()
		}
		if a.Filled {
			r.pdf.Rect(x0, y, avail, a.Leading, "F")
		}
		r.pdf.SetXY(x0+lineOffset(a.Align, avail, widths[i]), y)
		for _, w := range line {
			r.setFont(a, w.bold, w.italic)
			r.pdf.CellFormat(w.width, a.Leading, r.tr(w.text), "", 0, "L", false, 0, "")
		}
		r.pdf.SetXY(x0, y+a.Leading)
	}
}

// layoutLines breaks runs into lines no wider than avail, measuring each word
// in its own font style. It returns the lines and their widths.
func (r *renderer) layoutLines(runs []run, a style.Attributes, avail float64) ([][]word, []float64) {
	var (
		lines  [][]word
		widths []float64
		cur    []word
		curW   float64
		gap    bool
	)
	endLine := func() {
		lines = append(lines, cur)
		widths = append(widths, curW)
		cur, curW = nil, 0
	}
	for _, rn := range runs {
		if rn.Break {
			endLine()
			gap = false
			continue
		}
		r.setFont(a, rn.Bold, rn.Italic)
		if rn.Text != "" && isSpace(rn.Text[0]) {
			gap = true
		}
		for _, f := range strings.Fields(rn.Text) {
			text := f
			if gap && len(cur) > 0 {
				text = " " + f
			}
			w := r.pdf.GetStringWidth(r.tr(text))
			if len(cur) > 0 && curW+w > avail {
				endLine()
				text = f
				w = r.pdf.GetStringWidth(r.tr(text))
			}
			cur = append(cur, word{text: text, bold: rn.Bold, italic: rn.Italic, width: w})
			curW += w
			gap = true
		}
		gap = rn.Text != "" && isSpace(rn.Text[len(rn.Text)-1])
	}
	if len(cur) > 0 || len(lines) == 0 {
		endLine()
	}
	return lines, widths
}

// lineOffset is the distance from the left edge of the text box at which a
// line of width w starts. Justified text is set flush left.
func lineOffset(align style.Align, avail, w float64) float64 {
	switch align {
	case style.AlignCenter:
		return (avail - w) / 2
	case style.AlignRight:
		return avail - w
	}
	return 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// cell is one prepared table cell.
type cell struct {
	lines  []string
	bold   bool
	italic bool
}

func (r *renderer) table(t markdown.Table) {
	if t.Columns <= 0 {
		return
	}
	left, _, right, bottom := r.pdf.GetMargins()
	pageW, pageH := r.pdf.GetPageSize()
	colW := (pageW - left - right) / float64(t.Columns)

	rows := make([][]string, 0, len(t.Rows)+1)
	roles := make([]style.Role, 0, len(t.Rows)+1)
	if t.Header != nil {
		rows = append(rows, t.Header)
		roles = append(roles, style.TableHeaderCell)
	}
	for _, row := range t.Rows {
		rows = append(rows, row)
		roles = append(roles, style.TableBodyCell)
	}

	grid := r.theme.Page
	for i, row := range rows {
		a := r.reg.Lookup(roles[i])
		cells, height := r.prepareRow(row, t.Columns, colW, a)
		if r.pdf.GetY()+height > pageH-bottom {
			r.pdf.AddPage()
		}
		y := r.pdf.GetY()
		r.pdf.SetDrawColor(grid.GridColor.R, grid.GridColor.G, grid.GridColor.B)
		r.pdf.SetLineWidth(grid.GridWidth)
		for j, c := range cells {
			x := left + float64(j)*colW
			mode := "D"
			if a.Filled {
				r.pdf.SetFillColor(a.Fill.R, a.Fill.G, a.Fill.B)
				mode = "FD"
			}
			r.pdf.Rect(x, y, colW, height, mode)
			r.setFont(a, c.bold, c.italic)
			r.pdf.SetTextColor(a.Color.R, a.Color.G, a.Color.B)
			for k, line := range c.lines {
				r.pdf.SetXY(x+cellPadding, y+cellPadding+float64(k)*a.Leading)
				r.pdf.CellFormat(colW-2*cellPadding, a.Leading, line, "", 0, string(a.Align), false, 0, "")
			}
		}
		r.pdf.SetXY(left, y+height)
	}
}

// prepareRow wraps every drawn cell of row and returns the row height. Cells
// beyond cols are not drawn; short rows leave the remaining columns empty.
func (r *renderer) prepareRow(row []string, cols int, colW float64, a style.Attributes) ([]cell, float64) {
	n := len(row)
	if n > cols {
		n = cols
	}
	cells := make([]cell, n)
	maxLines := 1
	for i := 0; i < n; i++ {
		runs := parseRuns(row[i])
		if a.Uppercase {
			runs = upperRuns(runs)
		}
		c := cell{}
		for _, rn := range runs {
			c.bold = c.bold || rn.Bold
			c.italic = c.italic || rn.Italic
		}
		r.setFont(a, c.bold, c.italic)
		for _, seg := range strings.Split(plainText(runs), "\n") {
			c.lines = append(c.lines, r.wrap(r.tr(seg), colW-2*cellPadding)...)
		}
		if len(c.lines) > maxLines {
			maxLines = len(c.lines)
		}
		cells[i] = c
	}
	return cells, float64(maxLines)*a.Leading + 2*cellPadding
}

// wrap breaks text into lines no wider than w using the current font.
func (r *renderer) wrap(text string, w float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines []string
		cur   string
	)
	for _, word := range words {
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if cur != "" && r.pdf.GetStringWidth(candidate) > w {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = candidate
	}
	return append(lines, cur)
}
