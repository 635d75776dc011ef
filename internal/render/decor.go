package render

import (
	"strconv"
	"strings"

	"github.com/hyperifyio/studyguide/internal/style"
)

// DefaultSubtitle and DefaultEdition label the page banner and footer when
// neither configuration nor front matter provide them.
const (
	DefaultSubtitle = "Filipino Question Words"
	DefaultEdition  = "Study Edition"
)

// header draws the banner across the top of every page: the document title on
// the left, the subtitle on the right.
func (r *renderer) header() {
	page := r.theme.Page
	w, _ := r.pdf.GetPageSize()
	left, _, right, _ := r.pdf.GetMargins()

	r.pdf.SetFillColor(page.BannerFill.R, page.BannerFill.G, page.BannerFill.B)
	r.pdf.Rect(0, 0, w, page.BannerHeight, "F")
	r.pdf.SetTextColor(page.BannerText.R, page.BannerText.G, page.BannerText.B)

	half := (w - left - right) / 2
	r.pdf.SetFont(r.decorFamily(), "B", 10)
	r.pdf.SetXY(left, 0)
	r.pdf.CellFormat(half, page.BannerHeight, r.tr(r.opts.Title), "", 0, "L", false, 0, "")
	r.pdf.SetFont(r.decorFamily(), "", 9)
	r.pdf.SetXY(left+half, 0)
	r.pdf.CellFormat(half, page.BannerHeight, r.tr(pick(r.opts.Subtitle, DefaultSubtitle)), "", 0, "R", false, 0, "")
}

// footer draws a rule, the edition label and the page counter.
func (r *renderer) footer() {
	page := r.theme.Page
	w, h := r.pdf.GetPageSize()
	left, _, right, _ := r.pdf.GetMargins()
	y := h - page.Margin*0.6

	r.pdf.SetDrawColor(page.RuleColor.R, page.RuleColor.G, page.RuleColor.B)
	r.pdf.SetLineWidth(0.5)
	r.pdf.Line(left, y, w-right, y)

	r.pdf.SetTextColor(page.FooterText.R, page.FooterText.G, page.FooterText.B)
	r.pdf.SetFont(r.decorFamily(), "", 8)
	half := (w - left - right) / 2
	r.pdf.SetXY(left, y+2)
	r.pdf.CellFormat(half, 12, r.tr(pick(r.opts.Edition, DefaultEdition)), "", 0, "L", false, 0, "")
	r.pdf.SetXY(left+half, y+2)
	r.pdf.CellFormat(half, 12, pageLabel(r.pdf.PageNo()), "", 0, "R", false, 0, "")
}

func (r *renderer) decorFamily() string {
	if r.family != "" {
		return r.family
	}
	return r.reg.Lookup(style.Body).Font
}

// pageLabel uses the gofpdf total-pages alias, replaced on output.
func pageLabel(n int) string {
	return "Page " + strconv.Itoa(n) + " of {nb}"
}

func pick(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
