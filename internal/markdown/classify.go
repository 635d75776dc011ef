// Package markdown classifies a constrained Markdown subset line by line into
// layout blocks. It knows nothing about PDF rendering.
package markdown

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/hyperifyio/studyguide/internal/style"
)

// BulletGlyph prefixes the text of list items.
const BulletGlyph = "•"

// TableSpacing is the height of the spacer emitted after every table.
const TableSpacing = 12.0

var (
	boldRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe    = regexp.MustCompile(`\*([^*]+?)\*`)
	lineBreakRe = regexp.MustCompile(`(?i)<br\s*/?>`)
	separatorRe = regexp.MustCompile(`^:?-+:?$`)
	// A page break is written as <!-- pagebreak --> or \newpage on a line
	// of its own.
	pageBreakRe = regexp.MustCompile(`(?i)^(<!--\s*page-?break\s*-->|\\newpage|\\pagebreak)$`)
)

var headingPrefixes = []struct {
	prefix string
	role   style.Role
}{
	{"### ", style.SubHeading},
	{"## ", style.SectionHeading},
	{"# ", style.Title},
}

// lineBreakMark holds the place of a <br> while the rest of the text is
// escaped.
const lineBreakMark = "\x00"

// Inline rewrites inline Markdown into renderer markup: **x** becomes <b>x</b>,
// *y* becomes <i>y</i> and any <br> spelling becomes <br/>. Everything else is
// escaped, so a literal "<" or "&" reaches the page as text. It is a single
// non-recursive pass; nested or overlapping markers are left to chance.
func Inline(s string) string {
	s = strings.ReplaceAll(s, lineBreakMark, "")
	s = lineBreakRe.ReplaceAllString(s, lineBreakMark)
	s = html.EscapeString(s)
	s = boldRe.ReplaceAllString(s, "<b>$1</b>")
	s = italicRe.ReplaceAllString(s, "<i>$1</i>")
	return strings.ReplaceAll(s, lineBreakMark, "<br/>")
}

// Classify turns lines into blocks in document order. It holds no state
// between calls.
func Classify(lines []string) []Block {
	var sc scanState
	for _, line := range lines {
		sc.line(line)
	}
	sc.flush()
	return sc.blocks
}

// ClassifyText splits s into lines and classifies them.
func ClassifyText(s string) []Block {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return Classify(strings.Split(s, "\n"))
}

// Read reads all of r before classifying it.
func Read(r io.Reader) ([]Block, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Classify(lines), nil
}

// scanState is the transient state of one classification pass.
type scanState struct {
	inTable bool
	header  []string
	rows    [][]string
	blocks  []Block
}

func (sc *scanState) line(raw string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		sc.flush()
		return
	}
	if strings.HasPrefix(s, "|") {
		sc.tableLine(s)
		return
	}
	if sc.inTable {
		sc.flush()
	}
	if pageBreakRe.MatchString(s) {
		sc.emit(PageBreak{})
		return
	}
	for _, h := range headingPrefixes {
		if strings.HasPrefix(s, h.prefix) {
			sc.paragraph(strings.TrimSpace(s[len(h.prefix):]), h.role)
			return
		}
	}
	if strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ") {
		sc.emit(Paragraph{Text: BulletGlyph + " " + Inline(strings.TrimSpace(s[2:])), Role: style.Bullet})
		return
	}
	if strings.HasPrefix(s, "> ") {
		sc.paragraph(strings.TrimSpace(s[2:]), style.Quote)
		return
	}
	sc.paragraph(s, style.Body)
}

func (sc *scanState) tableLine(s string) {
	sc.inTable = true
	cells := splitRow(s)
	if isSeparator(cells) {
		return
	}
	for i, c := range cells {
		cells[i] = Inline(c)
	}
	if sc.header == nil && len(sc.rows) == 0 {
		sc.header = cells
		return
	}
	sc.rows = append(sc.rows, cells)
}

// flush emits the buffered table, if any, and resets the table state.
func (sc *scanState) flush() {
	if !sc.inTable {
		return
	}
	if sc.header != nil || len(sc.rows) > 0 {
		cols := len(sc.header)
		if sc.header == nil {
			cols = len(sc.rows[0])
		}
		sc.emit(Table{Header: sc.header, Rows: sc.rows, Columns: cols})
		sc.emit(Spacer{Height: TableSpacing})
	}
	sc.inTable = false
	sc.header = nil
	sc.rows = nil
}

func (sc *scanState) paragraph(text string, role style.Role) {
	sc.emit(Paragraph{Text: Inline(text), Role: role})
}

func (sc *scanState) emit(b Block) {
	sc.blocks = append(sc.blocks, b)
}

// splitRow strips one outer pipe on each side and splits on the rest.
func splitRow(s string) []string {
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	parts := strings.Split(s, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isSeparator(cells []string) bool {
	seen := false
	for _, c := range cells {
		if c == "" {
			continue
		}
		if !separatorRe.MatchString(c) {
			return false
		}
		seen = true
	}
	return seen
}
