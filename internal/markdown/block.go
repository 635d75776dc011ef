package markdown

import "github.com/hyperifyio/studyguide/internal/style"

// Block is one unit of formatted content ready for page layout. The concrete
// types are Paragraph, Table, Spacer and PageBreak.
type Block interface {
	block()
}

// Paragraph is a run of renderer markup tagged with a style role.
type Paragraph struct {
	Text string
	Role style.Role
}

// Table holds a header row and body rows. Rows are passed through as
// scanned; they are not padded to Columns.
type Table struct {
	Header  []string
	Rows    [][]string
	Columns int
}

// Spacer is vertical whitespace in points.
type Spacer struct {
	Height float64
}

// PageBreak starts a new page.
type PageBreak struct{}

func (Paragraph) block() {}
func (Table) block()     {}
func (Spacer) block()    {}
func (PageBreak) block() {}

// ContentBlocks returns blocks without the layout-only Spacer and PageBreak.
func ContentBlocks(blocks []Block) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		switch b.(type) {
		case Spacer, PageBreak:
			continue
		}
		out = append(out, b)
	}
	return out
}
