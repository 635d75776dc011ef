package style

// Role is a semantic tag selecting presentation attributes independent of
// the content it is applied to.
type Role int

const (
	Body Role = iota
	Title
	SectionHeading
	SubHeading
	Bullet
	Quote
	TableHeaderCell
	TableBodyCell
)

var roleNames = map[Role]string{
	Body:            "body",
	Title:           "title",
	SectionHeading:  "section-heading",
	SubHeading:      "sub-heading",
	Bullet:          "bullet",
	Quote:           "quote",
	TableHeaderCell: "table-header-cell",
	TableBodyCell:   "table-body-cell",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}

// Roles lists every role in declaration order.
func Roles() []Role {
	return []Role{Body, Title, SectionHeading, SubHeading, Bullet, Quote, TableHeaderCell, TableBodyCell}
}

// Align is a horizontal alignment in the layout engine's notation.
type Align string

const (
	AlignLeft    Align = "L"
	AlignCenter  Align = "C"
	AlignRight   Align = "R"
	AlignJustify Align = "J"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B int
}

var (
	Black      = Color{0, 0, 0}
	White      = Color{255, 255, 255}
	DarkBlue   = Color{0, 0, 139}
	DarkGray   = Color{169, 169, 169}
	Gray       = Color{128, 128, 128}
	LightGrey  = Color{211, 211, 211}
	WhiteSmoke = Color{245, 245, 245}
)

// Attributes are the presentation settings attached to one role.
// Sizes and spacing are in points.
type Attributes struct {
	Font        string
	Bold        bool
	Italic      bool
	Size        float64
	Leading     float64
	Color       Color
	Align       Align
	SpaceBefore float64
	SpaceAfter  float64
	Indent      float64
	// Fill is only honored when Filled is set; table cells use it.
	Fill   Color
	Filled bool
	// Uppercase asks the renderer to case-fold the displayed text.
	Uppercase bool
}

// FontStyle returns the style string understood by the layout engine.
func (a Attributes) FontStyle() string {
	s := ""
	if a.Bold {
		s += "B"
	}
	if a.Italic {
		s += "I"
	}
	return s
}

// Registry is an immutable role to attributes mapping. It is built once and
// shared by reference; nothing mutates it after construction.
type Registry struct {
	roles map[Role]Attributes
}

// NewRegistry copies table into a new Registry. A missing Body entry gets a
// plain Helvetica default so lookups always resolve.
func NewRegistry(table map[Role]Attributes) *Registry {
	roles := make(map[Role]Attributes, len(table)+1)
	for r, a := range table {
		roles[r] = normalize(a)
	}
	if _, ok := roles[Body]; !ok {
		roles[Body] = normalize(Attributes{Font: "Helvetica", Size: 11, Leading: 14, Align: AlignLeft})
	}
	return &Registry{roles: roles}
}

// Lookup returns the attributes for role, falling back to Body.
func (r *Registry) Lookup(role Role) Attributes {
	if a, ok := r.roles[role]; ok {
		return a
	}
	return r.roles[Body]
}

// Has reports whether role has its own entry.
func (r *Registry) Has(role Role) bool {
	_, ok := r.roles[role]
	return ok
}

func normalize(a Attributes) Attributes {
	if a.Font == "" {
		a.Font = "Helvetica"
	}
	if a.Size <= 0 {
		a.Size = 11
	}
	if a.Leading <= 0 {
		a.Leading = a.Size * 1.2
	}
	if a.Align == "" {
		a.Align = AlignLeft
	}
	return a
}
