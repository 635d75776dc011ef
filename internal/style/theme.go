package style

import "strings"

// Name identifies one of the built-in visual themes.
type Name string

const (
	// Classic is the plain first layout: Helvetica, dark blue headings.
	Classic Name = "classic"
	// Design is the light design-system layout.
	Design Name = "design"
	// NeoPunk is the high-contrast layout with uppercase headings.
	NeoPunk Name = "neopunk"
	// Markdown is the layout used for Markdown-driven documents.
	Markdown Name = "markdown"
	// Default is what an empty or unknown name resolves to.
	Default = Markdown
)

// PageStyle holds the per-page decoration and frame settings of a theme.
type PageStyle struct {
	Margin       float64
	BannerFill   Color
	BannerText   Color
	BannerHeight float64
	RuleColor    Color
	FooterText   Color
	// GridColor and GridWidth draw table cell borders.
	GridColor Color
	GridWidth float64
}

// Theme bundles a registry with the page decoration it was designed with.
type Theme struct {
	Name        Name
	Label       string
	Description string
	Page        PageStyle
	Styles      *Registry
}

// GetTheme returns the theme registered under name. Unknown names resolve to
// the Markdown theme.
func GetTheme(name string) Theme {
	switch Name(normalizeName(name)) {
	case Classic:
		return classicTheme()
	case Design:
		return designTheme()
	case NeoPunk:
		return neoPunkTheme()
	default:
		return markdownTheme()
	}
}

// Names lists the built-in theme names.
func Names() []Name {
	return []Name{Classic, Design, NeoPunk, Markdown}
}

// normalizeName converts user input to a canonical theme name.
func normalizeName(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "classic", "plain", "simple", "v1":
		return string(Classic)
	case "design", "design-system", "design system", "light", "v2":
		return string(Design)
	case "neopunk", "neo-punk", "neo punk", "punk", "v3":
		return string(NeoPunk)
	case "markdown", "md", "final", "v4":
		return string(Markdown)
	default:
		if strings.Contains(v, "punk") {
			return string(NeoPunk)
		}
		if strings.Contains(v, "design") {
			return string(Design)
		}
		return string(Default)
	}
}

func classicTheme() Theme {
	return Theme{
		Name:        Classic,
		Label:       "Classic",
		Description: "Plain layout with Helvetica and dark blue section headings",
		Page: PageStyle{
			Margin:       72,
			BannerFill:   DarkBlue,
			BannerText:   White,
			BannerHeight: 28,
			RuleColor:    LightGrey,
			FooterText:   Gray,
			GridColor:    Black,
			GridWidth:    1,
		},
		Styles: NewRegistry(map[Role]Attributes{
			Title:           {Font: "Helvetica", Bold: true, Size: 24, Leading: 29, Color: Black, Align: AlignCenter, SpaceAfter: 12},
			SectionHeading:  {Font: "Helvetica", Bold: true, Size: 18, Leading: 22, Color: DarkBlue, SpaceBefore: 20, SpaceAfter: 12},
			SubHeading:      {Font: "Helvetica", Bold: true, Size: 14, Leading: 17, Color: Black, SpaceBefore: 15, SpaceAfter: 10},
			Body:            {Font: "Helvetica", Size: 11, Leading: 14, Color: Black, SpaceBefore: 6, SpaceAfter: 6},
			Bullet:          {Font: "Helvetica", Size: 11, Leading: 14, Color: Black, SpaceAfter: 4, Indent: 14},
			Quote:           {Font: "Helvetica", Italic: true, Size: 11, Leading: 14, Color: Gray, SpaceBefore: 4, SpaceAfter: 8, Indent: 20},
			TableHeaderCell: {Font: "Helvetica", Bold: true, Size: 11, Leading: 13, Color: White, Align: AlignCenter, Fill: DarkBlue, Filled: true},
			TableBodyCell:   {Font: "Helvetica", Size: 10, Leading: 12, Color: Black, Fill: WhiteSmoke, Filled: true},
		}),
	}
}

func designTheme() Theme {
	ink := Color{31, 41, 55}
	accent := Color{59, 89, 152}
	muted := Color{100, 116, 139}
	return Theme{
		Name:        Design,
		Label:       "Design System",
		Description: "Light layout with a single accent color and generous spacing",
		Page: PageStyle{
			Margin:       60,
			BannerFill:   Color{238, 242, 255},
			BannerText:   accent,
			BannerHeight: 30,
			RuleColor:    Color{226, 232, 240},
			FooterText:   muted,
			GridColor:    Color{226, 232, 240},
			GridWidth:    0.5,
		},
		Styles: NewRegistry(map[Role]Attributes{
			Title:           {Font: "Helvetica", Bold: true, Size: 26, Leading: 31, Color: accent, Align: AlignLeft, SpaceAfter: 14},
			SectionHeading:  {Font: "Helvetica", Bold: true, Size: 17, Leading: 21, Color: accent, SpaceBefore: 18, SpaceAfter: 8},
			SubHeading:      {Font: "Helvetica", Bold: true, Size: 13, Leading: 16, Color: Color{51, 65, 85}, SpaceBefore: 12, SpaceAfter: 6},
			Body:            {Font: "Helvetica", Size: 10.5, Leading: 15, Color: ink, SpaceBefore: 4, SpaceAfter: 6},
			Bullet:          {Font: "Helvetica", Size: 10.5, Leading: 15, Color: ink, SpaceAfter: 3, Indent: 12},
			Quote:           {Font: "Helvetica", Italic: true, Size: 10.5, Leading: 15, Color: muted, SpaceBefore: 4, SpaceAfter: 8, Indent: 18},
			TableHeaderCell: {Font: "Helvetica", Bold: true, Size: 10, Leading: 12, Color: Color{30, 41, 59}, Align: AlignLeft, Fill: Color{226, 232, 240}, Filled: true},
			TableBodyCell:   {Font: "Helvetica", Size: 9.5, Leading: 12, Color: ink},
		}),
	}
}

func neoPunkTheme() Theme {
	neon := Color{230, 255, 0}
	magenta := Color{255, 0, 128}
	cyan := Color{0, 200, 200}
	ink := Color{20, 20, 20}
	return Theme{
		Name:        NeoPunk,
		Label:       "Neo-Punk",
		Description: "High-contrast layout with neon accents and uppercase headings",
		Page: PageStyle{
			Margin:       54,
			BannerFill:   ink,
			BannerText:   neon,
			BannerHeight: 32,
			RuleColor:    magenta,
			FooterText:   magenta,
			GridColor:    ink,
			GridWidth:    1.5,
		},
		Styles: NewRegistry(map[Role]Attributes{
			Title:           {Font: "Courier", Bold: true, Size: 28, Leading: 32, Color: magenta, Align: AlignLeft, SpaceAfter: 14, Uppercase: true},
			SectionHeading:  {Font: "Courier", Bold: true, Size: 18, Leading: 22, Color: ink, SpaceBefore: 18, SpaceAfter: 8, Uppercase: true, Fill: neon, Filled: true},
			SubHeading:      {Font: "Courier", Bold: true, Size: 13, Leading: 16, Color: cyan, SpaceBefore: 12, SpaceAfter: 6, Uppercase: true},
			Body:            {Font: "Helvetica", Size: 10.5, Leading: 14, Color: ink, SpaceBefore: 4, SpaceAfter: 6},
			Bullet:          {Font: "Helvetica", Size: 10.5, Leading: 14, Color: ink, SpaceAfter: 3, Indent: 12},
			Quote:           {Font: "Courier", Italic: true, Size: 10.5, Leading: 14, Color: magenta, SpaceBefore: 4, SpaceAfter: 8, Indent: 18},
			TableHeaderCell: {Font: "Courier", Bold: true, Size: 10, Leading: 12, Color: neon, Align: AlignLeft, Fill: ink, Filled: true, Uppercase: true},
			TableBodyCell:   {Font: "Helvetica", Size: 9.5, Leading: 12, Color: ink, Fill: Color{250, 250, 240}, Filled: true},
		}),
	}
}

func markdownTheme() Theme {
	navy := Color{25, 42, 86}
	return Theme{
		Name:        Markdown,
		Label:       "Markdown",
		Description: "Layout for Markdown-driven documents",
		Page: PageStyle{
			Margin:       56,
			BannerFill:   navy,
			BannerText:   White,
			BannerHeight: 28,
			RuleColor:    LightGrey,
			FooterText:   Gray,
			GridColor:    LightGrey,
			GridWidth:    0.5,
		},
		Styles: NewRegistry(map[Role]Attributes{
			Title:           {Font: "Helvetica", Bold: true, Size: 22, Leading: 27, Color: navy, Align: AlignCenter, SpaceAfter: 14, Uppercase: true},
			SectionHeading:  {Font: "Helvetica", Bold: true, Size: 16, Leading: 20, Color: navy, SpaceBefore: 16, SpaceAfter: 8},
			SubHeading:      {Font: "Helvetica", Bold: true, Size: 13, Leading: 16, Color: Color{46, 64, 110}, SpaceBefore: 12, SpaceAfter: 6},
			Body:            {Font: "Helvetica", Size: 10.5, Leading: 14, Color: Black, SpaceBefore: 3, SpaceAfter: 5},
			Bullet:          {Font: "Helvetica", Size: 10.5, Leading: 14, Color: Black, SpaceAfter: 3, Indent: 12},
			Quote:           {Font: "Helvetica", Italic: true, Size: 10.5, Leading: 14, Color: Color{90, 90, 90}, SpaceBefore: 4, SpaceAfter: 8, Indent: 18},
			TableHeaderCell: {Font: "Helvetica", Bold: true, Size: 10, Leading: 12, Color: White, Align: AlignCenter, Fill: navy, Filled: true},
			TableBodyCell:   {Font: "Helvetica", Size: 9.5, Leading: 12, Color: Black, Fill: Color{248, 249, 251}, Filled: true},
		}),
	}
}
