package app

// Config holds runtime configuration for one generation run. It is threaded
// explicitly into New; nothing reads process globals.
type Config struct {
	InputPath  string
	OutputPath string
	// Builtin renders the embedded study guide instead of InputPath.
	Builtin bool

	// Presentation
	Theme    string
	Title    string
	Subtitle string
	Edition  string
	PageSize string

	// Preferred TTF fonts; on load failure the theme's core fonts are used.
	FontRegular    string
	FontBold       string
	FontItalic     string
	FontBoldItalic string

	// DryRun classifies the input and logs a block summary without writing.
	DryRun  bool
	Verbose bool
}
