package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"
)

// customFamily is the family name TTF fonts are registered under.
const customFamily = "guide"

// Fonts lists optional TrueType files. Regular is required for any of them
// to be used; missing variants reuse the regular face.
type Fonts struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// Empty reports whether no font was requested.
func (f Fonts) Empty() bool {
	return strings.TrimSpace(f.Regular) == ""
}

// loadFonts registers the requested TTF fonts on pdf. It returns false and
// logs a warning when they cannot be used, in which case the caller keeps
// the theme's core fonts.
func loadFonts(pdf *gofpdf.Fpdf, f Fonts) (ok bool) {
	if f.Empty() {
		return false
	}
	regular, err := os.ReadFile(f.Regular)
	if err != nil {
		log.Warn().Err(err).Str("font", f.Regular).Msg("font unavailable; using default fonts")
		return false
	}
	faces := map[string][]byte{"": regular}
	for styleStr, path := range map[string]string{"B": f.Bold, "I": f.Italic, "BI": f.BoldItalic} {
		if strings.TrimSpace(path) == "" {
			faces[styleStr] = regular
			continue
		}
		b, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("font", path).Msg("font unavailable; using default fonts")
			return false
		}
		faces[styleStr] = b
	}

	// The TTF parser can panic on corrupt input.
	defer func() {
		if rec := recover(); rec != nil {
			log.Warn().Str("font", f.Regular).Str("error", fmt.Sprint(rec)).Msg("font unreadable; using default fonts")
			pdf.ClearError()
			ok = false
		}
	}()
	for styleStr, b := range faces {
		pdf.AddUTF8FontFromBytes(customFamily, styleStr, b)
	}
	if pdf.Err() {
		log.Warn().Err(pdf.Error()).Str("font", f.Regular).Msg("font unreadable; using default fonts")
		pdf.ClearError()
		return false
	}
	return true
}
