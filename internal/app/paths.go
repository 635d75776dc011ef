package app

import (
	"path/filepath"
	"strings"
)

// deriveOutputPath returns the input path with its extension replaced by
// .pdf. A path without an extension simply gains one; an input that already
// ends in .pdf gets .out.pdf so it is never overwritten.
func deriveOutputPath(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if strings.EqualFold(ext, ".pdf") {
		return base + ".out.pdf"
	}
	return base + ".pdf"
}
