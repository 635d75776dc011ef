package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"

	"github.com/hyperifyio/studyguide/internal/markdown"
	"github.com/hyperifyio/studyguide/internal/style"
)

// run is a span of text sharing one font style. Break runs carry no text and
// stand for a forced line break.
type run struct {
	Text   string
	Bold   bool
	Italic bool
	Break  bool
}

// parseRuns tokenizes renderer markup (<b>, <i>, <br/> and their aliases)
// into styled runs. Unknown tags are dropped; their text is kept.
func parseRuns(markup string) []run {
	z := html.NewTokenizer(strings.NewReader(markup))
	var (
		runs         []run
		bold, italic int
	)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return runs
		case html.TextToken:
			if t := string(z.Text()); t != "" {
				runs = append(runs, run{Text: t, Bold: bold > 0, Italic: italic > 0})
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "br":
				runs = append(runs, run{Break: true})
			case "b", "strong":
				if tt == html.StartTagToken {
					bold++
				}
			case "i", "em":
				if tt == html.StartTagToken {
					italic++
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "b", "strong":
				if bold > 0 {
					bold--
				}
			case "i", "em":
				if italic > 0 {
					italic--
				}
			}
		}
	}
}

// plainText joins run text, turning breaks into newlines.
func plainText(runs []run) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Break {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(r.Text)
	}
	return b.String()
}

// uniform reports whether runs can be drawn with a single font style and no
// forced breaks, and returns that style.
func uniform(runs []run) (bold, italic, ok bool) {
	for i, r := range runs {
		if r.Break {
			return false, false, false
		}
		if i == 0 {
			bold, italic = r.Bold, r.Italic
			continue
		}
		if r.Bold != bold || r.Italic != italic {
			return false, false, false
		}
	}
	return bold, italic, true
}

func upperRuns(runs []run) []run {
	c := cases.Upper(language.Filipino)
	out := make([]run, len(runs))
	for i, r := range runs {
		r.Text = c.String(r.Text)
		out[i] = r
	}
	return out
}

// PlainText strips renderer markup from s.
func PlainText(s string) string {
	return plainText(parseRuns(s))
}

// DocumentTitle returns the plain text of the first Title paragraph, or ""
// when blocks contain none.
func DocumentTitle(blocks []markdown.Block) string {
	for _, b := range blocks {
		if p, ok := b.(markdown.Paragraph); ok && p.Role == style.Title {
			return strings.TrimSpace(PlainText(p.Text))
		}
	}
	return ""
}

// cp1252 returns a translator for the core PDF fonts, which only cover
// Windows-1252. Runes outside it are replaced rather than failing the page.
func cp1252() func(string) string {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	return func(s string) string {
		out, err := enc.String(s)
		if err != nil {
			return s
		}
		return out
	}
}

func passthrough(s string) string { return s }
