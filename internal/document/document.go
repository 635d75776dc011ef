// Package document loads the Markdown source of a study guide together with
// its optional front matter.
package document

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

//go:embed guide.md
var builtinGuide []byte

// BuiltinPath is the pseudo path reported for the embedded guide.
const BuiltinPath = "builtin:guide.md"

// Meta is the front matter a document may carry. Every field is optional.
type Meta struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Edition  string `yaml:"edition"`
	Theme    string `yaml:"theme"`
}

// Document is a loaded Markdown source with front matter removed from Body.
type Document struct {
	Path string
	Meta Meta
	Body []byte
}

// Load reads the whole file at path into memory. A missing or unreadable
// file is returned as an error wrapping the underlying fs error.
func Load(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read input: %w", err)
	}
	doc, err := Parse(b)
	if err != nil {
		return Document{}, err
	}
	doc.Path = path
	return doc, nil
}

// Builtin returns the embedded Filipino question-words study guide.
func Builtin() Document {
	doc, err := Parse(builtinGuide)
	if err != nil {
		// The embedded guide is fixed at build time.
		panic(err)
	}
	doc.Path = BuiltinPath
	return doc
}

// BuiltinSource returns the raw Markdown of the embedded guide.
func BuiltinSource() []byte {
	return append([]byte(nil), builtinGuide...)
}

// Parse splits source into front matter and body. A leading block only
// counts as front matter when it sets at least one Meta field; otherwise
// (no block at all, or a pair of --- rules around ordinary Markdown) source
// is returned unchanged as the body.
func Parse(source []byte) (Document, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Document{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	meta.Title = strings.TrimSpace(meta.Title)
	meta.Subtitle = strings.TrimSpace(meta.Subtitle)
	meta.Edition = strings.TrimSpace(meta.Edition)
	meta.Theme = strings.TrimSpace(meta.Theme)
	if meta == (Meta{}) {
		return Document{Body: append([]byte(nil), source...)}, nil
	}
	return Document{Meta: meta, Body: body}, nil
}

// Lines returns the body split into lines with CRLF endings normalized.
func (d Document) Lines() []string {
	s := strings.ReplaceAll(string(d.Body), "\r\n", "\n")
	return strings.Split(s, "\n")
}
