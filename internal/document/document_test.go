package document

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_FrontMatterExtracted(t *testing.T) {
	src := "---\ntitle: Mga Tanong\nsubtitle: Gabay\nedition: Second Edition\ntheme: neopunk\n---\n# Heading\nBody\n"
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Meta.Title != "Mga Tanong" || doc.Meta.Subtitle != "Gabay" {
		t.Fatalf("unexpected meta: %+v", doc.Meta)
	}
	if doc.Meta.Edition != "Second Edition" || doc.Meta.Theme != "neopunk" {
		t.Fatalf("unexpected meta: %+v", doc.Meta)
	}
	if strings.Contains(string(doc.Body), "title:") {
		t.Fatalf("front matter leaked into body: %q", doc.Body)
	}
	if !strings.Contains(string(doc.Body), "# Heading") {
		t.Fatalf("body lost content: %q", doc.Body)
	}
}

func TestParse_NoFrontMatterPassesThrough(t *testing.T) {
	src := "# Hi\n\nDone."
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Meta != (Meta{}) {
		t.Fatalf("expected empty meta, got %+v", doc.Meta)
	}
	if string(doc.Body) != src {
		t.Fatalf("body changed: %q", doc.Body)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.md"))
	if err == nil {
		t.Fatalf("expected error for missing input")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.md")
	if err := os.WriteFile(p, []byte("# A\r\nline\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Path != p {
		t.Fatalf("path: got %q", doc.Path)
	}
	lines := doc.Lines()
	if len(lines) < 2 || lines[0] != "# A" || lines[1] != "line" {
		t.Fatalf("unexpected lines: %#v", lines)
	}
}

func TestBuiltin_HasMetaAndTables(t *testing.T) {
	doc := Builtin()
	if doc.Path != BuiltinPath {
		t.Fatalf("path: %q", doc.Path)
	}
	if doc.Meta.Title == "" || doc.Meta.Edition == "" {
		t.Fatalf("builtin guide should carry front matter, got %+v", doc.Meta)
	}
	body := string(doc.Body)
	for _, want := range []string{"## Master Table of Question Words", "| Ano | What |", "## Summary Cheat Sheet"} {
		if !strings.Contains(body, want) {
			t.Fatalf("builtin guide missing %q", want)
		}
	}
	if len(BuiltinSource()) <= len(doc.Body) {
		t.Fatalf("raw source should include front matter")
	}
}

func TestParse_ThematicBreaksAreNotFrontMatter(t *testing.T) {
	for _, src := range []string{
		"---\n\n# Title\n\n---\n\nMore\n",
		"---\nauthor: someone\n---\nBody\n",
	} {
		doc, err := Parse([]byte(src))
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if string(doc.Body) != src {
			t.Fatalf("body changed:\n got: %q\nwant: %q", doc.Body, src)
		}
		if doc.Meta != (Meta{}) {
			t.Fatalf("unexpected meta %+v", doc.Meta)
		}
	}
}

func TestBuiltin_MarksSectionPageBreaks(t *testing.T) {
	if n := strings.Count(string(Builtin().Body), "<!-- pagebreak -->"); n != 4 {
		t.Fatalf("expected 4 page break markers, got %d", n)
	}
}
