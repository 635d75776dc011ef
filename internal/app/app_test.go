package app

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperifyio/studyguide/internal/document"
	"github.com/hyperifyio/studyguide/internal/markdown"
)

func TestRun_BuiltinWritesPDF(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "guide.pdf")
	app, err := New(context.Background(), Config{Builtin: true, OutputPath: out})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.Close()

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read out: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRun_MissingInputFailsBeforeOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.pdf")
	app, err := New(context.Background(), Config{InputPath: filepath.Join(dir, "missing.md"), OutputPath: out})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	err = app.Run(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatalf("no output should exist after a failed read, stat err=%v", statErr)
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	if err := os.WriteFile(in, []byte("# Hi\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\nDone."), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	app, err := New(context.Background(), Config{InputPath: in, DryRun: true})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "in.pdf")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("dry run must not write a PDF, stat err=%v", err)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app, err := New(context.Background(), Config{Builtin: true, OutputPath: filepath.Join(t.TempDir(), "x.pdf")})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if err := app.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNew_DerivesOutputPath(t *testing.T) {
	app, err := New(context.Background(), Config{InputPath: filepath.Join("docs", "guide.md")})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if got, want := app.Config().OutputPath, filepath.Join("docs", "guide.pdf"); got != want {
		t.Fatalf("output path: got %q, want %q", got, want)
	}
	if app.Config().PageSize != "A4" {
		t.Fatalf("expected default page size, got %q", app.Config().PageSize)
	}
}

func TestNew_RequiresInput(t *testing.T) {
	if _, err := New(context.Background(), Config{OutputPath: "out.pdf"}); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	if _, err := New(context.Background(), Config{Builtin: true}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("builtin without output should fail validation, got %v", err)
	}
}

func TestMergeMeta_ExplicitValuesWin(t *testing.T) {
	cfg := mergeMeta(Config{Title: "Flag Title"}, document.Meta{Title: "Doc Title", Subtitle: "Doc Sub", Theme: "neopunk"})
	if cfg.Title != "Flag Title" {
		t.Fatalf("explicit title overwritten: %q", cfg.Title)
	}
	if cfg.Subtitle != "Doc Sub" || cfg.Theme != "neopunk" {
		t.Fatalf("front matter not applied: %+v", cfg)
	}
}

func TestSummary(t *testing.T) {
	counts := Summary(markdown.ClassifyText("# Hi\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\nDone.\n- a\n- b"))
	want := map[string]int{"title": 1, "table": 1, "spacer": 1, "body": 1, "bullet": 2, "page-break": 0}
	for k, v := range want {
		if counts[k] != v {
			t.Fatalf("%s: got %d, want %d (all: %v)", k, counts[k], v, counts)
		}
	}
}

func TestDeriveOutputPath(t *testing.T) {
	cases := map[string]string{
		"guide.md":       "guide.pdf",
		"notes":          "notes.pdf",
		"a/b/c.markdown": "a/b/c.pdf",
		"scan.pdf":       "scan.out.pdf",
		"SCAN.PDF":       "SCAN.out.pdf",
		"":               "",
	}
	for in, want := range cases {
		if got := deriveOutputPath(in); got != want {
			t.Fatalf("deriveOutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSummary_CountsPageBreaks(t *testing.T) {
	counts := Summary(markdown.ClassifyText("# A\n<!-- pagebreak -->\nB\n\\newpage\nC"))
	if counts["page-break"] != 2 || counts["body"] != 2 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestNew_DerivedOutputNeverOverwritesInput(t *testing.T) {
	app, err := New(context.Background(), Config{InputPath: "scan.pdf"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := app.Config().OutputPath; got != "scan.out.pdf" {
		t.Fatalf("derived output %q", got)
	}
}

func TestValidateConfig_OutputMustDifferFromInput(t *testing.T) {
	cfg := Config{InputPath: "notes/guide.md", OutputPath: "notes/./guide.md"}
	if err := ValidateConfig(&cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	cfg = Config{InputPath: "guide.md", OutputPath: "guide.md", DryRun: true}
	if err := ValidateConfig(&cfg); err != nil {
		t.Fatalf("dry run writes nothing, got %v", err)
	}
}
