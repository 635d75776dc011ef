package style

import (
	"math"
	"testing"
)

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Name
	}{
		{"Classic exact", "classic", Classic},
		{"Classic alias", "Plain", Classic},
		{"Design exact", "design", Design},
		{"Design spaced", "design system", Design},
		{"Design partial", "my design thing", Design},
		{"NeoPunk exact", "neopunk", NeoPunk},
		{"NeoPunk hyphen", "Neo-Punk", NeoPunk},
		{"NeoPunk partial", "cyberpunk", NeoPunk},
		{"Markdown exact", "markdown", Markdown},
		{"Markdown short", "md", Markdown},
		{"Empty string", "", Markdown},
		{"Whitespace", "  \t\n  ", Markdown},
		{"Unknown", "baroque", Markdown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := GetTheme(tt.input)
			if th.Name != tt.expected {
				t.Fatalf("GetTheme(%q) = %q, want %q", tt.input, th.Name, tt.expected)
			}
			if th.Styles == nil {
				t.Fatalf("theme %q has no registry", th.Name)
			}
		})
	}
}

func TestThemes_DefineEveryRole(t *testing.T) {
	for _, n := range Names() {
		th := GetTheme(string(n))
		for _, r := range Roles() {
			if !th.Styles.Has(r) {
				t.Fatalf("theme %s missing role %s", n, r)
			}
			a := th.Styles.Lookup(r)
			if a.Size <= 0 || a.Leading <= 0 || a.Font == "" {
				t.Fatalf("theme %s role %s has incomplete attributes: %+v", n, r, a)
			}
		}
		if th.Page.Margin <= 0 {
			t.Fatalf("theme %s has no page margin", n)
		}
	}
}

func TestRegistry_LookupFallsBackToBody(t *testing.T) {
	reg := NewRegistry(map[Role]Attributes{
		Body:  {Font: "Times", Size: 12},
		Title: {Font: "Helvetica", Bold: true, Size: 20},
	})
	if got := reg.Lookup(Quote); got.Font != "Times" {
		t.Fatalf("expected body fallback for quote, got %+v", got)
	}
	if got := reg.Lookup(Role(99)); got.Font != "Times" {
		t.Fatalf("expected body fallback for unknown role, got %+v", got)
	}
	if got := reg.Lookup(Body); math.Abs(got.Leading-14.4) > 1e-9 {
		t.Fatalf("expected derived leading, got %v", got.Leading)
	}
	if got := reg.Lookup(Body); got.Align != AlignLeft {
		t.Fatalf("expected default left alignment, got %q", got.Align)
	}
}

func TestRegistry_CopiesInputTable(t *testing.T) {
	table := map[Role]Attributes{Body: {Font: "Times", Size: 12}}
	reg := NewRegistry(table)
	table[Body] = Attributes{Font: "Courier", Size: 8}
	if got := reg.Lookup(Body); got.Font != "Times" {
		t.Fatalf("registry changed after caller mutated its table: %+v", got)
	}
}

func TestRegistry_EmptyTableStillResolves(t *testing.T) {
	reg := NewRegistry(nil)
	if got := reg.Lookup(Title); got.Font != "Helvetica" || got.Size != 11 {
		t.Fatalf("unexpected default body attributes: %+v", got)
	}
}

func TestAttributes_FontStyle(t *testing.T) {
	cases := map[string]Attributes{
		"":   {},
		"B":  {Bold: true},
		"I":  {Italic: true},
		"BI": {Bold: true, Italic: true},
	}
	for want, a := range cases {
		if got := a.FontStyle(); got != want {
			t.Fatalf("FontStyle(%+v) = %q, want %q", a, got, want)
		}
	}
}

func TestRole_String(t *testing.T) {
	if Title.String() != "title" || TableBodyCell.String() != "table-body-cell" {
		t.Fatalf("unexpected role names: %s %s", Title, TableBodyCell)
	}
	if Role(42).String() != "unknown" {
		t.Fatalf("expected unknown for out-of-range role")
	}
}
