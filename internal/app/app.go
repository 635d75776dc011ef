package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/studyguide/internal/document"
	"github.com/hyperifyio/studyguide/internal/markdown"
	"github.com/hyperifyio/studyguide/internal/render"
	"github.com/hyperifyio/studyguide/internal/style"
)

// App runs one conversion described by a validated Config.
type App struct {
	cfg Config
}

// New validates cfg and returns an App ready to Run.
func New(ctx context.Context, cfg Config) (*App, error) {
	if cfg.OutputPath == "" && !cfg.Builtin {
		cfg.OutputPath = deriveOutputPath(cfg.InputPath)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &App{cfg: cfg}, nil
}

func (a *App) Close() {
	// nothing to release
}

// Config returns the effective configuration after defaults were applied.
func (a *App) Config() Config {
	return a.cfg
}

// Run loads the document, classifies it and writes the PDF. A missing input
// file fails the run before anything is written.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// 1) Load source and merge front matter under explicit settings
	var doc document.Document
	if a.cfg.Builtin {
		doc = document.Builtin()
	} else {
		d, err := document.Load(a.cfg.InputPath)
		if err != nil {
			return err
		}
		doc = d
	}
	cfg := mergeMeta(a.cfg, doc.Meta)

	// 2) Classify
	blocks := markdown.Classify(doc.Lines())
	theme := style.GetTheme(cfg.Theme)
	log.Debug().Str("in", doc.Path).Int("blocks", len(blocks)).Str("theme", string(theme.Name)).Str("look", theme.Description).Msg("classified input")

	if cfg.DryRun {
		logSummary(doc.Path, blocks)
		return nil
	}

	// 3) Render
	res, err := render.RenderFile(blocks, cfg.OutputPath, render.Options{
		Theme:    theme,
		Title:    cfg.Title,
		Subtitle: cfg.Subtitle,
		Edition:  cfg.Edition,
		PageSize: cfg.PageSize,
		Fonts: render.Fonts{
			Regular:    cfg.FontRegular,
			Bold:       cfg.FontBold,
			Italic:     cfg.FontItalic,
			BoldItalic: cfg.FontBoldItalic,
		},
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if res.FontFallback {
		log.Warn().Msg("rendered with default fonts")
	}
	log.Info().Str("out", cfg.OutputPath).Int("pages", res.Pages).Str("theme", string(theme.Name)).Msg("wrote study guide")
	return nil
}

// mergeMeta fills presentation fields left empty by flags and config file
// from the document's front matter.
func mergeMeta(cfg Config, meta document.Meta) Config {
	if strings.TrimSpace(cfg.Title) == "" {
		cfg.Title = meta.Title
	}
	if strings.TrimSpace(cfg.Subtitle) == "" {
		cfg.Subtitle = meta.Subtitle
	}
	if strings.TrimSpace(cfg.Edition) == "" {
		cfg.Edition = meta.Edition
	}
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = meta.Theme
	}
	return cfg
}

// Summary counts every block by kind: "table", "spacer", "page-break", or the
// paragraph's style role name.
func Summary(blocks []markdown.Block) map[string]int {
	counts := make(map[string]int)
	for _, b := range blocks {
		switch v := b.(type) {
		case markdown.Paragraph:
			counts[v.Role.String()]++
		case markdown.Table:
			counts["table"]++
		case markdown.Spacer:
			counts["spacer"]++
		case markdown.PageBreak:
			counts["page-break"]++
		}
	}
	return counts
}

func logSummary(path string, blocks []markdown.Block) {
	counts := Summary(blocks)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ev := log.Info().Str("in", path).Int("blocks", len(blocks))
	for _, k := range keys {
		ev = ev.Int(k, counts[k])
	}
	ev.Msg("dry run")
}
