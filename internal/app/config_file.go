package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

var (
	// ErrNoInput is returned when neither an input path nor the builtin guide
	// was requested.
	ErrNoInput = errors.New("config: input path is required (or use --builtin)")
	// ErrInvalidConfig wraps every other configuration mistake the user can
	// fix on the command line or in the config file.
	ErrInvalidConfig = errors.New("config: invalid")
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Input    string `yaml:"input" json:"input"`
	Output   string `yaml:"output" json:"output"`
	Theme    string `yaml:"theme" json:"theme"`
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Edition  string `yaml:"edition" json:"edition"`
	PageSize string `yaml:"pageSize" json:"pageSize"`
	Verbose  bool   `yaml:"verbose" json:"verbose"`
	DryRun   bool   `yaml:"dryRun" json:"dryRun"`

	Fonts struct {
		Regular    string `yaml:"regular" json:"regular"`
		Bold       string `yaml:"bold" json:"bold"`
		Italic     string `yaml:"italic" json:"italic"`
		BoldItalic string `yaml:"boldItalic" json:"boldItalic"`
	} `yaml:"fonts" json:"fonts"`
}

type configDecoder struct {
	format string
	exts   []string
	decode func([]byte, *FileConfig) error
}

// configDecoders are tried in order when the extension names neither format.
var configDecoders = []configDecoder{
	{format: "yaml", exts: []string{".yaml", ".yml"}, decode: decodeYAML},
	{format: "json", exts: []string{".json"}, decode: decodeJSON},
}

// LoadConfigFile reads a YAML or JSON config file. The format follows the
// extension; other files are tried as YAML, then JSON. Unknown keys are
// rejected so a misspelled setting does not go unnoticed.
func LoadConfigFile(path string) (FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, d := range configDecoders {
		for _, e := range d.exts {
			if e == ext {
				var fc FileConfig
				if err := d.decode(b, &fc); err != nil {
					return FileConfig{}, fmt.Errorf("parse %s: %w", d.format, err)
				}
				return fc, nil
			}
		}
	}
	var errs []error
	for _, d := range configDecoders {
		var fc FileConfig
		err := d.decode(b, &fc)
		if err == nil {
			return fc, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", d.format, err))
	}
	return FileConfig{}, fmt.Errorf("parse config: %w", errors.Join(errs...))
}

func decodeYAML(b []byte, fc *FileConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeJSON(b []byte, fc *FileConfig) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(fc)
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset in cfg. Flags are parsed first, so explicit flags win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	fill(&cfg.InputPath, fc.Input)
	fill(&cfg.OutputPath, fc.Output)
	fill(&cfg.Theme, fc.Theme)
	fill(&cfg.Title, fc.Title)
	fill(&cfg.Subtitle, fc.Subtitle)
	fill(&cfg.Edition, fc.Edition)
	fill(&cfg.PageSize, fc.PageSize)
	fill(&cfg.FontRegular, fc.Fonts.Regular)
	fill(&cfg.FontBold, fc.Fonts.Bold)
	fill(&cfg.FontItalic, fc.Fonts.Italic)
	fill(&cfg.FontBoldItalic, fc.Fonts.BoldItalic)
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	if !cfg.DryRun && fc.DryRun {
		cfg.DryRun = true
	}
}

var pageSizes = map[string]string{
	"a3":      "A3",
	"a4":      "A4",
	"a5":      "A5",
	"letter":  "Letter",
	"legal":   "Legal",
	"tabloid": "Tabloid",
}

// ValidateConfig checks required paths and normalizes the page size. Every
// error it returns wraps ErrNoInput or ErrInvalidConfig.
func ValidateConfig(cfg *Config) error {
	if !cfg.Builtin && strings.TrimSpace(cfg.InputPath) == "" {
		return ErrNoInput
	}
	if !cfg.DryRun {
		out := strings.TrimSpace(cfg.OutputPath)
		if out == "" {
			return fmt.Errorf("%w: output path is required", ErrInvalidConfig)
		}
		if !cfg.Builtin && filepath.Clean(out) == filepath.Clean(strings.TrimSpace(cfg.InputPath)) {
			return fmt.Errorf("%w: output path %q would overwrite the input", ErrInvalidConfig, out)
		}
	}
	if strings.TrimSpace(cfg.PageSize) == "" {
		cfg.PageSize = "A4"
		return nil
	}
	size, ok := pageSizes[strings.ToLower(strings.TrimSpace(cfg.PageSize))]
	if !ok {
		return fmt.Errorf("%w: unsupported page size %q", ErrInvalidConfig, cfg.PageSize)
	}
	cfg.PageSize = size
	return nil
}
