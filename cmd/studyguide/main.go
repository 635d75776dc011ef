package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/hyperifyio/studyguide/internal/app"
	"github.com/hyperifyio/studyguide/internal/document"
	"github.com/hyperifyio/studyguide/internal/style"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks command-line mistakes.
var errUsage = errors.New("usage")

// cliOptions is the outcome of argument parsing.
type cliOptions struct {
	cfg          app.Config
	configPath   string
	printBuiltin bool
	showVersion  bool
}

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "studyguide:", err)
		return exitUsage
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, app.VersionString())
		return exitOK
	}
	if opts.printBuiltin {
		if _, err := stdout.Write(document.BuiltinSource()); err != nil {
			log.Error().Err(err).Msg("write builtin guide")
			return exitError
		}
		return exitOK
	}

	cfg := opts.cfg
	if strings.TrimSpace(opts.configPath) != "" {
		fc, err := app.LoadConfigFile(opts.configPath)
		if err != nil {
			log.Error().Err(err).Str("config", opts.configPath).Msg("load config")
			return exitError
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		if errors.Is(err, app.ErrNoInput) || errors.Is(err, app.ErrInvalidConfig) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

// parseArgs reads flags and the positional input and output paths.
func parseArgs(args []string, stderr io.Writer) (cliOptions, error) {
	var (
		opts cliOptions
		cfg  = &opts.cfg
	)
	fs := flag.NewFlagSet("studyguide", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: studyguide [flags] <input.md> [output.pdf]")
		fmt.Fprintln(stderr, "       studyguide [flags] --builtin <output.pdf>")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	fs.StringVarP(&opts.configPath, "config", "c", "", "YAML or JSON config file")
	fs.BoolVar(&cfg.Builtin, "builtin", false, "Render the embedded Filipino question words guide")
	fs.BoolVar(&opts.printBuiltin, "print-builtin", false, "Print the embedded guide as Markdown and exit")
	fs.StringVarP(&cfg.Theme, "theme", "t", "", "Theme: "+themeList())
	fs.StringVar(&cfg.Title, "title", "", "Document title for the page banner (default: first # heading)")
	fs.StringVar(&cfg.Subtitle, "subtitle", "", "Subtitle shown in the page banner")
	fs.StringVar(&cfg.Edition, "edition", "", "Edition label shown in the footer")
	fs.StringVarP(&cfg.PageSize, "page-size", "p", "", "Page size: a3, a4, a5, letter, legal, tabloid")
	fs.StringVar(&cfg.FontRegular, "font", "", "TrueType font file for regular text")
	fs.StringVar(&cfg.FontBold, "font-bold", "", "TrueType font file for bold text")
	fs.StringVar(&cfg.FontItalic, "font-italic", "", "TrueType font file for italic text")
	fs.StringVar(&cfg.FontBoldItalic, "font-bold-italic", "", "TrueType font file for bold italic text")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Classify the input and log a summary without writing a PDF")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showVersion || opts.printBuiltin {
		return opts, nil
	}

	pos := fs.Args()
	if cfg.Builtin {
		switch len(pos) {
		case 0:
		case 1:
			cfg.OutputPath = pos[0]
		default:
			return opts, fmt.Errorf("%w: --builtin takes at most one argument (output path)", errUsage)
		}
		return opts, nil
	}
	switch len(pos) {
	case 0:
	case 1:
		cfg.InputPath = pos[0]
	case 2:
		cfg.InputPath, cfg.OutputPath = pos[0], pos[1]
	default:
		return opts, fmt.Errorf("%w: expected <input.md> [output.pdf], got %d arguments", errUsage, len(pos))
	}
	return opts, nil
}

func themeList() string {
	names := style.Names()
	out := make([]string, len(names))
	for i, n := range names {
		th := style.GetTheme(string(n))
		out[i] = fmt.Sprintf("%s (%s)", n, th.Label)
	}
	return strings.Join(out, ", ")
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
