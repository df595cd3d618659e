// Package commands provides CLI command handlers for oaspublisher.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oaspublisher/internal/cliutil"
	"github.com/erraggy/oaspublisher/internal/config"
	"github.com/erraggy/oaspublisher/internal/logging"
	"github.com/erraggy/oaspublisher/oaserrors"
	"github.com/erraggy/oaspublisher/parser"
	"github.com/erraggy/oaspublisher/reconciler"
)

// PolicyFlags are the settings shared by every command that reconciles a document.
// Empty values keep what the config file and environment provide.
type PolicyFlags struct {
	Config                   string
	ReleaseFolder            string
	IncludeTags              string
	RemoveObjectExtensions   string
	RemovePropertyExtensions string
	IllegalExtensions        string
	LogLevel                 string
	Quiet                    bool
}

// registerPolicyFlags binds the shared flags to fs.
func registerPolicyFlags(fs *flag.FlagSet, flags *PolicyFlags) {
	fs.StringVar(&flags.Config, "config", "", "config file (default: .oaspublisher.yaml in the working directory)")
	fs.StringVar(&flags.ReleaseFolder, "r", "", "release folder holding releases.json and version snapshots")
	fs.StringVar(&flags.ReleaseFolder, "release-folder", "", "release folder holding releases.json and version snapshots")
	fs.StringVar(&flags.IncludeTags, "include-tags", "", "comma-separated tags force-including x-publish-include schemas")
	fs.StringVar(&flags.RemoveObjectExtensions, "remove-object-extensions", "", "comma-separated extensions removed from component schemas")
	fs.StringVar(&flags.RemovePropertyExtensions, "remove-property-extensions", "", "comma-separated extensions removed from schema properties")
	fs.StringVar(&flags.IllegalExtensions, "illegal-extensions", "", "comma-separated extensions rejected in retained schemas")
	fs.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error (default: info)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no log output or summary")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no log output or summary")
}

// parseArgs parses args, mapping -h/--help to a nil error with help set.
func parseArgs(fs *flag.FlagSet, args []string) (help bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// loadSettings merges config file, environment and flags. source is the
// positional document argument, if any.
func loadSettings(flags *PolicyFlags, source string) (*config.Config, error) {
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return nil, err
	}
	if source != "" {
		cfg.Source = source
	}
	if flags.ReleaseFolder != "" {
		cfg.ReleaseFolder = flags.ReleaseFolder
	}
	if flags.IncludeTags != "" {
		cfg.AlwaysIncludeTags = config.SplitList(flags.IncludeTags)
	}
	if flags.RemoveObjectExtensions != "" {
		cfg.RemoveObjectExtensions = config.SplitList(flags.RemoveObjectExtensions)
	}
	if flags.RemovePropertyExtensions != "" {
		cfg.RemovePropertyExtensions = config.SplitList(flags.RemovePropertyExtensions)
	}
	if flags.IllegalExtensions != "" {
		cfg.IllegalExtensions = config.SplitList(flags.IllegalExtensions)
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.Quiet {
		cfg.LogLevel = "disabled"
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// newLogger builds the zerolog-backed logger writing to w.
func newLogger(cfg *config.Config, w io.Writer) parser.Logger {
	return logging.NewAdapter(logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  w,
		NoColor: os.Getenv("NO_COLOR") != "",
	}))
}

// reconcileSource parses cfg.Source and reconciles it under cfg's policy.
func reconcileSource(cfg *config.Config, logger parser.Logger) (*parser.ParseResult, *reconciler.Result, error) {
	if cfg.Source == "" {
		return nil, nil, &oaserrors.ConfigError{
			Option:  config.KeySource,
			Message: "no source document: pass a file path or set source in the config",
		}
	}
	parsed, err := parser.ParseWithOptions(
		parser.WithFilePath(cfg.Source),
		parser.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing file: %w", err)
	}
	result, err := reconciler.Reconcile(parsed.Document,
		reconciler.WithPolicy(cfg.Policy()),
		reconciler.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("reconciling %s: %w", cfg.Source, err)
	}
	return parsed, result, nil
}

// printPolicyUsage writes the shared flag documentation footer.
func printPolicyUsage(w io.Writer) {
	cliutil.Writef(w, "\nConfiguration:\n")
	cliutil.Writef(w, "  Flags override OASPUBLISHER_* environment variables (also read from .env\n")
	cliutil.Writef(w, "  and .env.local), which override the config file.\n")
	cliutil.Writef(w, "  With a release folder, empty extension lists default to:\n")
	cliutil.Writef(w, "    remove-object-extensions:   x-package, x-cloudevent-type, x-cloudevent-subject\n")
	cliutil.Writef(w, "    remove-property-extensions: x-basename\n")
	cliutil.Writef(w, "    illegal-extensions:         x-property-ref\n")
}
