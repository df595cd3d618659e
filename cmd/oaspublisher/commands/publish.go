package commands

import (
	"flag"
	"fmt"

	"github.com/erraggy/oaspublisher/internal/cliutil"
	"github.com/erraggy/oaspublisher/release"
)

// SetupPublishFlags creates and configures a FlagSet for the publish command.
func SetupPublishFlags() (*flag.FlagSet, *PolicyFlags) {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	flags := &PolicyFlags{}

	registerPolicyFlags(fs, flags)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oaspublisher publish [flags] [file]\n\n")
		cliutil.Writef(fs.Output(), "Publish the document's version. The reconciled document must match the\n")
		cliutil.Writef(fs.Output(), "snapshot recorded by 'oaspublisher reconcile'. Published versions are immutable.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		printPolicyUsage(fs.Output())
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oaspublisher reconcile -r api/releases openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oaspublisher publish -r api/releases openapi.yaml\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Published (or already published and unchanged)\n")
		cliutil.Writef(fs.Output(), "  1    Snapshot missing or out of date, or published version changed\n")
	}

	return fs, flags
}

// HandlePublish executes the publish command
func HandlePublish(args []string) error {
	fs, flags := SetupPublishFlags()
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("publish command accepts at most one file path")
	}

	cfg, err := loadSettings(flags, fs.Arg(0))
	if err != nil {
		return err
	}
	if cfg.ReleaseFolder == "" {
		return fmt.Errorf("publish command requires a release folder (-r or release-folder in the config)")
	}
	logger := newLogger(cfg, stderr)

	parsed, _, err := reconcileSource(cfg, logger)
	if err != nil {
		return err
	}
	pub, err := release.New(parsed.Document, release.WithLogger(logger))
	if err != nil {
		return err
	}
	outcome, err := pub.Publish(cfg.ReleaseFolder)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Field(stderr, "version", pub.Version())
		cliutil.Field(stderr, "outcome", cliutil.Label(string(outcome)))
	}
	return nil
}
