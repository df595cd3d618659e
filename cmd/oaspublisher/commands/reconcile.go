package commands

import (
	"flag"
	"fmt"

	"github.com/erraggy/oaspublisher/internal/cliutil"
	"github.com/erraggy/oaspublisher/release"
)

// ReconcileFlags contains flags for the reconcile command
type ReconcileFlags struct {
	PolicyFlags
	Output string
}

// SetupReconcileFlags creates and configures a FlagSet for the reconcile command.
// Returns the FlagSet and a ReconcileFlags struct with bound flag variables.
func SetupReconcileFlags() (*flag.FlagSet, *ReconcileFlags) {
	fs := flag.NewFlagSet("reconcile", flag.ContinueOnError)
	flags := &ReconcileFlags{}

	registerPolicyFlags(fs, &flags.PolicyFlags)
	fs.StringVar(&flags.Output, "o", "", "write the reconciled document to this path (.json or .yaml)")
	fs.StringVar(&flags.Output, "output", "", "write the reconciled document to this path (.json or .yaml)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oaspublisher reconcile [flags] [file]\n\n")
		cliutil.Writef(fs.Output(), "Reconcile an OpenAPI 3.x document for publication: prune unreachable\n")
		cliutil.Writef(fs.Output(), "component schemas, reject illegal extensions, apply x-basename renames and\n")
		cliutil.Writef(fs.Output(), "strip internal extensions. With a release folder the version snapshot and\n")
		cliutil.Writef(fs.Output(), "releases.json are updated.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		printPolicyUsage(fs.Output())
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oaspublisher reconcile -r api/releases openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oaspublisher reconcile -o dist/openapi.json openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oaspublisher reconcile --include-tags audit,events -r releases openapi.yaml\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Reconciliation succeeded\n")
		cliutil.Writef(fs.Output(), "  1    Parse failure, illegal extension or published version changed\n")
	}

	return fs, flags
}

// HandleReconcile executes the reconcile command
func HandleReconcile(args []string) error {
	fs, flags := SetupReconcileFlags()
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("reconcile command accepts at most one file path")
	}

	cfg, err := loadSettings(&flags.PolicyFlags, fs.Arg(0))
	if err != nil {
		return err
	}
	if flags.Output != "" {
		cfg.ReconciledAPI = flags.Output
	}
	logger := newLogger(cfg, stderr)

	parsed, result, err := reconcileSource(cfg, logger)
	if err != nil {
		return err
	}
	doc := parsed.Document

	var recorded release.Outcome
	if cfg.ReleaseFolder != "" || cfg.ReconciledAPI != "" {
		pub, err := release.New(doc, release.WithLogger(logger))
		if err != nil {
			return err
		}
		if cfg.ReleaseFolder != "" {
			if recorded, err = pub.RecordVersion(cfg.ReleaseFolder); err != nil {
				return err
			}
		}
		if cfg.ReconciledAPI != "" {
			if err := pub.WriteReconciliation(cfg.ReconciledAPI); err != nil {
				return err
			}
		}
	}

	if !flags.Quiet {
		cliutil.Field(stderr, "document", doc.Title())
		cliutil.Field(stderr, "version", doc.Version())
		cliutil.Field(stderr, "reachable", len(result.Reachable))
		cliutil.List(stderr, "pruned", result.Pruned)
		renamed := make([]string, 0, len(result.Renamed))
		for _, r := range result.Renamed {
			renamed = append(renamed, fmt.Sprintf("%s.%s -> %s", r.Schema, r.From, r.To))
		}
		cliutil.List(stderr, "renamed", renamed)
		cliutil.Field(stderr, "stripped", len(result.Stripped))
		if recorded != "" {
			cliutil.Field(stderr, "snapshot", cliutil.Label(string(recorded)))
		}
		if cfg.ReconciledAPI != "" {
			cliutil.Field(stderr, "written to", cfg.ReconciledAPI)
		}
	}
	return nil
}
