package commands

import (
	"flag"
	"fmt"

	"github.com/erraggy/oaspublisher/internal/cliutil"
	"github.com/erraggy/oaspublisher/release"
)

// SetupLedgerFlags creates and configures a FlagSet for the ledger command.
func SetupLedgerFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oaspublisher ledger <release-folder>\n\n")
		cliutil.Writef(fs.Output(), "Print the latest published version and the state of every recorded version.\n")
	}

	return fs
}

// HandleLedger executes the ledger command
func HandleLedger(args []string) error {
	fs := SetupLedgerFlags()
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("ledger command requires exactly one release folder")
	}

	ledger, err := release.ReadLedger(fs.Arg(0))
	if err != nil {
		return err
	}

	latest := ledger.Latest
	if latest == "" {
		latest = "none"
	}
	cliutil.Field(stdout, "latest", latest)
	if len(ledger.Versions) == 0 {
		cliutil.Writef(stdout, "No versions recorded\n")
		return nil
	}
	cliutil.Writef(stdout, "\n%s\n", cliutil.Label("versions"))
	for _, v := range ledger.Versions {
		state := "known"
		if ledger.IsPublished(v) {
			state = "published"
		}
		cliutil.Writef(stdout, "  %-16s %s\n", v, cliutil.Label(state))
	}
	return nil
}
