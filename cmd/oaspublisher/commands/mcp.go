package commands

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/erraggy/oaspublisher/internal/cliutil"
	"github.com/erraggy/oaspublisher/internal/config"
	"github.com/erraggy/oaspublisher/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	configFile := fs.String("config", "", "config file providing default policy lists and release folder")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oaspublisher mcp [--config file]\n\n")
		cliutil.Writef(fs.Output(), "Serve the reconcile, publish and ledger tools over MCP stdio.\n")
		cliutil.Writef(fs.Output(), "Logs go to stderr as JSON; stdout carries the protocol.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, configFile
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs, configFile := SetupMCPFlags()
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	cfg.LogFormat = "json"
	logger := newLogger(cfg, stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mcpserver.New(cfg, logger).Run(ctx)
}
