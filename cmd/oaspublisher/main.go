package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oaspublisher"
	"github.com/erraggy/oaspublisher/cmd/oaspublisher/commands"
)

// commandHandlers maps each subcommand to its handler.
var commandHandlers = map[string]func([]string) error{
	"reconcile": commands.HandleReconcile,
	"publish":   commands.HandlePublish,
	"ledger":    commands.HandleLedger,
	"mcp":       commands.HandleMCP,
}

// commandNames lists every command for typo suggestions.
var commandNames = []string{"reconcile", "publish", "ledger", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oaspublisher v%s\n", oaspublisher.Version())
		fmt.Printf("commit: %s\n", oaspublisher.Commit())
		fmt.Printf("built: %s\n", oaspublisher.BuildTime())
		fmt.Printf("go: %s\n", oaspublisher.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := commandHandlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest command within edit distance 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Print(`oaspublisher - reconcile OpenAPI documents and manage their releases

Usage:
  oaspublisher <command> [flags] [args]

Commands:
  reconcile   Prune, check and clean a document; record its version snapshot
  publish     Publish a recorded version (published versions are immutable)
  ledger      Show the versions recorded in a release folder
  mcp         Serve the tools over the Model Context Protocol (stdio)
  version     Show version information
  help        Show this help message

Run 'oaspublisher <command> --help' for more information on a command.
`)
}
