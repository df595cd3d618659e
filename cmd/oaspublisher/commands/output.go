package commands

import (
	"io"
	"os"
)

// Command output streams. Documents and listings go to stdout, logs and
// summaries to stderr so stdout stays clean for pipelining.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)
