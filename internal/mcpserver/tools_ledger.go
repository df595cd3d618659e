package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspublisher/release"
)

type ledgerInput struct {
	ReleaseFolder string `json:"release_folder,omitempty" jsonschema:"Release folder holding releases.json (defaults to the configured folder)"`
}

type ledgerVersion struct {
	Version string `json:"version"`
	State   string `json:"state"`
}

type ledgerOutput struct {
	Latest   string          `json:"latest,omitempty"`
	Versions []ledgerVersion `json:"versions"`
}

// Version states reported by the ledger tool.
const (
	stateKnown     = "known"
	statePublished = "published"
)

func (s *Server) handleLedger(_ context.Context, _ *mcp.CallToolRequest, input ledgerInput) (*mcp.CallToolResult, ledgerOutput, error) {
	folder := input.ReleaseFolder
	if folder == "" {
		folder = s.defaults.ReleaseFolder
	}
	if folder == "" {
		return errResult(fmt.Errorf("release_folder is required")), ledgerOutput{}, nil
	}

	s.releaseMu.Lock()
	ledger, err := release.ReadLedger(folder)
	s.releaseMu.Unlock()
	if err != nil {
		return errResult(err), ledgerOutput{}, nil
	}

	output := ledgerOutput{Latest: ledger.Latest, Versions: make([]ledgerVersion, 0, len(ledger.Versions))}
	for _, v := range ledger.Versions {
		state := stateKnown
		if ledger.IsPublished(v) {
			state = statePublished
		}
		output.Versions = append(output.Versions, ledgerVersion{Version: v, State: state})
	}
	return nil, output, nil
}
