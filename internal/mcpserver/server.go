// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaspublisher capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspublisher"
	"github.com/erraggy/oaspublisher/internal/config"
	"github.com/erraggy/oaspublisher/parser"
)

const serverInstructions = `oaspublisher MCP server: reconciles OpenAPI documents for publication and manages the release folder.

reconcile prunes unreachable component schemas, rejects illegal extensions, applies x-basename renames and strips internal extensions. With release_folder it also records the version snapshot and releases.json entry.
publish marks an already recorded, unchanged version as published.
ledger reads releases.json.

Defaults for policy lists and the release folder come from OASPUBLISHER_* environment variables or .oaspublisher.yaml.`

// Server holds the defaults and state shared by the tool handlers.
type Server struct {
	defaults config.Config
	logger   parser.Logger

	// releaseMu serializes every tool call that reads or writes a release folder.
	releaseMu sync.Mutex
}

// New creates a server using cfg for policy and release-folder defaults.
func New(cfg *config.Config, logger parser.Logger) *Server {
	s := &Server{logger: parser.LoggerOrNop(logger)}
	if cfg != nil {
		s.defaults = *cfg
	}
	return s
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaspublisher", Version: oaspublisher.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	s.registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "reconcile",
		Description: "Reconcile an OpenAPI 3.x document for publication: prune component schemas not reachable from operations (x-publish-include can force schemas in), fail on illegal extensions, rename x-basename properties and strip internal extensions. Set release_folder to record the version snapshot, output to write the reconciled document, include_document to return it inline.",
	}, s.handleReconcile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "publish",
		Description: "Publish the document's version in a release folder. The reconciled document must match the snapshot recorded by reconcile; a published version can never change.",
	}, s.handlePublish)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ledger",
		Description: "Read releases.json from a release folder: the latest version and every known version with its state (known or published).",
	}, s.handleLedger)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
