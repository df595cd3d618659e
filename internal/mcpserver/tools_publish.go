package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspublisher/release"
)

type publishInput struct {
	Spec          specInput   `json:"spec"                     jsonschema:"The OAS document to publish"`
	Policy        policyInput `json:"policy,omitempty"         jsonschema:"Extension policy overrides"`
	ReleaseFolder string      `json:"release_folder,omitempty" jsonschema:"Release folder holding releases.json (defaults to the configured folder)"`
}

type publishOutput struct {
	Version string `json:"version"`
	Outcome string `json:"outcome"`
}

func (s *Server) handlePublish(_ context.Context, _ *mcp.CallToolRequest, input publishInput) (*mcp.CallToolResult, publishOutput, error) {
	cfg := s.settings(input.Policy, input.ReleaseFolder)
	if cfg.ReleaseFolder == "" {
		return errResult(fmt.Errorf("release_folder is required")), publishOutput{}, nil
	}

	parsed, _, err := s.reconcile(input.Spec, cfg)
	if err != nil {
		return errResult(err), publishOutput{}, nil
	}

	pub, err := release.New(parsed.Document, release.WithLogger(s.logger))
	if err != nil {
		return errResult(err), publishOutput{}, nil
	}

	s.releaseMu.Lock()
	defer s.releaseMu.Unlock()
	outcome, err := pub.Publish(cfg.ReleaseFolder)
	if err != nil {
		return errResult(err), publishOutput{}, nil
	}
	return nil, publishOutput{Version: pub.Version(), Outcome: string(outcome)}, nil
}
