package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspublisher/parser"
	"github.com/erraggy/oaspublisher/release"
)

type reconcileInput struct {
	Spec            specInput   `json:"spec"                       jsonschema:"The OAS document to reconcile"`
	Policy          policyInput `json:"policy,omitempty"           jsonschema:"Extension policy overrides"`
	ReleaseFolder   string      `json:"release_folder,omitempty"   jsonschema:"Release folder in which to record the version snapshot"`
	Output          string      `json:"output,omitempty"           jsonschema:"File path to write the reconciled document (.json or .yaml)"`
	IncludeDocument bool        `json:"include_document,omitempty" jsonschema:"Include the reconciled document in output"`
}

type renameOutput struct {
	Schema string `json:"schema"`
	Path   string `json:"path,omitempty"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type reconcileOutput struct {
	Title         string         `json:"title,omitempty"`
	Version       string         `json:"version"`
	Reachable     []string       `json:"reachable"`
	ForceIncluded []string       `json:"force_included,omitempty"`
	Pruned        []string       `json:"pruned,omitempty"`
	Renamed       []renameOutput `json:"renamed,omitempty"`
	Stripped      int            `json:"stripped"`
	Recorded      string         `json:"recorded,omitempty"`
	WrittenTo     string         `json:"written_to,omitempty"`
	Document      string         `json:"document,omitempty"`
}

func (s *Server) handleReconcile(_ context.Context, _ *mcp.CallToolRequest, input reconcileInput) (*mcp.CallToolResult, reconcileOutput, error) {
	cfg := s.settings(input.Policy, input.ReleaseFolder)

	parsed, result, err := s.reconcile(input.Spec, cfg)
	if err != nil {
		return errResult(err), reconcileOutput{}, nil
	}
	doc := parsed.Document

	output := reconcileOutput{
		Title:         doc.Title(),
		Version:       doc.Version(),
		Reachable:     result.Reachable,
		ForceIncluded: result.ForceIncluded,
		Pruned:        result.Pruned,
		Stripped:      len(result.Stripped),
	}
	for _, r := range result.Renamed {
		output.Renamed = append(output.Renamed, renameOutput{Schema: r.Schema, Path: r.Path, From: r.From, To: r.To})
	}

	if cfg.ReleaseFolder != "" || input.Output != "" {
		pub, err := release.New(doc, release.WithLogger(s.logger))
		if err != nil {
			return errResult(err), reconcileOutput{}, nil
		}
		if cfg.ReleaseFolder != "" {
			s.releaseMu.Lock()
			outcome, err := pub.RecordVersion(cfg.ReleaseFolder)
			s.releaseMu.Unlock()
			if err != nil {
				return errResult(err), reconcileOutput{}, nil
			}
			output.Recorded = string(outcome)
		}
		if input.Output != "" {
			if err := pub.WriteReconciliation(input.Output); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), reconcileOutput{}, nil
			}
			output.WrittenTo = input.Output
		}
	}

	if input.IncludeDocument {
		data, err := parser.Marshal(doc, parsed.SourceFormat)
		if err != nil {
			return errResult(err), reconcileOutput{}, nil
		}
		output.Document = string(data)
	}

	return nil, output, nil
}
