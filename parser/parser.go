package parser

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspublisher/oaserrors"
	"github.com/erraggy/oaspublisher/parser/internal/jsonhelpers"
)

// Parser handles OpenAPI 3.x document parsing
type Parser struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return LoggerOrNop(p.Logger)
}

// ParseResult contains the parsed OpenAPI document and metadata about its source.
//
// The Document is owned by the caller; the reconciler mutates it in place.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the OpenAPI version string of the document (e.g. "3.0.3")
	Version string
	// Document is the typed document
	Document *Document
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse parses an OpenAPI document from a file.
// A missing or unreadable file is reported as a configuration error.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		msg := "failed to read source document"
		if errors.Is(err, fs.ErrNotExist) {
			msg = "source document does not exist"
		}
		return nil, &oaserrors.ConfigError{Option: "source", Value: specPath, Message: msg, Cause: err}
	}

	res, err := p.parseData(data, specPath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	if format := detectFormatFromPath(specPath); format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses an OpenAPI document from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parseData(data, "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseReader" + res.SourceFormat.Extension()
	return res, nil
}

// ParseBytes parses an OpenAPI document from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseData(data, "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes" + res.SourceFormat.Extension()
	return res, nil
}

// parseData decodes YAML or JSON (a YAML subset) into a typed Document.
func (p *Parser) parseData(data []byte, path string) (*ParseResult, error) {
	var rootNode yaml.Node
	if err := yaml.Unmarshal(data, &rootNode); err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "invalid YAML or JSON", Cause: err}
	}
	var raw any
	if rootNode.Kind != 0 {
		if err := rootNode.Decode(&raw); err != nil {
			return nil, &oaserrors.ParseError{Path: path, Message: "invalid YAML or JSON", Cause: err}
		}
	}
	rawData, ok := jsonhelpers.Normalize(raw).(map[string]any)
	if !ok {
		return nil, &oaserrors.ParseError{Path: path, Message: "document root must be an object"}
	}
	restoreScalarText(&rootNode, rawData)

	version, err := detectVersion(rawData)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: err.Error()}
	}

	doc := new(Document)
	doc.decodeFromMap(rawData)

	p.log().Debug("parsed document",
		"path", path,
		"openapi", version,
		"title", doc.Title(),
		"version", doc.Version(),
		"schemas", len(doc.Schemas()),
		"paths", len(doc.Paths))

	return &ParseResult{
		SourceFormat: detectFormatFromContent(data),
		Version:      version,
		Document:     doc,
		SourceSize:   int64(len(data)),
	}, nil
}

// detectVersion returns the openapi version, rejecting Swagger 2.0 documents
// whose schema references use a different prefix.
func detectVersion(data map[string]any) (string, error) {
	if _, ok := data["swagger"]; ok {
		return "", fmt.Errorf("unsupported OpenAPI version: swagger 2.0 documents are not supported, convert to 3.x first")
	}
	openapi, ok := data["openapi"].(string)
	if !ok || openapi == "" {
		return "", fmt.Errorf("unable to detect OpenAPI version: document must contain 'openapi: \"3.x.x\"' at the root level")
	}
	if !strings.HasPrefix(openapi, "3.") {
		return "", fmt.Errorf("unsupported OpenAPI version: %s (only 3.x versions are supported)", openapi)
	}
	return openapi, nil
}
