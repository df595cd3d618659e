package parser

import (
	"bytes"
	"path/filepath"
	"strings"
)

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// Extension returns the file extension used for the format, including the dot.
// Unknown formats map to ".yaml".
func (f SourceFormat) Extension() string {
	if f == SourceFormatJSON {
		return ".json"
	}
	return ".yaml"
}

// ParseSourceFormat maps a user-supplied format name ("json", "yaml", "yml")
// to a SourceFormat, case-insensitively.
func ParseSourceFormat(name string) SourceFormat {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return SourceFormatJSON
	case "yaml", "yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON typically starts with '{' or '[', while YAML does not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
