package parser

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspublisher/parser/internal/jsonhelpers"
)

// MarshalYAML renders doc as YAML.
// Output is deterministic: struct fields are emitted in declaration order and
// every map (including Extra) in sorted key order, so two calls on an unchanged
// document produce byte-identical output.
func MarshalYAML(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("parser: cannot marshal nil document")
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal YAML: %w", err)
	}
	return data, nil
}

// MarshalJSON renders doc as JSON indented with two spaces, with a trailing newline.
func MarshalJSON(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("parser: cannot marshal nil document")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Marshal renders doc in the given format. SourceFormatUnknown renders YAML.
func Marshal(doc *Document, format SourceFormat) ([]byte, error) {
	if format == SourceFormatJSON {
		return MarshalJSON(doc)
	}
	return MarshalYAML(doc)
}

// The MarshalJSON methods merge Extra into the object so extensions are
// emitted inline, as they appear in the source document.

// MarshalJSON implements json.Marshaler for Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	m := map[string]any{"openapi": d.OpenAPI}
	jsonhelpers.SetIfPtrNotNil(m, "info", d.Info)
	jsonhelpers.SetIfSliceNotEmpty(m, "servers", d.Servers)
	jsonhelpers.SetIfMapNotEmpty(m, "paths", d.Paths)
	jsonhelpers.SetIfPtrNotNil(m, "components", d.Components)
	jsonhelpers.SetIfSliceNotEmpty(m, "security", d.Security)
	jsonhelpers.SetIfSliceNotEmpty(m, "tags", d.Tags)
	jsonhelpers.SetIfNotNil(m, "externalDocs", d.ExternalDocs)
	return jsonhelpers.MarshalWithExtras(m, d.Extra)
}

// MarshalJSON implements json.Marshaler for Info.
func (i *Info) MarshalJSON() ([]byte, error) {
	m := map[string]any{"title": i.Title, "version": i.Version}
	jsonhelpers.SetIfNotEmpty(m, "description", i.Description)
	return jsonhelpers.MarshalWithExtras(m, i.Extra)
}

// MarshalJSON implements json.Marshaler for Components.
func (c *Components) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	jsonhelpers.SetIfMapNotEmpty(m, "schemas", c.Schemas)
	return jsonhelpers.MarshalWithExtras(m, c.Extra)
}

// MarshalJSON implements json.Marshaler for PathItem.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	jsonhelpers.SetIfNotEmpty(m, "$ref", p.Ref)
	jsonhelpers.SetIfNotEmpty(m, "summary", p.Summary)
	jsonhelpers.SetIfNotEmpty(m, "description", p.Description)
	for method, op := range GetOperations(p) {
		jsonhelpers.SetIfPtrNotNil(m, method, op)
	}
	jsonhelpers.SetIfSliceNotEmpty(m, "parameters", p.Parameters)
	return jsonhelpers.MarshalWithExtras(m, p.Extra)
}

// MarshalJSON implements json.Marshaler for Operation.
func (o *Operation) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	jsonhelpers.SetIfSliceNotEmpty(m, "tags", o.Tags)
	jsonhelpers.SetIfNotEmpty(m, "summary", o.Summary)
	jsonhelpers.SetIfNotEmpty(m, "description", o.Description)
	jsonhelpers.SetIfNotEmpty(m, "operationId", o.OperationID)
	jsonhelpers.SetIfSliceNotEmpty(m, "parameters", o.Parameters)
	jsonhelpers.SetIfPtrNotNil(m, "requestBody", o.RequestBody)
	jsonhelpers.SetIfMapNotEmpty(m, "responses", o.Responses)
	jsonhelpers.SetIfTrue(m, "deprecated", o.Deprecated)
	jsonhelpers.SetIfSliceNotEmpty(m, "security", o.Security)
	return jsonhelpers.MarshalWithExtras(m, o.Extra)
}

// MarshalJSON implements json.Marshaler for Parameter.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	jsonhelpers.SetIfNotEmpty(m, "$ref", p.Ref)
	jsonhelpers.SetIfNotEmpty(m, "name", p.Name)
	jsonhelpers.SetIfNotEmpty(m, "in", p.In)
	jsonhelpers.SetIfNotEmpty(m, "description", p.Description)
	jsonhelpers.SetIfTrue(m, "required", p.Required)
	jsonhelpers.SetIfPtrNotNil(m, "schema", p.Schema)
	return jsonhelpers.MarshalWithExtras(m, p.Extra)
}

// MarshalJSON implements json.Marshaler for RequestBody.
func (rb *RequestBody) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	jsonhelpers.SetIfNotEmpty(m, "$ref", rb.Ref)
	jsonhelpers.SetIfNotEmpty(m, "description", rb.Description)
	jsonhelpers.SetIfTrue(m, "required", rb.Required)
	jsonhelpers.SetIfMapNotEmpty(m, "content", rb.Content)
	return jsonhelpers.MarshalWithExtras(m, rb.Extra)
}

// MarshalJSON implements json.Marshaler for Response.
func (r *Response) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	jsonhelpers.SetIfNotEmpty(m, "$ref", r.Ref)
	jsonhelpers.SetIfNotEmpty(m, "description", r.Description)
	jsonhelpers.SetIfNotNil(m, "headers", r.Headers)
	jsonhelpers.SetIfMapNotEmpty(m, "content", r.Content)
	jsonhelpers.SetIfNotNil(m, "links", r.Links)
	return jsonhelpers.MarshalWithExtras(m, r.Extra)
}

// MarshalJSON implements json.Marshaler for MediaType.
func (mt *MediaType) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	jsonhelpers.SetIfPtrNotNil(m, "schema", mt.Schema)
	jsonhelpers.SetIfNotNil(m, "example", mt.Example)
	jsonhelpers.SetIfNotNil(m, "examples", mt.Examples)
	jsonhelpers.SetIfNotNil(m, "encoding", mt.Encoding)
	return jsonhelpers.MarshalWithExtras(m, mt.Extra)
}

// MarshalJSON implements json.Marshaler for Schema.
func (s *Schema) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	jsonhelpers.SetIfNotEmpty(m, "$ref", s.Ref)
	jsonhelpers.SetIfNotEmpty(m, "title", s.Title)
	jsonhelpers.SetIfNotEmpty(m, "description", s.Description)
	jsonhelpers.SetIfNotNil(m, "type", s.Type)
	jsonhelpers.SetIfNotEmpty(m, "format", s.Format)
	jsonhelpers.SetIfSliceNotEmpty(m, "enum", s.Enum)
	jsonhelpers.SetIfNotNil(m, "default", s.Default)
	jsonhelpers.SetIfNotNil(m, "example", s.Example)
	jsonhelpers.SetIfSliceNotEmpty(m, "required", s.Required)
	jsonhelpers.SetIfMapNotEmpty(m, "properties", s.Properties)
	jsonhelpers.SetIfNotNil(m, "additionalProperties", s.AdditionalProperties)
	jsonhelpers.SetIfNotNil(m, "items", s.Items)
	jsonhelpers.SetIfSliceNotEmpty(m, "allOf", s.AllOf)
	jsonhelpers.SetIfSliceNotEmpty(m, "oneOf", s.OneOf)
	jsonhelpers.SetIfSliceNotEmpty(m, "anyOf", s.AnyOf)
	jsonhelpers.SetIfPtrNotNil(m, "not", s.Not)
	jsonhelpers.SetIfTrue(m, "nullable", s.Nullable)
	jsonhelpers.SetIfTrue(m, "readOnly", s.ReadOnly)
	jsonhelpers.SetIfTrue(m, "writeOnly", s.WriteOnly)
	jsonhelpers.SetIfTrue(m, "deprecated", s.Deprecated)
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}
