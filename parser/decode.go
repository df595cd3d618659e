package parser

import (
	"github.com/erraggy/oaspublisher/parser/internal/jsonhelpers"
)

// The decodeFromMap methods populate a typed value from the generic map
// produced by the YAML decoder. Each known key is taken out of the map as it
// is read; whatever remains is kept verbatim in Extra.

func (d *Document) decodeFromMap(m map[string]any) {
	d.OpenAPI = jsonhelpers.GetString(m, "openapi")
	if info := jsonhelpers.GetMap(m, "info"); info != nil {
		d.Info = new(Info)
		d.Info.decodeFromMap(info)
	}
	d.Servers = jsonhelpers.GetSlice(m, "servers")
	if paths := jsonhelpers.GetMap(m, "paths"); paths != nil {
		d.Paths = decodePaths(paths)
	}
	if comps := jsonhelpers.GetMap(m, "components"); comps != nil {
		d.Components = new(Components)
		d.Components.decodeFromMap(comps)
	}
	d.Security = jsonhelpers.GetSlice(m, "security")
	d.Tags = jsonhelpers.GetSlice(m, "tags")
	d.ExternalDocs = jsonhelpers.GetAny(m, "externalDocs")
	d.Extra = jsonhelpers.Remainder(m)
}

func (i *Info) decodeFromMap(m map[string]any) {
	i.Title = jsonhelpers.GetString(m, "title")
	i.Description = jsonhelpers.GetString(m, "description")
	i.Version = jsonhelpers.GetString(m, "version")
	i.Extra = jsonhelpers.Remainder(m)
}

func (c *Components) decodeFromMap(m map[string]any) {
	if schemas := jsonhelpers.GetMap(m, "schemas"); schemas != nil {
		c.Schemas = decodeSchemaMap(schemas)
	}
	c.Extra = jsonhelpers.Remainder(m)
}

// decodePaths decodes a map[string]any into a Paths value.
func decodePaths(m map[string]any) Paths {
	result := make(Paths, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			pi := new(PathItem)
			pi.decodeFromMap(sub)
			result[k] = pi
		}
	}
	return result
}

func (p *PathItem) decodeFromMap(m map[string]any) {
	p.Ref = jsonhelpers.GetString(m, "$ref")
	p.Summary = jsonhelpers.GetString(m, "summary")
	p.Description = jsonhelpers.GetString(m, "description")
	p.Get = decodeOperation(jsonhelpers.GetMap(m, MethodGet))
	p.Put = decodeOperation(jsonhelpers.GetMap(m, MethodPut))
	p.Post = decodeOperation(jsonhelpers.GetMap(m, MethodPost))
	p.Delete = decodeOperation(jsonhelpers.GetMap(m, MethodDelete))
	p.Options = decodeOperation(jsonhelpers.GetMap(m, MethodOptions))
	p.Head = decodeOperation(jsonhelpers.GetMap(m, MethodHead))
	p.Patch = decodeOperation(jsonhelpers.GetMap(m, MethodPatch))
	p.Trace = decodeOperation(jsonhelpers.GetMap(m, MethodTrace))
	p.Parameters = decodeParameters(jsonhelpers.GetSlice(m, "parameters"))
	p.Extra = jsonhelpers.Remainder(m)
}

func decodeOperation(m map[string]any) *Operation {
	if m == nil {
		return nil
	}
	op := new(Operation)
	op.Tags = jsonhelpers.GetStringSlice(m, "tags")
	op.Summary = jsonhelpers.GetString(m, "summary")
	op.Description = jsonhelpers.GetString(m, "description")
	op.OperationID = jsonhelpers.GetString(m, "operationId")
	op.Parameters = decodeParameters(jsonhelpers.GetSlice(m, "parameters"))
	if body := jsonhelpers.GetMap(m, "requestBody"); body != nil {
		op.RequestBody = new(RequestBody)
		op.RequestBody.decodeFromMap(body)
	}
	if responses := jsonhelpers.GetMap(m, "responses"); responses != nil {
		op.Responses = make(map[string]*Response, len(responses))
		for code, v := range responses {
			if sub, ok := v.(map[string]any); ok {
				resp := new(Response)
				resp.decodeFromMap(sub)
				op.Responses[code] = resp
			}
		}
	}
	op.Deprecated = jsonhelpers.GetBool(m, "deprecated")
	op.Security = jsonhelpers.GetSlice(m, "security")
	op.Extra = jsonhelpers.Remainder(m)
	return op
}

func decodeParameters(list []any) []*Parameter {
	if len(list) == 0 {
		return nil
	}
	params := make([]*Parameter, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			param := new(Parameter)
			param.decodeFromMap(m)
			params = append(params, param)
		}
	}
	return params
}

func (p *Parameter) decodeFromMap(m map[string]any) {
	p.Ref = jsonhelpers.GetString(m, "$ref")
	p.Name = jsonhelpers.GetString(m, "name")
	p.In = jsonhelpers.GetString(m, "in")
	p.Description = jsonhelpers.GetString(m, "description")
	p.Required = jsonhelpers.GetBool(m, "required")
	p.Schema = decodeSchema(jsonhelpers.GetMap(m, "schema"))
	p.Extra = jsonhelpers.Remainder(m)
}

func (rb *RequestBody) decodeFromMap(m map[string]any) {
	rb.Ref = jsonhelpers.GetString(m, "$ref")
	rb.Description = jsonhelpers.GetString(m, "description")
	rb.Required = jsonhelpers.GetBool(m, "required")
	rb.Content = decodeContent(jsonhelpers.GetMap(m, "content"))
	rb.Extra = jsonhelpers.Remainder(m)
}

func (r *Response) decodeFromMap(m map[string]any) {
	r.Ref = jsonhelpers.GetString(m, "$ref")
	r.Description = jsonhelpers.GetString(m, "description")
	r.Headers = jsonhelpers.GetAny(m, "headers")
	r.Content = decodeContent(jsonhelpers.GetMap(m, "content"))
	r.Links = jsonhelpers.GetAny(m, "links")
	r.Extra = jsonhelpers.Remainder(m)
}

func decodeContent(m map[string]any) map[string]*MediaType {
	if m == nil {
		return nil
	}
	content := make(map[string]*MediaType, len(m))
	for mediaType, v := range m {
		sub, ok := v.(map[string]any)
		if !ok {
			continue
		}
		mt := &MediaType{
			Schema:   decodeSchema(jsonhelpers.GetMap(sub, "schema")),
			Example:  jsonhelpers.GetAny(sub, "example"),
			Examples: jsonhelpers.GetAny(sub, "examples"),
			Encoding: jsonhelpers.GetAny(sub, "encoding"),
		}
		mt.Extra = jsonhelpers.Remainder(sub)
		content[mediaType] = mt
	}
	return content
}

func decodeSchema(m map[string]any) *Schema {
	if m == nil {
		return nil
	}
	s := new(Schema)
	s.decodeFromMap(m)
	return s
}

func decodeSchemaMap(m map[string]any) map[string]*Schema {
	result := make(map[string]*Schema, len(m))
	for name, v := range m {
		if sub, ok := v.(map[string]any); ok {
			result[name] = decodeSchema(sub)
		}
	}
	return result
}

func decodeSchemaList(list []any) []*Schema {
	if len(list) == 0 {
		return nil
	}
	schemas := make([]*Schema, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			schemas = append(schemas, decodeSchema(m))
		}
	}
	return schemas
}

// decodeSchemaOrBool decodes a value that can be either a schema object or a
// boolean (items, additionalProperties).
func decodeSchemaOrBool(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return decodeSchema(val)
	default:
		return v // bool, nil
	}
}

func (s *Schema) decodeFromMap(m map[string]any) {
	s.Ref = jsonhelpers.GetString(m, "$ref")
	s.Title = jsonhelpers.GetString(m, "title")
	s.Description = jsonhelpers.GetString(m, "description")
	s.Type = jsonhelpers.GetAny(m, "type")
	s.Format = jsonhelpers.GetString(m, "format")
	s.Enum = jsonhelpers.GetSlice(m, "enum")
	s.Default = jsonhelpers.GetAny(m, "default")
	s.Example = jsonhelpers.GetAny(m, "example")
	s.Required = jsonhelpers.GetStringSlice(m, "required")
	if props := jsonhelpers.GetMap(m, "properties"); props != nil {
		s.Properties = decodeSchemaMap(props)
	}
	s.AdditionalProperties = decodeSchemaOrBool(jsonhelpers.GetAny(m, "additionalProperties"))
	s.Items = decodeSchemaOrBool(jsonhelpers.GetAny(m, "items"))
	s.AllOf = decodeSchemaList(jsonhelpers.GetSlice(m, "allOf"))
	s.OneOf = decodeSchemaList(jsonhelpers.GetSlice(m, "oneOf"))
	s.AnyOf = decodeSchemaList(jsonhelpers.GetSlice(m, "anyOf"))
	s.Not = decodeSchema(jsonhelpers.GetMap(m, "not"))
	s.Nullable = jsonhelpers.GetBool(m, "nullable")
	s.ReadOnly = jsonhelpers.GetBool(m, "readOnly")
	s.WriteOnly = jsonhelpers.GetBool(m, "writeOnly")
	s.Deprecated = jsonhelpers.GetBool(m, "deprecated")
	s.Extra = jsonhelpers.Remainder(m)
}
