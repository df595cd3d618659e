package parser

// Document represents an OpenAPI Specification 3.x document.
//
// Only the parts the reconciler traverses are modelled with dedicated types;
// everything else (servers, security, tags, component responses, ...) is kept
// verbatim so that pretty-printing a parsed document never drops content.
//
// A Document is owned by its caller. The reconciler mutates it in place.
type Document struct {
	OpenAPI      string      `yaml:"openapi" json:"openapi"`
	Info         *Info       `yaml:"info,omitempty" json:"info,omitempty"`
	Servers      []any       `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        Paths       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components   *Components `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []any       `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []any       `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs any         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	// and any top-level field not modelled above
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
	// Extra captures contact, license, termsOfService and extensions
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects. Only Schemas is modelled; the other
// component maps are preserved in Extra.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Extra   map[string]any     `yaml:",inline" json:"-"`
}

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         string       `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation   `yaml:"trace,omitempty" json:"trace,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures servers and specification extensions
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags        []string             `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security    []any                `yaml:"security,omitempty" json:"security,omitempty"`
	// Extra captures callbacks, servers, externalDocs and specification extensions
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Parameter describes a single operation parameter
type Parameter struct {
	Ref         string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string         `yaml:"name,omitempty" json:"name,omitempty"`
	In          string         `yaml:"in,omitempty" json:"in,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}

// Response describes a single response from an API operation
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     any                   `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Links       any                   `yaml:"links,omitempty" json:"links,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	Schema   *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any            `yaml:"example,omitempty" json:"example,omitempty"`
	Examples any            `yaml:"examples,omitempty" json:"examples,omitempty"`
	Encoding any            `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	Extra    map[string]any `yaml:",inline" json:"-"`
}

// Title returns the API title, or an empty string when the document has no info.
func (d *Document) Title() string {
	if d == nil || d.Info == nil {
		return ""
	}
	return d.Info.Title
}

// Version returns the API version (info.version), or an empty string.
func (d *Document) Version() string {
	if d == nil || d.Info == nil {
		return ""
	}
	return d.Info.Version
}

// Schemas returns the component schema dictionary, or nil when there is none.
// The returned map is the document's own; deleting from it prunes the document.
func (d *Document) Schemas() map[string]*Schema {
	if d == nil || d.Components == nil {
		return nil
	}
	return d.Components.Schemas
}
