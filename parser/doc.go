// Package parser provides parsing and pretty-printing for OpenAPI 3.x documents.
//
// The parser decodes YAML or JSON into a typed [Document]. Only the parts of the
// document the reconciler walks are modelled (paths, operations, parameters,
// request bodies, responses, media types and component schemas); everything
// else is preserved in the Extra map of the nearest enclosing type, so a
// document survives a parse and re-render without losing content.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Document.Title(), result.Document.Version())
//
// # Rendering
//
// [MarshalYAML] and [MarshalJSON] are deterministic: struct fields follow
// declaration order and maps are emitted with sorted keys. Two renderings of an
// unchanged document are byte-identical, which the release package relies on to
// detect drift against recorded snapshots.
//
// # References
//
// Intra-document schema references use [SchemaRefPrefix]. [SchemaName] strips
// the prefix (URL-decoding when needed) to obtain the bare component name.
//
// Swagger 2.0 documents are rejected: their definitions live under a different
// prefix and must be converted to 3.x first.
package parser
