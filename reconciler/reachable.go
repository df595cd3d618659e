package reconciler

import (
	"slices"

	"github.com/erraggy/oaspublisher/parser"
)

// Reachability is the outcome of the reachability walk.
type Reachability struct {
	// Names is the set of reachable component schema names.
	Names map[string]bool
	// Seeds are the schemas referenced directly by operations, sorted.
	Seeds []string
	// ForceIncluded are the otherwise unreachable schemas kept by their
	// publish-include marker, sorted.
	ForceIncluded []string
}

// Contains reports whether name is reachable.
func (r Reachability) Contains(name string) bool {
	return r.Names[name]
}

// Sorted returns the reachable names in sorted order.
func (r Reachability) Sorted() []string {
	names := make([]string, 0, len(r.Names))
	for name := range r.Names {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ComputeReachable returns the component schemas reachable from doc's
// operations or kept by a matching publish-include marker.
//
// Operations seed the set through parameter schemas (path level plus GET, POST,
// PUT and DELETE), request bodies of POST and PUT, and responses of GET, POST,
// PUT and DELETE; content schemas contribute their own reference and their
// array items reference. Seeds are then expanded through $ref, items,
// properties, additionalProperties and allOf/oneOf/anyOf.
//
// References to names missing from the schema dictionary are ignored. Only
// names that exist in doc end up in the result.
func ComputeReachable(doc *parser.Document, policy Policy) Reachability {
	w := &walker{
		schemas: doc.Schemas(),
		names:   make(map[string]bool),
	}

	w.seed(doc.Paths)
	seeds := w.sorted()

	// seeds are already members, so visit would skip them
	for _, name := range seeds {
		w.expandSchema(w.schemas[name])
	}

	forced := w.forceInclude(policy)

	return Reachability{
		Names:         w.names,
		Seeds:         seeds,
		ForceIncluded: forced,
	}
}

// walker tracks the reachable set by schema name. Membership in names is the
// only cycle guard: a name is expanded at most once.
type walker struct {
	schemas map[string]*parser.Schema
	names   map[string]bool
}

func (w *walker) sorted() []string {
	return Reachability{Names: w.names}.Sorted()
}

// record adds the schema named by ref to the set without expanding it.
func (w *walker) record(s *parser.Schema) {
	name := s.RefName()
	if name == "" {
		return
	}
	if _, exists := w.schemas[name]; exists {
		w.names[name] = true
	}
}

func (w *walker) recordParams(params []*parser.Parameter) {
	for _, param := range params {
		if param != nil {
			w.record(param.Schema)
		}
	}
}

func (w *walker) recordContent(content map[string]*parser.MediaType) {
	for _, mt := range content {
		if mt == nil || mt.Schema == nil {
			continue
		}
		w.record(mt.Schema)
		w.record(mt.Schema.ItemsSchema())
	}
}

func (w *walker) recordRequestBody(op *parser.Operation) {
	if op != nil && op.RequestBody != nil {
		w.recordContent(op.RequestBody.Content)
	}
}

func (w *walker) recordResponses(op *parser.Operation) {
	if op == nil {
		return
	}
	for _, resp := range op.Responses {
		if resp != nil {
			w.recordContent(resp.Content)
		}
	}
}

// seed records the schemas referenced directly by operations.
func (w *walker) seed(paths parser.Paths) {
	for _, item := range paths {
		if item == nil {
			continue
		}
		w.recordParams(item.Parameters)
		for _, op := range []*parser.Operation{item.Get, item.Post, item.Put, item.Delete} {
			if op != nil {
				w.recordParams(op.Parameters)
			}
		}

		w.recordRequestBody(item.Post)
		w.recordRequestBody(item.Put)

		for _, op := range []*parser.Operation{item.Get, item.Post, item.Put, item.Delete} {
			w.recordResponses(op)
		}
	}
}

// visit adds name to the set and expands its schema. Names already in the set
// and names missing from the dictionary are skipped.
func (w *walker) visit(name string) {
	if name == "" || w.names[name] {
		return
	}
	s, exists := w.schemas[name]
	if !exists {
		return
	}
	w.names[name] = true
	w.expandSchema(s)
}

// expandSchema discovers the schemas s refers to.
func (w *walker) expandSchema(s *parser.Schema) {
	if s == nil {
		return
	}

	// a schema that is only a $ref is an alias of the referenced schema
	w.visit(s.RefName())
	w.visit(s.ItemsSchema().RefName())

	for _, propName := range s.SortedPropertyNames() {
		prop := s.Properties[propName]
		if prop == nil {
			continue
		}
		w.visit(prop.RefName())
		w.visit(prop.ItemsSchema().RefName())

		if addProps := prop.AdditionalPropertiesSchema(); addProps != nil {
			if addProps.Ref != "" {
				w.visit(addProps.RefName())
			} else {
				w.expandSchema(addProps)
			}
		}
	}

	for _, member := range s.Compositions() {
		w.expandSchema(member.Schema)
	}
}

// forceInclude expands, in name order, every unreached schema whose marker
// matches policy. Returns the names it added as roots.
func (w *walker) forceInclude(policy Policy) []string {
	markers := indexIncludeMarkers(w.schemas)
	candidates := make([]string, 0, len(markers))
	for name := range markers {
		candidates = append(candidates, name)
	}
	slices.Sort(candidates)

	var forced []string
	for _, name := range candidates {
		if w.names[name] || !markers[name].matches(policy) {
			continue
		}
		forced = append(forced, name)
		w.visit(name)
	}
	return forced
}
