package reconciler

import (
	"slices"

	"github.com/erraggy/oaspublisher/parser"
)

// Prune deletes every component schema not in reachable and returns the
// deleted names, sorted.
func Prune(doc *parser.Document, reachable Reachability) []string {
	schemas := doc.Schemas()
	var pruned []string
	for name := range schemas {
		if !reachable.Contains(name) {
			pruned = append(pruned, name)
		}
	}
	slices.Sort(pruned)
	for _, name := range pruned {
		delete(schemas, name)
	}
	return pruned
}
