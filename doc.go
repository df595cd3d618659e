// Package oaspublisher prunes OpenAPI 3.x documents down to their public surface
// and manages an append-only, versioned release history of the result on disk.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - parser: Parse an OpenAPI 3.x document into a typed, mutable Document and
//     pretty-print it back deterministically
//   - reconciler: Compute the schemas reachable from the document's operations,
//     prune the rest, and enforce the extension policy on what remains
//   - release: Record document snapshots per version and promote a version to
//     published exactly once
//
// # Quick Start
//
// Reconcile a document and record it in a release folder:
//
//	import (
//		"github.com/erraggy/oaspublisher/parser"
//		"github.com/erraggy/oaspublisher/reconciler"
//		"github.com/erraggy/oaspublisher/release"
//	)
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("final.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	policy := reconciler.NewPolicy(
//		[]string{"enricher"},            // force-include tag values
//		[]string{"x-package"},           // object extensions to strip
//		[]string{"x-basename"},          // property extensions to strip
//		[]string{"x-property-ref"},      // illegal extensions
//	)
//	rec, err := reconciler.Reconcile(result.Document, reconciler.WithPolicy(policy))
//	if err != nil {
//		log.Fatal(err) // illegal extensions are fatal
//	}
//	fmt.Printf("pruned: %v\n", rec.Pruned)
//
//	pub := release.New(result.Document)
//	if _, err := pub.RecordVersion("releases"); err != nil {
//		log.Fatal(err)
//	}
//
// Publishing promotes the recorded snapshot of the document's version:
//
//	if _, err := pub.Publish("releases"); err != nil {
//		// oaserrors.ErrNotUpToDate when the snapshot is missing or differs
//		log.Fatal(err)
//	}
//
// # Extensions
//
// The reconciler understands two markers of its own:
//
//   - x-publish-include on a schema keeps an otherwise unreachable schema. The
//     value "true" always includes it; any other value is a comma-separated list
//     of tags matched against the policy's force-include tags. The marker is
//     always stripped from the output.
//   - x-basename on a property renames the property to the marker's value,
//     carrying over required-ness and recording the old name in the description.
//
// # Release Folder Layout
//
//	releases/
//	  releases.json   ledger: latest, versions, published
//	  1.0.0.yaml      snapshot of version 1.0.0
//	  1.1.0.yaml      snapshot of version 1.1.0
//
// A version that appears in "published" can never be changed again; recording a
// different document under that version fails with oaserrors.ErrAlreadyPublished.
//
// # Command-Line Interface
//
// The oaspublisher command wraps the same operations:
//
//	oaspublisher reconcile -r releases -o reconciled.yaml final.yaml
//	oaspublisher publish -r releases final.yaml
//	oaspublisher ledger releases
//	oaspublisher mcp
package oaspublisher
