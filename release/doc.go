// Package release manages the release folder of a reconciled OpenAPI document.
//
// A release folder holds one snapshot per version, named after info.version
// (for example 1.2.0.yaml), next to a ledger file, releases.json:
//
//	{
//	  "latest": "1.1.0",
//	  "versions": ["1.0.0", "1.1.0", "1.2.0"],
//	  "published": ["1.0.0", "1.1.0"]
//	}
//
// A version moves from unknown to recorded ([Publisher.RecordVersion]) to
// published ([Publisher.Publish]). Recording may overwrite a snapshot until
// the version is published; after that the snapshot never changes. Publishing
// never writes document content: it promotes a snapshot that already matches
// the document byte for byte.
//
// Snapshots and the ledger are replaced atomically, and the snapshot is always
// written before the ledger that refers to it.
package release
