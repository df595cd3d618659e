// Package oaserrors provides structured error types for the oaspublisher library.
//
// Import path: github.com/erraggy/oaspublisher/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the failure categories of a
// reconcile or publish run. Every one of them aborts the run; none is retried.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON parsing failures and unsupported documents
//   - [ConfigError]: Missing source document, empty or unsafe version, invalid options
//   - [IllegalExtensionError]: Retained schemas carrying forbidden extensions
//   - [AlreadyPublishedError]: A published version's snapshot would change
//   - [NotUpToDateError]: Publishing a document whose snapshot is missing or differs
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrIllegalExtension]: Matches any [IllegalExtensionError]
//   - [ErrAlreadyPublished]: Matches any [AlreadyPublishedError]
//   - [ErrNotUpToDate]: Matches any [NotUpToDateError]
//
// # Usage
//
//	_, err := pub.RecordVersion("releases")
//	if errors.Is(err, oaserrors.ErrAlreadyPublished) {
//	    // bump the document version instead
//	}
//
//	var illegal *oaserrors.IllegalExtensionError
//	if errors.As(err, &illegal) {
//	    for _, v := range illegal.Violations {
//	        fmt.Println(v)
//	    }
//	}
package oaserrors
