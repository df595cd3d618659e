package reconciler

import (
	"fmt"

	"github.com/erraggy/oaspublisher/oaserrors"
	"github.com/erraggy/oaspublisher/parser"
)

// Result contains the diagnostics of a reconciliation run. The document
// itself is modified in place.
type Result struct {
	// Reachable is the sorted set of schemas that survived pruning
	Reachable []string
	// Seeds are the schemas referenced directly by operations
	Seeds []string
	// ForceIncluded are the schemas kept only by their publish-include marker
	ForceIncluded []string
	// Pruned are the deleted (unused) schemas
	Pruned []string
	// Renamed lists the properties renamed through x-basename
	Renamed []PropertyRename
	// Stripped lists the removed extensions
	Stripped []StrippedExtension
}

// HasPruned returns true if any schema was deleted
func (r *Result) HasPruned() bool {
	return len(r.Pruned) > 0
}

// Option is a function that configures a reconciliation
type Option func(*reconcileConfig) error

// reconcileConfig holds configuration for a reconciliation
type reconcileConfig struct {
	policy Policy
	logger parser.Logger
}

// WithPolicy sets the extension policy. Default: NewPolicy(nil, nil, nil, nil).
func WithPolicy(policy Policy) Option {
	return func(cfg *reconcileConfig) error {
		cfg.policy = policy
		return nil
	}
}

// WithLogger sets the structured logger for diagnostics.
func WithLogger(l parser.Logger) Option {
	return func(cfg *reconcileConfig) error {
		cfg.logger = l
		return nil
	}
}

func applyOptions(opts ...Option) (*reconcileConfig, error) {
	cfg := &reconcileConfig{
		policy: NewPolicy(nil, nil, nil, nil),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	cfg.logger = parser.LoggerOrNop(cfg.logger)
	return cfg, nil
}

// Reconcile prunes doc down to the schemas reachable from its operations and
// applies the extension policy, in this order:
//
//  1. compute the reachable set ([ComputeReachable])
//  2. delete unreachable schemas ([Prune])
//  3. fail on forbidden extensions in retained schemas ([DetectIllegalExtensions])
//  4. rename x-basename properties ([RenameShortenedProperties])
//  5. strip configured extensions ([StripExtensions])
//
// Illegal extensions are checked before renaming and stripping so that the
// report names the properties as they appear in the source document. When
// step 3 fails, doc has already been pruned and the error is an
// *oaserrors.IllegalExtensionError.
func Reconcile(doc *parser.Document, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("reconciler: invalid options: %w", err)
	}
	if doc == nil {
		return nil, &oaserrors.ConfigError{Option: "document", Message: "document is required"}
	}

	log := cfg.logger.With("title", doc.Title(), "version", doc.Version())

	reach := ComputeReachable(doc, cfg.policy)
	log.Debug("computed reachable schemas",
		"seeds", len(reach.Seeds),
		"reachable", len(reach.Names))
	if len(reach.ForceIncluded) > 0 {
		log.Debug("force-included schemas", "schemas", reach.ForceIncluded)
	}

	result := &Result{
		Seeds:         reach.Seeds,
		ForceIncluded: reach.ForceIncluded,
	}

	result.Pruned = Prune(doc, reach)
	result.Reachable = reach.Sorted()
	if result.HasPruned() {
		log.Info("API has unused schema objects", "schemas", result.Pruned)
	}

	if err := DetectIllegalExtensions(doc, cfg.policy); err != nil {
		log.Error("illegal extensions detected", "error", err)
		return nil, err
	}

	result.Renamed = RenameShortenedProperties(doc)
	for _, r := range result.Renamed {
		if r.Replaced {
			log.Warn("renamed property replaced an existing property",
				"schema", r.Schema, "path", r.Path, "from", r.From, "to", r.To)
			continue
		}
		log.Debug("renamed property", "schema", r.Schema, "path", r.Path, "from", r.From, "to", r.To)
	}

	result.Stripped = StripExtensions(doc, cfg.policy)
	log.Debug("stripped extensions", "count", len(result.Stripped))

	return result, nil
}
