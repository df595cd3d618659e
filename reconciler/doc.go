// Package reconciler prunes an OpenAPI 3.x document down to the schemas its
// operations can reach and applies an extension policy to what remains.
//
// # Reachability
//
// Operations seed the walk with the schemas their parameters, request bodies
// and responses reference directly. The walk then follows $ref, items,
// property references, additionalProperties and allOf/oneOf/anyOf members
// until no new name is found. The reachable set is keyed by schema name, so
// cyclic references terminate.
//
// A schema nothing reaches is still kept when it carries x-publish-include with
// the value "true", or with a comma-separated list containing one of the
// policy's force-include tags:
//
//	components:
//	  schemas:
//	    AuditEvent:
//	      x-publish-include: audit,events
//
// # Policy
//
// [Policy] names four sets: force-include tags, object extensions to strip,
// property extensions to strip and illegal extensions. x-publish-include is
// always stripped from objects.
//
// # Usage
//
//	result, err := reconciler.Reconcile(doc,
//		reconciler.WithPolicy(reconciler.NewPolicy(
//			[]string{"audit"},
//			reconciler.DefaultObjectExtensions,
//			reconciler.DefaultPropertyExtensions,
//			reconciler.DefaultIllegalExtensions,
//		)),
//	)
//	if err != nil {
//		var illegal *oaserrors.IllegalExtensionError
//		if errors.As(err, &illegal) {
//			// illegal.Violations names every schema and key
//		}
//		return err
//	}
//	fmt.Println("pruned:", result.Pruned)
package reconciler
