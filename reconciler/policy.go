package reconciler

import (
	"slices"
	"strings"
)

const (
	// PublishIncludeExtension is the schema-level marker that keeps an otherwise
	// unreachable schema in the output. Its value is "true" or a comma-separated
	// list of tags matched against the policy's force-include tags.
	PublishIncludeExtension = "x-publish-include"

	// RenameExtension is the property-level marker naming the property's
	// replacement key.
	RenameExtension = "x-basename"
)

// Default extension lists substituted by callers that configure a release
// folder but leave the corresponding list empty.
var (
	DefaultObjectExtensions   = []string{"x-package", "x-cloudevent-type", "x-cloudevent-subject"}
	DefaultPropertyExtensions = []string{RenameExtension}
	DefaultIllegalExtensions  = []string{"x-property-ref"}
)

// Policy is the immutable extension policy for one reconciliation run.
// The zero value is usable: no force-include tags, no property stripping, no
// illegal keys, and only the publish-include marker is stripped from objects.
type Policy struct {
	forceIncludeTags   map[string]struct{}
	objectExtensions   map[string]struct{}
	propertyExtensions map[string]struct{}
	illegalExtensions  map[string]struct{}
}

// NewPolicy builds a Policy from the four caller-supplied lists. Entries are
// trimmed, empty entries are ignored and duplicates collapse. The publish-include
// marker is always part of the object extension set.
func NewPolicy(forceIncludeTags, objectExtensions, propertyExtensions, illegalExtensions []string) Policy {
	p := Policy{
		forceIncludeTags:   toSet(forceIncludeTags),
		objectExtensions:   toSet(objectExtensions),
		propertyExtensions: toSet(propertyExtensions),
		illegalExtensions:  toSet(illegalExtensions),
	}
	if p.objectExtensions == nil {
		p.objectExtensions = make(map[string]struct{}, 1)
	}
	p.objectExtensions[PublishIncludeExtension] = struct{}{}
	return p
}

// ForceIncludeTags returns the force-include tag values, sorted.
func (p Policy) ForceIncludeTags() []string { return sortedKeys(p.forceIncludeTags) }

// ObjectExtensions returns the schema-level extensions to strip, sorted.
// It always contains PublishIncludeExtension.
func (p Policy) ObjectExtensions() []string {
	if p.objectExtensions == nil {
		return []string{PublishIncludeExtension}
	}
	return sortedKeys(p.objectExtensions)
}

// PropertyExtensions returns the property-level extensions to strip, sorted.
func (p Policy) PropertyExtensions() []string { return sortedKeys(p.propertyExtensions) }

// IllegalExtensions returns the forbidden extension keys, sorted.
func (p Policy) IllegalExtensions() []string { return sortedKeys(p.illegalExtensions) }

// IsIllegal reports whether key is forbidden on retained schemas.
func (p Policy) IsIllegal(key string) bool { return has(p.illegalExtensions, key) }

// StripsObjectExtension reports whether key is removed from schema objects.
func (p Policy) StripsObjectExtension(key string) bool {
	return key == PublishIncludeExtension || has(p.objectExtensions, key)
}

// StripsPropertyExtension reports whether key is removed from schema properties.
func (p Policy) StripsPropertyExtension(key string) bool { return has(p.propertyExtensions, key) }

// StripsProperties reports whether any property-level stripping is configured.
func (p Policy) StripsProperties() bool { return len(p.propertyExtensions) > 0 }

// forcesTag reports whether tag is one of the force-include tag values.
func (p Policy) forcesTag(tag string) bool { return has(p.forceIncludeTags, tag) }

func toSet(values []string) map[string]struct{} {
	var set map[string]struct{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if set == nil {
			set = make(map[string]struct{}, len(values))
		}
		set[v] = struct{}{}
	}
	return set
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
