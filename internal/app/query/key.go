package query

import (
	"encoding/json"
	"strings"
)

// keySep separates key segments in the canonical form. It cannot appear
// in resource slugs or serialized filters, so prefix matching on the
// canonical string is equivalent to segment-wise prefix matching.
const keySep = "\x1f"

// Key is a composite, hierarchical cache key. Child keys extend their
// parent's segments, so invalidating a parent cascades to everything
// scoped beneath it.
type Key []string

// NewKey creates a key from the given segments
func NewKey(segments ...string) Key {
	return Key(segments)
}

// Child returns a new key extending this one with more segments
func (k Key) Child(segments ...string) Key {
	child := make(Key, 0, len(k)+len(segments))
	child = append(child, k...)
	child = append(child, segments...)

	return child
}

// ChildFilter returns a new key extending this one with a canonical
// serialization of the filter value. Two filters that are structurally
// equal serialize identically, so they address the same cache entry.
func (k Key) ChildFilter(filter any) Key {
	return k.Child(canonicalize(filter))
}

// String returns the canonical form of the key
func (k Key) String() string {
	return strings.Join(k, keySep)
}

// HasPrefix reports whether this key is the given key or scoped under it
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}

	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}

	return true
}

// canonicalize serializes a filter value deterministically. JSON object
// keys are emitted in sorted order for maps and declaration order for
// structs, both stable across calls.
func canonicalize(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "unserializable"
	}

	return string(data)
}
