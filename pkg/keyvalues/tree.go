package keyvalues

import "strings"

// Separator joins a section name with the keys nested under it.
const Separator = "."

// Tree is the flattened result of a parse. Keys are dotted paths
// (e.g. "libraryfolders.1.path") and keep the order they first appeared in.
type Tree struct {
	keys   []string
	values map[string]string
}

func newTree() *Tree {
	return &Tree{values: map[string]string{}}
}

func (t *Tree) set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

func (t *Tree) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns all leaf keys in document order.
func (t *Tree) Keys() []string {
	return append([]string(nil), t.keys...)
}

func (t *Tree) Len() int {
	return len(t.keys)
}

// Map returns a copy of the key/value set.
func (t *Tree) Map() map[string]string {
	m := make(map[string]string, len(t.values))
	for k, v := range t.values {
		m[k] = v
	}
	return m
}

// Join builds a dotted key from its segments.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// LocalName returns the last segment of a dotted key.
func LocalName(key string) string {
	if i := strings.LastIndex(key, Separator); i >= 0 {
		return key[i+len(Separator):]
	}
	return key
}
