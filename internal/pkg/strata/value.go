// Package strata implements the canonical value model used for event payloads.
// A Value is a closed sum over null, 64-bit integers, strings, ordered lists and
// string-keyed maps. Map entries are kept sorted by key from the moment a map is
// constructed, so two maps built in different insertion orders are the same value
// and encode to the same bytes.
//
// The canonical encoding and the content hash derived from it are the trust
// anchor of the event chain: everything that ends up in a package row goes
// through this package first.
package strata

import "sort"

// Kind identifies the shape of a Value.
type Kind int

const (
	// KindInvalid is the kind of a zero Value. Invalid values cannot be encoded.
	KindInvalid Kind = iota
	KindNull
	KindInt
	KindString
	KindList
	KindMap
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Value is an immutable node of the canonical value model.
// The zero Value has KindInvalid and fails encoding; use the constructors.
type Value struct {
	kind Kind
	num  int64
	str  string
	list []Value
	keys []string
	vals []Value
}

// MapEntry is one key/value pair passed to Map.
type MapEntry struct {
	Key   string
	Value Value
}

// Entry builds a MapEntry. Purely a readability helper for Map call sites.
func Entry(key string, value Value) MapEntry {
	return MapEntry{Key: key, Value: value}
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Int returns an integer value.
func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// List returns a list value preserving the given element order.
func List(items ...Value) Value {
	elems := make([]Value, len(items))
	copy(elems, items)
	return Value{kind: KindList, list: elems}
}

// Map returns a map value. Entries are sorted by key at construction so the
// insertion order never influences equality or encoding. When the same key is
// given more than once the last entry wins.
func Map(entries ...MapEntry) Value {
	sorted := make([]MapEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	keys := make([]string, 0, len(sorted))
	vals := make([]Value, 0, len(sorted))
	for _, e := range sorted {
		if n := len(keys); n > 0 && keys[n-1] == e.Key {
			vals[n-1] = e.Value
			continue
		}
		keys = append(keys, e.Key)
		vals = append(vals, e.Value)
	}

	return Value{kind: KindMap, keys: keys, vals: vals}
}

// Kind returns the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Int64 returns the integer payload. Zero for non-int values.
func (v Value) Int64() int64 {
	return v.num
}

// Text returns the string payload. Empty for non-string values.
func (v Value) Text() string {
	return v.str
}

// Len returns the number of elements (list) or entries (map).
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.keys)
	default:
		return 0
	}
}

// Item returns the i-th list element.
func (v Value) Item(i int) Value {
	return v.list[i]
}

// Items returns a copy of the list elements.
func (v Value) Items() []Value {
	out := make([]Value, len(v.list))
	copy(out, v.list)
	return out
}

// Keys returns a copy of the map keys in ascending order.
func (v Value) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Get looks up a map entry by key.
func (v Value) Get(key string) (Value, bool) {
	i := sort.SearchStrings(v.keys, key)
	if i < len(v.keys) && v.keys[i] == key {
		return v.vals[i], true
	}
	return Value{}, false
}

// Equal reports structural equality of two values.
// Maps compare equal regardless of the order their entries were supplied in,
// because both sides are already key-sorted.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindInt:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i := range a.keys {
			if a.keys[i] != b.keys[i] || !Equal(a.vals[i], b.vals[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
