package tokens

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// entry is one named row of a constant table.
type entry[V any] struct {
	key   string
	value V
}

// table is an ordered, read-only catalog. Declaration order is the order
// every resolver and exporter walks it in.
type table[V any] []entry[V]

func (t table[V]) lookup(key string) (V, bool) {
	for _, e := range t {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

func (t table[V]) keys() []string {
	keys := make([]string, 0, len(t))
	for _, e := range t {
		keys = append(keys, e.key)
	}
	return keys
}

// ordered copies the table into a fresh ordered map, converting each value
// with conv so callers never share mutable state with the catalog.
func ordered[V, O any](t table[V], conv func(V) O) *orderedmap.OrderedMap[string, O] {
	m := orderedmap.New[string, O](orderedmap.WithCapacity[string, O](len(t)))
	for _, e := range t {
		m.Set(e.key, conv(e.value))
	}
	return m
}

func same[V any](v V) V { return v }
