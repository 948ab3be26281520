package tokens

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func orderedKeys[V any](m *orderedmap.OrderedMap[string, V]) []string {
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
