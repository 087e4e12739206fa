// Package solid defines the composite keys and volume maps extracted from
// geometry reports, and the normalizer that builds them.
package solid

import (
	"fmt"
	"sort"
)

// Key identifies one measured solid within a report.
type Key struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// String formats the key as "(Name, Index)".
func (k Key) String() string {
	return fmt.Sprintf("(%s, %d)", k.Name, k.Index)
}

// Less orders keys by name, then by index.
func (k Key) Less(other Key) bool {
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	return k.Index < other.Index
}

// VolumeMap maps a solid key to its volume in mm^3.
type VolumeMap map[Key]float64

// SortedKeys returns the keys of m in deterministic order.
func SortedKeys(m VolumeMap) []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// UnionKeys returns the sorted union of the keys of a and b.
func UnionKeys(a, b VolumeMap) []Key {
	keys := make([]Key, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
}
