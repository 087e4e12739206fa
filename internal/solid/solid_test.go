package solid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_String(t *testing.T) {
	assert.Equal(t, "(Body, 0)", Key{Name: "Body", Index: 0}.String())
	assert.Equal(t, "(Pad001, 12)", Key{Name: "Pad001", Index: 12}.String())
}

func TestKey_Less(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Key
		want bool
	}{
		{"name first", Key{"A", 9}, Key{"B", 0}, true},
		{"name first reversed", Key{"B", 0}, Key{"A", 9}, false},
		{"index breaks tie", Key{"A", 1}, Key{"A", 2}, true},
		{"equal keys", Key{"A", 1}, Key{"A", 1}, false},
		{"byte order", Key{"Z", 0}, Key{"a", 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := VolumeMap{
		{"Pad", 1}:  1,
		{"Body", 2}: 2,
		{"Pad", 0}:  3,
		{"Body", 0}: 4,
	}

	assert.Equal(t, []Key{{"Body", 0}, {"Body", 2}, {"Pad", 0}, {"Pad", 1}}, SortedKeys(m))
	assert.Empty(t, SortedKeys(VolumeMap{}))
}

func TestUnionKeys(t *testing.T) {
	a := VolumeMap{{"A", 0}: 1, {"C", 0}: 1}
	b := VolumeMap{{"B", 1}: 1, {"A", 0}: 2}

	assert.Equal(t, []Key{{"A", 0}, {"B", 1}, {"C", 0}}, UnionKeys(a, b))
	assert.Equal(t, UnionKeys(a, b), UnionKeys(b, a))
	assert.Empty(t, UnionKeys(nil, nil))
}
