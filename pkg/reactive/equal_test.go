package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	type cyclic struct {
		Next *cyclic
	}
	loop := &cyclic{}
	loop.Next = loop

	var nilMap map[string]int
	var nilSlice []int

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil vs typed nil", nil, nilMap, true},
		{"typed nils", nilMap, nilSlice, true},
		{"nil vs zero", nil, 0, false},
		{"same int", 1, 1, true},
		{"int vs float", 1, 1.0, true},
		{"negative vs uint", -1, uint(1), false},
		{"different ints", 1, 2, false},
		{"strings", "a", "a", true},
		{"string vs number", "1", 1, false},
		{"bools", true, true, true},
		{"bool vs string", true, "true", false},
		{"slices equal", []int{1, 2}, []int{1, 2}, true},
		{"slices differ", []int{1, 2}, []int{2, 1}, false},
		{"map order", map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1}, true},
		{"slice vs array", []int{1}, [1]int{1}, true},
		{"primitive vs composite", 1, []int{1}, false},
		{"cyclic", loop, loop, false},
		{"func", func() {}, func() {}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}
