// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"sort"

	"github.com/lingodiff/lingodiff/internal/document"
)

// FlatMap maps a dotted path to the leaf stored there.
type FlatMap map[string]document.Value

// Paths returns the keys of f in ascending order.
func (f FlatMap) Paths() []string {
	paths := make([]string, 0, len(f))
	for p := range f {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Flatten walks doc and returns every leaf keyed by its dotted path. Only
// mappings are descended into; arrays are leaves. Empty mappings produce no
// entry. A root that is not a mapping is stored under the empty path.
//
// Keys containing "." are joined verbatim, so distinct documents can collide.
// When they do, the leaf visited last wins.
func Flatten(doc document.Value) FlatMap {
	out := FlatMap{}
	FlattenInto(out, "", doc)
	return out
}

// FlattenInto adds the leaves of doc to out with prefix prepended to every
// path.
func FlattenInto(out FlatMap, prefix string, doc document.Value) {
	type frame struct {
		prefix string
		value  document.Value
	}

	stack := []frame{{prefix, doc}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := f.value.Mapping()
		if m == nil {
			out[f.prefix] = f.value
			continue
		}

		keys := m.Keys()
		// Reverse push keeps document order when popping.
		for i := len(keys) - 1; i >= 0; i-- {
			child, _ := m.Get(keys[i])
			path := keys[i]
			if f.prefix != "" {
				path = f.prefix + "." + keys[i]
			}
			stack = append(stack, frame{path, child})
		}
	}
}
