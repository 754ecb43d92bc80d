// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"

	"github.com/lingodiff/lingodiff/internal/document"
)

// Pair is one path and the leaf to store there.
type Pair struct {
	Key   string
	Value document.Value
}

// Unflatten rebuilds a nested document from pairs, splitting each key on ".".
// Missing intermediate mappings are created. When a path runs through a leaf
// set earlier, that leaf is replaced by a mapping. A pair with the empty key
// replaces the whole document.
func Unflatten(pairs []Pair) document.Value {
	root := document.Empty()

	for _, p := range pairs {
		if p.Key == "" {
			root = p.Value
			continue
		}
		if !root.IsObject() {
			root = document.Empty()
		}

		parts := strings.Split(p.Key, ".")
		m := root.Mapping()
		for _, part := range parts[:len(parts)-1] {
			child, ok := m.Get(part)
			if !ok || !child.IsObject() {
				child = document.Empty()
				m.Set(part, child)
			}
			m = child.Mapping()
		}
		m.Set(parts[len(parts)-1], p.Value)
	}

	return root
}

// TargetDocument rebuilds the target side of view, skipping absent targets.
func TargetDocument(view View) document.Value {
	pairs := make([]Pair, 0, len(view))
	for _, item := range view {
		if item.HasTarget() {
			pairs = append(pairs, Pair{Key: item.Key, Value: *item.Target})
		}
	}
	return Unflatten(pairs)
}

// FlatPairs returns the leaves of f as pairs in ascending path order.
func FlatPairs(f FlatMap) []Pair {
	pairs := make([]Pair, 0, len(f))
	for _, p := range f.Paths() {
		pairs = append(pairs, Pair{Key: p, Value: f[p]})
	}
	return pairs
}
