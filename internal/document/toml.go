// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"github.com/BurntSushi/toml"
)

// ParseTOML parses data as a TOML document. Keys follow the order reported by
// the decoder's metadata; anything the metadata does not list (inline tables
// on older decoders) is appended in sorted order.
func ParseTOML(data []byte) (Value, error) {
	raw := map[string]interface{}{}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Value{}, err
	}

	root := NewMapping()
	for _, key := range md.Keys() {
		x, ok := lookupRaw(raw, key)
		if !ok {
			// Key lives inside an array of tables, which stays opaque.
			continue
		}
		parent := ensurePath(root, key[:len(key)-1])
		if parent == nil {
			continue
		}
		name := key[len(key)-1]
		if _, isTable := x.(map[string]interface{}); isTable {
			if existing, ok := parent.Get(name); !ok || !existing.IsObject() {
				parent.Set(name, Empty())
			}
			continue
		}
		parent.Set(name, FromInterface(x))
	}

	reconcile(root, raw)
	return ObjectValue(root), nil
}

func lookupRaw(raw map[string]interface{}, key toml.Key) (interface{}, bool) {
	var cur interface{} = raw
	for _, part := range key {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// ensurePath walks path from m, returning the Mapping at its end. It returns
// nil when a segment is not a Mapping.
func ensurePath(m *Mapping, path []string) *Mapping {
	for _, part := range path {
		child, ok := m.Get(part)
		if !ok {
			child = Empty()
			m.Set(part, child)
		}
		if m = child.Mapping(); m == nil {
			return nil
		}
	}
	return m
}

func reconcile(m *Mapping, raw map[string]interface{}) {
	filler := FromInterface(raw).Mapping()
	for _, k := range filler.Keys() {
		have, ok := m.Get(k)
		if !ok {
			v, _ := filler.Get(k)
			m.Set(k, v)
			continue
		}
		if sub, isTable := raw[k].(map[string]interface{}); isTable && have.IsObject() {
			reconcile(have.Mapping(), sub)
		}
	}
}
