// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses data as a YAML document using the node API so mapping order
// survives. An empty document is an empty Mapping. Timestamps and other
// non-JSON scalars are kept as strings.
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Empty(), nil
	}

	return fromNode(doc.Content[0])
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Empty(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return ArrayValue(items...), nil
	case yaml.MappingNode:
		return fromMappingNode(n)
	case yaml.ScalarNode:
		return fromScalar(n)
	}

	return Value{}, fmt.Errorf("line %d: unsupported yaml node", n.Line)
}

func fromMappingNode(n *yaml.Node) (Value, error) {
	m := NewMapping()
	var merges []*yaml.Node

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Tag == "!!merge" {
			merges = append(merges, val)
			continue
		}
		v, err := fromNode(val)
		if err != nil {
			return Value{}, err
		}
		m.Set(key.Value, v)
	}

	// Merged keys never override explicit ones.
	for _, src := range merges {
		targets := []*yaml.Node{src}
		if src.Kind == yaml.SequenceNode {
			targets = src.Content
		}
		for _, t := range targets {
			mv, err := fromNode(t)
			if err != nil {
				return Value{}, err
			}
			mm := mv.Mapping()
			if mm == nil {
				return Value{}, fmt.Errorf("line %d: merge value is not a mapping", t.Line)
			}
			for _, k := range mm.Keys() {
				if _, ok := m.Get(k); !ok {
					child, _ := mm.Get(k)
					m.Set(k, child)
				}
			}
		}
	}

	return ObjectValue(m), nil
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return NullValue(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return integerValue(float64(i), strconv.FormatInt(i, 10)), nil
		}
		if isIntegerLiteral(n.Value) {
			return NumberLiteral(n.Value)
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return StringValue(n.Value), nil
		}
		return NumberValue(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return StringValue(n.Value), nil
		}
		return NumberValue(f), nil
	}

	return StringValue(n.Value), nil
}
