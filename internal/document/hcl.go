// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// ParseHCL parses data as native HCL syntax. Attributes become leaves and
// blocks become nested Mappings keyed by block type and then each label, all in
// source order. Repeated blocks with the same type and labels merge. Only
// literal expressions are allowed; references and function calls fail.
func ParseHCL(name string, data []byte) (Value, error) {
	file, diags := hclsyntax.ParseConfig(data, name, hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return Value{}, errors.New(diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return Value{}, errors.New("unexpected hcl body")
	}

	root := NewMapping()
	if err := fillBody(root, body); err != nil {
		return Value{}, err
	}
	return ObjectValue(root), nil
}

func fillBody(m *Mapping, body *hclsyntax.Body) error {
	type item struct {
		offset int
		attr   *hclsyntax.Attribute
		block  *hclsyntax.Block
	}

	items := make([]item, 0, len(body.Attributes)+len(body.Blocks))
	for _, a := range body.Attributes {
		items = append(items, item{offset: a.SrcRange.Start.Byte, attr: a})
	}
	for _, b := range body.Blocks {
		items = append(items, item{offset: b.TypeRange.Start.Byte, block: b})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].offset < items[j].offset })

	for _, it := range items {
		if it.attr != nil {
			v, err := fromExpr(it.attr.Expr)
			if err != nil {
				return fmt.Errorf("%s: %w", it.attr.SrcRange, err)
			}
			m.Set(it.attr.Name, v)
			continue
		}

		target := m
		for _, seg := range append([]string{it.block.Type}, it.block.Labels...) {
			child, ok := target.Get(seg)
			if !ok || !child.IsObject() {
				child = Empty()
				target.Set(seg, child)
			}
			target = child.Mapping()
		}
		if err := fillBody(target, it.block.Body); err != nil {
			return err
		}
	}

	return nil
}

// fromExpr keeps the source order of object constructors; everything else goes
// through cty evaluation.
func fromExpr(expr hclsyntax.Expression) (Value, error) {
	switch e := expr.(type) {
	case *hclsyntax.ObjectConsExpr:
		m := NewMapping()
		for _, item := range e.Items {
			kv, diags := item.KeyExpr.Value(nil)
			if diags.HasErrors() {
				return Value{}, errors.New(diags.Error())
			}
			if !kv.IsKnown() || kv.IsNull() || kv.Type() != cty.String {
				return Value{}, fmt.Errorf("%s: object key must be a string", item.KeyExpr.Range())
			}
			v, err := fromExpr(item.ValueExpr)
			if err != nil {
				return Value{}, err
			}
			m.Set(kv.AsString(), v)
		}
		return ObjectValue(m), nil
	case *hclsyntax.TupleConsExpr:
		items := make([]Value, 0, len(e.Exprs))
		for _, x := range e.Exprs {
			v, err := fromExpr(x)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return ArrayValue(items...), nil
	}

	cv, diags := expr.Value(nil)
	if diags.HasErrors() {
		return Value{}, errors.New(diags.Error())
	}
	return fromCty(cv)
}

func fromCty(v cty.Value) (Value, error) {
	if !v.IsKnown() {
		return Value{}, errors.New("value is not known")
	}
	if v.IsNull() {
		return NullValue(), nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return StringValue(v.AsString()), nil
	case ty == cty.Bool:
		return BoolValue(v.True()), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			return NumberLiteral(bf.Text('f', -1))
		}
		f, _ := bf.Float64()
		return NumberValue(f), nil
	case ty.IsObjectType() || ty.IsMapType():
		m := NewMapping()
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			cv, err := fromCty(ev)
			if err != nil {
				return Value{}, err
			}
			m.Set(k.AsString(), cv)
		}
		return ObjectValue(m), nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		items := []Value{}
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			cv, err := fromCty(ev)
			if err != nil {
				return Value{}, err
			}
			items = append(items, cv)
		}
		return ArrayValue(items...), nil
	}

	return Value{}, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}
