// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

// Equal reports whether a and b are structurally equal. Integers compare
// exactly and never equal a float (1 and 1.0 differ), objects compare
// regardless of key order and arrays compare element by element.
//
// The walk uses an explicit stack so deeply nested leaves cannot exhaust the
// goroutine stack.
func Equal(a, b Value) bool {
	type pair struct{ a, b Value }
	stack := []pair{{a, b}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a.kind != p.b.kind {
			return false
		}

		switch p.a.kind {
		case Null:
		case Bool:
			if p.a.b != p.b.b {
				return false
			}
		case Number:
			if p.a.NumberKey() != p.b.NumberKey() {
				return false
			}
		case String:
			if p.a.text != p.b.text {
				return false
			}
		case Array:
			if len(p.a.arr) != len(p.b.arr) {
				return false
			}
			for i := range p.a.arr {
				stack = append(stack, pair{p.a.arr[i], p.b.arr[i]})
			}
		case Object:
			if p.a.obj.Len() != p.b.obj.Len() {
				return false
			}
			for _, k := range p.a.obj.keys {
				other, ok := p.b.obj.vals[k]
				if !ok {
					return false
				}
				stack = append(stack, pair{p.a.obj.vals[k], other})
			}
		}
	}

	return true
}
