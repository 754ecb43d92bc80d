// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies which variant of the tagged union a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "unknown"
}

// Value is a node of a hierarchical document. Objects are the only kind the
// flattener descends into; every other kind, arrays included, is a leaf.
//
// The zero Value is a null leaf.
type Value struct {
	kind Kind
	b    bool
	num  float64
	// integer marks a number written without a fraction or exponent.
	integer bool
	// text holds the string value, or the literal of a number so that it
	// renders the way it was written.
	text string
	arr  []Value
	obj  *Mapping
}

// NullValue returns a null leaf.
func NullValue() Value { return Value{} }

// BoolValue returns a boolean leaf.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// NumberValue returns a number leaf whose literal is derived from f.
func NumberValue(f float64) Value {
	return Value{kind: Number, num: f, text: formatNumber(f)}
}

// NumberLiteral returns a number leaf that keeps lit as its literal. It fails
// when lit is not a finite number.
func NumberLiteral(lit string) (Value, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: Number, num: f, text: lit, integer: isIntegerLiteral(lit)}, nil
}

// integerValue returns an integer number leaf with literal lit.
func integerValue(f float64, lit string) Value {
	return Value{kind: Number, num: f, text: lit, integer: true}
}

func isIntegerLiteral(lit string) bool {
	digits := strings.TrimLeft(lit, "+-")
	if digits == "" || len(lit)-len(digits) > 1 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsInteger reports whether v is a number written as an integer.
func (v Value) IsInteger() bool { return v.kind == Number && v.integer }

// NumberKey returns the canonical form numbers are compared by. Integers keep
// every digit and never match a float, so 1 and 1.0 differ the same way they
// do in a typed JSON reader.
func (v Value) NumberKey() string {
	if v.integer {
		if i, ok := new(big.Int).SetString(v.text, 10); ok {
			return "i" + i.String()
		}
		return "i" + v.text
	}
	if v.num == 0 {
		return "f0"
	}
	return "f" + strconv.FormatFloat(v.num, 'g', -1, 64)
}

// StringValue returns a string leaf.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// ArrayValue returns an array leaf holding items.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, arr: items}
}

// ObjectValue wraps m. A nil m is replaced by an empty Mapping.
func ObjectValue(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}
	return Value{kind: Object, obj: m}
}

// Empty returns an empty object, the document used when a resource does not
// exist yet.
func Empty() Value { return ObjectValue(NewMapping()) }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsObject() bool  { return v.kind == Object }
func (v Value) IsNull() bool    { return v.kind == Null }
func (v Value) Bool() bool      { return v.b }
func (v Value) Float() float64  { return v.num }
func (v Value) Items() []Value  { return v.arr }
func (v Value) Mapping() *Mapping {
	if v.kind != Object {
		return nil
	}
	return v.obj
}

// Text returns the string of a string leaf or the literal of a number leaf.
// Other kinds return "".
func (v Value) Text() string {
	if v.kind == String || v.kind == Number {
		return v.text
	}
	return ""
}

// Ptr returns a pointer to a copy of v. It is handy when building optional
// fields.
func (v Value) Ptr() *Value { return &v }

// Interface converts v into the plain Go shapes produced by encoding/json:
// nil, bool, float64, string, []interface{} and map[string]interface{}.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		return v.num
	case String:
		return v.text
	case Array:
		out := make([]interface{}, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case Object:
		out := make(map[string]interface{}, v.obj.Len())
		for _, k := range v.obj.keys {
			out[k] = v.obj.vals[k].Interface()
		}
		return out
	}
	return nil
}

// String renders v as compact JSON. Invalid states cannot occur, so encoding
// never fails.
func (v Value) String() string {
	b, _ := Encode(v, "")
	return string(b)
}

// formatNumber mirrors encoding/json's float formatting so numbers built from
// float64 render like JSON numbers.
func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, 64)
}
