// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v2"
)

const hexDigits = "0123456789abcdef"

// Encode renders v as JSON, keeping object keys in document order. HTML
// characters are not escaped. A non-empty indent pretty-prints each level with
// that string.
func Encode(v Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	writeValue(&buf, v)
	if indent == "" {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return Encode(v, "")
}

// MarshalYAML implements yaml.v2's Marshaler so rendered rows keep object key
// order.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.yamlShape(), nil
}

func (v Value) yamlShape() interface{} {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		if i, err := strconv.ParseInt(v.text, 10, 64); err == nil {
			return i
		}
		return v.num
	case String:
		return v.text
	case Array:
		out := make([]interface{}, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.yamlShape()
		}
		return out
	case Object:
		out := make(yaml.MapSlice, 0, v.obj.Len())
		for _, k := range v.obj.keys {
			out = append(out, yaml.MapItem{Key: k, Value: v.obj.vals[k].yamlShape()})
		}
		return out
	}
	return nil
}

func writeValue(buf *bytes.Buffer, v Value) {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(v.b))
	case Number:
		if v.text != "" {
			buf.WriteString(v.text)
		} else {
			buf.WriteString(formatNumber(v.num))
		}
	case String:
		writeString(buf, v.text)
	case Array:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeValue(buf, item)
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, k := range v.obj.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			writeValue(buf, v.obj.vals[k])
		}
		buf.WriteByte('}')
	}
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				buf.WriteByte('\\')
				buf.WriteByte(c)
			case c == '\n':
				buf.WriteString(`\n`)
			case c == '\r':
				buf.WriteString(`\r`)
			case c == '\t':
				buf.WriteString(`\t`)
			case c < 0x20:
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[c>>4])
				buf.WriteByte(hexDigits[c&0xF])
			default:
				buf.WriteByte(c)
			}
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			buf.WriteString(`\ufffd`)
		case r == '\u2028' || r == '\u2029':
			buf.WriteString(`\u202`)
			buf.WriteByte(hexDigits[r&0xF])
		default:
			buf.WriteString(s[i : i+size])
		}
		i += size
	}
	buf.WriteByte('"')
}

// FromInterface converts the plain Go shapes produced by decoders into a
// Value. Map keys are sorted because Go maps carry no order. Non-finite floats
// and unknown types become strings.
func FromInterface(x interface{}) Value {
	switch t := x.(type) {
	case nil:
		return NullValue()
	case Value:
		return t
	case bool:
		return BoolValue(t)
	case int:
		return integerValue(float64(t), strconv.Itoa(t))
	case int64:
		return integerValue(float64(t), strconv.FormatInt(t, 10))
	case uint64:
		return integerValue(float64(t), strconv.FormatUint(t, 10))
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return StringValue(formatNumber(t))
		}
		return NumberValue(t)
	case json.Number:
		if v, err := NumberLiteral(string(t)); err == nil {
			return v
		}
		return StringValue(string(t))
	case string:
		return StringValue(t)
	case time.Time:
		return StringValue(t.Format(time.RFC3339Nano))
	case []interface{}:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromInterface(item)
		}
		return ArrayValue(items...)
	case []map[string]interface{}:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromInterface(item)
		}
		return ArrayValue(items...)
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			m.Set(k, FromInterface(t[k]))
		}
		return ObjectValue(m)
	case fmt.Stringer:
		return StringValue(t.String())
	}
	return StringValue(fmt.Sprint(x))
}
