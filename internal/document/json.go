// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseJSON parses data as a JSON document, keeping object key order. When a
// key repeats, the last value wins at the first key's position.
func ParseJSON(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		// gjson does not say where the problem is, encoding/json does.
		var probe interface{}
		if err := json.Unmarshal(data, &probe); err != nil {
			return Value{}, err
		}
		return Value{}, errors.New("invalid JSON document")
	}

	return fromResult(gjson.ParseBytes(data))
}

func fromResult(r gjson.Result) (Value, error) {
	switch r.Type {
	case gjson.Null:
		return NullValue(), nil
	case gjson.False:
		return BoolValue(false), nil
	case gjson.True:
		return BoolValue(true), nil
	case gjson.Number:
		v, err := NumberLiteral(r.Raw)
		if err != nil {
			return Value{}, fmt.Errorf("number %s: %w", r.Raw, err)
		}
		return v, nil
	case gjson.String:
		return StringValue(r.Str), nil
	}

	var err error
	if r.IsArray() {
		items := []Value{}
		r.ForEach(func(_, elem gjson.Result) bool {
			var v Value
			v, err = fromResult(elem)
			items = append(items, v)
			return err == nil
		})
		if err != nil {
			return Value{}, err
		}
		return ArrayValue(items...), nil
	}

	m := NewMapping()
	r.ForEach(func(key, elem gjson.Result) bool {
		var v Value
		v, err = fromResult(elem)
		m.Set(key.String(), v)
		return err == nil
	})
	if err != nil {
		return Value{}, err
	}
	return ObjectValue(m), nil
}
