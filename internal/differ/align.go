// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/lingodiff/lingodiff/internal/document"
)

// TranslationItem pairs the source and target leaf of one path. A nil side is
// absent, which is distinct from a present empty string or a present null.
type TranslationItem struct {
	Key    string          `json:"key"`
	Source *document.Value `json:"source,omitempty"`
	Target *document.Value `json:"target,omitempty"`
}

// HasSource reports whether the source side is present.
func (t TranslationItem) HasSource() bool { return t.Source != nil }

// HasTarget reports whether the target side is present.
func (t TranslationItem) HasTarget() bool { return t.Target != nil }

// Untranslated reports whether the target is absent or an empty string.
func (t TranslationItem) Untranslated() bool {
	if t.Target == nil {
		return true
	}
	return t.Target.Kind() == document.String && t.Target.Text() == ""
}

// View is a translation view ordered by key.
type View []TranslationItem

// Align lines up the leaves of source and target by path. There is no rename
// detection.
func Align(source, target document.Value) View {
	return AlignFlat(Flatten(source), Flatten(target))
}

// AlignFlat is Align over pre-flattened maps.
func AlignFlat(a, b FlatMap) View {
	union := FlatMap{}
	for p, v := range a {
		union[p] = v
	}
	for p, v := range b {
		union[p] = v
	}

	view := make(View, 0, len(union))
	for _, p := range union.Paths() {
		item := TranslationItem{Key: p}
		if v, ok := a[p]; ok {
			item.Source = v.Ptr()
		}
		if v, ok := b[p]; ok {
			item.Target = v.Ptr()
		}
		view = append(view, item)
	}
	return view
}

// Filter returns the items for which keep returns true.
func (v View) Filter(keep func(TranslationItem) bool) View {
	out := View{}
	for _, item := range v {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Missing returns the items whose target is absent.
func (v View) Missing() View {
	return v.Filter(func(t TranslationItem) bool { return !t.HasTarget() })
}

// Keys returns the key of every item in order.
func (v View) Keys() []string {
	out := make([]string, len(v))
	for i, item := range v {
		out[i] = item.Key
	}
	return out
}
