// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strconv"

	"github.com/lingodiff/lingodiff/internal/document"
	"github.com/lingodiff/lingodiff/internal/log"
)

// RenamedKey is a leaf that moved from OldKey to NewKey with its value intact.
type RenamedKey struct {
	OldKey string         `json:"old_key"`
	NewKey string         `json:"new_key"`
	Value  document.Value `json:"value"`
}

// ModifiedKey is a path present on both sides whose leaf changed.
type ModifiedKey struct {
	Key      string         `json:"key"`
	OldValue document.Value `json:"old_value"`
	NewValue document.Value `json:"new_value"`
}

// DiffEntry is a path present on one side only.
type DiffEntry struct {
	Key   string         `json:"key"`
	Value document.Value `json:"value"`
}

// Result is a classified change set. Every path of either side lands in
// exactly one collection, or in none when it holds the same value on both
// sides.
type Result struct {
	Renamed  []RenamedKey  `json:"renamed"`
	Modified []ModifiedKey `json:"modified"`
	Added    []DiffEntry   `json:"added"`
	Deleted  []DiffEntry   `json:"deleted"`
}

// Empty reports whether the two sides were identical.
func (r Result) Empty() bool { return r.Len() == 0 }

// Len is the number of changes.
func (r Result) Len() int {
	return len(r.Renamed) + len(r.Modified) + len(r.Added) + len(r.Deleted)
}

// Diff flattens a and b and classifies every path.
func Diff(a, b document.Value) Result {
	return DiffFlat(Flatten(a), Flatten(b))
}

// DiffFlat classifies the paths of two flat maps.
//
// Paths on both sides with unequal values are modified. A path only in a is a
// rename when some path only in b holds an equal value, otherwise it is
// deleted. Leftover paths only in b are added. Renames are matched on value
// alone: the paths only in a are visited in ascending order and each takes the
// smallest unclaimed path only in b with an equal value.
func DiffFlat(a, b FlatMap) Result {
	res := Result{
		Renamed:  []RenamedKey{},
		Modified: []ModifiedKey{},
		Added:    []DiffEntry{},
		Deleted:  []DiffEntry{},
	}

	var onlyA []string
	for _, p := range a.Paths() {
		nv, ok := b[p]
		if !ok {
			onlyA = append(onlyA, p)
			continue
		}
		if ov := a[p]; !document.Equal(ov, nv) {
			res.Modified = append(res.Modified, ModifiedKey{Key: p, OldValue: ov, NewValue: nv})
		}
	}

	// Candidates are bucketed by a coarse value key; equal values always share
	// a bucket and each bucket stays in ascending path order.
	buckets := map[string][]string{}
	var onlyB []string
	for _, p := range b.Paths() {
		if _, ok := a[p]; ok {
			continue
		}
		onlyB = append(onlyB, p)
		k := bucketKey(b[p])
		buckets[k] = append(buckets[k], p)
	}

	claimed := make(map[string]bool, len(onlyB))
	for _, p := range onlyA {
		v := a[p]
		match, found := "", false
		for _, q := range buckets[bucketKey(v)] {
			if !claimed[q] && document.Equal(v, b[q]) {
				match, found = q, true
				break
			}
		}
		if !found {
			res.Deleted = append(res.Deleted, DiffEntry{Key: p, Value: v})
			continue
		}
		claimed[match] = true
		log.Tracef("renamed %q -> %q", p, match)
		res.Renamed = append(res.Renamed, RenamedKey{OldKey: p, NewKey: match, Value: v})
	}

	for _, q := range onlyB {
		if !claimed[q] {
			res.Added = append(res.Added, DiffEntry{Key: q, Value: b[q]})
		}
	}

	log.Debugf("diff: %d renamed, %d modified, %d added, %d deleted",
		len(res.Renamed), len(res.Modified), len(res.Added), len(res.Deleted))

	return res
}

func bucketKey(v document.Value) string {
	switch v.Kind() {
	case document.Bool:
		return "b" + strconv.FormatBool(v.Bool())
	case document.Number:
		return "n" + v.NumberKey()
	case document.String:
		return "s" + v.Text()
	}
	return v.Kind().String()
}
