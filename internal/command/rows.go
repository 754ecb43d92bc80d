// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"path/filepath"
	"strings"

	"github.com/lingodiff/lingodiff/internal/differ"
	"github.com/lingodiff/lingodiff/internal/document"
	"github.com/lingodiff/lingodiff/internal/tree"
)

// Change kinds, in the order diff rows are listed.
const (
	changeRenamed  = "renamed"
	changeModified = "modified"
	changeAdded    = "added"
	changeDeleted  = "deleted"
)

// Alignment statuses.
const (
	statusOK      = "ok"
	statusMissing = "missing"
	statusExtra   = "extra"
	statusEmpty   = "empty"
)

// DiffRow is one line of diff output. A renamed key carries its old path in
// From and its unchanged value in New.
type DiffRow struct {
	Change string          `json:"change"`
	Key    string          `json:"key"`
	From   string          `json:"from,omitempty"`
	Old    *document.Value `json:"old,omitempty"`
	New    *document.Value `json:"new,omitempty"`
}

// AlignRow is one line of align output.
type AlignRow struct {
	Key    string          `json:"key"`
	Source *document.Value `json:"source,omitempty"`
	Target *document.Value `json:"target,omitempty"`
	Status string          `json:"status"`
}

// FlatRow is one leaf of a flattened document.
type FlatRow struct {
	Key   string         `json:"key"`
	Value document.Value `json:"value"`
	Type  string         `json:"type"`
}

// SyncRow is one key that keeps a target out of step with its source.
type SyncRow struct {
	Key   string `json:"key"`
	Issue string `json:"issue"`
}

// TreeRow is one entry of a directory listing.
type TreeRow struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
	Depth int    `json:"depth"`
}

// diffRows lists renames, then modifications, additions and deletions, each
// in the order the differ produced them.
func diffRows(r differ.Result) []DiffRow {
	rows := make([]DiffRow, 0, r.Len())
	for _, e := range r.Renamed {
		rows = append(rows, DiffRow{Change: changeRenamed, Key: e.NewKey, From: e.OldKey, New: e.Value.Ptr()})
	}
	for _, e := range r.Modified {
		rows = append(rows, DiffRow{Change: changeModified, Key: e.Key, Old: e.OldValue.Ptr(), New: e.NewValue.Ptr()})
	}
	for _, e := range r.Added {
		rows = append(rows, DiffRow{Change: changeAdded, Key: e.Key, New: e.Value.Ptr()})
	}
	for _, e := range r.Deleted {
		rows = append(rows, DiffRow{Change: changeDeleted, Key: e.Key, Old: e.Value.Ptr()})
	}
	return rows
}

func alignRows(view differ.View) []AlignRow {
	rows := make([]AlignRow, 0, len(view))
	for _, item := range view {
		rows = append(rows, AlignRow{
			Key:    item.Key,
			Source: item.Source,
			Target: item.Target,
			Status: alignStatus(item),
		})
	}
	return rows
}

func alignStatus(item differ.TranslationItem) string {
	switch {
	case !item.HasSource():
		return statusExtra
	case !item.HasTarget():
		return statusMissing
	case item.Untranslated():
		return statusEmpty
	}
	return statusOK
}

func flatRows(flat differ.FlatMap) []FlatRow {
	rows := make([]FlatRow, 0, len(flat))
	for _, p := range flat.Paths() {
		v := flat[p]
		rows = append(rows, FlatRow{Key: p, Value: v, Type: v.Kind().String()})
	}
	return rows
}

func syncRows(report differ.SyncReport) []SyncRow {
	rows := make([]SyncRow, 0, len(report.Missing)+len(report.Extra))
	for _, k := range report.Missing {
		rows = append(rows, SyncRow{Key: k, Issue: statusMissing})
	}
	for _, k := range report.Extra {
		rows = append(rows, SyncRow{Key: k, Issue: statusExtra})
	}
	return rows
}

// treeRows walks nodes depth first. Paths are relative to root and a
// directory's size is the total of the files under it.
func treeRows(root string, nodes []tree.FileNode) []TreeRow {
	var rows []TreeRow
	tree.Walk(nodes, func(n tree.FileNode, depth int) {
		rel, err := filepath.Rel(root, n.Path)
		if err != nil {
			rel = n.Path
		}
		size := n.Size
		if n.IsDir {
			size = dirSize(n)
		}
		rows = append(rows, TreeRow{
			Name:  n.Name,
			Path:  filepath.ToSlash(rel),
			IsDir: n.IsDir,
			Size:  size,
			Depth: depth,
		})
	})
	return rows
}

func dirSize(n tree.FileNode) int64 {
	var total int64
	tree.Walk(n.Children, func(c tree.FileNode, _ int) {
		if !c.IsDir {
			total += c.Size
		}
	})
	return total
}

// indentNames nests tree names under their parents for text output.
func indentNames(rows []map[string]interface{}) error {
	for _, row := range rows {
		depth, _ := row["depth"].(float64)
		name, _ := row["name"].(string)
		if isDir, _ := row["is_dir"].(bool); isDir {
			name += "/"
		}
		row["name"] = strings.Repeat("  ", int(depth)) + name
	}
	return nil
}

// arrowRenames shows a renamed key as "old → new" for text output.
func arrowRenames(rows []map[string]interface{}) error {
	for _, row := range rows {
		from, ok := row["from"].(string)
		if !ok || from == "" {
			continue
		}
		if key, ok := row["key"].(string); ok {
			row["key"] = from + " → " + key
		}
	}
	return nil
}
