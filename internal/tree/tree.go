// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lingodiff/lingodiff/internal/log"
)

// ErrNoDirectory is returned when the root to scan does not exist.
var ErrNoDirectory = errors.New("directory does not exist")

// FileNode is one entry of a directory listing. Children is nil for files and
// for directories that could not be read.
type FileNode struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	IsDir    bool       `json:"is_dir"`
	Size     int64      `json:"size"`
	Children []FileNode `json:"children"`
}

// Scan lists root recursively. Entries whose names start with "." are skipped.
// Each level lists directories first, then files, each by name. A
// subdirectory that cannot be read keeps nil children and does not fail the
// scan.
func Scan(root string) ([]FileNode, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoDirectory
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", root)
	}

	return scanDir(root)
}

func scanDir(dir string) ([]FileNode, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	nodes := make([]FileNode, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}

		node := FileNode{
			Name:  e.Name(),
			Path:  filepath.Join(dir, e.Name()),
			IsDir: e.IsDir(),
		}
		if info, err := e.Info(); err == nil && !node.IsDir {
			node.Size = info.Size()
		}
		if node.IsDir {
			children, err := scanDir(node.Path)
			if err != nil {
				log.Debugf("tree: skipping %s: %v", node.Path, err)
			}
			node.Children = children
		}
		nodes = append(nodes, node)
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsDir != nodes[j].IsDir {
			return nodes[i].IsDir
		}
		return nodes[i].Name < nodes[j].Name
	})

	return nodes, nil
}

// Files returns the paths of every file under nodes in listing order.
func Files(nodes []FileNode) []string {
	var out []string
	stack := make([]FileNode, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, nodes[i])
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !n.IsDir {
			out = append(out, n.Path)
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}

	return out
}

// Walk calls fn for every node in listing order with its depth, starting at
// zero.
func Walk(nodes []FileNode, fn func(n FileNode, depth int)) {
	type frame struct {
		node  FileNode
		depth int
	}

	stack := make([]frame, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, frame{nodes[i], 0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(f.node, f.depth)
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
}
