// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import "strings"

// chopPrefix shortens the dotted string values under each of keys by the
// leading segments every row shares, replacing them with "..". At least two
// segments must be shared and at least two must remain, otherwise the column
// is left alone. Rows without a string under a key do not take part.
func chopPrefix(rows []map[string]interface{}, keys ...string) {
	for _, key := range keys {
		chopColumn(rows, key)
	}
}

func chopColumn(rows []map[string]interface{}, key string) {
	type cell struct {
		row      int
		segments []string
	}

	var cells []cell
	for i, row := range rows {
		if s, ok := row[key].(string); ok {
			cells = append(cells, cell{row: i, segments: strings.Split(s, ".")})
		}
	}
	if len(cells) == 0 {
		return
	}

	shortest := len(cells[0].segments)
	for _, c := range cells[1:] {
		shortest = min(shortest, len(c.segments))
	}

	common := 0
	for ; common < shortest; common++ {
		seg := cells[0].segments[common]
		same := true
		for _, c := range cells[1:] {
			if c.segments[common] != seg {
				same = false
				break
			}
		}
		if !same {
			break
		}
	}

	common = min(common, shortest-2)
	if common < 2 {
		return
	}

	for _, c := range cells {
		rows[c.row][key] = ".." + strings.Join(c.segments[common:], ".")
	}
}
