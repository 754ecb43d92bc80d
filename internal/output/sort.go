// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// SortDataset stably sorts rows by the comma-separated output keys in spec.
// A leading - sorts a key descending and a leading ! makes a string
// comparison case sensitive. Numbers compare numerically when both sides are
// numbers, everything else compares as text.
func SortDataset(rows []map[string]interface{}, spec string) {
	if strings.TrimSpace(spec) == "" {
		return
	}

	type sortField struct {
		key           string
		ascending     bool
		caseSensitive bool
	}

	var fields []sortField
	for _, f := range strings.Split(spec, ",") {
		f = strings.TrimSpace(f)
		sf := sortField{ascending: true}
		if strings.HasPrefix(f, "-") {
			f = f[1:]
			sf.ascending = false
		}
		if strings.HasPrefix(f, "!") {
			f = f[1:]
			sf.caseSensitive = true
		}
		if f == "" {
			continue
		}
		sf.key = f
		fields = append(fields, sf)
	}

	sort.SliceStable(rows, func(one, two int) bool {
		for _, field := range fields {
			oneValue := rows[one][field.key]
			twoValue := rows[two][field.key]

			oneNum, oneOk := oneValue.(float64)
			twoNum, twoOk := twoValue.(float64)
			if oneOk && twoOk {
				if oneNum != twoNum {
					return (oneNum < twoNum) == field.ascending
				}
				continue
			}

			oneStr := InterfaceToString(oneValue)
			twoStr := InterfaceToString(twoValue)
			if !field.caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				return (oneStr < twoStr) == field.ascending
			}
		}
		return false
	})
}
