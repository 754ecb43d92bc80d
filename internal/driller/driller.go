// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|#)\])?$`)

// Driller navigates a JSON document along a dotted path. A segment may carry
// an index, key[2], selecting one element of an array, or key[#], selecting
// its length. Without an index an array is returned whole. A path that does
// not resolve returns a Result whose Exists is false.
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)
	if path == "" {
		return current
	}

	for _, p := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(p)
		if matches == nil {
			return gjson.Result{}
		}

		val := current.Get(matches[1])
		if !val.Exists() {
			return gjson.Result{}
		}

		switch idx := matches[3]; {
		case idx == "":
		case !val.IsArray():
			return gjson.Result{}
		case idx == "#":
			val = val.Get("#")
		default:
			i, err := strconv.Atoi(idx)
			arr := val.Array()
			if err != nil || i >= len(arr) {
				return gjson.Result{}
			}
			val = arr[i]
		}

		current = val
	}

	return current
}
