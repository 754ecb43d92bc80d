// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/lingodiff/lingodiff/internal/log"
)

// ErrDeltaNeedsObjects is returned by Delta when either document's root is
// not an object.
var ErrDeltaNeedsObjects = errors.New("--delta requires object documents")

// DeltaOptions tunes the ASCII delta.
type DeltaOptions struct {
	// Ignore lists top level keys dropped from the left document before
	// formatting.
	Ignore []string
	// Color enables ANSI coloring of added and removed lines.
	Color bool
	// ShowArrayIndex prints element indexes inside arrays.
	ShowArrayIndex bool
}

// Delta compares two JSON object encodings structurally and returns the ASCII
// rendering of the delta and whether anything changed. Unchanged input yields
// an empty string.
func Delta(a, b []byte, opts DeltaOptions) (string, bool, error) {
	log.Debugf("delta: len(a)=%d len(b)=%d", len(a), len(b))

	if !gjson.ParseBytes(a).IsObject() || !gjson.ParseBytes(b).IsObject() {
		return "", false, ErrDeltaNeedsObjects
	}

	delta, err := gojsondiff.New().Compare(a, b)
	if err != nil {
		return "", false, fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		return "", false, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(a, &jdoc); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	for _, key := range opts.Ignore {
		if key != "" {
			delete(jdoc, key)
		}
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: opts.ShowArrayIndex,
		Coloring:       opts.Color,
	}

	out, err := formatter.NewAsciiFormatter(jdoc, config).Format(delta)
	if err != nil {
		return "", true, err
	}

	return out, true, nil
}
