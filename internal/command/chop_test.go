// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChopPrefix_EmptyDataset(t *testing.T) {
	data := []map[string]interface{}{}
	chopPrefix(data, "key")
	assert.Equal(t, 0, len(data))
}

func TestChopPrefix_NoStringValues(t *testing.T) {
	data := []map[string]interface{}{
		{"key": 1},
		{"key": 2},
	}
	chopPrefix(data, "key")
	assert.Equal(t, 1, data[0]["key"])
	assert.Equal(t, 2, data[1]["key"])
}

func TestChopPrefix_SingleValue(t *testing.T) {
	data := []map[string]interface{}{
		{"key": "app.menu.file.open"},
	}
	chopPrefix(data, "key")
	assert.Equal(t, "..file.open", data[0]["key"])
}

func TestChopPrefix_TwoCommonLeadingSegments(t *testing.T) {
	data := []map[string]interface{}{
		{"key": "app.menu.open.label"},
		{"key": "app.menu.save.label"},
		{"key": "app.menu.quit.label"},
	}
	chopPrefix(data, "key")
	assert.Equal(t, "..open.label", data[0]["key"])
	assert.Equal(t, "..save.label", data[1]["key"])
	assert.Equal(t, "..quit.label", data[2]["key"])
}

func TestChopPrefix_KeepsTwoSegments(t *testing.T) {
	data := []map[string]interface{}{
		{"key": "app.menu.file.open.label"},
		{"key": "app.menu.file.open.hint"},
	}
	// Four segments are shared but only three may go.
	chopPrefix(data, "key")
	assert.Equal(t, "..open.label", data[0]["key"])
	assert.Equal(t, "..open.hint", data[1]["key"])
}

func TestChopPrefix_OneCommonSegmentOnly_NoChop(t *testing.T) {
	data := []map[string]interface{}{
		{"key": "app.menu.open"},
		{"key": "app.dialog.ok"},
	}
	chopPrefix(data, "key")
	assert.Equal(t, "app.menu.open", data[0]["key"])
	assert.Equal(t, "app.dialog.ok", data[1]["key"])
}

func TestChopPrefix_TooShort_NoChop(t *testing.T) {
	data := []map[string]interface{}{
		{"key": "app.menu.open"},
		{"key": "app.menu.save"},
	}
	// Chopping "app.menu" would leave a single segment.
	chopPrefix(data, "key")
	assert.Equal(t, "app.menu.open", data[0]["key"])
	assert.Equal(t, "app.menu.save", data[1]["key"])
}

func TestChopPrefix_OnlyNamedKeys(t *testing.T) {
	data := []map[string]interface{}{
		{"key": "app.menu.open.label", "new": "a.b.c.d"},
		{"key": "app.menu.save.label", "new": "a.b.c.e"},
	}
	chopPrefix(data, "key")
	assert.Equal(t, "..open.label", data[0]["key"])
	assert.Equal(t, "a.b.c.d", data[0]["new"])
}

func TestChopPrefix_MixedStringAndNonString(t *testing.T) {
	data := []map[string]interface{}{
		{"key": "app.menu.open.label"},
		{"key": nil},
		{"key": "app.menu.save.label"},
	}
	chopPrefix(data, "key")
	assert.Equal(t, "..open.label", data[0]["key"])
	assert.Nil(t, data[1]["key"])
	assert.Equal(t, "..save.label", data[2]["key"])
}
