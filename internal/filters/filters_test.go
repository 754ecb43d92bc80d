// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/lingodiff/lingodiff/internal/attrs"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

type testBuildFiltersCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
}

type testStringOperandCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

type testNumericOperandCase struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Filter Filter  `yaml:"filter"`
	Want   bool    `yaml:"want"`
}

type testFilterDatasetCase struct {
	Name     string   `yaml:"name"`
	Spec     string   `yaml:"spec"`
	WantKeys []string `yaml:"wantKeys"`
}

func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

const diffRows = `[
	{"change":"modified","key":"greeting","old":"Hello","new":"Hallo"},
	{"change":"modified","key":"menu.open","old":"Open x","new":"Öffnen"},
	{"change":"added","key":"menu.save","new":"Speichern"},
	{"change":"modified","key":"size","old":10,"new":200}
]`

func diffAttrs(t *testing.T) attrs.AttrList {
	t.Helper()
	var al attrs.AttrList
	require.NoError(t, al.Set("change,key,old:before,new"))
	return al
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("build_filters_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv(EnvDelim, tt.Delimiter)
			}

			got := BuildFilters(tt.Spec)
			assert.Len(t, got, tt.WantCount)
			for i, want := range tt.Want {
				assert.Equal(t, want, got[i])
			}
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	var tests []testStringOperandCase
	require.NoError(t, loadTestData("string_operand_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, checkStringOperand(tt.Value, tt.Filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	var tests []testNumericOperandCase
	require.NoError(t, loadTestData("numeric_operand_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, checkNumericOperand(tt.Value, tt.Filter))
		})
	}
}

func TestCheckContainsOperand(t *testing.T) {
	arr := []any{"one", 2.0}
	assert.True(t, checkContainsOperand(arr, Filter{Operand: "@", Value: "one"}))
	assert.True(t, checkContainsOperand(arr, Filter{Operand: "@", Value: "2"}))
	assert.False(t, checkContainsOperand(arr, Filter{Operand: "@", Value: "three"}))
	assert.True(t, checkContainsOperand(arr, Filter{Operand: "@", Negate: true, Value: "three"}))

	obj := map[string]any{"k": 1}
	assert.True(t, checkContainsOperand(obj, Filter{Operand: "@", Value: "k"}))
	assert.False(t, checkContainsOperand(obj, Filter{Operand: "@", Negate: true, Value: "k"}))

	assert.False(t, checkContainsOperand(nil, Filter{Operand: "@", Value: "k"}))
}

func TestFilterDataset(t *testing.T) {
	var tests []testFilterDatasetCase
	require.NoError(t, loadTestData("filter_dataset_cases.yaml", &tests))

	candidates := gjson.Parse(diffRows)
	al := diffAttrs(t)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			rows := FilterDataset(candidates, al, tt.Spec)
			keys := make([]string, 0, len(rows))
			for _, row := range rows {
				keys = append(keys, row["key"].(string))
			}
			assert.Equal(t, tt.WantKeys, keys)
		})
	}
}

func TestFilterDatasetProjection(t *testing.T) {
	rows := FilterDataset(gjson.Parse(diffRows), diffAttrs(t), "key=menu.save")
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "added", row["change"])
	assert.Equal(t, "Speichern", row["new"])

	// Absent stays absent.
	_, ok := row["before"]
	assert.False(t, ok)
}

func TestFilterDatasetNull(t *testing.T) {
	var al attrs.AttrList
	require.NoError(t, al.Set("key,target"))

	rows := FilterDataset(gjson.Parse(`[{"key":"a","target":null},{"key":"b"}]`), al, "")
	require.Len(t, rows, 2)

	v, ok := rows[0]["target"]
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = rows[1]["target"]
	assert.False(t, ok)
}
