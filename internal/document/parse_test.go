// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = `{"app":{"title":"Hello","count":3,"ratio":0.5,"on":true,"none":null,"tags":["a","b"]},"empty":{}}`

func TestParseEquivalentFormats(t *testing.T) {
	want := mustJSON(t, canonical)

	tests := []struct {
		name string
		file string
		data string
	}{
		{
			name: "yaml",
			file: "x.yaml",
			data: `
app:
  title: Hello
  count: 3
  ratio: 0.5
  "on": true
  none: null
  tags: [a, b]
empty: {}
`,
		},
		{
			name: "toml",
			file: "x.toml",
			data: `
[app]
title = "Hello"
count = 3
ratio = 0.5
on = true
tags = ["a", "b"]

[empty]
`,
		},
		{
			name: "hcl",
			file: "x.hcl",
			data: `
app {
  title = "Hello"
  count = 3
  ratio = 0.5
  on    = true
  none  = null
  tags  = ["a", "b"]
}
empty {}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.file, []byte(tt.data))
			require.NoError(t, err)

			if tt.name == "toml" {
				// TOML has no null.
				app, _ := got.Mapping().Get("app")
				app.Mapping().Set("none", NullValue())
			}
			assert.True(t, Equal(want, got), "got %s", got)
		})
	}
}

func TestParseKeepsOrder(t *testing.T) {
	tests := []struct {
		file string
		data string
	}{
		{"a.json", `{"z":1,"a":{"y":1,"b":2},"m":3}`},
		{"a.yml", "z: 1\na:\n  y: 1\n  b: 2\nm: 3\n"},
		{"a.toml", "z = 1\nm = 3\n[a]\ny = 1\nb = 2\n"},
		{"a.tfvars", "z = 1\na = {\n  y = 1\n  b = 2\n}\nm = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			v, err := Parse(tt.file, []byte(tt.data))
			require.NoError(t, err)
			a, ok := v.Mapping().Get("a")
			require.True(t, ok)
			assert.Equal(t, []string{"y", "b"}, a.Mapping().Keys())
			if tt.file == "a.toml" {
				assert.Equal(t, []string{"z", "m", "a"}, v.Mapping().Keys())
			} else {
				assert.Equal(t, []string{"z", "a", "m"}, v.Mapping().Keys())
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	v, err := ParseJSON([]byte(`{"a":1,"b":2,"a":3}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"b":2}`, v.String())

	v, err = ParseJSON([]byte(`"just a string"`))
	require.NoError(t, err)
	assert.Equal(t, String, v.Kind())

	_, err = ParseJSON([]byte(``))
	assert.Error(t, err)

	_, err = ParseJSON([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	for _, name := range []string{"e.yaml", "e.toml", "e.hcl"} {
		v, err := Parse(name, nil)
		require.NoError(t, err, name)
		assert.True(t, v.IsObject(), name)
		assert.Equal(t, 0, v.Mapping().Len(), name)
	}
}

func TestParseYAMLScalars(t *testing.T) {
	v, err := ParseYAML([]byte("i: 0x1F\nf: .inf\nd: 2024-01-02\ns: 'true'\nm:\n  <<: {x: 1, y: 2}\n  y: 3\n"))
	require.NoError(t, err)

	m := v.Mapping()
	get := func(k string) Value {
		x, ok := m.Get(k)
		require.True(t, ok, k)
		return x
	}
	assert.Equal(t, "31", get("i").String())
	assert.Equal(t, `".inf"`, get("f").String())
	assert.Equal(t, `"2024-01-02"`, get("d").String())
	assert.Equal(t, `"true"`, get("s").String())
	assert.Equal(t, `{"y":3,"x":1}`, get("m").String())
}

func TestParseHCLBlocks(t *testing.T) {
	v, err := ParseHCL("x.hcl", []byte(`
locale "en" "US" {
  greeting = "hi"
}
locale "en" "GB" {
  greeting = "hello"
}
`))
	require.NoError(t, err)
	assert.Equal(t, `{"locale":{"en":{"US":{"greeting":"hi"},"GB":{"greeting":"hello"}}}}`, v.String())

	_, err = ParseHCL("x.hcl", []byte(`a = var.b`))
	assert.Error(t, err)

	_, err = ParseHCL("x.hcl", []byte(`a = `))
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("a/b.YML"))
	assert.Equal(t, FormatTOML, FormatFor("a.toml"))
	assert.Equal(t, FormatHCL, FormatFor("s3://bucket/x.tfvars"))
	assert.Equal(t, FormatJSON, FormatFor("noext"))

	_, err := ParseFormat(Format("xml"), "a.xml", nil)
	assert.Error(t, err)
}
