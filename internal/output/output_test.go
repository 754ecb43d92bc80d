// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/attrs"
)

const testRows = `[
	{"change":"modified","key":"menu.open","old":"Open","new":"Öffnen"},
	{"change":"added","key":"greeting","new":"Hallo"},
	{"change":"deleted","key":"bye","old":null},
	{"change":"added","key":"empty","new":""}
]`

// spit runs SliceDiceSpit inside a real command so flags parse the way they
// do on the command line.
func spit(t *testing.T, ds Dataset, attrSpec string, metadata map[string]any, args ...string) string {
	t.Helper()

	var al attrs.AttrList
	require.NoError(t, al.Set(attrSpec))

	var buf bytes.Buffer
	cmd := &cli.Command{
		Name:     "test",
		Metadata: metadata,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "color"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.IntFlag{Name: "padding", Value: 2},
			&cli.StringFlag{Name: "sort"},
			&cli.BoolFlag{Name: "titles"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return SliceDiceSpit(ds, al, cmd, &buf, nil)
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return buf.String()
}

func TestSliceDiceSpitRaw(t *testing.T) {
	ds := Dataset{Raw: []byte(`{"renamed":[]}`), Rows: []byte(testRows)}
	got := spit(t, ds, "change,key", nil, "--output", "raw")
	assert.Equal(t, `{"renamed":[]}`, got)
}

func TestSliceDiceSpitJSON(t *testing.T) {
	ds := Dataset{Rows: []byte(testRows)}
	got := spit(t, ds, "key,change,old,new", nil, "--output", "json", "--sort", "key")

	// Keys follow attr order, absent values are left out and null is kept.
	want := `[{"key":"bye","change":"deleted","old":null},` +
		`{"key":"empty","change":"added","new":""},` +
		`{"key":"greeting","change":"added","new":"Hallo"},` +
		`{"key":"menu.open","change":"modified","old":"Open","new":"Öffnen"}]` + "\n"
	assert.Equal(t, want, got)
}

func TestSliceDiceSpitYAML(t *testing.T) {
	ds := Dataset{Rows: []byte(testRows)}
	got := spit(t, ds, "key,new", nil, "--output", "yaml", "--filter", "key=greeting")
	assert.Equal(t, "- key: greeting\n  new: Hallo\n", got)
}

func TestSliceDiceSpitText(t *testing.T) {
	ds := Dataset{Rows: []byte(testRows)}
	meta := map[string]any{"header": "Changes", "footer": "4 changes"}
	got := spit(t, ds, "change,key,old,new", meta, "--titles", "--sort", "key")

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "Changes", strings.TrimSpace(lines[0]))
	assert.Equal(t, "4 changes", strings.TrimSpace(lines[len(lines)-1]))
	assert.Contains(t, got, "change")

	var bye, empty string
	for _, line := range lines {
		switch {
		case strings.Contains(line, "bye"):
			bye = line
		case strings.Contains(line, "empty"):
			empty = line
		}
	}
	assert.Equal(t, []string{"deleted", "bye", "null", "-"}, strings.Fields(bye))
	assert.Equal(t, []string{"added", "empty", "-", `""`}, strings.Fields(empty))
}

func TestSliceDiceSpitTransform(t *testing.T) {
	ds := Dataset{Rows: []byte(`[{"path":"a.json","size":2048}]`)}
	got := spit(t, ds, "path:path:u,size:size:b", nil, "--output", "json")
	assert.Equal(t, `[{"path":"A.JSON","size":"2.0 kB"}]`+"\n", got)
}

func TestSliceDiceSpitPostProcess(t *testing.T) {
	var al attrs.AttrList
	require.NoError(t, al.Set("key"))

	var seen int
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return SliceDiceSpit(Dataset{Rows: []byte(testRows)}, al, cmd, &bytes.Buffer{},
				func(rows []map[string]interface{}) error {
					seen = len(rows)
					return nil
				})
		},
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
	assert.Equal(t, 4, seen)
}

func TestTableWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cli.Command{Metadata: map[string]any{"footer": "0 changes"}}
	TableWriter(nil, attrs.AttrList{}, cmd, &buf)
	assert.Equal(t, "0 changes\n", buf.String())
}

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"name": "zebra", "count": 3.0},
		{"name": "Alpha", "count": 1.0},
		{"name": "beta", "count": 2.0},
		{"name": "gamma"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{"ascending by name", "name", []string{"Alpha", "beta", "gamma", "zebra"}},
		{"descending by name", "-name", []string{"zebra", "gamma", "beta", "Alpha"}},
		{"ascending by count", "count", []string{"gamma", "Alpha", "beta", "zebra"}},
		{"descending by count", "-count", []string{"zebra", "beta", "Alpha", "gamma"}},
		{"case sensitive", "!name", []string{"Alpha", "beta", "gamma", "zebra"}},
		{"empty spec keeps order", "", []string{"zebra", "Alpha", "beta", "gamma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			got := make([]string, 0, len(data))
			for _, row := range data {
				got = append(got, row["name"].(string))
			}
			assert.Equal(t, tt.wantOrder, got)
		})
	}
}

func TestSortDatasetCaseSensitive(t *testing.T) {
	data := []map[string]interface{}{{"k": "b"}, {"k": "B"}, {"k": "a"}}
	SortDataset(data, "!k")
	assert.Equal(t, "B", data[0]["k"])
	assert.Equal(t, "a", data[1]["k"])
	assert.Equal(t, "b", data[2]["k"])
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		empty []string
		want  string
	}{
		{"string", "hello", nil, "hello"},
		{"empty string", "", nil, ""},
		{"int", 42, nil, "42"},
		{"float integral", 42.0, nil, "42"},
		{"float fraction", 42.5, nil, "42.5"},
		{"bool true", true, nil, "true"},
		{"bool false", false, nil, "false"},
		{"nil default", nil, nil, ""},
		{"nil custom", nil, []string{"-"}, "-"},
		{"array", []interface{}{"a", 1.0}, nil, `["a",1]`},
		{"object", map[string]interface{}{"a": "b"}, nil, `{"a":"b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterfaceToString(tt.value, tt.empty...))
		})
	}
}

type schemaRow struct {
	Key    string     `json:"key"`
	Old    string     `json:"old,omitempty"`
	Skip   string     `json:"-"`
	NoTag  string
	Nested schemaLeaf `json:"source"`
}

type schemaLeaf struct {
	Value string `json:"value"`
}

func TestNewTag(t *testing.T) {
	assert.Equal(t, schemaTag{Name: "key"}, NewTag("", "key"))
	assert.Equal(t, schemaTag{Name: "source.value"}, NewTag("source", "value"))
	assert.Equal(t, schemaTag{Name: "old", Optional: true}, NewTag("", "old,omitempty"))
	assert.Equal(t, schemaTag{}, NewTag("", "-"))
	assert.Equal(t, schemaTag{}, NewTag("", ",omitempty"))
}

func TestDumpSchema(t *testing.T) {
	var buf bytes.Buffer
	DumpSchema("", reflect.TypeOf([]schemaRow{}), &buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"key", "old (optional)", "source", "source.value"}, lines[2:])
}
