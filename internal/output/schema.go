// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/lingodiff/lingodiff/internal/log"
)

// schemaTag is one row attribute discovered from a json struct tag.
type schemaTag struct {
	Name     string
	Optional bool
}

// print renders the tag into its display form.
func (t schemaTag) print() string {
	if t.Optional {
		return t.Name + " (optional)"
	}
	return t.Name
}

// maxSchemaDepth limits how far nested row structs are walked.
const maxSchemaDepth = 2

// NewTag builds a schemaTag from a json struct tag value. The holder, when
// not empty, prefixes the name with a dot. A tag of "-" yields a zero tag.
func NewTag(holder string, s string) schemaTag {
	parts := strings.Split(s, ",")
	if parts[0] == "" || parts[0] == "-" {
		return schemaTag{}
	}

	tag := schemaTag{Name: parts[0]}
	if holder != "" {
		tag.Name = holder + "." + tag.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			tag.Optional = true
		}
	}
	return tag
}

// DumpSchema writes the sorted attribute names of a row type, the keys that
// --attrs, --filter and --sort accept. If w is nil, os.Stdout is used.
func DumpSchema(prefix string, typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	for typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice {
		typ = typ.Elem()
	}

	fmt.Fprintln(w, "Row attributes available to the --attrs, --filter and --sort flags.")
	fmt.Fprintln(w, "")

	tags := dumpSchemaWalker(prefix, typ, 0)
	if len(tags) == 0 {
		log.Debugf("no tags found for type: %s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	for _, tag := range tags {
		fmt.Fprintln(w, tag.print())
	}
}

// dumpSchemaWalker walks a struct type collecting json tags. Nested structs
// contribute dotted names.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	tags := make([]schemaTag, 0)
	if typ.Kind() != reflect.Struct {
		return tags
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		tagValue, ok := field.Tag.Lookup("json")
		if !ok {
			continue
		}

		tag := NewTag(holder, tagValue)
		if tag.Name == "" {
			continue
		}
		tags = append(tags, tag)

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && depth < maxSchemaDepth {
			tags = append(tags, dumpSchemaWalker(tag.Name, ft, depth+1)...)
		}
	}

	return tags
}
