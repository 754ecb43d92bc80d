// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a supported document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// FormatFor picks a format from the extension of name. Unknown extensions are
// treated as JSON.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".hcl", ".tfvars":
		return FormatHCL
	}
	return FormatJSON
}

// Parse parses data in the format implied by name.
func Parse(name string, data []byte) (Value, error) {
	return ParseFormat(FormatFor(name), name, data)
}

// ParseFormat parses data in format f. name is only used in HCL diagnostics.
func ParseFormat(f Format, name string, data []byte) (Value, error) {
	switch f {
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML:
		return ParseYAML(data)
	case FormatTOML:
		return ParseTOML(data)
	case FormatHCL:
		return ParseHCL(name, data)
	}
	return Value{}, fmt.Errorf("unknown format %q", f)
}
