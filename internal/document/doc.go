// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package document models hierarchical key-value documents as a tagged union
// of leaves and ordered mappings, and parses them from JSON, YAML, TOML and
// HCL.
package document
