// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders command rows as text tables, JSON, YAML or the
// command's raw JSON document, after filtering and sorting them.
package output
