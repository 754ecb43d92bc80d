// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller extracts values from command rows by dotted path. It backs
// the --attrs, --filter and --sort flags.
package driller
