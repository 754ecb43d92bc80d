// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ flattens hierarchical documents into dotted paths and
// classifies the differences between two of them as renamed, modified, added
// or deleted keys. It also aligns documents side by side for translation
// review, rebuilds documents from flat paths and renders raw structural deltas.
//
// Every function is pure; callers may use them concurrently.
package differ
