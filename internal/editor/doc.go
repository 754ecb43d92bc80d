// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package editor is the interactive fill-in editor. It walks the keys of a
// translation view whose target is missing or empty, shows the source text
// and takes the translation from a text input.
package editor
