// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for lingodiff. It wires flags,
// validators, actions, and shell completion for subcommands. Row producing
// commands share ActionRunner, which routes their rows through the attrs,
// filter, sort and output machinery.
package command
