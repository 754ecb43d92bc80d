// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for lingodiff's user
// configuration. The configuration is a YAML document at $LINGODIFF_CFG_FILE
// or in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/lingodiff.yaml or $HOME/.config/lingodiff.yaml
//   - macOS: $HOME/Library/Application Support/lingodiff.yaml
//   - Windows: %APPDATA%/lingodiff.yaml
//
// Keys are dotted paths. A namespace, usually the running command, lets
// command specific keys such as "diff.output" override "output".
package config
