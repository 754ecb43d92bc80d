// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/lingodiff/lingodiff/internal/config"
)

// Meta contains runtime metadata shared by commands: the CLI arguments, the
// loaded configuration, the context, the directory the picker and tree
// commands work from, and the working directory at startup.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	RootDir     string
	StartingDir string
}
