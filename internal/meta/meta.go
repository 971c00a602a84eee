// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
	"io"

	"github.com/staranto/slugger/internal/config"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string

	// Stdin and Stdout default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
}
