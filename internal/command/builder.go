// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/meta"
)

// SlugCommandBuilder constructs a cli.Command for the document subcommands
// using a consistent pattern. The builder wires metadata, appends the global
// and source flags, and checks the positional argument count before Action
// runs.
type SlugCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	ArgsUsage string
	Args      int
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (b *SlugCommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{}, b.Flags...)
	flags = append(flags, NewGlobalFlags(b.Name)...)
	flags = append(flags, NewSourceFlags(b.Name)...)

	return &cli.Command{
		Name:      b.Name,
		Usage:     b.Usage,
		UsageText: b.UsageText,
		ArgsUsage: b.ArgsUsage,
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log.Debugf("Executing action for %v", GetMeta(cmd).Args)
			if err := RequireArgs(cmd, b.Args); err != nil {
				return err
			}
			return b.Action(ctx, cmd)
		},
	}
}
