// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/meta"
	"github.com/staranto/slugger/internal/output"
)

func StatCommandAction(ctx context.Context, cmd *cli.Command) error {
	a, err := LoadSource(ctx, cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	return output.WriteStats(stdout(GetMeta(cmd)), output.ComputeStats(a), output.OptionsFromCommand(cmd))
}

func StatCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SlugCommandBuilder{
		Name:      "stat",
		Usage:     "summarize a source: leaves, trees, depth, size and content hash",
		UsageText: "slugger stat SOURCE",
		ArgsUsage: "SOURCE",
		Args:      1,
		Action:    StatCommandAction,
		Meta:      meta,
	}).Build()
}
