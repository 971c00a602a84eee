// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/meta"
	"github.com/staranto/slugger/internal/output"
)

// DiffCommandAction prints the structural difference between LEFT and
// RIGHT. Identical documents print nothing.
func DiffCommandAction(ctx context.Context, cmd *cli.Command) error {
	left, err := LoadSource(ctx, cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	right, err := LoadSource(ctx, cmd, cmd.Args().Get(1))
	if err != nil {
		return err
	}

	if left.Hash() == right.Hash() {
		log.Debugf("diff: identical hash %s", left.Hash())
		return nil
	}

	changed, err := output.Diff(stdout(GetMeta(cmd)), left.Data(), right.Data(), output.OptionsFromCommand(cmd))
	log.Debugf("diff: changed=%t", changed)
	return err
}

func DiffCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SlugCommandBuilder{
		Name:      "diff",
		Usage:     "structural diff of two sources",
		UsageText: "slugger diff LEFT RIGHT",
		ArgsUsage: "LEFT RIGHT",
		Args:      2,
		Action:    DiffCommandAction,
		Meta:      meta,
	}).Build()
}
