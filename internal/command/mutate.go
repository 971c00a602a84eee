// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/meta"
	"github.com/staranto/slugger/internal/slug"
)

func newStringFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "string",
		Usage:       "keep VALUE as a string instead of parsing it as YAML",
		HideDefault: true,
	}
}

// scalarArg returns the VALUE argument, parsed unless --string is set.
func scalarArg(cmd *cli.Command) (any, error) {
	raw := cmd.Args().Get(2)
	if cmd.Bool("string") {
		return raw, nil
	}
	return ParseValue(raw)
}

// mutate loads SOURCE, applies fn and prints the resulting document.
func mutate(ctx context.Context, cmd *cli.Command, fn func(*slug.Array, string) error) error {
	a, err := LoadSource(ctx, cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	before := a.Hash()
	if err := fn(a, cmd.Args().Get(1)); err != nil {
		return err
	}
	log.Debugf("%s %s: hash %s -> %s", cmd.Name, cmd.Args().Get(1), before, a.Hash())

	return EmitArray(cmd, a)
}

func SetCommandAction(ctx context.Context, cmd *cli.Command) error {
	v, err := scalarArg(cmd)
	if err != nil {
		return err
	}
	return mutate(ctx, cmd, func(a *slug.Array, s string) error {
		return a.UpdateScalar(s, v)
	})
}

func AddCommandAction(ctx context.Context, cmd *cli.Command) error {
	v, err := scalarArg(cmd)
	if err != nil {
		return err
	}
	return mutate(ctx, cmd, func(a *slug.Array, s string) error {
		return a.AddScalar(s, v)
	})
}

func RmCommandAction(ctx context.Context, cmd *cli.Command) error {
	return mutate(ctx, cmd, func(a *slug.Array, s string) error {
		if cmd.Bool("tree") {
			return a.RemoveTree(s)
		}
		return a.RemoveScalar(s)
	})
}

func SetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SlugCommandBuilder{
		Name:      "set",
		Usage:     "update an existing scalar and print the document",
		UsageText: "slugger set SOURCE SLUG VALUE",
		ArgsUsage: "SOURCE SLUG VALUE",
		Args:      3,
		Flags:     []cli.Flag{newStringFlag()},
		Action:    SetCommandAction,
		Meta:      meta,
	}).Build()
}

func AddCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SlugCommandBuilder{
		Name:      "add",
		Usage:     "add a scalar at a new slug and print the document",
		UsageText: "slugger add SOURCE SLUG VALUE",
		ArgsUsage: "SOURCE SLUG VALUE",
		Args:      3,
		Flags:     []cli.Flag{newStringFlag()},
		Action:    AddCommandAction,
		Meta:      meta,
	}).Build()
}

func RmCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SlugCommandBuilder{
		Name:      "rm",
		Usage:     "remove a scalar (or a tree with --tree) and print the document",
		UsageText: "slugger rm SOURCE SLUG [--tree]",
		ArgsUsage: "SOURCE SLUG",
		Args:      2,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "tree",
				Usage:       "SLUG addresses a tree",
				HideDefault: true,
			},
		},
		Action: RmCommandAction,
		Meta:   meta,
	}).Build()
}
