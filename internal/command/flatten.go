// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/meta"
	"github.com/staranto/slugger/internal/output"
)

// FlattenCommandAction lists every leaf of SOURCE as a fully-qualified slug.
func FlattenCommandAction(ctx context.Context, cmd *cli.Command) error {
	a, err := LoadSource(ctx, cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	opts := output.OptionsFromCommand(cmd)
	rows := output.FilterRows(output.Rows(a.Flatten()), opts.Filter)
	output.SortRows(rows, opts.Sort)

	w := stdout(GetMeta(cmd))
	switch opts.Format {
	case "", "text":
		output.TableWriter(rows, opts, w)
		return nil
	case "raw":
		for _, r := range rows {
			if err := output.Spit(w, r.Slug+"="+output.InterfaceToString(r.Value), opts); err != nil {
				return err
			}
		}
		return nil
	default:
		return output.Spit(w, output.Flat(rows), opts)
	}
}

func FlattenCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SlugCommandBuilder{
		Name:      "flatten",
		Usage:     "list every slug and its scalar value",
		UsageText: "slugger flatten SOURCE",
		ArgsUsage: "SOURCE",
		Args:      1,
		Action:    FlattenCommandAction,
		Meta:      meta,
	}).Build()
}
