// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/meta"
	"github.com/staranto/slugger/internal/output"
)

// GetCommandAction resolves SLUG in SOURCE. Trees are rendered as a
// slug/value table in text mode.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	a, err := LoadSource(ctx, cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	var def []any
	if cmd.IsSet("default") {
		d, err := ParseValue(cmd.String("default"))
		if err != nil {
			return err
		}
		def = append(def, d)
	}

	v, err := a.Get(cmd.Args().Get(1), def...)
	if err != nil {
		return err
	}

	opts := output.OptionsFromCommand(cmd)
	opts.Prefix = strings.Trim(cmd.Args().Get(1), " .")

	return output.Spit(stdout(GetMeta(cmd)), v, opts)
}

func GetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SlugCommandBuilder{
		Name:      "get",
		Usage:     "resolve a slug",
		UsageText: "slugger get SOURCE SLUG [--default VALUE]",
		ArgsUsage: "SOURCE SLUG",
		Args:      2,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "default",
				Usage: "value printed when SLUG does not resolve",
			},
		},
		Action: GetCommandAction,
		Meta:   meta,
	}).Build()
}
