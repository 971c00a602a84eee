// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/meta"
	"github.com/staranto/slugger/internal/slug"
	"github.com/staranto/slugger/internal/source"
)

// MergeCommandAction folds the PATCH document into the tree at SLUG. With
// --create a missing tree is added instead.
func MergeCommandAction(ctx context.Context, cmd *cli.Command) error {
	patchURI := cmd.Args().Get(2)

	// PATCH is always loaded under a fixed name so a top-level key that
	// happens to match the file stem is not unwrapped.
	patch, err := source.Load(ctx, patchURI, patchOptions(cmd)...)
	if err != nil {
		return err
	}
	DebugDump("patch "+patchURI, patch.Data())

	return mutate(ctx, cmd, func(a *slug.Array, s string) error {
		if cmd.Bool("create") {
			if v, err := a.Get(s, absent{}); err == nil && v == (absent{}) {
				return a.AddTree(s, patch.Data())
			}
		}
		return a.UpdateTree(s, patch.Data())
	})
}

// absent is the Get default that marks a missing key.
type absent struct{}

func patchOptions(cmd *cli.Command) []source.Option {
	opts := []source.Option{source.WithName("patch")}
	if m := GetMeta(cmd); m.Stdin != nil {
		opts = append(opts, source.WithStdin(m.Stdin))
	}
	if f := cmd.String("patch-format"); f != "" {
		if format, err := source.ParseFormat(f); err == nil {
			opts = append(opts, source.WithFormat(format))
		}
	}
	return opts
}

func MergeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SlugCommandBuilder{
		Name:      "merge",
		Usage:     "merge a patch document into the tree at SLUG and print the document",
		UsageText: "slugger merge SOURCE SLUG PATCH [--create]",
		ArgsUsage: "SOURCE SLUG PATCH",
		Args:      3,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "create",
				Usage:       "add the tree when SLUG does not exist",
				HideDefault: true,
			},
			&cli.StringFlag{
				Name:  "patch-format",
				Usage: "PATCH format (yaml, json or hcl). Detected from the extension when omitted",
				Validator: func(value string) error {
					return FlagValidators(value, JammedFlagValidator, FormatValidator)
				},
			},
		},
		Action: MergeCommandAction,
		Meta:   meta,
	}).Build()
}
