// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/config"
	"github.com/staranto/slugger/internal/factory"
	"github.com/staranto/slugger/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the slugger
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, err := config.Load(ns)
	if err != nil {
		log.Debugf("config: %v", err)
	}

	// writable in the config file decides whether documents are loaded
	// mutable when --locked is not given.
	factory.Writable, _ = config.GetBool("writable", true)

	return NewApp(meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}), nil
}

// NewApp builds the command tree around m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:  "slugger",
		Usage: "address, edit and flatten nested documents by dot-path slug",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "slugger version info",
				HideDefault: true,
			},
		},
	}
	if m.Stdout != nil {
		app.Writer = m.Stdout
	}

	app.Commands = append(app.Commands,
		AddCommandBuilder(app, m),
		CompletionCommandBuilder(app, m),
		DiffCommandBuilder(app, m),
		ExamplesCommandBuilder(app, m),
		FlattenCommandBuilder(app, m),
		GetCommandBuilder(app, m),
		MergeCommandBuilder(app, m),
		RmCommandBuilder(app, m),
		SetCommandBuilder(app, m),
		StatCommandBuilder(app, m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}
