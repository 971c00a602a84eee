// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/meta"
	"github.com/staranto/slugger/internal/output"
)

var examples = [][2]string{
	{"slugger get app.yaml app.db.host", "resolve a scalar"},
	{"slugger get app.yaml db --default {}", "resolve a tree, falling back to a default"},
	{"slugger flatten app.json -f value@local", "list leaves whose value contains 'local'"},
	{"slugger flatten s3://bucket/app.yaml -s -slug", "list leaves of an S3 object, reverse sorted"},
	{"slugger set app.yaml db.port 5433 -o yaml", "update a scalar and print YAML"},
	{"slugger add app.yaml db.user --string 007", "add a string scalar"},
	{"slugger rm app.hcl db --tree", "remove a whole tree"},
	{"cat patch.json | slugger merge app.yaml db - --patch-format json", "merge a patch from stdin"},
	{"slugger diff app.yaml app.json", "structural diff of two documents"},
	{"slugger stat terraform.tfvars", "size, depth and content hash"},
}

func ExamplesCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "examples",
		Usage: "show example usages",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			output.DumpExamples(stdout(GetMeta(cmd)), examples)
			return nil
		},
	}
}
