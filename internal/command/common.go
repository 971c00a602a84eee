// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/staranto/slugger/internal/aws"
	"github.com/staranto/slugger/internal/meta"
	"github.com/staranto/slugger/internal/output"
	"github.com/staranto/slugger/internal/slug"
	"github.com/staranto/slugger/internal/source"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// stdout is where command results go.
func stdout(m meta.Meta) io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// RequireArgs fails unless cmd was given exactly n positional arguments.
func RequireArgs(cmd *cli.Command, n int) error {
	if got := cmd.Args().Len(); got != n {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d (usage: %s %s)",
			slug.ErrInvalidArgument, cmd.Name, n, got, cmd.Name, cmd.ArgsUsage)
	}
	return nil
}

// LoadSource reads uri into an Array, honoring the --name, --format,
// --locked, --profile and --region flags.
func LoadSource(ctx context.Context, cmd *cli.Command, uri string) (*slug.Array, error) {
	m := GetMeta(cmd)

	opts := []source.Option{}
	if m.Stdin != nil {
		opts = append(opts, source.WithStdin(m.Stdin))
	}
	if name := cmd.String("name"); name != "" {
		opts = append(opts, source.WithName(name))
	}
	if f := cmd.String("format"); f != "" {
		format, err := source.ParseFormat(f)
		if err != nil {
			return nil, err
		}
		opts = append(opts, source.WithFormat(format))
	}
	if cmd.Bool("locked") {
		opts = append(opts, source.WithWritable(false))
	}

	var awsOpts []aws.Option
	if p := cmd.String("profile"); p != "" {
		awsOpts = append(awsOpts, aws.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		awsOpts = append(awsOpts, aws.WithRegion(r))
	}
	if len(awsOpts) > 0 {
		opts = append(opts, source.WithAWSOptions(awsOpts...))
	}

	a, err := source.Load(ctx, uri, opts...)
	if err != nil {
		return nil, err
	}
	DebugDump("source "+uri, a.Data())

	return a, nil
}

// ParseValue interprets a command line VALUE as a YAML scalar, so 1, true
// and null keep their types. Mappings and sequences are rejected.
func ParseValue(s string) (any, error) {
	if s == "" {
		return "", nil
	}

	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q: %w", slug.ErrInvalidArgument, s, err)
	}
	if !slug.IsScalar(v) {
		return nil, fmt.Errorf("%w: %q is not a scalar value", slug.ErrInvalidArgument, s)
	}

	return v, nil
}

// Emit writes value to the command's output using the global output flags.
func Emit(cmd *cli.Command, value any) error {
	return output.Spit(stdout(GetMeta(cmd)), value, output.OptionsFromCommand(cmd))
}

// EmitArray writes the whole document held by a. Text rows are prefixed
// with the Array name.
func EmitArray(cmd *cli.Command, a *slug.Array) error {
	opts := output.OptionsFromCommand(cmd)
	opts.Prefix = a.Name()
	return output.Spit(stdout(GetMeta(cmd)), a.Data(), opts)
}

// DebugDump logs a deep dump of v when debug logging is enabled.
func DebugDump(label string, v any) {
	if l, ok := log.Log.(*log.Logger); ok && l.Level > log.DebugLevel {
		return
	}
	log.Debugf("%s:\n%s", label, spew.Sdump(v))
}
