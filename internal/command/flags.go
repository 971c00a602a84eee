// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/config"
)

// NewGlobalFlags returns the output flags shared by every subcommand. ns is
// the subcommand name and is tried first when the value comes from the
// config file, so "get.output" wins over "output".
func NewGlobalFlags(ns string) (flags []cli.Flag) {
	src := config.Config.Source

	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(src)),
				yaml.YAML("color", altsrc.StringSourcer(src)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(src)),
				yaml.YAML("output", altsrc.StringSourcer(src)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "sort rows by slug or value, prefix with - to reverse",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(src)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, SortValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(src)),
				yaml.YAML("titles", altsrc.StringSourcer(src)),
			),
			Value: false,
		},
	}

	return
}

// NewSourceFlags returns the flags that control how a SOURCE argument is
// read and wrapped.
func NewSourceFlags(ns string) (flags []cli.Flag) {
	src := config.Config.Source

	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "source format (yaml, json or hcl). Detected from the extension when omitted",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SLUGGER_FORMAT")),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, FormatValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "locked",
			Usage:       "load the source read-only",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "name of the document. Defaults to the source file stem",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		NameSpacedValueChainFlagFromConfigFile(ns, src, &cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS profile used for s3:// sources",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_PROFILE")),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, src, &cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region used for s3:// sources",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_REGION")),
		}),
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
