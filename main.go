// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/slugger/internal/command"
	"github.com/staranto/slugger/internal/config"
	mylog "github.com/staranto/slugger/internal/log"
	"github.com/staranto/slugger/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, expandSets(args)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// expandSets replaces an @name argument with the flags listed under
// <command>.sets.<name> in the config file. Each list entry is split on
// whitespace, so "--output json" becomes two arguments. Unknown sets are
// dropped with a warning.
func expandSets(args []string) []string {
	if len(args) < 3 {
		return args
	}

	out := append([]string{}, args[:2]...)
	for _, a := range args[2:] {
		if !strings.HasPrefix(a, "@") || len(a) == 1 {
			out = append(out, a)
			continue
		}

		set, err := config.GetStringSlice("sets." + a[1:])
		if err != nil {
			log.Warnf("unknown argument set %s: %v", a, err)
			continue
		}
		for _, entry := range set {
			out = append(out, strings.Fields(entry)...)
		}
	}

	log.Debugf("args=%v", out)
	return out
}
