// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package deps is deps subcommand for debugging mjcfdeps.
package deps

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/shaneholloman/muwanx/tools/assetindex/manifest"
	"github.com/shaneholloman/muwanx/tools/assetindex/mjcfdeps"
)

const usage = `print dependencies of an MJCF document

 $ assetindex deps [-json] [-warnings] <scene.xml>

prints files the document depends on, one per line, relative
to the document's directory. with -warnings, also prints
references that couldn't be resolved.
`

// Cmd returns the Command for the `deps` subcommand provided by this package.
func Cmd() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "deps <scene.xml>",
		ShortDesc: "print dependencies of an MJCF document",
		LongDesc:  usage,
		Advanced:  true,
		CommandRun: func() subcommands.CommandRun {
			c := &run{}
			c.init()
			return c
		},
	}
}

type run struct {
	subcommands.CommandRunBase

	json     bool
	warnings bool
}

func (c *run) init() {
	c.Flags.BoolVar(&c.json, "json", false, "print as indented JSON list")
	c.Flags.BoolVar(&c.warnings, "warnings", false, "print unresolved references after the list")
}

func (c *run) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	err := c.run(ctx, a.GetOut(), args)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func (c *run) run(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("want one MJCF file, got %d args: %w", len(args), flag.ErrHelp)
	}
	result, err := mjcfdeps.Scan(ctx, args[0])
	if err != nil {
		return err
	}
	if c.json {
		buf, err := manifest.Marshal(result.Files, manifest.Options{Indent: 2})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", buf)
	} else {
		for _, f := range result.Files {
			fmt.Fprintln(w, f)
		}
	}
	if c.warnings {
		for _, wn := range result.Warnings {
			fmt.Fprintf(w, "warning: %s\n", wn)
		}
	}
	return nil
}
