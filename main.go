// Copyright 2026 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/maruel/subcommands"
	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/system/signals"

	"github.com/shaneholloman/muwanx/tools/assetindex/o11y/clog"
	"github.com/shaneholloman/muwanx/tools/assetindex/subcmd/deps"
	"github.com/shaneholloman/muwanx/tools/assetindex/subcmd/index"
	"github.com/shaneholloman/muwanx/tools/assetindex/subcmd/version"
)

// assetindex precomputes the files a browser must fetch before loading
// an MJCF scene.

const versionID = "assetindex v0.3.0"

var logLevel = flag.String("log_level", "info", "log level: debug, info, warn or error. logs go to stderr")

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(out, "global flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	os.Exit(assetindexMain(flag.Args()))
}

func getApplication(ctx context.Context) *cli.Application {
	return &cli.Application{
		Name:  "assetindex",
		Title: "MJCF asset dependency indexer",
		Context: func(context.Context) context.Context {
			return ctx
		},
		Commands: []*subcommands.Command{
			index.Cmd(),
			deps.Cmd(),

			subcommands.CmdHelp,
			version.Cmd(versionID),
		},
	}
}

func assetindexMain(args []string) int {
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -log_level: %v\n", err)
		return 2
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer signals.HandleInterrupt(cancel)()

	ctx = clog.NewContext(ctx, clog.New(os.Stderr, level))

	// Print a stack trace when a panic occurs.
	defer func() {
		if r := recover(); r != nil {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			clog.Errorf(ctx, "panic: %v\n%s", r, buf)
			os.Exit(1)
		}
	}()

	if clog.FromContext(ctx).V(1) {
		buildinfo, ok := debug.ReadBuildInfo()
		if ok {
			clog.Debugf(ctx, "main module: %s %s", moduleInfo(&buildinfo.Main), vcsInfo(buildinfo))
			for _, m := range buildinfo.Deps {
				clog.Debugf(ctx, "deps module: %s", moduleInfo(m))
			}
		}
	}

	return subcommands.Run(getApplication(ctx), args)
}

func moduleInfo(m *debug.Module) string {
	if m == nil {
		return "<nil>"
	}
	return fmt.Sprintf("path:%s version:%s sum:%s replace:%s", m.Path, m.Version, m.Sum, moduleInfo(m.Replace))
}

func vcsInfo(buildinfo *debug.BuildInfo) string {
	m := make(map[string]string)
	for _, bs := range buildinfo.Settings {
		if strings.HasPrefix(bs.Key, "vcs.") {
			m[bs.Key] = bs.Value
		}
	}
	return fmt.Sprintf("vcs[revision=%s time=%s modified=%s]", m["vcs.revision"], m["vcs.time"], m["vcs.modified"])
}
