// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package index provides index subcommand, which writes the dependency
// manifest of every model listed in a task config.
package index

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/maruel/subcommands"
	"golang.org/x/sync/errgroup"

	"go.chromium.org/luci/common/cli"

	"github.com/shaneholloman/muwanx/tools/assetindex/manifest"
	"github.com/shaneholloman/muwanx/tools/assetindex/mjcfdeps"
	"github.com/shaneholloman/muwanx/tools/assetindex/o11y/clog"
	"github.com/shaneholloman/muwanx/tools/assetindex/taskconfig"
)

const usage = `collect MJCF assets for all models listed in a task config

 $ assetindex index [-indent 2] [-gzip] <config.json>

For each task, it scans model_xml (and policy model_xml overrides)
relative to the config file's directory, and writes the list of
files the model depends on to index.json next to the model.
Missing models are reported and skipped.
`

// Cmd returns the Command for the `index` subcommand provided by this package.
func Cmd() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "index [-indent N] [-gzip] <config>",
		ShortDesc: "write asset manifests for a task config",
		LongDesc:  usage,
		CommandRun: func() subcommands.CommandRun {
			c := &run{}
			c.init()
			return c
		},
	}
}

type run struct {
	subcommands.CommandRunBase

	indent int
	jobs   int
	gzip   bool
	output string
}

func (c *run) init() {
	c.Flags.IntVar(&c.indent, "indent", 2, "JSON indent level")
	c.Flags.IntVar(&c.jobs, "j", runtime.NumCPU(), "number of models to scan in parallel")
	c.Flags.BoolVar(&c.gzip, "gzip", false, "also write gzip compressed manifest")
	c.Flags.StringVar(&c.output, "o", manifest.DefaultName, "manifest file name, written in each model's directory")
}

func (c *run) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	written, err := c.run(ctx, args)
	for _, fname := range written {
		fmt.Fprintf(a.GetOut(), "wrote %s\n", fname)
	}
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

// job is a manifest to write. Roots sharing a directory share a
// manifest, which lists the union of their dependencies.
type job struct {
	manifest string
	tasks    []string
	roots    []string
}

func (c *run) run(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("want one config file, got %d args: %w", len(args), flag.ErrHelp)
	}
	if c.output == "" || filepath.Base(c.output) != c.output {
		return nil, fmt.Errorf("bad -o %q; want a file name: %w", c.output, flag.ErrHelp)
	}
	cfg, err := taskconfig.Load(args[0])
	if err != nil {
		return nil, err
	}
	jobs := c.plan(ctx, cfg)

	opts := manifest.Options{
		Indent: c.indent,
		Gzip:   c.gzip,
	}
	written := make([][]string, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	if c.jobs > 0 {
		eg.SetLimit(c.jobs)
	}
	for i, j := range jobs {
		i, j := i, j
		eg.Go(func() error {
			var err error
			written[i], err = c.runJob(ctx, j, opts)
			return err
		})
	}
	err = eg.Wait()
	var ret []string
	for _, w := range written {
		ret = append(ret, w...)
	}
	return ret, err
}

// plan groups task roots by manifest path, in config order.
func (c *run) plan(ctx context.Context, cfg *taskconfig.Config) []*job {
	var jobs []*job
	byManifest := make(map[string]*job)
	for _, task := range cfg.Tasks {
		roots := task.Roots(cfg.Dir())
		if len(roots) == 0 {
			clog.Warningf(ctx, "skipping task %q (no model_xml found)", task.DisplayName())
			continue
		}
		for _, root := range roots {
			fname := filepath.Join(filepath.Dir(root), c.output)
			j, ok := byManifest[fname]
			if !ok {
				j = &job{manifest: fname}
				byManifest[fname] = j
				jobs = append(jobs, j)
			}
			if !slices.Contains(j.tasks, task.DisplayName()) {
				j.tasks = append(j.tasks, task.DisplayName())
			}
			if !slices.Contains(j.roots, root) {
				j.roots = append(j.roots, root)
			}
		}
	}
	return jobs
}

// runJob scans roots of j and writes its manifest.
// Nothing is written if none of the roots exist.
func (c *run) runJob(ctx context.Context, j *job, opts manifest.Options) ([]string, error) {
	ctx = clog.NewSpan(ctx, uuid.NewString(), "", map[string]string{
		"task": strings.Join(j.tasks, ","),
	})
	var files []string
	found := false
	for _, root := range j.roots {
		deps, err := mjcfdeps.Collect(ctx, root)
		if errors.Is(err, mjcfdeps.ErrDocumentNotFound) {
			clog.Warningf(ctx, "model XML not found for %q: %v", strings.Join(j.tasks, ","), err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
		found = true
		files = append(files, deps...)
	}
	if !found {
		return nil, nil
	}
	slices.Sort(files)
	files = slices.Compact(files)
	written, err := manifest.Write(j.manifest, files, opts)
	if err != nil {
		return written, fmt.Errorf("write manifest %s: %w", j.manifest, err)
	}
	clog.Infof(ctx, "%s: %d files from %d models", j.manifest, len(files), len(j.roots))
	return written, nil
}
