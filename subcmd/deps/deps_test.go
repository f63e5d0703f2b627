// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package deps

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/shaneholloman/muwanx/tools/assetindex/mjcfdeps"
	"github.com/shaneholloman/muwanx/tools/assetindex/o11y/clog"
)

func TestRun(t *testing.T) {
	var logbuf bytes.Buffer
	ctx := clog.NewContext(context.Background(), clog.New(&logbuf, log.InfoLevel))
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "scene.xml"), []byte(`<mujoco>
  <asset>
    <texture file="sky.png"/>
    <texture file="https://example.com/grid.png"/>
  </asset>
</mujoco>
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		name string
		cmd  run
		want string
	}{
		{
			name: "lines",
			want: "https://example.com/grid.png\nscene.xml\n",
		},
		{
			name: "json",
			cmd:  run{json: true},
			want: "[\n  \"https://example.com/grid.png\",\n  \"scene.xml\"\n]\n",
		},
		{
			name: "warnings",
			cmd:  run{warnings: true},
			want: "https://example.com/grid.png\nscene.xml\nwarning: missing asset: sky.png (searched 1 locations)\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := tc.cmd.run(ctx, &out, []string{filepath.Join(dir, "scene.xml")})
			if err != nil {
				t.Fatalf("run()=%v; want nil err", err)
			}
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Errorf("run() output diff -want +got:\n%s", diff)
			}
		})
	}
}

func TestRun_NotFound(t *testing.T) {
	var logbuf bytes.Buffer
	ctx := clog.NewContext(context.Background(), clog.New(&logbuf, log.InfoLevel))
	c := &run{}
	var out bytes.Buffer
	err := c.run(ctx, &out, []string{filepath.Join(t.TempDir(), "scene.xml")})
	if !errors.Is(err, mjcfdeps.ErrDocumentNotFound) {
		t.Errorf("run(missing)=%v; want %v", err, mjcfdeps.ErrDocumentNotFound)
	}
}
