// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mjcfdeps

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestFileURIPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix paths")
	}
	for _, tc := range []struct {
		uri  string
		want string
	}{
		{
			uri:  "file:///a/b%20c.obj",
			want: "/a/b c.obj",
		},
		{
			uri:  "FILE:///a/b.obj",
			want: "/a/b.obj",
		},
		{
			uri:  "file://server/share/mesh.stl",
			want: "/server/share/mesh.stl",
		},
		{
			uri:  "file:///a/100%zz.obj",
			want: "/a/100%zz.obj",
		},
		{
			uri:  "file:///a/b%20c%zz.obj",
			want: "/a/b c%zz.obj",
		},
		{
			uri:  "file:///a/b%2",
			want: "/a/b%2",
		},
		{
			uri:  "file:///a/b.obj?v=1#frag",
			want: "/a/b.obj",
		},
	} {
		got := fileURIPath(tc.uri)
		if got != tc.want {
			t.Errorf("fileURIPath(%q)=%q; want %q", tc.uri, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	base := realTempDir(t)
	fv := newFSView()

	for _, tc := range []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{
			raw:    "",
			wantOK: false,
		},
		{
			raw:    "  \t",
			wantOK: false,
		},
		{
			raw:    "meshes",
			want:   filepath.Join(base, "meshes"),
			wantOK: true,
		},
		{
			raw:    " ../assets/textures ",
			want:   filepath.Join(filepath.Dir(base), "assets", "textures"),
			wantOK: true,
		},
		{
			raw:    filepath.Join(base, "abs", "dir"),
			want:   filepath.Join(base, "abs", "dir"),
			wantOK: true,
		},
	} {
		got, ok := fv.normalize(tc.raw, base)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("normalize(%q, %q)=%q, %t; want %q, %t", tc.raw, base, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNormalize_FileURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix paths")
	}
	base := realTempDir(t)
	fv := newFSView()

	raw := "file://" + filepath.ToSlash(base) + "/sky%20box.png"
	got, ok := fv.normalize(raw, "/elsewhere")
	want := filepath.Join(base, "sky box.png")
	if got != want || !ok {
		t.Errorf("normalize(%q)=%q, %t; want %q, true", raw, got, ok, want)
	}
}
