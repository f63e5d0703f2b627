// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mjcfdeps

import (
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
)

func hintsMap(h *hintSet) map[string][]string {
	m := make(map[string][]string)
	for _, name := range h.names() {
		m[name] = h.dirs(name)
	}
	return m
}

func TestIsHintAttr(t *testing.T) {
	for name, want := range map[string]bool{
		"meshdir":       true,
		"TextureDir":    true,
		"assetpath":     true,
		"includePATH":   true,
		"angle":         false,
		"dirname":       false,
		"autolimits":    false,
		"fitaabb":       false,
		"discardvisual": false,
	} {
		if got := isHintAttr(name); got != want {
			t.Errorf("isHintAttr(%q)=%t; want %t", name, got, want)
		}
	}
}

func TestExtractHints(t *testing.T) {
	base := realTempDir(t)
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<mujoco model="go2">
  <compiler angle="radian" meshdir="assets" TextureDir="tex" assetpath=""/>
  <default>
    <compiler texturedir="tex" skindir="skins"/>
  </default>
  <compiler meshdir="more" />
  <compiler meshdir="assets" />
</mujoco>`)
	if err != nil {
		t.Fatal(err)
	}

	fv := newFSView()
	got := fv.extractHints(doc.Root(), base)

	wantNames := []string{"meshdir", "texturedir", "skindir"}
	if diff := cmp.Diff(wantNames, got.names()); diff != "" {
		t.Errorf("extractHints names diff -want +got:\n%s", diff)
	}
	want := map[string][]string{
		"meshdir":    {filepath.Join(base, "assets"), filepath.Join(base, "more")},
		"texturedir": {filepath.Join(base, "tex")},
		"skindir":    {filepath.Join(base, "skins")},
	}
	if diff := cmp.Diff(want, hintsMap(got)); diff != "" {
		t.Errorf("extractHints diff -want +got:\n%s", diff)
	}
}

func TestExtractHints_NoCompiler(t *testing.T) {
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<mujoco><asset><mesh meshdir="x" file="a.stl"/></asset></mujoco>`)
	if err != nil {
		t.Fatal(err)
	}
	fv := newFSView()
	got := fv.extractHints(doc.Root(), realTempDir(t))
	if got.size() != 0 {
		t.Errorf("extractHints()=%v; want empty", hintsMap(got))
	}
}

func TestMergeHints(t *testing.T) {
	parent := &hintSet{}
	parent.add("meshdir", "/p/meshes")
	parent.add("texturedir", "/p/textures")

	local := &hintSet{}
	local.add("skindir", "/c/skins")
	local.add("meshdir", "/c/meshes", "/p/meshes")

	got := mergeHints(parent, local)

	wantNames := []string{"meshdir", "texturedir", "skindir"}
	if diff := cmp.Diff(wantNames, got.names()); diff != "" {
		t.Errorf("mergeHints names diff -want +got:\n%s", diff)
	}
	want := map[string][]string{
		"meshdir":    {"/p/meshes", "/c/meshes"},
		"texturedir": {"/p/textures"},
		"skindir":    {"/c/skins"},
	}
	if diff := cmp.Diff(want, hintsMap(got)); diff != "" {
		t.Errorf("mergeHints diff -want +got:\n%s", diff)
	}

	// inputs are not modified.
	if diff := cmp.Diff([]string{"/p/meshes"}, parent.dirs("meshdir")); diff != "" {
		t.Errorf("parent modified -want +got:\n%s", diff)
	}
}

func TestMergeHints_Nil(t *testing.T) {
	local := &hintSet{}
	local.add("meshdir", "/c/meshes")
	got := mergeHints(nil, local)
	if diff := cmp.Diff(map[string][]string{"meshdir": {"/c/meshes"}}, hintsMap(got)); diff != "" {
		t.Errorf("mergeHints(nil, local) diff -want +got:\n%s", diff)
	}
	if got := mergeHints(nil, nil); got.size() != 0 {
		t.Errorf("mergeHints(nil, nil)=%v; want empty", hintsMap(got))
	}
}
