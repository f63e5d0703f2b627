// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mjcfdeps

import (
	"strings"

	"github.com/beevik/etree"
)

// tagHints maps MJCF tags to the hint names searched first for their
// references. assetdir is MuJoCo's shared default for asset directories.
var tagHints = map[string][]string{
	"include":     {"includedir"},
	"mesh":        {"meshdir", "assetdir"},
	"texture":     {"texturedir", "assetdir"},
	"heightfield": {"heightfielddir", "assetdir"},
	"hfield":      {"heightfielddir", "assetdir"},
	"skin":        {"skindir", "assetdir"},
}

// searchOrder returns directories to search for a relative reference on
// an element with tag, deduplicated in order of
//
//	elemDirs, hints for tag, all other hints, docDir, rootDir.
//
// rootDir may be empty.
func searchOrder(tag string, elemDirs []string, hints *hintSet, docDir, rootDir string) []string {
	var order []string
	order = append(order, elemDirs...)
	for _, name := range tagHints[tag] {
		order = append(order, hints.dirs(name)...)
	}
	for _, name := range hints.names() {
		order = append(order, hints.dirs(name)...)
	}
	order = append(order, docDir)
	if rootDir != "" {
		order = append(order, rootDir)
	}
	return uniqueStrings(order)
}

func uniqueStrings(list []string) []string {
	seen := make(map[string]bool, len(list))
	ret := list[:0]
	for _, s := range list {
		if seen[s] {
			continue
		}
		seen[s] = true
		ret = append(ret, s)
	}
	return ret
}

// elementDirs returns directory hints set on the element itself for its
// own tag, e.g. meshdir on <mesh>.
func (fv *fsview) elementDirs(el *etree.Element, docDir string) []string {
	names := tagHints[el.Tag]
	if len(names) == 0 {
		return nil
	}
	var dirs []string
	for _, name := range names {
		for _, attr := range el.Attr {
			if strings.ToLower(attr.Key) != name {
				continue
			}
			if dir, ok := fv.normalize(attr.Value, docDir); ok {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs
}
