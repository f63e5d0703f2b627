// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mjcfdeps

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// fsview is a view of filesystem per scan.
// Search orders visit the same directories for every reference in a
// document, so stat and symlink results are memoized for the lifetime of
// one scan. It is not shared between scans.
type fsview struct {
	real   map[string]string
	exists map[string]bool
}

func newFSView() *fsview {
	return &fsview{
		real:   make(map[string]string),
		exists: make(map[string]bool),
	}
}

// realpath returns the symlink resolved form of the absolute path name.
// Unlike filepath.EvalSymlinks, name doesn't need to exist: the longest
// existing prefix is resolved and the rest is appended as is.
// ".." is applied after the preceding components are resolved, so
// link/../x names a sibling of link's target, not of link.
func (fv *fsview) realpath(name string) string {
	if r, ok := fv.real[name]; ok {
		return r
	}
	r, err := filepath.EvalSymlinks(name)
	if err != nil {
		r = resolvePartial(name)
	}
	fv.real[name] = r
	return r
}

// resolvePartial resolves name component by component.
// Missing components are kept as is.
func resolvePartial(name string) string {
	vol := filepath.VolumeName(name)
	resolved := vol + string(filepath.Separator)
	for _, elem := range strings.FieldsFunc(name[len(vol):], isSeparator) {
		switch elem {
		case ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}
		next := filepath.Join(resolved, elem)
		if r, err := filepath.EvalSymlinks(next); err == nil {
			next = r
		}
		resolved = next
	}
	return resolved
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}

// exist reports whether name exists. Directories count as existing.
func (fv *fsview) exist(name string) bool {
	if ok, found := fv.exists[name]; found {
		return ok
	}
	_, err := os.Stat(name)
	ok := err == nil
	fv.exists[name] = ok
	return ok
}
