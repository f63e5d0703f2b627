// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mjcfdeps

import (
	"slices"
	"strings"

	"github.com/beevik/etree"
)

// hintSet is a set of directory hints, keyed by lowercased attribute
// name (e.g. "meshdir"). Names are kept in discovery order, and
// directories of each name are unique absolute paths in discovery order.
//
// A nil *hintSet is an empty set.
type hintSet struct {
	order  []string
	byName map[string][]string
}

// names returns hint names in discovery order.
func (h *hintSet) names() []string {
	if h == nil {
		return nil
	}
	return h.order
}

// dirs returns directories for the hint name.
func (h *hintSet) dirs(name string) []string {
	if h == nil {
		return nil
	}
	return h.byName[name]
}

func (h *hintSet) size() int {
	if h == nil {
		return 0
	}
	return len(h.order)
}

func (h *hintSet) add(name string, dirs ...string) {
	if h.byName == nil {
		h.byName = make(map[string][]string)
	}
	cur, ok := h.byName[name]
	if !ok {
		h.order = append(h.order, name)
	}
	for _, dir := range dirs {
		if slices.Contains(cur, dir) {
			continue
		}
		cur = append(cur, dir)
	}
	h.byName[name] = cur
}

// isHintAttr reports whether the attribute name declares a directory hint.
func isHintAttr(name string) bool {
	name = strings.ToLower(name)
	return strings.HasSuffix(name, "dir") || strings.HasSuffix(name, "path")
}

// extractHints collects directory hints from every <compiler> element
// below root. Relative hints are resolved against docDir.
func (fv *fsview) extractHints(root *etree.Element, docDir string) *hintSet {
	h := &hintSet{}
	for _, compiler := range root.FindElements(".//compiler") {
		for _, attr := range compiler.Attr {
			if !isHintAttr(attr.Key) {
				continue
			}
			dir, ok := fv.normalize(attr.Value, docDir)
			if !ok {
				continue
			}
			h.add(strings.ToLower(attr.Key), dir)
		}
	}
	return h
}

// mergeHints returns hints visible in a document: for each name, the
// parent's directories followed by the document's own.
// Neither argument is modified.
func mergeHints(parent, local *hintSet) *hintSet {
	merged := &hintSet{}
	for _, name := range parent.names() {
		merged.add(name, parent.dirs(name)...)
	}
	for _, name := range local.names() {
		merged.add(name, local.dirs(name)...)
	}
	return merged
}
