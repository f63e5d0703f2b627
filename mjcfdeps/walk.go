// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mjcfdeps

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/shaneholloman/muwanx/tools/assetindex/o11y/clog"
)

// referenceAttrs are attributes that may reference external files,
// whatever the element is.
var referenceAttrs = []string{"file", "href", "src"}

// walker is the state of one scan from a root document.
type walker struct {
	fv      *fsview
	rootDir string

	// canonical path -> true. marked before parsing,
	// so include cycles stop at the second visit.
	visited map[string]bool

	// root relative path or opaque text -> true.
	collected map[string]bool

	warnings []Warning
}

func newWalker(fv *fsview, rootDir string) *walker {
	return &walker{
		fv:        fv,
		rootDir:   rootDir,
		visited:   make(map[string]bool),
		collected: make(map[string]bool),
	}
}

// rel returns path relative to the root directory, slash separated.
// It may start with ".." when path is outside of the root directory.
func (w *walker) rel(path string) string {
	rel, err := filepath.Rel(w.rootDir, path)
	if err != nil {
		// e.g. other volume on windows.
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (w *walker) warn(ctx context.Context, kind WarningKind, path, detail string) {
	wn := Warning{Kind: kind, Path: path, Detail: detail}
	w.warnings = append(w.warnings, wn)
	clog.Warningf(ctx, "%s", wn)
}

// walk scans the document fname, inheriting parent hints.
// It returns an error only when ctx is done.
func (w *walker) walk(ctx context.Context, fname string, parent *hintSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := w.fv.realpath(fname)
	if w.visited[doc] {
		return nil
	}
	w.visited[doc] = true
	w.collected[w.rel(doc)] = true

	if !w.fv.exist(doc) {
		w.warn(ctx, MissingInclude, doc, "")
		return nil
	}
	root, err := parseDocument(doc)
	if err != nil {
		w.warn(ctx, ParseFailure, doc, err.Error())
		return nil
	}
	docDir := filepath.Dir(doc)
	hints := mergeHints(parent, w.fv.extractHints(root, docDir))
	if clog.FromContext(ctx).V(1) {
		clog.Debugf(ctx, "scan %s hints:%q", w.rel(doc), hints.names())
	}

	for _, el := range elements(root) {
		var rc *refContext
		for _, attr := range referenceAttrs {
			a := el.SelectAttr(attr)
			if a == nil {
				continue
			}
			if rc == nil {
				rc = &refContext{
					tag:      el.Tag,
					docDir:   docDir,
					hints:    hints,
					elemDirs: w.fv.elementDirs(el, docDir),
				}
			}
			rc.attr = attr
			switch ref := w.resolve(ctx, a.Value, *rc).(type) {
			case localRef:
				w.collected[w.rel(ref.path)] = true
				if el.Tag == "include" && attr == "file" {
					err := w.walk(ctx, ref.path, hints)
					if err != nil {
						return err
					}
				}
			case opaqueRef:
				w.collected[ref.text] = true
			}
		}
	}
	return nil
}

// parseDocument reads and parses the XML document fname.
// The file is closed before it returns. A document must have exactly one
// root element.
func parseDocument(fname string) (*etree.Element, error) {
	doc := etree.NewDocument()
	err := doc.ReadFromFile(fname)
	if err != nil {
		return nil, err
	}
	switch roots := doc.ChildElements(); len(roots) {
	case 0:
		return nil, fmt.Errorf("no element found")
	case 1:
		return roots[0], nil
	default:
		return nil, fmt.Errorf("junk after document element: <%s>", roots[1].Tag)
	}
}

// elements returns root and all of its descendant elements in document order.
func elements(root *etree.Element) []*etree.Element {
	var els []*etree.Element
	stack := []*etree.Element{root}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		els = append(els, el)
		children := el.ChildElements()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return els
}
