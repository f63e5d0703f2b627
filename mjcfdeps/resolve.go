// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mjcfdeps

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/shaneholloman/muwanx/tools/assetindex/o11y/clog"
)

// reference is a resolved attribute value.
// It is either localRef or opaqueRef. nil means nothing was resolved.
type reference interface {
	isReference()
}

// localRef is an existing local file, symlink resolved.
type localRef struct {
	path string
}

// opaqueRef is recorded verbatim: a remote URL or archive@member.
type opaqueRef struct {
	text string
}

func (localRef) isReference()  {}
func (opaqueRef) isReference() {}

// refContext is where a reference appears.
type refContext struct {
	tag      string
	attr     string
	docDir   string
	hints    *hintSet
	elemDirs []string
}

// resolve classifies raw and resolves it.
// Failures are reported as warnings and yield nil.
func (w *walker) resolve(ctx context.Context, raw string, rc refContext) reference {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	if hasPrefixFold(value, "http://") || hasPrefixFold(value, "https://") {
		return opaqueRef{text: value}
	}
	if hasPrefixFold(value, fileScheme) {
		p, ok := w.fv.normalize(value, rc.docDir)
		if !ok || !w.fv.exist(p) {
			w.warn(ctx, MissingFileURI, value, "")
			return nil
		}
		return localRef{path: p}
	}
	if i := strings.IndexByte(value, '@'); i > 0 {
		archive, member := value[:i], value[i+1:]
		if member == "" {
			w.warn(ctx, InvalidArchive, value, "empty member")
			return nil
		}
		p, ok := w.resolveLocal(ctx, archive, rc)
		if !ok {
			return nil
		}
		return opaqueRef{text: w.rel(p) + "@" + member}
	}
	p, ok := w.resolveLocal(ctx, value, rc)
	if !ok {
		return nil
	}
	return localRef{path: p}
}

// resolveLocal finds value on the local filesystem.
// Absolute paths are checked as is; relative paths are looked up in the
// search order of rc.
func (w *walker) resolveLocal(ctx context.Context, value string, rc refContext) (string, bool) {
	if filepath.IsAbs(value) {
		p := w.fv.realpath(value)
		if !w.fv.exist(p) {
			w.warn(ctx, MissingAbsoluteAsset, p, "")
			return "", false
		}
		return p, true
	}
	dirs := searchOrder(rc.tag, rc.elemDirs, rc.hints, rc.docDir, w.rootDir)
	logger := clog.FromContext(ctx)
	if logger.V(1) {
		clog.Debugf(ctx, "find <%s %s=%q> dirs:%q", rc.tag, rc.attr, value, dirs)
	}
	for _, dir := range dirs {
		p := w.fv.realpath(joinRaw(dir, value))
		if w.fv.exist(p) {
			return p, true
		}
	}
	w.warn(ctx, MissingAsset, value, searchedDetail(len(dirs)))
	return "", false
}
