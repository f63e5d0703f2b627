// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mjcfdeps

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// ErrDocumentNotFound is returned when the root document doesn't exist.
// The returned error also matches fs.ErrNotExist.
var ErrDocumentNotFound = errors.New("document not found")

// WarningKind is a kind of recoverable anomaly found during a scan.
type WarningKind int

const (
	// MissingAsset is a relative reference not found in any search directory.
	MissingAsset WarningKind = iota + 1
	// MissingAbsoluteAsset is an absolute reference that doesn't exist.
	MissingAbsoluteAsset
	// MissingFileURI is a file:// reference that doesn't exist.
	MissingFileURI
	// ParseFailure is a document that couldn't be parsed.
	ParseFailure
	// MissingInclude is an included document that doesn't exist.
	MissingInclude
	// InvalidArchive is an archive reference with an empty member.
	InvalidArchive
)

func (k WarningKind) String() string {
	switch k {
	case MissingAsset:
		return "missing asset"
	case MissingAbsoluteAsset:
		return "missing absolute asset"
	case MissingFileURI:
		return "missing file URI"
	case ParseFailure:
		return "failed to parse"
	case MissingInclude:
		return "missing include"
	case InvalidArchive:
		return "invalid archive reference"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a reference or document skipped during a scan.
type Warning struct {
	Kind WarningKind
	// Path is the reference as written, or the canonical path of
	// the document or asset.
	Path   string
	Detail string
}

func (w Warning) String() string {
	if w.Detail == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Path)
	}
	return fmt.Sprintf("%s: %s (%s)", w.Kind, w.Path, w.Detail)
}

func searchedDetail(n int) string {
	return fmt.Sprintf("searched %d locations", n)
}

// Result is a result of Scan.
type Result struct {
	// Files are sorted unique dependencies of the root document,
	// including the root document itself, relative to the root
	// document's directory. Remote URLs and archive@member
	// references are included verbatim.
	Files []string

	// Warnings are skipped references and documents, in the order found.
	Warnings []Warning
}

// Scan scans the MJCF document rootFile and the documents it includes.
// Each call starts from an empty state, so concurrent calls are safe.
func Scan(ctx context.Context, rootFile string) (*Result, error) {
	fname, err := filepath.Abs(rootFile)
	if err != nil {
		return nil, err
	}
	fv := newFSView()
	fname = fv.realpath(fname)
	if !fv.exist(fname) {
		return nil, fmt.Errorf("%w: %s: %w", ErrDocumentNotFound, fname, fs.ErrNotExist)
	}
	w := newWalker(fv, filepath.Dir(fname))
	err = w.walk(ctx, fname, nil)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(w.collected))
	for f := range w.collected {
		files = append(files, f)
	}
	sort.Strings(files)
	return &Result{
		Files:    files,
		Warnings: w.warnings,
	}, nil
}

// Collect returns sorted dependencies of the MJCF document rootFile.
// See Result.Files.
func Collect(ctx context.Context, rootFile string) ([]string, error) {
	r, err := Scan(ctx, rootFile)
	if err != nil {
		return nil, err
	}
	return r.Files, nil
}
