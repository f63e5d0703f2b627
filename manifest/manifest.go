// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package manifest writes dependency lists as JSON documents.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// DefaultName is the file name of a manifest next to its root document.
const DefaultName = "index.json"

// Options controls the manifest encoding.
type Options struct {
	// Indent is the number of spaces per indentation level.
	// Zero or negative writes compact JSON.
	Indent int

	// Gzip also writes a gzip compressed copy with .gz suffix,
	// for static servers that serve precompressed files.
	Gzip bool
}

// Marshal encodes files as a JSON list of strings.
// A nil files is encoded as an empty list.
func Marshal(files []string, opts Options) ([]byte, error) {
	if files == nil {
		files = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", opts.Indent))
	}
	err := enc.Encode(files)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write writes files to fname, creating parent directories as needed.
// It returns the paths written.
func Write(fname string, files []string, opts Options) ([]string, error) {
	buf, err := Marshal(files, opts)
	if err != nil {
		return nil, err
	}
	err = os.MkdirAll(filepath.Dir(fname), 0755)
	if err != nil {
		return nil, err
	}
	err = os.WriteFile(fname, buf, 0644)
	if err != nil {
		return nil, err
	}
	written := []string{fname}
	if !opts.Gzip {
		return written, nil
	}
	gzname := fname + ".gz"
	err = writeGzip(gzname, buf)
	if err != nil {
		return written, fmt.Errorf("write %s: %w", gzname, err)
	}
	return append(written, gzname), nil
}

func writeGzip(fname string, buf []byte) error {
	var b bytes.Buffer
	w, err := gzip.NewWriterLevel(&b, gzip.BestCompression)
	if err != nil {
		return err
	}
	w.Name = strings.TrimSuffix(filepath.Base(fname), ".gz")
	_, err = w.Write(buf)
	if err != nil {
		return err
	}
	err = w.Close()
	if err != nil {
		return err
	}
	return os.WriteFile(fname, b.Bytes(), 0644)
}
