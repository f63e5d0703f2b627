// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package mjcfdeps provides a file dependency scanner for MJCF scene
// documents. Starting from a root document, it follows <include> elements
// and collects every file referenced through `file`, `href` or `src`
// attributes, so a browser client can prefetch them before loading the
// model.
//
// References may take these forms
//
//	meshes/arm.stl            relative to the search order
//	/abs/path/arm.stl         absolute
//	file:///abs/path/arm.stl  file URI, percent-decoded
//	https://host/arm.stl      recorded verbatim, never fetched
//	models/env.glb@SceneMesh  archive member, archive resolved locally
//
// Relative references are searched in
//
//  1. directory hints declared for the element's tag (e.g. meshdir for
//     <mesh>), after any such hint set on the element itself
//  2. every other directory hint in discovery order
//  3. the directory of the referencing document
//  4. the directory of the root document
//
// For <mesh>, <texture>, <heightfield>, <hfield> and <skin>, assetdir
// belongs to tier 1, searched after the tag's own hint (e.g. meshdir).
// It is not ranked by discovery order with the other hints: when both
// assetdir and another hint such as texturedir hold a mesh of the same
// name, the assetdir copy wins even if texturedir was declared first.
// Index generators that treat assetdir as an ordinary hint may pick the
// other copy.
//
// Directory hints come from attributes ending in "dir" or "path" on
// <compiler> elements. An included document inherits the hints of the
// document that included it; its own hints are appended after them.
//
// Every result is a slash separated path relative to the root document's
// directory, which may start with ".." for files outside of it.
// Missing or unparsable files are reported as warnings and skipped; the
// only fatal condition is a missing root document.
package mjcfdeps
