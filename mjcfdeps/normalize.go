// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mjcfdeps

import (
	"os"
	"path/filepath"
	"strings"
)

const fileScheme = "file://"

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// normalize converts raw into an absolute, symlink resolved path.
// raw may be a file URI, an absolute path or a path relative to baseDir.
// It returns false for an empty raw. The path doesn't need to exist.
func (fv *fsview) normalize(raw, baseDir string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	if hasPrefixFold(value, fileScheme) {
		p := fileURIPath(value)
		if !filepath.IsAbs(p) {
			wd, err := os.Getwd()
			if err != nil {
				return "", false
			}
			p = joinRaw(wd, p)
		}
		return fv.realpath(p), true
	}
	if filepath.IsAbs(value) {
		return fv.realpath(value), true
	}
	return fv.realpath(joinRaw(baseDir, value)), true
}

// joinRaw joins dir and name without cleaning, so ".." in name is
// resolved against dir's symlink targets by realpath.
func joinRaw(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// fileURIPath returns the local path of a file URI.
// Query and fragment are dropped and the path is percent-decoded. A host
// part becomes the leading path segment, so file://server/share/x maps
// to /server/share/x.
func fileURIPath(value string) string {
	rest := value[len(fileScheme):]
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	host, p, found := strings.Cut(rest, "/")
	if found {
		p = "/" + unescapePath(p)
	}
	if host != "" {
		p = "/" + host + p
	}
	return filepath.FromSlash(p)
}

// unescapePath decodes each valid %XX escape in s.
// Malformed escapes are kept literally.
func unescapePath(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
