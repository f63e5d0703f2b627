// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package clog_test is a test for clog package.
package clog_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/shaneholloman/muwanx/tools/assetindex/o11y/clog"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func Test(t *testing.T) {
	var buf syncBuffer
	ctx := clog.NewContext(context.Background(), clog.New(&buf, log.InfoLevel))

	clog.Infof(ctx, "Info")
	clog.Warningf(ctx, "Warning")
	clog.Errorf(ctx, "Error")
	clog.Debugf(ctx, "Debug")

	var wg sync.WaitGroup
	for _, id := range []string{"id1", "id2"} {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			cctx := clog.NewSpan(ctx, "trace-"+id, "span-"+id, map[string]string{
				"id": id})

			l := clog.FromContext(cctx)
			if got, want := l.Trace(), "trace-"+id; got != want {
				t.Errorf("Trace()=%q; want %q", got, want)
			}
			if got, want := l.SpanID(), "span-"+id; got != want {
				t.Errorf("SpanID()=%q; want %q", got, want)
			}
			clog.Warningf(cctx, "Child Warning")
		}()
	}
	wg.Wait()

	got := buf.String()
	for _, want := range []string{"Info", "Warning", "Error", "trace=trace-id1", "id=id2"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output doesn't contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Debug") {
		t.Errorf("log output contains debug entry at info level:\n%s", got)
	}
}

func TestFromContextDefault(t *testing.T) {
	l := clog.FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext(background)=nil; want default logger")
	}
	if !l.V(0) {
		t.Errorf("V(0)=false; want true")
	}
	if l.Trace() != "" || l.SpanID() != "" {
		t.Errorf("Trace()=%q SpanID()=%q; want empty for default logger", l.Trace(), l.SpanID())
	}
}

func TestV(t *testing.T) {
	var buf bytes.Buffer
	l := clog.New(&buf, log.InfoLevel)
	if l.V(1) {
		t.Errorf("V(1)=true at info level; want false")
	}
	l.SetLevel(log.DebugLevel)
	if !l.V(1) {
		t.Errorf("V(1)=false at debug level; want true")
	}
}
