// Copyright 2026 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package clog provides context aware logging.
// It can store trace, spanID, arbitrary labels to each context.
// The main use case is to tag every diagnostic emitted while scanning
// one root document with the task it belongs to, so interleaved logs
// from concurrent scans stay readable.
package clog

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
)

type contextKeyType int

var contextKey contextKeyType

var defaultLogger = New(os.Stderr, log.InfoLevel)

// New creates a new Logger writing to w at the given level.
func New(w io.Writer, level log.Level) *Logger {
	return &Logger{
		l: log.NewWithOptions(w, log.Options{
			Level:           level,
			ReportTimestamp: false,
		}),
	}
}

// NewContext sets the given logger to the context.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// NewSpan sets a new logger.Span with the given labels to the context.
func NewSpan(ctx context.Context, trace, spanID string, labels map[string]string) context.Context {
	return NewContext(ctx, FromContext(ctx).Span(trace, spanID, labels))
}

// FromContext returns a logger in the context, or the default logger
// writing to stderr if it's not set.
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey).(*Logger)
	if !ok {
		return defaultLogger
	}
	return logger
}

// Logger holds the trace, spanID, arbitrary labels of the context.
type Logger struct {
	l *log.Logger

	trace  string
	spanID string
	labels map[string]string
}

// Span returns a sub logger for the trace span.
// Labels are attached to every entry in sorted key order.
func (l *Logger) Span(trace, spanID string, labels map[string]string) *Logger {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var kv []any
	if trace != "" {
		kv = append(kv, "trace", trace)
	}
	if spanID != "" {
		kv = append(kv, "span", spanID)
	}
	for _, k := range keys {
		kv = append(kv, k, labels[k])
	}
	return &Logger{
		l:      l.l.With(kv...),
		trace:  trace,
		spanID: spanID,
		labels: labels,
	}
}

// Trace returns trace of the logger.
func (l *Logger) Trace() string { return l.trace }

// SpanID returns span id of the logger.
func (l *Logger) SpanID() string { return l.spanID }

// SetLevel sets the minimum level to log.
func (l *Logger) SetLevel(level log.Level) {
	l.l.SetLevel(level)
}

// Infof logs at info log level in the manner of fmt.Printf.
func (l *Logger) Infof(format string, args ...any) {
	l.l.Info(fmt.Sprintf(format, args...))
}

// Infof logs at info log level in the manner of fmt.Printf.
func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Infof(format, args...)
}

// Warningf logs at warning log level in the manner of fmt.Printf.
func (l *Logger) Warningf(format string, args ...any) {
	l.l.Warn(fmt.Sprintf(format, args...))
}

// Warningf logs at warning log level in the manner of fmt.Printf.
func Warningf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Warningf(format, args...)
}

// Errorf logs at error log level in the manner of fmt.Printf.
func (l *Logger) Errorf(format string, args ...any) {
	l.l.Error(fmt.Sprintf(format, args...))
}

// Errorf logs at error log level in the manner of fmt.Printf.
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Errorf(format, args...)
}

// Debugf logs at debug log level in the manner of fmt.Printf.
func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).l.Debug(fmt.Sprintf(format, args...))
}

// V checks at verbose log level.
// Any level above zero is reported when the logger is at debug level.
func (l *Logger) V(level int) bool {
	if level <= 0 {
		return true
	}
	return l.l.GetLevel() <= log.DebugLevel
}
