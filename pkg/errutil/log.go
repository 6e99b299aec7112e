// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package errutil bridges oops errors into structured logs and tests.
package errutil

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
)

// LogError logs err at error level with its oops code and context, if any.
// Extra attrs are appended after the error attributes.
func LogError(logger *slog.Logger, msg string, err error, attrs ...any) {
	logger.Log(context.Background(), slog.LevelError, msg, append(Attrs(err), attrs...)...)
}

// LogWarn logs err at warn level with its oops code and context, if any.
func LogWarn(logger *slog.Logger, msg string, err error, attrs ...any) {
	logger.Log(context.Background(), slog.LevelWarn, msg, append(Attrs(err), attrs...)...)
}

// Attrs returns slog key/value pairs describing err.
// For oops errors these are the message, code and context; for standard errors
// only the error itself.
func Attrs(err error) []any {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return []any{"error", err}
	}
	attrs := []any{"error", oopsErr.Error()}
	if code := oopsErr.Code(); code != nil {
		attrs = append(attrs, "code", code)
	}
	if ctx := oopsErr.Context(); len(ctx) > 0 {
		attrs = append(attrs, "context", ctx)
	}
	return attrs
}

// Code returns the oops code of err, or nil when err carries none.
func Code(err error) any {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return nil
	}
	return oopsErr.Code()
}
