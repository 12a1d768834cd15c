// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default [slog.Handler] used by spellfix,
// which writes text records to stderr with the level colored
// according to its severity, filtered by [UserLevel].
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging messages should be shown. It is set by the build
// tags debug and release, and by the -v and -q command line flags.
var UserLevel = defaultUserLevel

// UseColor is whether to color the level of log records.
// Color is also disabled when the output does not support it.
var UseColor = true

// userLeveler makes the handler follow changes to [UserLevel]
// made after the handler was created.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// SetDefaultLogger sets the default logger to one that writes
// to stderr through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a text handler writing to w that omits the
// time and colors the level when [UseColor] is on and w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok || !UseColor || out.Profile == termenv.Ascii {
					return a
				}
				a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(out, lvl)).Bold().String())
			}
			return a
		},
	})
}

// LevelColor returns the color used for the given level.
func LevelColor(out *termenv.Output, lvl slog.Level) termenv.Color {
	switch {
	case lvl >= slog.LevelError:
		return out.Color("1")
	case lvl >= slog.LevelWarn:
		return out.Color("3")
	case lvl >= slog.LevelInfo:
		return out.Color("4")
	default:
		return out.Color("8")
	}
}

// LevelFromFlags returns the [slog.Level] selected by the
// verbose and quiet command line flags, with quiet winning.
func LevelFromFlags(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return defaultUserLevel
	}
}
