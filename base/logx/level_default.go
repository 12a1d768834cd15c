// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug && !release

package logx

import "log/slog"

// spellfix is a command line tool, so routine reloads and
// dictionary statistics are shown by default.
var defaultUserLevel = slog.LevelInfo
