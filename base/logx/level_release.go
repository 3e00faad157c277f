// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build release

package logx

import "log/slog"

var defaultUserLevel = slog.LevelWarn
