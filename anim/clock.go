// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"strconv"
	"strings"
)

// ParseClock parses a SMIL clock value into seconds. A bare number is
// seconds, an "s" suffix is seconds, an "ms" suffix is milliseconds.
// Unparsable input resolves to 0: malformed timing authored through the
// editor degrades rather than erroring.
func ParseClock(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "ms"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "ms"))
		mult = 1.0 / 1000.0
	case strings.HasSuffix(s, "s"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "s"))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v * mult
}

// FormatClock formats seconds back into the "<number>s" wire convention
// used for Begin, Dur, End and RepeatDur.
func FormatClock(sec float64) string {
	return strconv.FormatFloat(sec, 'f', -1, 64) + "s"
}
