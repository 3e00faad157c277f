// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// ParseHexColor parses a "#rrggbb" or "#rgb" hex color, the only color
// syntax animation records carry. Shorthand digits are expanded by
// doubling each nibble.
func ParseHexColor(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8 & 0xff), uint8(v & 0xff), true
}

// InterpolateColor interpolates two hex color endpoints channel-wise at
// progress p and formats the result as "rgb(r, g, b)" with each channel
// rounded to the nearest integer. If either endpoint is malformed, the
// interpolation degrades to a hard switch at progress 0.5 between the
// raw strings.
func InterpolateColor(from, to string, p float32) string {
	fr, fg, fb, fok := ParseHexColor(from)
	tr, tg, tb, tok := ParseHexColor(to)
	if !fok || !tok {
		if p < 0.5 {
			return from
		}
		return to
	}
	r := math32.Round(lerp(float32(fr), float32(tr), p))
	g := math32.Round(lerp(float32(fg), float32(tg), p))
	b := math32.Round(lerp(float32(fb), float32(tb), p))
	return fmt.Sprintf("rgb(%d, %d, %d)", int(r), int(g), int(b))
}

func lerp(a, b, p float32) float32 {
	return a + (b-a)*p
}

// colorAttributes are the attribute names interpolated as colors.
var colorAttributes = map[string]bool{
	"fill":        true,
	"stroke":      true,
	"stop-color":  true,
	"color":       true,
	"flood-color": true,
}
