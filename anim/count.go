// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Count is a repeat count: a positive, possibly fractional number of
// iterations, or [Indefinite]. On the wire it is either a JSON number
// or the literal string "indefinite". The zero value means unset
// (one iteration).
type Count float64

// Indefinite is the unbounded repeat count sentinel.
const Indefinite Count = -1

// IsIndefinite reports whether the count is unbounded.
func (c Count) IsIndefinite() bool {
	return c < 0
}

// Times returns the number of iterations, treating unset as 1.
// It is not meaningful for an indefinite count.
func (c Count) Times() float64 {
	if c <= 0 {
		return 1
	}
	return float64(c)
}

// String returns the wire form: "indefinite" or a plain number.
func (c Count) String() string {
	if c.IsIndefinite() {
		return "indefinite"
	}
	if c == 0 {
		return ""
	}
	return strconv.FormatFloat(float64(c), 'f', -1, 64)
}

// MarshalJSON emits a number, or "indefinite" for an unbounded count.
func (c Count) MarshalJSON() ([]byte, error) {
	if c.IsIndefinite() {
		return []byte(`"indefinite"`), nil
	}
	return json.Marshal(float64(c))
}

// UnmarshalJSON accepts a JSON number or the string "indefinite".
// Anything else leaves the count unset.
func (c *Count) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "indefinite" {
		*c = Indefinite
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*c = 0
		return nil
	}
	*c = Count(v)
	return nil
}
