// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ParseList splits a semicolon-delimited wire list (values, keyTimes,
// keySplines) into trimmed entries, dropping empty trailing entries.
// Records always carry such lists as strings at the boundary.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinList re-serializes entries back to the semicolon-delimited wire
// form.
func JoinList(entries []string) string {
	return strings.Join(entries, ";")
}

// ParseFloats scans whitespace- or comma-separated numbers from a
// single list entry, such as a translate pair "10 20", a rotate triple
// "45 50 50", or the four control numbers of a keySpline. It returns an
// error if a non-numeric token is encountered; values parsed up to that
// point are still returned.
func ParseFloats(s string) ([]float32, error) {
	b := []byte(s)
	var out []float32
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '\r', ',':
			i++
			continue
		}
		v, n := pstrconv.ParseFloat(b[i:])
		if n == 0 {
			return out, fmt.Errorf("anim.ParseFloats: non-numeric token at %q", s[i:])
		}
		out = append(out, float32(v))
		i += n
	}
	return out, nil
}
