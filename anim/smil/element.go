// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smil

import (
	"math"
	"strconv"
	"strings"
)

// element accumulates attributes in insertion order and renders the
// final markup string. Attributes with empty values are never added,
// so they are never emitted.
type element struct {
	tag   string
	attrs []xattr
	child string
}

type xattr struct {
	name, value string
}

func (e *element) add(name, value string) {
	if value == "" {
		return
	}
	e.attrs = append(e.attrs, xattr{name, value})
}

func (e *element) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.tag)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.name)
		sb.WriteString(`="`)
		sb.WriteString(escape(a.value))
		sb.WriteByte('"')
	}
	if e.child == "" {
		sb.WriteString("/>")
		return sb.String()
	}
	sb.WriteByte('>')
	sb.WriteString(e.child)
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteByte('>')
	return sb.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escape escapes the XML attribute metacharacters & < > ".
func escape(s string) string {
	return escaper.Replace(s)
}

// roundNumbers rounds every numeric token in a value string to the
// given decimal precision, leaving non-numeric tokens and the original
// separators untouched. A token is the maximal run between whitespace,
// comma and semicolon separators, and is only rewritten when the whole
// token parses as a number, so colors, clock values and keywords pass
// through unchanged.
func roundNumbers(s string, prec int) string {
	if s == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(s))
	i := 0
	for i < len(s) {
		if isSep(s[i]) {
			sb.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && !isSep(s[j]) {
			j++
		}
		tok := s[i:j]
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			sb.WriteString(formatNumber(v, prec))
		} else {
			sb.WriteString(tok)
		}
		i = j
	}
	return sb.String()
}

func isSep(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', ';':
		return true
	}
	return false
}

// formatNumber renders v rounded to prec decimals, without trailing
// zeros.
func formatNumber(v float64, prec int) string {
	pow := math.Pow(10, float64(prec))
	v = math.Round(v*pow) / pow
	return strconv.FormatFloat(v, 'f', -1, 64)
}
