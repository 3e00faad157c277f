// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smil compiles animation records into standards-compliant
// declarative animation markup: <animate>, <animateTransform>,
// <animateMotion> and <set> elements. Compilation is independent of the
// simulation in simulate; the produced markup is embedded under the
// target element by the exporting collaborator, and a conforming
// renderer interprets it to the same effect the simulator previews.
package smil

import (
	"fmt"
	"strings"

	"github.com/inkform/vganim/anim"
	"github.com/inkform/vganim/base/logx"
)

// DefaultPrecision is the decimal precision numeric tokens are rounded
// to when no explicit precision is configured.
const DefaultPrecision = 4

// Compiler carries compilation options. The zero value uses
// [DefaultPrecision].
type Compiler struct {
	// Precision is the number of decimal places numeric value tokens
	// are rounded to before emission.
	Precision int
}

// Compile compiles one record to markup with default options. A record
// failing validation, including an unknown animation type, returns an
// error: compilation is an explicit export action where silent omission
// would corrupt output.
func Compile(rec *anim.Record) (string, error) {
	return Compiler{}.Compile(rec)
}

// CompileAll compiles each record independently, collecting per-record
// failures as warnings instead of aborting the batch. A malformed
// record never blocks compilation of the others.
func CompileAll(records []*anim.Record) (elements []string, warnings []string) {
	return Compiler{}.CompileAll(records)
}

// CompileAll is the batch form of [Compiler.Compile].
func (c Compiler) CompileAll(records []*anim.Record) (elements []string, warnings []string) {
	for _, rec := range records {
		s, err := c.Compile(rec)
		if err != nil {
			warnings = append(warnings, err.Error())
			logx.Warn("smil: skipping record", "err", err)
			continue
		}
		elements = append(elements, s)
	}
	return elements, warnings
}

// Compile compiles one record into its markup element string.
func (c Compiler) Compile(rec *anim.Record) (string, error) {
	res := Validate(rec)
	if !res.Valid {
		id := ""
		if rec != nil {
			id = rec.ID
		}
		return "", fmt.Errorf("smil: cannot compile record %q: %s", id, strings.Join(res.Errors, "; "))
	}
	prec := c.Precision
	if prec <= 0 {
		prec = DefaultPrecision
	}
	e := &element{}
	switch rec.Kind {
	case anim.Attribute:
		e.tag = "animate"
		e.add("attributeName", rec.AttributeName)
		c.values(e, rec, prec)
		c.timing(e, rec)
		c.composition(e, rec)
	case anim.Set:
		e.tag = "set"
		e.add("attributeName", rec.AttributeName)
		e.add("to", roundNumbers(rec.To, prec))
		c.timing(e, rec)
	case anim.Transform:
		e.tag = "animateTransform"
		e.add("attributeName", "transform")
		e.add("type", string(rec.TransformKind))
		c.values(e, rec, prec)
		c.timing(e, rec)
		c.composition(e, rec)
	case anim.Motion:
		e.tag = "animateMotion"
		if rec.MPath != "" {
			// mpath wins: the inline path attribute is dropped even
			// when both are set on the record
			e.child = `<mpath href="#` + escape(rec.MPath) + `"/>`
		} else {
			e.add("path", roundNumbers(rec.Path, prec))
		}
		e.add("keyPoints", roundNumbers(rec.KeyPoints, prec))
		e.add("rotate", roundNumbers(rec.Rotate, prec))
		c.values(e, rec, prec)
		c.timing(e, rec)
		c.composition(e, rec)
	}
	return e.String(), nil
}

// values emits the value source and easing attributes shared by
// animate, animateTransform and animateMotion.
func (c Compiler) values(e *element, rec *anim.Record, prec int) {
	e.add("from", roundNumbers(rec.From, prec))
	e.add("to", roundNumbers(rec.To, prec))
	e.add("by", roundNumbers(rec.By, prec))
	e.add("values", roundNumbers(rec.Values, prec))
	e.add("keyTimes", roundNumbers(rec.KeyTimes, prec))
	e.add("keySplines", roundNumbers(rec.KeySplines, prec))
	if !rec.CalcMode.IsLinear() {
		e.add("calcMode", string(rec.CalcMode))
	}
}

// timing emits the begin/dur/end/repeat/fill attributes common to all
// kinds. Clock-value strings pass through as authored.
func (c Compiler) timing(e *element, rec *anim.Record) {
	e.add("begin", rec.Begin)
	e.add("dur", rec.Dur)
	e.add("end", rec.End)
	e.add("repeatCount", rec.RepeatCount.String())
	e.add("repeatDur", rec.RepeatDur)
	e.add("fill", string(rec.Fill))
}

// composition emits additive/accumulate only when non-default, keeping
// the markup minimal.
func (c Compiler) composition(e *element, rec *anim.Record) {
	if rec.Additive == anim.AdditiveSum {
		e.add("additive", "sum")
	}
	if rec.Accumulate == anim.AccumulateSum {
		e.add("accumulate", "sum")
	}
}
