// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timing resolves a record's begin/dur/repeat/fill fields and a
// query time into a normalized progress fraction, the first stage of
// the evaluation pipeline.
package timing

import (
	"math"

	"github.com/inkform/vganim/anim"
)

// State classifies where a query time falls relative to a record's
// active window.
type State int

const (
	// BeforeStart means the query time precedes the record's begin
	// offset; the target renders its unanimated pre-state.
	BeforeStart State = iota

	// Active means the record is contributing a time-varying value.
	Active

	// Frozen means the active duration has ended and fill=freeze holds
	// the final value.
	Frozen

	// Removed means the active duration has ended and fill=remove
	// reverts the target to its unanimated value.
	Removed
)

func (s State) String() string {
	switch s {
	case BeforeStart:
		return "before-start"
	case Active:
		return "active"
	case Frozen:
		return "frozen"
	case Removed:
		return "removed"
	}
	return "invalid"
}

// ActiveDuration returns the record's total active duration in seconds:
// repeatDur when present and positive, otherwise dur times the repeat
// count. An indefinite repeat count yields +Inf. An optional end field
// caps the result.
func ActiveDuration(rec *anim.Record) float64 {
	dur := rec.Duration()
	eff := dur * rec.RepeatCount.Times()
	if rec.RepeatCount.IsIndefinite() {
		eff = math.Inf(1)
	}
	if rd := anim.ParseClock(rec.RepeatDur); rd > 0 {
		eff = rd
	}
	if rec.End != "" {
		if e := anim.ParseClock(rec.End) - rec.BeginTime(); e >= 0 && e < eff {
			eff = e
		}
	}
	return eff
}

// Resolve computes the record's progress fraction at query time t
// (seconds). Progress is always in [0,1]. The returned State tells the
// caller whether the record contributes at all: BeforeStart and Removed
// records contribute nothing, Frozen holds progress 1, Active records
// feed progress through easing and interpolation.
func Resolve(rec *anim.Record, t float64) (float32, State) {
	begin := rec.BeginTime()
	local := t - begin
	if local < 0 {
		return 0, BeforeStart
	}
	dur := rec.Duration()
	eff := ActiveDuration(rec)
	if local >= eff {
		// instantaneous records (dur 0) land here immediately
		if rec.Fill == anim.FillFreeze {
			return 1, Frozen
		}
		return 0, Removed
	}
	if dur <= 0 {
		// instantaneous but still inside a repeatDur window
		if rec.Fill == anim.FillFreeze {
			return 1, Frozen
		}
		return 0, Removed
	}
	iter := math.Mod(local, dur)
	// clamp absorbs floating-point overshoot near iteration boundaries
	return clamp01(float32(iter / dur)), Active
}

func clamp01(p float32) float32 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
