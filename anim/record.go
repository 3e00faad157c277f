// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
)

// Record is one declarative animation unit as persisted by the record
// store. All timing fields are clock-value strings ("2s", "500ms", or a
// bare number of seconds) and all keyframe lists are semicolon-delimited
// strings, matching the wire convention. Records are created and edited
// by the editing surface; the evaluation and compilation code in the
// subpackages only ever reads them.
type Record struct {

	// ID is the opaque stable identifier of this animation, unique
	// across the document.
	ID string `json:"id"`

	// Kind is the animation kind, dispatched over exhaustively.
	Kind Kind `json:"type"`

	// TargetID is the id of the element whose property is animated.
	TargetID string `json:"targetElementId"`

	// AttributeName is the animated style/attribute key, for
	// [Attribute] and [Set] records.
	AttributeName string `json:"attributeName,omitempty"`

	// TransformKind is the animated transform component, for
	// [Transform] records.
	TransformKind TransformKind `json:"transformType,omitempty"`

	// Path is inline motion path data, for [Motion] records.
	// Mutually exclusive with MPath; MPath wins when both are set.
	Path string `json:"path,omitempty"`

	// MPath references another path element by id to supply the motion
	// trajectory, taking precedence over Path.
	MPath string `json:"motionPathRef,omitempty"`

	// Rotate is the motion rotate mode: "none", "auto", "auto-reverse",
	// or a fixed angle in degrees.
	Rotate string `json:"rotateMode,omitempty"`

	// KeyPoints optionally redistributes motion progress along the
	// path, as a semicolon list of fractions.
	KeyPoints string `json:"keyPoints,omitempty"`

	// From and To are the two endpoint values. Ignored when Values is
	// set.
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	// By is a relative delta endpoint; only consulted when both From
	// and To are absent.
	By string `json:"by,omitempty"`

	// Values is the ordered keyframe list, semicolon-delimited. Takes
	// precedence over From/To when both are present.
	Values string `json:"values,omitempty"`

	// Begin is the start offset, default "0s".
	Begin string `json:"begin,omitempty"`

	// Dur is one iteration's duration, default "0s" (instantaneous).
	Dur string `json:"dur,omitempty"`

	// End optionally hard-stops the active window.
	End string `json:"end,omitempty"`

	// RepeatCount is the iteration count, fractional or indefinite.
	RepeatCount Count `json:"repeatCount,omitempty"`

	// RepeatDur caps the total active duration, overriding the
	// RepeatCount-derived duration when present and positive.
	RepeatDur string `json:"repeatDur,omitempty"`

	// Fill is the post-completion policy, default remove.
	Fill Fill `json:"fill,omitempty"`

	// CalcMode is the interpolation timing mode, default linear.
	CalcMode CalcMode `json:"calcMode,omitempty"`

	// KeyTimes pins keyframes to progress fractions in [0,1],
	// semicolon-delimited, same cardinality as the value count.
	KeyTimes string `json:"keyTimes,omitempty"`

	// KeySplines gives one cubic-bezier 4-tuple per keyframe segment,
	// required when CalcMode is spline.
	KeySplines string `json:"keySplines,omitempty"`

	// Additive and Accumulate are the SMIL composition switches,
	// defaulting to replace/none.
	Additive   Additive   `json:"additive,omitempty"`
	Accumulate Accumulate `json:"accumulate,omitempty"`
}

// BeginTime returns the start offset in seconds.
func (r *Record) BeginTime() float64 {
	return ParseClock(r.Begin)
}

// Duration returns one iteration's duration in seconds.
func (r *Record) Duration() float64 {
	return ParseClock(r.Dur)
}

// ValueList returns the parsed keyframe values, or nil if Values is
// not set.
func (r *Record) ValueList() []string {
	return ParseList(r.Values)
}

// KeyTimeList returns the parsed keyTimes fractions, or nil when unset
// or malformed.
func (r *Record) KeyTimeList() []float32 {
	entries := ParseList(r.KeyTimes)
	if len(entries) == 0 {
		return nil
	}
	out := make([]float32, 0, len(entries))
	for _, e := range entries {
		vs, err := ParseFloats(e)
		if err != nil || len(vs) == 0 {
			return nil
		}
		out = append(out, vs[0])
	}
	return out
}

// KeySplineList returns the parsed keySplines control tuples. Entries
// that do not contain exactly four numbers produce an error.
func (r *Record) KeySplineList() ([][4]float32, error) {
	entries := ParseList(r.KeySplines)
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([][4]float32, 0, len(entries))
	for _, e := range entries {
		vs, err := ParseFloats(e)
		if err != nil {
			return nil, err
		}
		if len(vs) != 4 {
			return nil, fmt.Errorf("anim: keySpline %q has %d control numbers, need 4", e, len(vs))
		}
		out = append(out, [4]float32{vs[0], vs[1], vs[2], vs[3]})
	}
	return out, nil
}

// Check verifies the structural invariants that the editing surface is
// supposed to maintain: keyTimes cardinality matches the value count,
// and spline mode carries one keySpline per keyframe segment. It does
// not validate kind-specific mandatory fields; see smil.Validate for
// the export-time rules.
func (r *Record) Check() error {
	nv := len(r.ValueList())
	if kt := ParseList(r.KeyTimes); len(kt) > 0 && nv > 0 && len(kt) != nv {
		return fmt.Errorf("anim: record %s has %d values but %d keyTimes", r.ID, nv, len(kt))
	}
	if r.CalcMode == Spline {
		ks, err := r.KeySplineList()
		if err != nil {
			return fmt.Errorf("anim: record %s: %w", r.ID, err)
		}
		if len(ks) == 0 {
			return fmt.Errorf("anim: record %s has calcMode=spline but no keySplines", r.ID)
		}
		if nv >= 2 && len(ks) != nv-1 {
			return fmt.Errorf("anim: record %s has %d values but %d keySplines, need %d", r.ID, nv, len(ks), nv-1)
		}
	}
	return nil
}
