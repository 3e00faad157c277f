// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// Kind is the kind of declarative animation a [Record] represents.
// It is a closed set: evaluation and compilation both dispatch over it
// exhaustively, and anything outside the set is skipped (evaluation) or
// rejected (compilation).
type Kind string

const (
	// Attribute animates a style or presentation attribute (<animate>).
	Attribute Kind = "attribute-animate"

	// Transform animates one transform component (<animateTransform>).
	Transform Kind = "transform-animate"

	// Motion moves the target along a path (<animateMotion>).
	Motion Kind = "motion-animate"

	// Set applies a constant value for a time window (<set>).
	Set Kind = "set"
)

// Valid reports whether k is one of the known animation kinds.
func (k Kind) Valid() bool {
	switch k {
	case Attribute, Transform, Motion, Set:
		return true
	}
	return false
}

// TransformKind is the transform component a [Transform] record animates.
type TransformKind string

const (
	Translate TransformKind = "translate"
	Scale     TransformKind = "scale"
	Rotate    TransformKind = "rotate"
	SkewX     TransformKind = "skewX"
	SkewY     TransformKind = "skewY"
)

// Valid reports whether t is one of the known transform components.
func (t TransformKind) Valid() bool {
	switch t {
	case Translate, Scale, Rotate, SkewX, SkewY:
		return true
	}
	return false
}

// CalcMode selects the interpolation timing mode. The zero value means
// [Linear], the SMIL default.
type CalcMode string

const (
	Linear   CalcMode = "linear"
	Discrete CalcMode = "discrete"
	Paced    CalcMode = "paced"
	Spline   CalcMode = "spline"
)

// IsLinear reports whether m is linear, including the unset default.
func (m CalcMode) IsLinear() bool {
	return m == "" || m == Linear
}

// Fill is the post-completion policy of a record. The zero value means
// [FillRemove], the SMIL default.
type Fill string

const (
	// FillRemove reverts the target to its unanimated value after the
	// active duration ends.
	FillRemove Fill = "remove"

	// FillFreeze holds the final animated value after the active
	// duration ends.
	FillFreeze Fill = "freeze"
)

// Additive controls whether the animation replaces or adds to the base
// value. The zero value means [AdditiveReplace], the SMIL default.
type Additive string

const (
	AdditiveReplace Additive = "replace"
	AdditiveSum     Additive = "sum"
)

// Accumulate controls whether repeat iterations build on each other.
// The zero value means [AccumulateNone], the SMIL default.
type Accumulate string

const (
	AccumulateNone Accumulate = "none"
	AccumulateSum  Accumulate = "sum"
)
