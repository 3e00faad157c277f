// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simulate is the pure-function animation evaluator used for
// editor preview and scrubbing. Given the animation records targeting
// an element and a query time, it computes an [ElementState] snapshot
// numerically consistent with what a declarative-animation runtime
// would render from the compiled markup. It never mutates records and
// holds no state of its own, so it is safe to call from any context.
package simulate

// ElementState is the resolved animated state of one element at one
// query time. It is rebuilt from scratch on every evaluation and never
// mutated across calls.
type ElementState struct {

	// ElementID is the id of the element this snapshot describes.
	ElementID string

	// Time is the query time in seconds this snapshot corresponds to.
	Time float64

	// Transform holds the composite transform, present only if at
	// least one transform animation targets the element.
	Transform *TransformState

	// Style holds resolved style overrides: float32 for numeric
	// properties (opacity, strokeWidth, ...), string for colors.
	Style map[string]any

	// Attributes holds resolved values for attribute animations not
	// covered by the style bag, keyed by attribute name.
	Attributes map[string]any

	// PathData is the resolved path string while a d-attribute morph
	// animation is active.
	PathData string

	// MotionPath is the motion placement while a motion animation is
	// active.
	MotionPath *MotionState
}

// TransformState is the composite transform built up field-by-field by
// the transform animations targeting an element. Each animation only
// touches the fields of its own component, so distinct components
// merge rather than overwrite.
type TransformState struct {
	TranslateX, TranslateY float32

	// Rotate is the rotation angle in degrees. The rotation center, if
	// the from value carried one, is static for the whole animation.
	Rotate             float32
	RotateCX, RotateCY float32
	HasRotateCenter    bool

	ScaleX, ScaleY float32

	SkewX, SkewY float32
}

// MotionState is the placement produced by a motion animation.
// Position is a placeholder pending full path-length parameterization;
// see pathPointAt.
type MotionState struct {
	X, Y  float32
	Angle float32
}

func newElementState(id string, t float64) *ElementState {
	return &ElementState{ElementID: id, Time: t}
}

func (st *ElementState) transform() *TransformState {
	if st.Transform == nil {
		st.Transform = &TransformState{ScaleX: 1, ScaleY: 1}
	}
	return st.Transform
}

func (st *ElementState) setStyle(key string, val any) {
	if st.Style == nil {
		st.Style = map[string]any{}
	}
	st.Style[key] = val
}

func (st *ElementState) setAttr(name string, val any) {
	if st.Attributes == nil {
		st.Attributes = map[string]any{}
	}
	st.Attributes[name] = val
}
