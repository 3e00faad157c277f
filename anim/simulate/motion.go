// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulate

import (
	"github.com/inkform/vganim/anim"
)

// pathPointAt is the motion-path placement extension point. Full
// path-length parameterization (position and tangent angle at
// arbitrary progress along arbitrary path commands) is not implemented
// by the runtime this evaluator mirrors, and the compiled markup is
// what actually drives motion in exported documents. Until a real
// arc-length evaluator exists this returns the origin, matching the
// runtime's placeholder.
func pathPointAt(rec *anim.Record, p float32) (x, y float32) {
	_ = rec
	_ = p
	return 0, 0
}

// applyMotion resolves a motion animation's placement. The position
// comes from pathPointAt; the angle is a fixed rotate value when one is
// given. The auto and auto-reverse modes need the path tangent, which
// the placeholder cannot supply, so they resolve to 0.
func applyMotion(st *ElementState, rec *anim.Record, p float32) {
	x, y := pathPointAt(rec, p)
	var angle float32
	switch rec.Rotate {
	case "", "none", "auto", "auto-reverse":
	default:
		if vs, err := anim.ParseFloats(rec.Rotate); err == nil && len(vs) > 0 {
			angle = vs[0]
		}
	}
	st.MotionPath = &MotionState{X: x, Y: y, Angle: angle}
}
