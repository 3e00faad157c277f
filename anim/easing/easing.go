// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package easing remaps linear timing progress through a record's
// calcMode, keyTimes and keySplines, the second stage of the
// evaluation pipeline.
package easing

import (
	"github.com/chewxy/math32"

	"github.com/inkform/vganim/anim"
)

// solver bounds for inverting the bezier x(t) curve
const (
	solveIterations = 10
	solveTolerance  = 1e-3
)

// Ease remaps raw progress p in [0,1] into eased progress. Linear mode
// passes through unchanged. Discrete mode also passes through: it
// changes the interpolation strategy, not the timing curve, and is
// handled by the interpolators. Paced mode is not implemented by the
// runtime this mirrors and degrades to linear. Spline mode applies the
// record's keySplines, segmented by keyTimes when present.
func Ease(rec *anim.Record, p float32) float32 {
	if rec.CalcMode != anim.Spline {
		return p
	}
	splines, err := rec.KeySplineList()
	if err != nil || len(splines) == 0 {
		return p
	}
	kts := rec.KeyTimeList()
	if len(kts) >= 2 && len(splines) == len(kts)-1 {
		return easeSegmented(kts, splines, p)
	}
	// A single global spline without per-segment keyTimes applies to
	// the whole [0,1] range, even for multi-keyframe records. This
	// asymmetry matches the runtime; multi-segment easing only exists
	// where keyTimes define it.
	s := splines[0]
	return CubicBezier(s[0], s[1], s[2], s[3])(p)
}

// easeSegmented locates the keyTimes segment containing p, renormalizes
// p within it, applies that segment's spline, and maps the result back
// into global progress so downstream keyframe index mapping still works.
func easeSegmented(kts []float32, splines [][4]float32, p float32) float32 {
	last := len(kts) - 2
	i := last
	for j := 0; j < last; j++ {
		if p < kts[j+1] {
			i = j
			break
		}
	}
	span := kts[i+1] - kts[i]
	if span <= 0 {
		return p
	}
	local := clamp01((p - kts[i]) / span)
	s := splines[i]
	eased := CubicBezier(s[0], s[1], s[2], s[3])(local)
	return kts[i] + eased*span
}

// CubicBezier returns the timing function defined by control points
// (x1,y1) and (x2,y2), with implicit endpoints (0,0) and (1,1), as in
// CSS cubic-bezier and SMIL keySplines. The parametric t for a given
// x is found by bounded binary search; the corresponding y is the
// eased progress.
func CubicBezier(x1, y1, x2, y2 float32) func(float32) float32 {
	return func(p float32) float32 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		lo, hi := float32(0), float32(1)
		t := p
		for i := 0; i < solveIterations; i++ {
			x := bezier(x1, x2, t)
			if math32.Abs(x-p) < solveTolerance {
				break
			}
			if x < p {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return bezier(y1, y2, t)
	}
}

// bezier evaluates the one-dimensional cubic with endpoints 0 and 1 and
// control values c1, c2 at parameter t.
func bezier(c1, c2 float32, t float32) float32 {
	u := 1 - t
	return 3*u*u*t*c1 + 3*u*t*t*c2 + t*t*t
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
