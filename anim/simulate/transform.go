// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulate

import (
	"github.com/inkform/vganim/anim"
	"github.com/inkform/vganim/base/logx"
)

// tupleAt returns the i-th number of a parsed transform value tuple,
// or def when the tuple is too short.
func tupleAt(vs []float32, i int, def float32) float32 {
	if i < len(vs) {
		return vs[i]
	}
	return def
}

// applyTransform folds one transform animation into the element's
// composite transform. Each transform kind only writes its own fields,
// so multiple transform animations on one element accumulate rather
// than overwrite.
func applyTransform(st *ElementState, rec *anim.Record, p float32) {
	from, to, frac, ok := endpoints(rec, p)
	if !ok {
		return
	}
	if rec.CalcMode == anim.Discrete {
		// discrete mode switches whole tuples at the midpoint
		if frac < 0.5 {
			to = from
		} else {
			from = to
		}
		frac = 0
	}
	fv, ferr := anim.ParseFloats(from)
	tv, terr := anim.ParseFloats(to)
	if ferr != nil || terr != nil || len(fv) == 0 || len(tv) == 0 {
		logx.Debug("simulate: unparsable transform values", "record", rec.ID, "from", from, "to", to)
		return
	}
	xf := st.transform()
	switch rec.TransformKind {
	case anim.Translate:
		xf.TranslateX = lerp(fv[0], tv[0], frac)
		xf.TranslateY = lerp(tupleAt(fv, 1, 0), tupleAt(tv, 1, 0), frac)
	case anim.Scale:
		// a single value is uniform scale, broadcast to both axes
		xf.ScaleX = lerp(fv[0], tv[0], frac)
		xf.ScaleY = lerp(tupleAt(fv, 1, fv[0]), tupleAt(tv, 1, tv[0]), frac)
	case anim.Rotate:
		xf.Rotate = lerp(fv[0], tv[0], frac)
		// the rotation center is static, parsed once from the from value
		if len(fv) >= 3 {
			xf.RotateCX, xf.RotateCY = fv[1], fv[2]
			xf.HasRotateCenter = true
		}
	case anim.SkewX:
		xf.SkewX = lerp(fv[0], tv[0], frac)
	case anim.SkewY:
		xf.SkewY = lerp(fv[0], tv[0], frac)
	default:
		logx.Debug("simulate: skipping unknown transform kind", "kind", string(rec.TransformKind), "record", rec.ID)
	}
}
