// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulate

import (
	"github.com/chewxy/math32"

	"github.com/inkform/vganim/anim"
	"github.com/inkform/vganim/anim/easing"
	"github.com/inkform/vganim/anim/timing"
	"github.com/inkform/vganim/base/logx"
)

// endpoints resolves the value pair a record interpolates between at
// eased progress p, along with the local fraction within that pair.
// A values list maps progress to a keyframe segment by
// floor(p*(N-1)), clamped; otherwise From/To are the endpoints and the
// fraction is p itself. A record with only By animates from zero to By.
func endpoints(rec *anim.Record, p float32) (from, to string, frac float32, ok bool) {
	vals := rec.ValueList()
	if len(vals) >= 2 {
		pos := p * float32(len(vals)-1)
		i := int(math32.Floor(pos))
		if i > len(vals)-2 {
			i = len(vals) - 2
		}
		if i < 0 {
			i = 0
		}
		return vals[i], vals[i+1], pos - float32(i), true
	}
	if len(vals) == 1 {
		return vals[0], vals[0], 0, true
	}
	from, to = rec.From, rec.To
	if from == "" && to == "" && rec.By != "" {
		from, to = "0", rec.By
	}
	if from == "" && to == "" {
		return "", "", 0, false
	}
	// a missing endpoint degrades to a constant animation of the other
	if from == "" {
		from = to
	}
	if to == "" {
		to = from
	}
	return from, to, p, true
}

// interpolate turns an endpoint pair into a concrete value: a float32
// when both endpoints are numeric, otherwise a discrete switch between
// the raw strings at fraction 0.5. Discrete calcMode forces the switch
// even for numerics.
func interpolate(from, to string, frac float32, discrete bool) any {
	if !discrete {
		fv, ferr := anim.ParseFloats(from)
		tv, terr := anim.ParseFloats(to)
		if ferr == nil && terr == nil && len(fv) == 1 && len(tv) == 1 {
			return lerp(fv[0], tv[0], frac)
		}
	}
	chosen := from
	if frac >= 0.5 {
		chosen = to
	}
	if vs, err := anim.ParseFloats(chosen); err == nil && len(vs) == 1 {
		return vs[0]
	}
	return chosen
}

// styleKeys maps animatable attribute names onto the style bag keys the
// rendering surface reads. Anything not listed here lands in the
// generic attribute bag.
var styleKeys = map[string]string{
	"opacity":           "opacity",
	"fill":              "fillColor",
	"stroke":            "strokeColor",
	"stop-color":        "stopColor",
	"stroke-width":      "strokeWidth",
	"strokeWidth":       "strokeWidth",
	"stroke-dashoffset": "strokeDashoffset",
	"strokeDashoffset":  "strokeDashoffset",
	"fill-opacity":      "fillOpacity",
	"stroke-opacity":    "strokeOpacity",
}

func (st *ElementState) setResolved(name string, val any) {
	if key, ok := styleKeys[name]; ok {
		st.setStyle(key, val)
		return
	}
	st.setAttr(name, val)
}

func applyAttribute(st *ElementState, rec *anim.Record, p float32) {
	if rec.AttributeName == "" {
		return
	}
	from, to, frac, ok := endpoints(rec, p)
	if !ok {
		return
	}
	if rec.AttributeName == "d" {
		// path morphing is discrete keyframe switching; geometric
		// interpolation between differing path topologies is not
		// supported
		if frac < 0.5 {
			st.PathData = from
		} else {
			st.PathData = to
		}
		return
	}
	discrete := rec.CalcMode == anim.Discrete
	if colorAttributes[rec.AttributeName] {
		if discrete {
			if frac < 0.5 {
				st.setResolved(rec.AttributeName, from)
			} else {
				st.setResolved(rec.AttributeName, to)
			}
			return
		}
		st.setResolved(rec.AttributeName, InterpolateColor(from, to, frac))
		return
	}
	st.setResolved(rec.AttributeName, interpolate(from, to, frac, discrete))
}

// applySet applies a set record's constant value while the query time
// is inside its window: begin <= t < begin+dur, or indefinitely when
// dur is absent. Outside the window it contributes nothing.
func applySet(st *ElementState, rec *anim.Record, t float64) {
	if rec.AttributeName == "" || rec.To == "" {
		return
	}
	begin := rec.BeginTime()
	if t < begin {
		return
	}
	if rec.Dur != "" && t >= begin+rec.Duration() {
		return
	}
	if rec.AttributeName == "d" {
		st.PathData = rec.To
		return
	}
	var val any = rec.To
	if vs, err := anim.ParseFloats(rec.To); err == nil && len(vs) == 1 {
		val = vs[0]
	}
	st.setResolved(rec.AttributeName, val)
}

// apply folds one record's contribution at query time t into st.
func apply(st *ElementState, rec *anim.Record, t float64) {
	if rec.Kind == anim.Set {
		applySet(st, rec, t)
		return
	}
	p, state := timing.Resolve(rec, t)
	if state == timing.BeforeStart || state == timing.Removed {
		return
	}
	p = easing.Ease(rec, p)
	switch rec.Kind {
	case anim.Attribute:
		applyAttribute(st, rec, p)
	case anim.Transform:
		applyTransform(st, rec, p)
	case anim.Motion:
		applyMotion(st, rec, p)
	default:
		logx.Debug("simulate: skipping unknown animation kind", "kind", string(rec.Kind), "record", rec.ID)
	}
}
