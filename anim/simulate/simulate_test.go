// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkform/vganim/anim"
)

func opacityRec(fill anim.Fill) *anim.Record {
	return &anim.Record{
		ID: "a1", Kind: anim.Attribute, TargetID: "el1",
		AttributeName: "opacity", From: "0", To: "1",
		Begin: "0s", Dur: "2s", RepeatCount: 1, Fill: fill,
	}
}

func TestOpacityFreezeScenario(t *testing.T) {
	recs := []*anim.Record{opacityRec(anim.FillFreeze)}
	for _, tt := range []struct {
		time float64
		want float32
	}{
		{0, 0},
		{1, 0.5},
		{2, 1},
		{3, 1}, // frozen
	} {
		states := Snapshot(recs, tt.time)
		require.Contains(t, states, "el1", "t=%v", tt.time)
		st := states["el1"]
		assert.Equal(t, tt.time, st.Time)
		require.Contains(t, st.Style, "opacity", "t=%v", tt.time)
		assert.InDelta(t, float64(tt.want), float64(st.Style["opacity"].(float32)), 1e-6, "t=%v", tt.time)
	}
}

func TestOpacityRemoveScenario(t *testing.T) {
	recs := []*anim.Record{opacityRec(anim.FillRemove)}
	// past the active duration the record contributes nothing: the
	// element reverts to its unanimated value
	st := Snapshot(recs, 3)["el1"]
	require.NotNil(t, st)
	assert.NotContains(t, st.Style, "opacity")
}

func TestColorKeyframeScenario(t *testing.T) {
	recs := []*anim.Record{{
		ID: "c1", Kind: anim.Attribute, TargetID: "el1",
		AttributeName: "fill",
		Values:        "#ff0000;#00ff00;#0000ff",
		Begin:         "0s", Dur: "3s", RepeatCount: 1, Fill: anim.FillFreeze,
	}}
	// t=1.5 is the exact second keyframe boundary
	st := Snapshot(recs, 1.5)["el1"]
	require.NotNil(t, st)
	assert.Equal(t, "rgb(0, 255, 0)", st.Style["fillColor"])

	st = Snapshot(recs, 0)["el1"]
	assert.Equal(t, "rgb(255, 0, 0)", st.Style["fillColor"])
	st = Snapshot(recs, 3)["el1"]
	assert.Equal(t, "rgb(0, 0, 255)", st.Style["fillColor"])
}

func TestInterpolateColor(t *testing.T) {
	assert.Equal(t, "rgb(0, 0, 0)", InterpolateColor("#000000", "#ffffff", 0))
	assert.Equal(t, "rgb(255, 255, 255)", InterpolateColor("#000000", "#ffffff", 1))
	assert.Equal(t, "rgb(128, 128, 128)", InterpolateColor("#000000", "#ffffff", 0.5))
	// shorthand hex expands by doubling nibbles
	assert.Equal(t, "rgb(255, 0, 0)", InterpolateColor("#f00", "#f00", 0.5))
	// malformed endpoints degrade to a hard switch at 0.5
	assert.Equal(t, "red", InterpolateColor("red", "#00ff00", 0.4))
	assert.Equal(t, "#00ff00", InterpolateColor("red", "#00ff00", 0.6))
}

func TestNumericEndpointExactness(t *testing.T) {
	rec := &anim.Record{
		ID: "n1", Kind: anim.Attribute, TargetID: "el",
		AttributeName: "stroke-width", From: "1.5", To: "4.5",
		Begin: "0s", Dur: "1s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	recs := []*anim.Record{rec}
	assert.Equal(t, float32(1.5), Snapshot(recs, 0)["el"].Style["strokeWidth"])
	assert.Equal(t, float32(4.5), Snapshot(recs, 1)["el"].Style["strokeWidth"])
}

func TestDiscreteCalcMode(t *testing.T) {
	rec := &anim.Record{
		ID: "d1", Kind: anim.Attribute, TargetID: "el",
		AttributeName: "opacity", From: "0", To: "10",
		Begin: "0s", Dur: "1s", RepeatCount: 1, Fill: anim.FillFreeze,
		CalcMode: anim.Discrete,
	}
	recs := []*anim.Record{rec}
	assert.Equal(t, float32(0), Snapshot(recs, 0.4)["el"].Style["opacity"])
	assert.Equal(t, float32(10), Snapshot(recs, 0.6)["el"].Style["opacity"])
}

func TestNonNumericDiscreteFallback(t *testing.T) {
	rec := &anim.Record{
		ID: "d2", Kind: anim.Attribute, TargetID: "el",
		AttributeName: "display", From: "none", To: "block",
		Begin: "0s", Dur: "1s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	recs := []*anim.Record{rec}
	assert.Equal(t, "none", Snapshot(recs, 0.4)["el"].Attributes["display"])
	assert.Equal(t, "block", Snapshot(recs, 0.6)["el"].Attributes["display"])
}

func TestPathMorphDiscreteSwitch(t *testing.T) {
	rec := &anim.Record{
		ID: "p1", Kind: anim.Attribute, TargetID: "el",
		AttributeName: "d",
		Values:        "M 0 0 L 10 10;M 0 0 L 20 20",
		Begin:         "0s", Dur: "1s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	recs := []*anim.Record{rec}
	assert.Equal(t, "M 0 0 L 10 10", Snapshot(recs, 0.3)["el"].PathData)
	assert.Equal(t, "M 0 0 L 20 20", Snapshot(recs, 0.8)["el"].PathData)
}

func TestValuesIndexMapping(t *testing.T) {
	rec := &anim.Record{
		ID: "v1", Kind: anim.Attribute, TargetID: "el",
		AttributeName: "opacity", Values: "0;10;20",
		Begin: "0s", Dur: "4s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	recs := []*anim.Record{rec}
	// p=0.25 -> pos=0.5 -> first segment at local fraction 0.5
	assert.InDelta(t, 5, float64(Snapshot(recs, 1)["el"].Style["opacity"].(float32)), 1e-5)
	// p=0.75 -> pos=1.5 -> second segment at local fraction 0.5
	assert.InDelta(t, 15, float64(Snapshot(recs, 3)["el"].Style["opacity"].(float32)), 1e-5)
}

func TestTransformInterpolation(t *testing.T) {
	translate := &anim.Record{
		ID: "t1", Kind: anim.Transform, TargetID: "el",
		TransformKind: anim.Translate, From: "0 0", To: "100 50",
		Begin: "0s", Dur: "2s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	scale := &anim.Record{
		ID: "t2", Kind: anim.Transform, TargetID: "el",
		TransformKind: anim.Scale, From: "1", To: "3",
		Begin: "0s", Dur: "2s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	rotate := &anim.Record{
		ID: "t3", Kind: anim.Transform, TargetID: "el",
		TransformKind: anim.Rotate, From: "0 50 50", To: "360 50 50",
		Begin: "0s", Dur: "2s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	recs := []*anim.Record{translate, scale, rotate}

	st := Snapshot(recs, 1)["el"]
	require.NotNil(t, st)
	xf := st.Transform
	require.NotNil(t, xf)

	// distinct components merge field-by-field instead of overwriting
	assert.InDelta(t, 50, float64(xf.TranslateX), 1e-5)
	assert.InDelta(t, 25, float64(xf.TranslateY), 1e-5)
	// uniform scale broadcasts to both axes
	assert.InDelta(t, 2, float64(xf.ScaleX), 1e-5)
	assert.InDelta(t, 2, float64(xf.ScaleY), 1e-5)
	assert.InDelta(t, 180, float64(xf.Rotate), 1e-4)
	assert.True(t, xf.HasRotateCenter)
	assert.Equal(t, float32(50), xf.RotateCX)
	assert.Equal(t, float32(50), xf.RotateCY)
}

func TestSkewInterpolation(t *testing.T) {
	rec := &anim.Record{
		ID: "s1", Kind: anim.Transform, TargetID: "el",
		TransformKind: anim.SkewX, From: "0", To: "30",
		Begin: "0s", Dur: "1s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	st := Snapshot([]*anim.Record{rec}, 0.5)["el"]
	require.NotNil(t, st.Transform)
	assert.InDelta(t, 15, float64(st.Transform.SkewX), 1e-5)
}

func TestSetWindow(t *testing.T) {
	rec := &anim.Record{
		ID: "set1", Kind: anim.Set, TargetID: "el",
		AttributeName: "opacity", To: "0.5",
		Begin: "1s", Dur: "2s",
	}
	recs := []*anim.Record{rec}
	assert.NotContains(t, Snapshot(recs, 0.5)["el"].Style, "opacity")
	assert.Equal(t, float32(0.5), Snapshot(recs, 1.5)["el"].Style["opacity"])
	assert.NotContains(t, Snapshot(recs, 3.5)["el"].Style, "opacity")

	// absent dur applies indefinitely
	rec.Dur = ""
	assert.Equal(t, float32(0.5), Snapshot(recs, 100)["el"].Style["opacity"])
}

func TestMotionPlaceholder(t *testing.T) {
	rec := &anim.Record{
		ID: "m1", Kind: anim.Motion, TargetID: "el",
		Path:  "M 0 0 L 100 100",
		Begin: "0s", Dur: "2s", RepeatCount: 1, Fill: anim.FillFreeze,
		Rotate: "45",
	}
	st := Snapshot([]*anim.Record{rec}, 1)["el"]
	require.NotNil(t, st.MotionPath)
	// position is the documented placeholder pending path-length
	// parameterization
	assert.Equal(t, float32(0), st.MotionPath.X)
	assert.Equal(t, float32(0), st.MotionPath.Y)
	assert.Equal(t, float32(45), st.MotionPath.Angle)

	rec.Rotate = "auto"
	st = Snapshot([]*anim.Record{rec}, 1)["el"]
	assert.Equal(t, float32(0), st.MotionPath.Angle)
}

func TestUnknownKindSkipped(t *testing.T) {
	recs := []*anim.Record{
		{ID: "x", Kind: anim.Kind("wobble"), TargetID: "el"},
		opacityRec(anim.FillFreeze),
	}
	recs[1].TargetID = "el"
	st := Snapshot(recs, 1)["el"]
	require.NotNil(t, st)
	assert.Contains(t, st.Style, "opacity")
}

func TestLastWriteWins(t *testing.T) {
	first := opacityRec(anim.FillFreeze) // resolves to 1 past 2s
	second := &anim.Record{
		ID: "a2", Kind: anim.Attribute, TargetID: "el1",
		AttributeName: "opacity", From: "0.25", To: "0.25",
		Begin: "0s", Dur: "1s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	st := Snapshot([]*anim.Record{first, second}, 5)["el1"]
	assert.Equal(t, float32(0.25), st.Style["opacity"])
}

func TestUntargetedElementsOmitted(t *testing.T) {
	states := Snapshot([]*anim.Record{opacityRec(anim.FillFreeze)}, 1)
	assert.Len(t, states, 1)
	assert.NotContains(t, states, "other")
}

func TestElementSnapshot(t *testing.T) {
	recs := []*anim.Record{opacityRec(anim.FillFreeze)}
	st := ElementSnapshot(recs, "el1", 1)
	require.NotNil(t, st)
	assert.InDelta(t, 0.5, float64(st.Style["opacity"].(float32)), 1e-6)
	assert.Nil(t, ElementSnapshot(recs, "nope", 1))
}

func TestByAnimation(t *testing.T) {
	rec := &anim.Record{
		ID: "b1", Kind: anim.Attribute, TargetID: "el",
		AttributeName: "opacity", By: "0.8",
		Begin: "0s", Dur: "1s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	st := Snapshot([]*anim.Record{rec}, 0.5)["el"]
	assert.InDelta(t, 0.4, float64(st.Style["opacity"].(float32)), 1e-6)
}

func TestGenericAttributeRouting(t *testing.T) {
	rec := &anim.Record{
		ID: "g1", Kind: anim.Attribute, TargetID: "el",
		AttributeName: "width", From: "10", To: "20",
		Begin: "0s", Dur: "1s", RepeatCount: 1, Fill: anim.FillFreeze,
	}
	st := Snapshot([]*anim.Record{rec}, 0.5)["el"]
	assert.Equal(t, float32(15), st.Attributes["width"])
	assert.NotContains(t, st.Style, "width")
}
