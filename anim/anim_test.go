// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2s", 2},
		{"500ms", 0.5},
		{"3", 3},
		{"0.25s", 0.25},
		{" 2.5s ", 2.5},
		{"", 0},
		{"junk", 0},
		{"12junk", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseClock(tt.in), "ParseClock(%q)", tt.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "2s", FormatClock(2))
	assert.Equal(t, "0.5s", FormatClock(0.5))
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseList("a; b;;c;"))
	assert.Nil(t, ParseList("  "))
	assert.Equal(t, "a;b;c", JoinList([]string{"a", "b", "c"}))
}

func TestParseFloats(t *testing.T) {
	vs, err := ParseFloats("0.42, 0 0.58 1")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.42, 0, 0.58, 1}, vs)

	vs, err = ParseFloats("1 auto")
	assert.Error(t, err)
	assert.Equal(t, []float32{1}, vs)
}

func TestCountJSON(t *testing.T) {
	var c Count
	require.NoError(t, json.Unmarshal([]byte(`"indefinite"`), &c))
	assert.True(t, c.IsIndefinite())

	require.NoError(t, json.Unmarshal([]byte(`2.5`), &c))
	assert.Equal(t, Count(2.5), c)
	assert.Equal(t, "2.5", c.String())

	b, err := json.Marshal(Indefinite)
	require.NoError(t, err)
	assert.Equal(t, `"indefinite"`, string(b))
}

func TestRecordJSON(t *testing.T) {
	rec := &Record{
		ID:          "a1",
		Kind:        Attribute,
		TargetID:    "el1",
		RepeatCount: Indefinite,
		Values:      "#f00;#0f0",
	}
	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"repeatCount":"indefinite"`)
	assert.Contains(t, string(b), `"type":"attribute-animate"`)

	var back Record
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.RepeatCount.IsIndefinite())
	assert.Equal(t, []string{"#f00", "#0f0"}, back.ValueList())
}

func TestRecordCheck(t *testing.T) {
	rec := &Record{ID: "a", Values: "0;1;2", KeyTimes: "0;1"}
	assert.Error(t, rec.Check())

	rec = &Record{ID: "a", Values: "0;1;2", KeyTimes: "0;0.5;1"}
	assert.NoError(t, rec.Check())

	rec = &Record{ID: "a", CalcMode: Spline, Values: "0;1"}
	assert.Error(t, rec.Check())

	rec = &Record{ID: "a", CalcMode: Spline, Values: "0;1", KeySplines: "0.42 0 0.58 1"}
	assert.NoError(t, rec.Check())

	rec = &Record{ID: "a", CalcMode: Spline, Values: "0;1;2", KeySplines: "0 0 1 1"}
	assert.Error(t, rec.Check())
}

func TestKeySplineList(t *testing.T) {
	rec := &Record{KeySplines: "0.42 0 0.58 1;0 0 1 1"}
	ks, err := rec.KeySplineList()
	require.NoError(t, err)
	require.Len(t, ks, 2)
	assert.Equal(t, [4]float32{0.42, 0, 0.58, 1}, ks[0])

	rec = &Record{KeySplines: "0.42 0 0.58"}
	_, err = rec.KeySplineList()
	assert.Error(t, err)
}

func TestEnums(t *testing.T) {
	assert.True(t, Attribute.Valid())
	assert.False(t, Kind("wobble").Valid())
	assert.True(t, CalcMode("").IsLinear())
	assert.True(t, Linear.IsLinear())
	assert.False(t, Spline.IsLinear())
	assert.True(t, SkewX.Valid())
	assert.False(t, TransformKind("").Valid())
}
