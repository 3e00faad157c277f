// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulate

import (
	"github.com/inkform/vganim/anim"
)

// Snapshot computes the animated state of every targeted element at
// query time t. Records are grouped by target element and folded in
// definition order: later records win for overlapping style and
// attribute keys, while transform components merge field-by-field.
// Elements with no animation records do not appear in the result at
// all; absence means unanimated.
func Snapshot(records []*anim.Record, t float64) map[string]*ElementState {
	states := map[string]*ElementState{}
	for _, rec := range records {
		if rec == nil || rec.TargetID == "" {
			continue
		}
		st := states[rec.TargetID]
		if st == nil {
			st = newElementState(rec.TargetID, t)
			states[rec.TargetID] = st
		}
		apply(st, rec, t)
	}
	return states
}

// ElementSnapshot computes the state of a single element, or nil if no
// record targets it. Gizmos and property editors use this to preview
// one element without paying for the whole document.
func ElementSnapshot(records []*anim.Record, elementID string, t float64) *ElementState {
	var st *ElementState
	for _, rec := range records {
		if rec == nil || rec.TargetID != elementID {
			continue
		}
		if st == nil {
			st = newElementState(elementID, t)
		}
		apply(st, rec, t)
	}
	return st
}
