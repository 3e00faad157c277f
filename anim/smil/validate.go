// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smil

import (
	"fmt"

	"github.com/inkform/vganim/anim"
)

// Result is the outcome of pre-flight validation.
type Result struct {
	Valid  bool
	Errors []string
}

// Validate checks that a record carries everything its animation kind
// needs to compile, without throwing: the kind itself, the target
// element, kind-specific mandatory fields, and the structural keyframe
// invariants. Compile refuses records that fail validation.
func Validate(rec *anim.Record) Result {
	if rec == nil {
		return Result{Errors: []string{"nil record"}}
	}
	var errs []string
	if !rec.Kind.Valid() {
		errs = append(errs, fmt.Sprintf("unknown animation type %q", string(rec.Kind)))
	}
	if rec.TargetID == "" {
		errs = append(errs, "missing targetElementId")
	}
	switch rec.Kind {
	case anim.Attribute:
		if rec.AttributeName == "" {
			errs = append(errs, "missing attributeName")
		}
	case anim.Set:
		if rec.AttributeName == "" {
			errs = append(errs, "missing attributeName")
		}
		if rec.To == "" {
			errs = append(errs, "set requires a to value")
		}
	case anim.Transform:
		if !rec.TransformKind.Valid() {
			errs = append(errs, fmt.Sprintf("missing or unknown transformType %q", string(rec.TransformKind)))
		}
	case anim.Motion:
		if rec.Path == "" && rec.MPath == "" {
			errs = append(errs, "motion requires path or motionPathRef")
		}
	}
	if err := rec.Check(); err != nil {
		errs = append(errs, err.Error())
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}
