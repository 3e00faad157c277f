// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim defines the declarative animation data model used by the
// editor: [Record] describes one SMIL-style animation unit
// (animate, animateTransform, animateMotion, set) with its timing,
// easing, and composition fields, in the same string-valued wire shape
// the record store persists. Subpackages evaluate records over time
// (timing, easing, simulate), drive live preview (playback), and
// serialize records back to markup (smil).
package anim
