// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playback

import "time"

// Mode names a quality preset. The set is fixed: editing, preview,
// export.
type Mode string

const (
	// Editing favors responsiveness while dragging and scrubbing.
	Editing Mode = "editing"

	// Preview is the balanced default for live playback.
	Preview Mode = "preview"

	// Export renders at full fidelity for final output.
	Export Mode = "export"
)

// Quality is an immutable playback preset. Only UpdateRate affects the
// controller's behavior; FilterQuality and DisableFilters are carried
// through to the rendering surface, which applies them when drawing a
// frame. Quality never affects evaluation correctness, only cadence.
type Quality struct {
	Mode Mode `toml:"mode" yaml:"mode" json:"mode"`

	// FilterQuality is the renderer filter fidelity: low, medium, high.
	FilterQuality string `toml:"filterQuality" yaml:"filterQuality" json:"filterQuality"`

	// UpdateRate is the subscriber broadcast rate in Hz.
	UpdateRate float32 `toml:"updateRate" yaml:"updateRate" json:"updateRate"`

	// DisableFilters turns expensive filters off entirely.
	DisableFilters bool `toml:"disableFilters" yaml:"disableFilters" json:"disableFilters"`
}

// BroadcastInterval is the minimum time between subscriber broadcasts.
func (q Quality) BroadcastInterval() time.Duration {
	if q.UpdateRate <= 0 {
		return time.Second / 60
	}
	return time.Duration(float64(time.Second) / float64(q.UpdateRate))
}

// Presets is the fixed table of the three quality modes. Loading a
// presets file overrides individual fields; see OpenPresets.
type Presets struct {
	Editing Quality `toml:"editing" yaml:"editing" json:"editing"`
	Preview Quality `toml:"preview" yaml:"preview" json:"preview"`
	Export  Quality `toml:"export" yaml:"export" json:"export"`
}

// DefaultPresets returns the built-in preset table.
func DefaultPresets() *Presets {
	return &Presets{
		Editing: Quality{Mode: Editing, FilterQuality: "low", UpdateRate: 30, DisableFilters: true},
		Preview: Quality{Mode: Preview, FilterQuality: "medium", UpdateRate: 60},
		Export:  Quality{Mode: Export, FilterQuality: "high", UpdateRate: 60},
	}
}

// For returns the preset for the given mode, defaulting to Preview for
// anything unknown.
func (p *Presets) For(mode Mode) Quality {
	switch mode {
	case Editing:
		return p.Editing
	case Export:
		return p.Export
	}
	return p.Preview
}
