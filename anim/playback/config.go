// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playback

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// OpenPresets loads a quality preset file on top of the built-in
// defaults, so a partial file only overrides the fields it names. The
// format is chosen by extension: .yaml/.yml is YAML, anything else is
// TOML.
func OpenPresets(filename string) (*Presets, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	p := DefaultPresets()
	if isYAML(filename) {
		err = yaml.Unmarshal(b, p)
	} else {
		err = toml.Unmarshal(b, p)
	}
	if err != nil {
		return nil, fmt.Errorf("playback.OpenPresets: %s: %w", filename, err)
	}
	return p, nil
}

// Save writes the preset table to a file, choosing the format by
// extension as in [OpenPresets].
func (p *Presets) Save(filename string) error {
	var b []byte
	var err error
	if isYAML(filename) {
		b, err = yaml.Marshal(p)
	} else {
		b, err = toml.Marshal(p)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
