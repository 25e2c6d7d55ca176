// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"strings"

	"cogentcore.org/tumble/base/errors"
)

// Settings are the window settings as stored in a config file.
// Use [config.SetFromDefaults] to apply the defaults.
type Settings struct {

	// Title is the window title.
	Title string `default:"Tumble" toml:"title" yaml:"title"`

	// Backend is the GPU API and minimum version, such as
	// "opengl 4.6" or "vulkan 1.3.0".
	Backend string `default:"opengl 4.6" toml:"backend" yaml:"backend"`

	// Mode is normal, borderless, fullscreen or windowed-fullscreen.
	Mode string `default:"normal" toml:"mode" yaml:"mode"`

	// Width is the window width for the normal and borderless modes.
	Width int `default:"800" toml:"width" yaml:"width"`

	// Height is the window height for the normal and borderless modes.
	Height int `default:"600" toml:"height" yaml:"height"`

	// Resize is all, vertical, horizontal, none, or a comma separated
	// list of the sides left, right, top and bottom.
	Resize string `default:"all" toml:"resize" yaml:"resize"`

	// Move is full, outer, inner or none.
	Move string `default:"full" toml:"move" yaml:"move"`

	// Margin is the left, right, top and bottom move margins
	// for the outer and inner move policies.
	Margin [4]int `toml:"margin" yaml:"margin"`
}

// WindowConfig converts the settings into a validated [WindowConfig].
func (s *Settings) WindowConfig() (*WindowConfig, error) {
	bv, err := ParseBackendVersion(s.Backend)
	if err != nil {
		return nil, err
	}
	wc := &WindowConfig{Title: s.Title, Backend: bv}
	if wc.Mode, err = ParseWindowMode(s.Mode, s.Width, s.Height); err != nil {
		return nil, err
	}
	if wc.Resize, err = ParseResizePolicy(s.Resize); err != nil {
		return nil, err
	}
	if wc.Move, err = ParseMovePolicy(s.Move, s.Margin); err != nil {
		return nil, err
	}
	return wc, wc.Validate()
}

// ParseWindowMode returns the window mode with the given name.
// The size is only used by the normal and borderless modes.
func ParseWindowMode(name string, width, height int) (WindowMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "":
		return Normal(width, height), nil
	case "borderless":
		return Borderless(width, height), nil
	case "fullscreen":
		return Fullscreen(), nil
	case "windowed-fullscreen", "windowed":
		return WindowedFullscreen(), nil
	}
	return WindowMode{}, errors.Configuration(fmt.Errorf("system: unknown window mode %q (must be normal, borderless, fullscreen or windowed-fullscreen)", name))
}

// ParseResizePolicy parses a resize policy: all, vertical, horizontal,
// none, or a comma separated list of sides.
func ParseResizePolicy(s string) (ResizePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return ResizePolicy{Kind: ResizeAll}, nil
	case "vertical":
		return ResizePolicy{Kind: ResizeVertical}, nil
	case "horizontal":
		return ResizePolicy{Kind: ResizeHorizontal}, nil
	case "none":
		return ResizePolicy{Kind: ResizeNone}, nil
	}
	var sides []Sides
	for _, f := range strings.Split(s, ",") {
		side, err := parseSide(strings.TrimSpace(f))
		if err != nil {
			return ResizePolicy{}, err
		}
		sides = append(sides, side)
	}
	return Specific(sides...), nil
}

func parseSide(s string) (Sides, error) {
	for _, side := range []Sides{Left, Right, Top, Bottom} {
		if strings.EqualFold(s, side.String()) {
			return side, nil
		}
	}
	return 0, errors.Configuration(fmt.Errorf("system: unknown resize policy or side %q", s))
}

// ParseMovePolicy parses a move policy: full, outer, inner or none.
// The margin is only used by the outer and inner policies.
func ParseMovePolicy(s string, margin [4]int) (MovePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "":
		return MovePolicy{Kind: MoveFull}, nil
	case "outer":
		return MovePolicy{Kind: MoveOuterMargin, Margin: margin}, nil
	case "inner":
		return MovePolicy{Kind: MoveInnerMargin, Margin: margin}, nil
	case "none":
		return MovePolicy{Kind: MoveNone}, nil
	}
	return MovePolicy{}, errors.Configuration(fmt.Errorf("system: unknown move policy %q (must be full, outer, inner or none)", s))
}
