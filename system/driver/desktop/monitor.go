// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Monitor is a glfw monitor.
type Monitor struct {
	mon *glfw.Monitor
}

func (m *Monitor) Name() string {
	return m.mon.GetName()
}

// VideoModes returns the video modes of the monitor, which glfw
// sorts by increasing color depth and then resolution.
func (m *Monitor) VideoModes() ([]system.DisplayMode, error) {
	vms := m.mon.GetVideoModes()
	modes := make([]system.DisplayMode, 0, len(vms))
	for _, vm := range vms {
		if vm == nil {
			continue
		}
		modes = append(modes, displayMode(vm))
	}
	return modes, nil
}

func (m *Monitor) CurrentMode() (system.DisplayMode, error) {
	vm := m.mon.GetVideoMode()
	if vm == nil || vm.Width == 0 || vm.Height == 0 {
		return system.DisplayMode{}, errors.Environment(errors.New("desktop: monitor " + m.Name() + " has no current video mode"))
	}
	return displayMode(vm), nil
}

func displayMode(vm *glfw.VidMode) system.DisplayMode {
	return system.DisplayMode{Width: vm.Width, Height: vm.Height, RefreshRate: vm.RefreshRate}
}
