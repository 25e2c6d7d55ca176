// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"fmt"
	"log/slog"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Platform is the glfw [system.Platform]. It implements both
// [system.GLPlatform] and [system.VulkanPlatform].
type Platform struct {

	// events are the window events not yet returned by NextEvent.
	events []system.Event

	windows []*Window

	// vulkanLoaded is whether the Vulkan loader has been initialized.
	vulkanLoaded bool
}

// Init initializes glfw and returns the platform.
// It must be called on the main thread.
func Init() (*Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Environment(fmt.Errorf("desktop: initializing glfw: %w", err))
	}
	slog.Debug("initialized glfw", "version", glfw.GetVersionString())
	return &Platform{}, nil
}

func (p *Platform) Name() string {
	return "glfw"
}

func (p *Platform) PrimaryMonitor() (system.Monitor, error) {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return nil, errors.Environment(errors.New("desktop: no monitor connected"))
	}
	return &Monitor{mon: mon}, nil
}

// post queues an event for NextEvent.
func (p *Platform) post(ev system.Event) {
	p.events = append(p.events, ev)
}

// NextEvent returns the oldest queued window event. When there is none
// it processes pending window system events, and if they produce none,
// it returns a [system.Redraw] so that frames are drawn continuously.
func (p *Platform) NextEvent() system.Event {
	if len(p.events) == 0 {
		glfw.PollEvents()
	}
	if len(p.events) == 0 {
		for _, w := range p.windows {
			if w.glw.ShouldClose() {
				return system.Event{Type: system.Close}
			}
		}
		return system.Event{Type: system.Redraw}
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev
}

// Terminate destroys any remaining windows and terminates glfw.
func (p *Platform) Terminate() {
	for _, w := range p.windows {
		w.Destroy()
	}
	p.windows = nil
	p.events = nil
	glfw.Terminate()
}
