// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the meshes that are spun and drawn every frame
// and the [Loop] that drives them from window events.
//
// Each frame the loop turns every [Object] by an angle proportional to
// the time since the previous frame, around a pivot chosen per object,
// and uploads a fresh vertex buffer for it before drawing.
package scene
