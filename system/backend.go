// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"strings"

	"cogentcore.org/tumble/base/errors"
	"github.com/Masterminds/semver/v3"
)

// APIs are the GPU APIs a window can be created for.
type APIs int32

const (
	// OpenGLAPI renders with an OpenGL core profile context.
	OpenGLAPI APIs = iota

	// VulkanAPI renders with Vulkan.
	VulkanAPI
)

func (a APIs) String() string {
	switch a {
	case OpenGLAPI:
		return "OpenGL"
	case VulkanAPI:
		return "Vulkan"
	}
	return fmt.Sprintf("APIs(%d)", int32(a))
}

// BackendVersion is a GPU API and the minimum version of it to request.
type BackendVersion struct {
	API   APIs
	Major int
	Minor int

	// Patch is only used for Vulkan.
	Patch int
}

// OpenGL returns an OpenGL backend version.
func OpenGL(major, minor int) BackendVersion {
	return BackendVersion{API: OpenGLAPI, Major: major, Minor: minor}
}

// Vulkan returns a Vulkan backend version.
func Vulkan(major, minor, patch int) BackendVersion {
	return BackendVersion{API: VulkanAPI, Major: major, Minor: minor, Patch: patch}
}

func (bv BackendVersion) String() string {
	if bv.API == VulkanAPI {
		return fmt.Sprintf("%v %d.%d.%d", bv.API, bv.Major, bv.Minor, bv.Patch)
	}
	return fmt.Sprintf("%v %d.%d", bv.API, bv.Major, bv.Minor)
}

// Validate returns an [errors.ErrConfiguration] error if the version
// cannot be requested.
func (bv BackendVersion) Validate() error {
	switch {
	case bv.API != OpenGLAPI && bv.API != VulkanAPI:
		return errors.Configuration(fmt.Errorf("system: unknown backend API %v", bv.API))
	case bv.Major < 1 || bv.Minor < 0 || bv.Patch < 0:
		return errors.Configuration(fmt.Errorf("system: invalid %v version %d.%d.%d", bv.API, bv.Major, bv.Minor, bv.Patch))
	case bv.API == OpenGLAPI && bv.Patch != 0:
		return errors.Configuration(fmt.Errorf("system: OpenGL versions have no patch number: %d.%d.%d", bv.Major, bv.Minor, bv.Patch))
	}
	return nil
}

// AtLeast returns whether bv is the same API as req with
// a version no older than it.
func (bv BackendVersion) AtLeast(req BackendVersion) bool {
	if bv.API != req.API {
		return false
	}
	return bv.semver().Compare(req.semver()) >= 0
}

func (bv BackendVersion) semver() *semver.Version {
	return semver.New(uint64(bv.Major), uint64(bv.Minor), uint64(bv.Patch), "", "")
}

// ParseBackendVersion parses a backend such as "opengl 4.6" or
// "vulkan 1.3.0". The API name is case insensitive and gl and vk
// are accepted as short forms.
func ParseBackendVersion(s string) (BackendVersion, error) {
	fs := strings.Fields(s)
	if len(fs) != 2 {
		return BackendVersion{}, errors.Configuration(fmt.Errorf("system: invalid backend %q (must be like \"opengl 4.6\" or \"vulkan 1.3.0\")", s))
	}
	var bv BackendVersion
	switch strings.ToLower(fs[0]) {
	case "opengl", "gl":
		bv.API = OpenGLAPI
	case "vulkan", "vk":
		bv.API = VulkanAPI
	default:
		return BackendVersion{}, errors.Configuration(fmt.Errorf("system: unknown backend API %q (must be opengl or vulkan)", fs[0]))
	}
	v, err := semver.NewVersion(fs[1])
	if err != nil {
		return BackendVersion{}, errors.Configuration(fmt.Errorf("system: invalid backend version %q: %w", fs[1], err))
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return BackendVersion{}, errors.Configuration(fmt.Errorf("system: invalid backend version %q", fs[1]))
	}
	bv.Major, bv.Minor, bv.Patch = int(v.Major()), int(v.Minor()), int(v.Patch())
	return bv, bv.Validate()
}
