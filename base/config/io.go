// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the config file formats, selected by file extension.
type Formats int32

const (
	// TOML is used for .toml files.
	TOML Formats = iota

	// YAML is used for .yaml and .yml files.
	YAML
)

// FormatFromFilename returns the format of the given config file
// based on its extension.
func FormatFromFilename(file string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: unsupported config file format %q (must be .toml, .yaml or .yml)", file)
}

// Expand expands a leading ~ in the given path to the user's home directory.
func Expand(path string) (string, error) {
	return homedir.Expand(path)
}

// Open reads the given config object from the given file, which must be
// a TOML or YAML file. Values present in the file override existing values
// in cfg, so [SetFromDefaults] should be called first.
func Open(cfg any, file string) error {
	file, err := Expand(file)
	if err != nil {
		return err
	}
	ft, err := FormatFromFilename(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return Read(cfg, b, ft)
}

// Read reads the given config object from the given bytes in the given format.
func Read(cfg any, b []byte, ft Formats) error {
	var err error
	switch ft {
	case YAML:
		err = yaml.Unmarshal(b, cfg)
	default:
		d := toml.NewDecoder(bytes.NewReader(b))
		d.DisallowUnknownFields()
		err = d.Decode(cfg)
	}
	if err != nil {
		return fmt.Errorf("config: parsing %v: %w", ft, err)
	}
	return nil
}

// Save writes the given config object to the given TOML or YAML file.
func Save(cfg any, file string) error {
	file, err := Expand(file)
	if err != nil {
		return err
	}
	ft, err := FormatFromFilename(file)
	if err != nil {
		return err
	}
	var b []byte
	switch ft {
	case YAML:
		b, err = yaml.Marshal(cfg)
	default:
		b, err = toml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0666)
}

func (ft Formats) String() string {
	if ft == YAML {
		return "YAML"
	}
	return "TOML"
}
