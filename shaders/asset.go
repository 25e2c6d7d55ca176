// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"encoding/binary"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/tumble/base/errors"
)

// CacheSuffix is appended to the full source file name to get the name
// of its compiled cache file, so simple.vs is cached as simple.vs.spv.
const CacheSuffix = ".spv"

// MagicNumber is the first word of every SPIR-V module.
const MagicNumber = 0x07230203

// Asset is a compiled shader: a SPIR-V module as a sequence of 32-bit words.
type Asset struct {

	// Name is the source file name the asset was compiled from, such as simple.vs.
	Name string

	// Kind is the pipeline stage of the shader.
	Kind Kinds

	// Code is the SPIR-V bytecode.
	Code []uint32
}

// CacheName returns the cache file name for the asset.
func (a *Asset) CacheName() string {
	return a.Name + CacheSuffix
}

// Bytes returns the cache file contents for the asset: its words in
// native byte order, with no header.
func (a *Asset) Bytes() []byte {
	b := make([]byte, 0, 4*len(a.Code))
	for _, w := range a.Code {
		b = binary.NativeEndian.AppendUint32(b, w)
	}
	return b
}

// IsSPIRV returns whether the given words start with the SPIR-V magic number.
func IsSPIRV(code []uint32) bool {
	return len(code) > 0 && code[0] == MagicNumber
}

// WordsFromBytes converts the given bytes into 32-bit words in the given
// byte order. The length of b must be a multiple of 4.
func WordsFromBytes(b []byte, order binary.ByteOrder) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("shaders: bytecode length %d is not a multiple of 4", len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = order.Uint32(b[4*i:])
	}
	return words, nil
}

// DecodeAsset returns the asset stored in the given cache file contents.
// The name is the cache file name, from which the source name and kind
// are recovered.
func DecodeAsset(fileName string, data []byte) (*Asset, error) {
	base := filepath.Base(fileName)
	name, ok := strings.CutSuffix(base, CacheSuffix)
	if !ok {
		return nil, errors.Configuration(fmt.Errorf("shaders: cache file %q does not end in %s", fileName, CacheSuffix))
	}
	kind, err := KindFromFilename(name)
	if err != nil {
		return nil, err
	}
	code, err := WordsFromBytes(data, binary.NativeEndian)
	if err != nil {
		return nil, errors.Configuration(fmt.Errorf("%s: %w", fileName, err))
	}
	if !IsSPIRV(code) {
		return nil, errors.Configuration(fmt.Errorf("shaders: cache file %q is not SPIR-V", fileName))
	}
	return &Asset{Name: name, Kind: kind, Code: code}, nil
}

// ReadAsset reads the asset in the given cache file.
func ReadAsset(path string) (*Asset, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Configuration(fmt.Errorf("shaders: %w (has the shader cache been built?)", err))
	}
	if err != nil {
		return nil, err
	}
	return DecodeAsset(path, b)
}

// WriteCache writes the assets to their cache files in the given directory
// as a unit: either every file is replaced or none is. All of the contents
// are written to temporary files, every destination is checked, and only
// then are the files renamed into place. If a rename still fails, the
// files already replaced are restored.
func WriteCache(dir string, assets ...*Asset) error {
	var staged []string
	defer func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}()
	for _, a := range assets {
		tmp, err := stage(dir, a)
		if err != nil {
			return err
		}
		staged = append(staged, tmp)
	}
	for _, a := range assets {
		dst := filepath.Join(dir, a.CacheName())
		st, err := os.Lstat(dst)
		if err == nil && !st.Mode().IsRegular() {
			return errors.Configuration(fmt.Errorf("shaders: cache file %s is not a regular file", dst))
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	type commit struct {
		dst, backup string
	}
	var done []commit
	rollback := func() {
		for i := len(done) - 1; i >= 0; i-- {
			c := done[i]
			if c.backup == "" {
				os.Remove(c.dst)
				continue
			}
			os.Rename(c.backup, c.dst)
		}
	}
	for i, a := range assets {
		c := commit{dst: filepath.Join(dir, a.CacheName())}
		if _, err := os.Lstat(c.dst); err == nil {
			c.backup = staged[i] + ".old"
			if err := os.Rename(c.dst, c.backup); err != nil {
				rollback()
				return err
			}
		}
		if err := os.Rename(staged[i], c.dst); err != nil {
			if c.backup != "" {
				os.Rename(c.backup, c.dst)
			}
			rollback()
			return err
		}
		done = append(done, c)
	}
	for _, c := range done {
		if c.backup != "" {
			os.Remove(c.backup)
		}
	}
	return nil
}

// stage writes the contents of the asset to a new temporary file
// in the given directory and returns its name.
func stage(dir string, a *Asset) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+a.CacheName()+".*")
	if err != nil {
		return "", err
	}
	_, err = tmp.Write(a.Bytes())
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// LoadCache reads the cache files for the given source names (such as
// simple.vs) from the given cache directory.
func LoadCache(dir string, names ...string) ([]*Asset, error) {
	assets := make([]*Asset, len(names))
	for i, name := range names {
		a, err := ReadAsset(filepath.Join(dir, name+CacheSuffix))
		if err != nil {
			return nil, err
		}
		assets[i] = a
	}
	return assets, nil
}
