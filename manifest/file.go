// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format is the encoding of a manifest document.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Default locations of the capability section.
const (
	DefaultTOMLSection = "package.metadata.compiler_support"
	DefaultYAMLSection = "capabilities"
)

// DefaultSection returns the section read when none is configured.
func (f Format) DefaultSection() string {
	if f == YAML {
		return DefaultYAMLSection
	}
	return DefaultTOMLSection
}

// FormatOf infers the manifest format from a file name.
func FormatOf(file string) (Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("manifest: cannot infer format of %q", file)
}

// Options controls how a manifest is read.
type Options struct {
	Format  Format // inferred from the file name when empty
	Section string // dotted path of the capability section, Format.DefaultSection() when empty
}

// Parse decodes data and classifies the entries of its capability
// section.
func Parse(data []byte, opts Options) (*Manifest, error) {
	format := opts.Format
	if format == "" {
		format = TOML
	}
	section := opts.Section
	if section == "" {
		section = format.DefaultSection()
	}

	var (
		doc *table
		err error
	)
	switch format {
	case TOML:
		doc, err = decodeTOML(data)
	case YAML:
		doc, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("manifest: unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}

	caps, err := doc.lookup(section)
	if err != nil {
		return nil, err
	}
	return fromTable(caps, section)
}

// ReadFile reads and parses a manifest from either provided data or a
// file path. If data is non-nil, it is used directly and the file is
// only consulted to infer the format.
func ReadFile(file string, data []byte, opts Options) (*Manifest, error) {
	if opts.Format == "" {
		f, err := FormatOf(file)
		if err != nil {
			return nil, err
		}
		opts.Format = f
	}
	if data == nil {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		data = b
	}
	return Parse(data, opts)
}
