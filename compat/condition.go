// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compat decides which capabilities a toolchain supports.
//
// A Condition holds one version requirement per release channel. A
// toolchain on a pre-release channel is only ever checked against the
// pre-release requirement, and a stable toolchain only against the
// stable one.
package compat

import (
	"fmt"

	mm "github.com/Masterminds/semver/v3"

	"github.com/goplus/capcheck/toolchain"
)

// Requirement is a parsed version range such as ">=1.2, <2" or "~1.4".
type Requirement struct {
	raw string
	c   *mm.Constraints
}

// ParseRequirement parses a version range.
func ParseRequirement(raw string) (*Requirement, error) {
	c, err := mm.NewConstraint(raw)
	if err != nil {
		return nil, &VersionSyntaxError{Raw: raw, Err: err}
	}
	return &Requirement{raw: raw, c: c}, nil
}

// MustParseRequirement is like ParseRequirement but panics on error.
func MustParseRequirement(raw string) *Requirement {
	r, err := ParseRequirement(raw)
	if err != nil {
		panic(err)
	}
	return r
}

// Matches reports whether v is in the range.
func (r *Requirement) Matches(v *mm.Version) bool {
	if r == nil || v == nil {
		return false
	}
	return r.c.Check(v)
}

func (r *Requirement) String() string {
	if r == nil {
		return ""
	}
	return r.raw
}

// Condition is the requirement declared for one capability.
type Condition struct {
	Version        *Requirement // stable channel; nil means never on stable
	NightlyVersion *Requirement // pre-release channel; nil means never on pre-release
	Flag           string       // emitted flag name, overrides the capability name
}

// Satisfies reports whether the toolchain tc meets c. The requirement of
// the other channel is never consulted.
func (c Condition) Satisfies(tc *toolchain.Descriptor) bool {
	if tc.Prerelease() {
		return c.NightlyVersion.Matches(tc.Version())
	}
	return c.Version.Matches(tc.Version())
}

func (c Condition) String() string {
	return fmt.Sprintf("{version: %q, nightly_version: %q}", c.Version, c.NightlyVersion)
}

// Check pairs a capability name with its condition.
type Check struct {
	Name string
	Condition
}

// FlagName returns the flag emitted when the check passes: the declared
// override if any, otherwise prefix followed by the capability name.
func (c Check) FlagName(prefix string) string {
	if c.Flag != "" {
		return c.Flag
	}
	return prefix + c.Name
}

func (c Check) String() string {
	return c.Name + " " + c.Condition.String()
}
