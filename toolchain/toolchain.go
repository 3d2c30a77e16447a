// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package toolchain describes the compiler a build runs with: its
// version, its release channel and the host it runs on.
package toolchain

import (
	"fmt"
	"strings"

	mm "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"
)

// Channel names a release channel of the toolchain.
type Channel string

const (
	Stable  Channel = "stable"
	Beta    Channel = "beta"
	Nightly Channel = "nightly"
	Dev     Channel = "dev"
)

// prereleaseChannels are the channels whose builds expose capabilities
// ahead of the matching stable version. A beta is built from the next
// stable release and counts as stable.
var prereleaseChannels = map[Channel]bool{
	Nightly: true,
	Dev:     true,
}

// Descriptor is an immutable description of a toolchain. It is built
// once per run and passed to whatever needs it.
type Descriptor struct {
	version *mm.Version
	channel Channel
	host    string
}

// New returns a descriptor for version v on channel ch. host may be
// empty when unknown.
func New(v *mm.Version, ch Channel, host string) *Descriptor {
	if ch == "" {
		ch = Stable
	}
	return &Descriptor{version: v, channel: ch, host: host}
}

// Version returns the toolchain version without its channel suffix.
func (d *Descriptor) Version() *mm.Version { return d.version }

// Channel returns the release channel.
func (d *Descriptor) Channel() Channel { return d.channel }

// Prerelease reports whether the toolchain is on a pre-release channel.
func (d *Descriptor) Prerelease() bool { return prereleaseChannels[d.channel] }

// Host returns the host triple reported by the toolchain, if any.
func (d *Descriptor) Host() string { return d.host }

// Validate reports a descriptor that cannot be evaluated against.
func (d *Descriptor) Validate() error {
	if d == nil {
		return &ProbeError{Reason: "no toolchain descriptor"}
	}
	if d.version == nil {
		return &ProbeError{Reason: "toolchain descriptor has no version"}
	}
	return nil
}

func (d *Descriptor) String() string {
	if d == nil || d.version == nil {
		return "<invalid toolchain>"
	}
	if d.channel == Stable {
		return d.version.String()
	}
	return d.version.String() + "-" + string(d.channel)
}

// ParseRelease parses a release token such as "1.74.1", "1.75.0-nightly"
// or "1.76.0-beta.3". The first identifier of the pre-release suffix
// names the channel; an unrecognized suffix is treated as stable.
func ParseRelease(token string) (*Descriptor, error) {
	tok := strings.TrimSpace(token)
	v := "v" + tok
	if tok == "" || !semver.IsValid(v) {
		return nil, &ProbeError{Reason: fmt.Sprintf("invalid release %q", tok)}
	}

	pre := semver.Prerelease(v)
	base := strings.TrimSuffix(strings.TrimSuffix(tok, semver.Build(v)), pre)
	ver, err := mm.NewVersion(base)
	if err != nil {
		return nil, &ProbeError{Reason: fmt.Sprintf("invalid release %q", tok), Err: err}
	}

	ch := Stable
	if pre != "" {
		marker, _, _ := strings.Cut(pre[1:], ".")
		switch Channel(marker) {
		case Nightly, Dev, Beta:
			ch = Channel(marker)
		}
	}
	return &Descriptor{version: ver, channel: ch}, nil
}

// MustParseRelease is like ParseRelease but panics on error.
func MustParseRelease(token string) *Descriptor {
	d, err := ParseRelease(token)
	if err != nil {
		panic(err)
	}
	return d
}
