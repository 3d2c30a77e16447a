// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toolchain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"

	"golang.org/x/sys/execabs"
)

// DefaultCompiler is the compiler run when none is configured.
const DefaultCompiler = "rustc"

// Prober runs a compiler to find out which toolchain it belongs to.
type Prober struct {
	compiler string
	args     []string
}

// ProbeOption configures a Prober.
type ProbeOption func(*Prober)

// WithArgs replaces the arguments passed to the compiler. The default is
// "--version --verbose".
func WithArgs(args ...string) ProbeOption {
	return func(p *Prober) {
		p.args = args
	}
}

// NewProber returns a Prober for compiler. An empty compiler means
// DefaultCompiler.
func NewProber(compiler string, opts ...ProbeOption) *Prober {
	if compiler == "" {
		compiler = DefaultCompiler
	}
	p := &Prober{compiler: compiler, args: []string{"--version", "--verbose"}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Compiler returns the command the prober runs.
func (p *Prober) Compiler() string { return p.compiler }

// Probe runs the compiler and parses its verbose version output.
func (p *Prober) Probe(ctx context.Context) (*Descriptor, error) {
	out, err := p.output(ctx)
	if err != nil {
		return nil, &ProbeError{Command: p.compiler, Reason: "could not run compiler", Err: err}
	}
	d, err := ParseVerbose(out)
	if err != nil {
		var perr *ProbeError
		if errors.As(err, &perr) && perr.Command == "" {
			perr.Command = p.compiler
		}
		return nil, err
	}
	return d, nil
}

func (p *Prober) output(ctx context.Context) (string, error) {
	cmd := execabs.CommandContext(ctx, p.compiler, p.args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", errors.New(msg)
		}
		return "", err
	}
	return stdout.String(), nil
}

// ParseVerbose parses the output of "<compiler> --version --verbose":
//
//	rustc 1.75.0-nightly (e0d7ed1f4 2023-10-01)
//	binary: rustc
//	commit-hash: e0d7ed1f453fb54578cc96dfea859b0e7be15016
//	commit-date: 2023-10-01
//	host: x86_64-unknown-linux-gnu
//	release: 1.75.0-nightly
//	LLVM version: 17.0.2
//
// The release line is required; the host line is optional.
func ParseVerbose(out string) (*Descriptor, error) {
	var release, host string
	found := false

	s := bufio.NewScanner(strings.NewReader(out))
	for s.Scan() {
		key, value, ok := strings.Cut(s.Text(), ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "release":
			release, found = strings.TrimSpace(value), true
		case "host":
			host = strings.TrimSpace(value)
		}
	}
	if err := s.Err(); err != nil {
		return nil, &ProbeError{Reason: "read version output", Err: err}
	}
	if !found {
		return nil, &ProbeError{Reason: "no 'release: <version>' line in version output"}
	}

	d, err := ParseRelease(release)
	if err != nil {
		return nil, err
	}
	d.host = host
	return d, nil
}
