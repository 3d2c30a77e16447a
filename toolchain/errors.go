// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toolchain

// ProbeError reports a compiler that could not be run, output that does
// not carry a usable version, or a descriptor without a version.
type ProbeError struct {
	Command string
	Reason  string
	Err     error
}

func (e *ProbeError) Error() string {
	msg := "toolchain probe"
	if e.Command != "" {
		msg += " " + e.Command
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProbeError) Unwrap() error { return e.Err }
