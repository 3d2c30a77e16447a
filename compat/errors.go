// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compat

import "fmt"

// VersionSyntaxError reports a version range that cannot be parsed.
type VersionSyntaxError struct {
	Raw string
	Err error
}

func (e *VersionSyntaxError) Error() string {
	return fmt.Sprintf("invalid version requirement %q: %v", e.Raw, e.Err)
}

func (e *VersionSyntaxError) Unwrap() error { return e.Err }
