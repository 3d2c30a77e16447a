// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import "fmt"

// FormatError reports a manifest whose shape does not match either
// entry kind, or that cannot be decoded at all.
type FormatError struct {
	Key    string // dotted key path, empty for document-level errors
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Key != "" {
		msg = fmt.Sprintf("%q: %s", e.Key, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "manifest: " + msg
}

func (e *FormatError) Unwrap() error { return e.Err }
