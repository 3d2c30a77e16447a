// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compat

import "github.com/goplus/capcheck/toolchain"

// Enable returns the checks that tc satisfies, in their original order.
// A name that appears more than once is checked, and may be returned,
// once per occurrence.
func Enable(checks []Check, tc *toolchain.Descriptor) []Check {
	return EnableFunc(checks, tc, nil)
}

// EnableFunc is like Enable but also reports every decision to fn, when
// fn is not nil. Each check is tested exactly once.
func EnableFunc(checks []Check, tc *toolchain.Descriptor, fn func(c Check, enabled bool)) []Check {
	var enabled []Check
	for _, c := range checks {
		ok := c.Satisfies(tc)
		if ok {
			enabled = append(enabled, c)
		}
		if fn != nil {
			fn(c, ok)
		}
	}
	return enabled
}

// Names returns the capability names of checks.
func Names(checks []Check) []string {
	if len(checks) == 0 {
		return nil
	}
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.Name
	}
	return names
}

// Flags returns the flag names of checks.
func Flags(checks []Check, prefix string) []string {
	if len(checks) == 0 {
		return nil
	}
	flags := make([]string, len(checks))
	for i, c := range checks {
		flags[i] = c.FlagName(prefix)
	}
	return flags
}
