// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfg

import "fmt"

// PredicateError reports a predicate that is not a valid cfg expression.
type PredicateError struct {
	Expr   string // the predicate text as written
	Offset int    // byte offset of the offending token
	Reason string
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("invalid cfg expression %q: %s (at offset %d)", e.Expr, e.Reason, e.Offset)
}

// UnknownTargetError reports a target triple missing from the target database.
type UnknownTargetError struct {
	Triple string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target triple %q", e.Triple)
}
