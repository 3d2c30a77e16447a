// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfg

// Evaluate parses predicate and evaluates it for the builtin target named
// by triple. A malformed predicate yields *PredicateError; a triple that
// is not in the target database yields *UnknownTargetError. The predicate
// is checked first, so a malformed predicate is reported whatever the
// target.
func Evaluate(predicate, triple string) (bool, error) {
	expr, err := Parse(predicate)
	if err != nil {
		return false, err
	}
	target, ok := LookupTarget(triple)
	if !ok {
		return false, &UnknownTargetError{Triple: triple}
	}
	return expr.Matches(target), nil
}
