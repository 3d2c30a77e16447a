// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"fmt"

	"github.com/goplus/capcheck/cfg"
	"github.com/goplus/capcheck/compat"
)

// Evaluator decides whether a cfg predicate holds for a target triple.
type Evaluator interface {
	Evaluate(predicate, triple string) (bool, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(predicate, triple string) (bool, error)

func (f EvaluatorFunc) Evaluate(predicate, triple string) (bool, error) {
	return f(predicate, triple)
}

// DefaultEvaluator evaluates predicates against the builtin target table.
var DefaultEvaluator Evaluator = EvaluatorFunc(cfg.Evaluate)

// Flatten returns the capabilities of m that apply to target, in
// declaration order. Direct entries always apply; the members of a
// group apply when its predicate holds. Each predicate is evaluated once.
// A nil ev means DefaultEvaluator.
func Flatten(m *Manifest, target string, ev Evaluator) ([]compat.Check, error) {
	if ev == nil {
		ev = DefaultEvaluator
	}
	var ret []compat.Check
	for _, e := range m.Entries {
		if e.Group == nil {
			ret = append(ret, *e.Direct)
			continue
		}
		ok, err := ev.Evaluate(e.Group.Predicate, target)
		if err != nil {
			return nil, fmt.Errorf("platform group %q: %w", e.Group.Predicate, err)
		}
		if ok {
			ret = append(ret, e.Group.Members...)
		}
	}
	return ret, nil
}
