// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cfg implements the platform predicate grammar used to scope
// capability checks to targets, e.g.
//
//	cfg(all(unix, target_arch = "x86_64"))
//
// Every atom compares one attribute of the target; the combinators are
// all, any and not.
package cfg

import "strconv"

// Key names a target attribute that a predicate can compare.
type Key string

const (
	KeyArch         Key = "target_arch"
	KeyOS           Key = "target_os"
	KeyFamily       Key = "target_family"
	KeyEnv          Key = "target_env"
	KeyVendor       Key = "target_vendor"
	KeyEndian       Key = "target_endian"
	KeyPointerWidth Key = "target_pointer_width"
	KeyABI          Key = "target_abi"
)

var knownKeys = map[Key]bool{
	KeyArch:         true,
	KeyOS:           true,
	KeyFamily:       true,
	KeyEnv:          true,
	KeyVendor:       true,
	KeyEndian:       true,
	KeyPointerWidth: true,
	KeyABI:          true,
}

// familyShorthands are the bare identifiers accepted as atoms. Each one
// stands for target_family = "<name>".
var familyShorthands = map[string]bool{
	"unix":    true,
	"windows": true,
}

// Predicate is a single attribute comparison.
type Predicate struct {
	Key   Key
	Value string
}

// Matches reports whether t has the attribute value p asks for.
func (p Predicate) Matches(t *Target) bool {
	if t == nil {
		return false
	}
	switch p.Key {
	case KeyArch:
		return t.Arch == p.Value
	case KeyOS:
		return t.OS == p.Value
	case KeyFamily:
		for _, f := range t.Families {
			if f == p.Value {
				return true
			}
		}
		return false
	case KeyEnv:
		return t.Env == p.Value
	case KeyVendor:
		return t.Vendor == p.Value
	case KeyEndian:
		return t.Endian == p.Value
	case KeyPointerWidth:
		return strconv.Itoa(t.PointerWidth) == p.Value
	case KeyABI:
		return t.ABI == p.Value
	}
	return false
}

func (p Predicate) String() string {
	return string(p.Key) + " = " + strconv.Quote(p.Value)
}

type node interface {
	eval(fn func(Predicate) bool) bool
}

type predNode struct {
	pred Predicate
}

func (n *predNode) eval(fn func(Predicate) bool) bool { return fn(n.pred) }

type allNode struct {
	args []node
}

func (n *allNode) eval(fn func(Predicate) bool) bool {
	for _, a := range n.args {
		if !a.eval(fn) {
			return false
		}
	}
	return true
}

type anyNode struct {
	args []node
}

func (n *anyNode) eval(fn func(Predicate) bool) bool {
	for _, a := range n.args {
		if a.eval(fn) {
			return true
		}
	}
	return false
}

type notNode struct {
	arg node
}

func (n *notNode) eval(fn func(Predicate) bool) bool { return !n.arg.eval(fn) }

// Expression is a parsed cfg expression.
type Expression struct {
	src   string
	root  node
	preds []Predicate
}

// Eval evaluates the expression, asking fn for the value of each atom.
// Combinators short-circuit, so fn is not necessarily called for every
// predicate.
func (e *Expression) Eval(fn func(Predicate) bool) bool {
	return e.root.eval(fn)
}

// Matches evaluates the expression against target t.
func (e *Expression) Matches(t *Target) bool {
	return e.Eval(func(p Predicate) bool { return p.Matches(t) })
}

// Predicates returns the atoms of the expression in source order.
func (e *Expression) Predicates() []Predicate {
	return append([]Predicate(nil), e.preds...)
}

// String returns the source text the expression was parsed from.
func (e *Expression) String() string {
	return e.src
}
