// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goplus/capcheck/cfg"
	"github.com/goplus/capcheck/compat"
)

const groupedManifest = `
[package.metadata.compiler_support]
foo = { version = "1.0.0" }

[package.metadata.compiler_support.'cfg(target_os = "linux")']
bar = { version = "1.2.0" }

[package.metadata.compiler_support.'cfg(windows)']
win = { version = "1.2.0" }

[package.metadata.compiler_support.'cfg(unix)']
foo = { version = "2.0.0" }
`

func TestFlatten(t *testing.T) {
	m := parseTOML(t, groupedManifest)
	tests := []struct {
		target string
		want   []string
	}{
		{"x86_64-unknown-linux-gnu", []string{"foo", "bar", "foo"}},
		{"aarch64-apple-darwin", []string{"foo", "foo"}},
		{"x86_64-pc-windows-msvc", []string{"foo", "win"}},
		{"wasm32-unknown-unknown", []string{"foo"}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, err := Flatten(m, tt.target, nil)
			if err != nil {
				t.Fatalf("Flatten: %v", err)
			}
			if diff := cmp.Diff(tt.want, compat.Names(got)); diff != "" {
				t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlatten_EvaluatesEachGroupOnce(t *testing.T) {
	m := parseTOML(t, groupedManifest)
	calls := make(map[string]int)
	ev := EvaluatorFunc(func(pred, triple string) (bool, error) {
		calls[pred]++
		return pred == "cfg(unix)", nil
	})
	got, err := Flatten(m, "anything", ev)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if diff := cmp.Diff([]string{"foo", "foo"}, compat.Names(got)); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
	want := map[string]int{
		`cfg(target_os = "linux")`: 1,
		"cfg(windows)":             1,
		"cfg(unix)":                1,
	}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("evaluator calls mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_InvalidTarget(t *testing.T) {
	m := parseTOML(t, groupedManifest)
	_, err := Flatten(m, "x86_65-unknown-freax-gna", nil)
	var terr *cfg.UnknownTargetError
	if !errors.As(err, &terr) {
		t.Fatalf("Flatten error = %v, want *cfg.UnknownTargetError", err)
	}

	// without groups the target is never consulted
	direct := parseTOML(t, "[package.metadata.compiler_support]\nfoo = { version = \"1\" }\n")
	got, err := Flatten(direct, "x86_65-unknown-freax-gna", nil)
	if err != nil {
		t.Fatalf("Flatten without groups: %v", err)
	}
	if diff := cmp.Diff([]string{"foo"}, compat.Names(got)); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_MalformedPredicate(t *testing.T) {
	m := parseTOML(t, `
[package.metadata.compiler_support]
foo = { version = ">=0" }

[package.metadata.compiler_support.'cfg(target_os == "linux")']
bar = { version = ">=0" }
`)
	_, err := Flatten(m, "x86_64-unknown-linux-gnu", nil)
	var perr *cfg.PredicateError
	if !errors.As(err, &perr) {
		t.Fatalf("Flatten error = %v, want *cfg.PredicateError", err)
	}
}

func TestFlatten_Empty(t *testing.T) {
	got, err := Flatten(&Manifest{}, "x86_64-unknown-linux-gnu", nil)
	if err != nil || got != nil {
		t.Errorf("Flatten(empty) = %v, %v; want nil, nil", got, err)
	}
}
