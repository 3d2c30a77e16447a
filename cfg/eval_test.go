// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfg

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		predicate string
		triple    string
		want      bool
	}{
		{`cfg(target_os = "linux")`, "x86_64-unknown-linux-gnu", true},
		{`cfg(target_os = "linux")`, "x86_64-pc-windows-msvc", false},
		{`cfg(target_os = "windows")`, "x86_64-pc-windows-msvc", true},
		{`cfg(unix)`, "aarch64-apple-darwin", true},
		{`cfg(unix)`, "x86_64-pc-windows-gnu", false},
		{`cfg(windows)`, "i686-pc-windows-msvc", true},
		{`cfg(target_family = "wasm")`, "wasm32-unknown-emscripten", true},
		{`cfg(unix)`, "wasm32-unknown-emscripten", true},
		{`cfg(unix)`, "thumbv7em-none-eabihf", false},
		{`cfg(target_os = "none")`, "thumbv7em-none-eabihf", true},
		{`cfg(target_pointer_width = "32")`, "i686-unknown-linux-gnu", true},
		{`cfg(target_pointer_width = "32")`, "x86_64-unknown-linux-gnu", false},
		{`cfg(target_endian = "big")`, "s390x-unknown-linux-gnu", true},
		{`cfg(target_env = "")`, "x86_64-apple-darwin", true},
		{`cfg(target_abi = "eabihf")`, "armv7-unknown-linux-gnueabihf", true},
		{`cfg(all(unix, target_arch = "aarch64"))`, "aarch64-unknown-linux-musl", true},
		{`cfg(all(unix, target_arch = "aarch64"))`, "x86_64-unknown-linux-musl", false},
		{`cfg(any(target_os = "macos", target_os = "ios"))`, "aarch64-apple-ios", true},
		{`cfg(any(target_os = "macos", target_os = "ios"))`, "aarch64-linux-android", false},
		{`cfg(not(target_env = "musl"))`, "x86_64-unknown-linux-gnu", true},
		{`cfg(all())`, "x86_64-unknown-linux-gnu", true},
		{`cfg(any())`, "x86_64-unknown-linux-gnu", false},
		{`cfg(target_os = "freax")`, "x86_64-unknown-linux-gnu", false},
	}

	for _, tt := range tests {
		t.Run(tt.predicate+"@"+tt.triple, func(t *testing.T) {
			got, err := Evaluate(tt.predicate, tt.triple)
			if err != nil {
				t.Fatalf("Evaluate(%q, %q) error: %v", tt.predicate, tt.triple, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.predicate, tt.triple, got, tt.want)
			}
		})
	}
}

func TestEvaluate_UnknownTarget(t *testing.T) {
	_, err := Evaluate(`cfg(target_os = "linux")`, "x86_65-unknown-freax-gna")
	var uerr *UnknownTargetError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want *UnknownTargetError", err)
	}
	if uerr.Triple != "x86_65-unknown-freax-gna" {
		t.Errorf("Triple = %q, want %q", uerr.Triple, "x86_65-unknown-freax-gna")
	}
}

func TestEvaluate_MalformedBeforeTarget(t *testing.T) {
	// A malformed predicate is reported even when the target is unknown too.
	_, err := Evaluate(`cfg(target_os = `, "x86_65-unknown-freax-gna")
	var perr *PredicateError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PredicateError", err)
	}
}

func TestExpression_EvalShortCircuit(t *testing.T) {
	expr := MustParse(`cfg(any(unix, target_os = "linux", windows))`)
	var seen []Predicate
	got := expr.Eval(func(p Predicate) bool {
		seen = append(seen, p)
		return p.Key == KeyFamily && p.Value == "unix"
	})
	if !got {
		t.Fatal("Eval = false, want true")
	}
	if len(seen) != 1 {
		t.Errorf("Eval visited %d predicates, want 1", len(seen))
	}
}

func TestPredicate_MatchesNilTarget(t *testing.T) {
	if (Predicate{Key: KeyOS, Value: "linux"}).Matches(nil) {
		t.Error("Matches(nil) = true, want false")
	}
}
