// Package env reads the build settings cargo passes to a build script.
package env

import (
	"os"
	"path/filepath"

	"github.com/goplus/capcheck/toolchain"
)

// Environment variables set by cargo for build scripts.
const (
	TargetVar      = "TARGET"
	RustcVar       = "RUSTC"
	CargoRustcVar  = "CARGO_BUILD_RUSTC"
	ManifestDirVar = "CARGO_MANIFEST_DIR"
)

// ManifestName is the manifest file looked up in the manifest directory.
const ManifestName = "Cargo.toml"

// Target returns the target triple being built for, or "" when unset.
func Target() string {
	return os.Getenv(TargetVar)
}

// Compiler returns the compiler to probe: RUSTC, then CARGO_BUILD_RUSTC,
// then the default compiler.
func Compiler() string {
	for _, key := range []string{RustcVar, CargoRustcVar} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return toolchain.DefaultCompiler
}

// WorkDir returns the directory holding the manifest: CARGO_MANIFEST_DIR
// when set, the current directory otherwise.
func WorkDir() (string, error) {
	if dir := os.Getenv(ManifestDirVar); dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

// ManifestPath returns the path of the manifest in WorkDir.
func ManifestPath() (string, error) {
	dir, err := WorkDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ManifestName), nil
}
