package internal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goplus/capcheck/cfg"
	"github.com/goplus/capcheck/compat"
	"github.com/goplus/capcheck/manifest"
)

const testManifest = `[package]
name = "demo"

[package.metadata.compiler_support]
foo = { version = "1.0.0", cfg = "can_do_stuff" }
bar = { version = "2.0.0" }

[package.metadata.compiler_support.'cfg(target_os = "linux")']
baz = { version = ">=1" }
`

func resetFlags() {
	rootVerbose = false
	checkManifest, checkSection, checkTarget = "", "", ""
	checkCompiler, checkToolchain, checkPrefix = "", "", ""
	checkFormat = "cargo"
	checkCfg = false
	probeCompiler = ""
	evalTarget = ""
	targetsMatching = ""
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Setenv("TARGET", "")
	t.Setenv("RUSTC", "")
	t.Setenv("CARGO_BUILD_RUSTC", "")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func writeCompiler(t *testing.T, out string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "fakerustc")
	script := "#!/bin/sh\ncat <<'EOF'\n" + out + "EOF\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheck_Cargo(t *testing.T) {
	path := writeFile(t, "Cargo.toml", testManifest)
	stdout, _, err := execute(t, "check", "-m", path, "--toolchain", "1.0.0",
		"-t", "x86_64-unknown-linux-gnu", "--prefix", "cs_", "--check-cfg")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	want := []string{
		"cargo:rerun-if-changed=" + path,
		"cargo:rustc-check-cfg=cfg(can_do_stuff)",
		"cargo:rustc-check-cfg=cfg(cs_bar)",
		"cargo:rustc-check-cfg=cfg(cs_baz)",
		"cargo:rustc-cfg=can_do_stuff",
		"cargo:rustc-cfg=cs_baz",
	}
	if diff := cmp.Diff(want, lines(stdout)); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_Formats(t *testing.T) {
	path := writeFile(t, "Cargo.toml", testManifest)
	tests := []struct {
		format string
		want   []string
	}{
		{"gotags", []string{"-tags=can_do_stuff,baz"}},
		{"cmake", []string{
			"-DCAPCHECK_TARGET:STRING=aarch64-unknown-linux-gnu",
			"-DCAPCHECK_TOOLCHAIN:STRING=1.0.0",
			"-Dbaz:BOOL=ON",
			"-Dcan_do_stuff:BOOL=ON",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stdout, _, err := execute(t, "check", "-m", path, "--toolchain", "1.0.0",
				"-t", "aarch64-unknown-linux-gnu", "-f", tt.format)
			if err != nil {
				t.Fatalf("check: %v", err)
			}
			if diff := cmp.Diff(tt.want, lines(stdout)); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, _, err := execute(t, "check", "-m", path, "--toolchain", "1.0.0", "-t", "x86_64-unknown-linux-gnu", "-f", "ninja"); err == nil {
		t.Error("check with unknown format succeeded")
	}
}

func TestCheck_TargetFromEnv(t *testing.T) {
	path := writeFile(t, "Cargo.toml", testManifest)
	resetFlags()
	t.Setenv("TARGET", "x86_64-pc-windows-msvc")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"check", "-m", path, "--toolchain", "1.0.0", "-f", "gotags"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if got, want := stdout.String(), "-tags=can_do_stuff\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestCheck_ManifestDir(t *testing.T) {
	dir := filepath.Dir(writeFile(t, "Cargo.toml", testManifest))
	t.Setenv("CARGO_MANIFEST_DIR", dir)
	stdout, _, err := execute(t, "check", "--toolchain", "2.0.0", "-t", "x86_64-apple-darwin")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	want := []string{
		"cargo:rerun-if-changed=" + filepath.Join(dir, "Cargo.toml"),
		"cargo:rustc-cfg=bar",
	}
	if diff := cmp.Diff(want, lines(stdout)); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_Errors(t *testing.T) {
	bad := writeFile(t, "Cargo.toml", `
[package.metadata.compiler_support.'cfg(target_os = linux)']
baz = { version = ">=1" }
`)
	stdout, _, err := execute(t, "check", "-m", bad, "--toolchain", "1.0.0", "-t", "x86_64-unknown-linux-gnu")
	var perr *cfg.PredicateError
	if !errors.As(err, &perr) {
		t.Errorf("check error = %v, want *cfg.PredicateError", err)
	}
	if stdout != "" {
		t.Errorf("check wrote %q on failure", stdout)
	}

	good := writeFile(t, "Cargo.toml", testManifest)
	_, _, err = execute(t, "check", "-m", good, "--toolchain", "1.0.0", "-t", "x86_65-unknown-freax-gna")
	var terr *cfg.UnknownTargetError
	if !errors.As(err, &terr) {
		t.Errorf("check error = %v, want *cfg.UnknownTargetError", err)
	}

	if _, _, err = execute(t, "check", "-m", good, "--toolchain", "latest", "-t", "x86_64-unknown-linux-gnu"); err == nil {
		t.Error("check with an invalid toolchain succeeded")
	}
}

const nightlyVerbose = `rustc 1.75.0-nightly (0f44eb32f 2023-11-01)
binary: rustc
commit-hash: 0f44eb32f1123ac93ab404d74c295263ce468343
commit-date: 2023-11-01
host: x86_64-unknown-linux-gnu
release: 1.75.0-nightly
LLVM version: 17.0.4
`

func TestCheck_Probe(t *testing.T) {
	compiler := writeCompiler(t, nightlyVerbose)
	path := writeFile(t, "Cargo.toml", `
[package.metadata.compiler_support]
stable_only = { version = ">=1.0" }
nightly_only = { nightly_version = ">=1.70" }

[package.metadata.compiler_support.'cfg(unix)']
unix_nightly = { nightly_version = "*" }
`)
	stdout, stderr, err := execute(t, "check", "-m", path, "--compiler", compiler, "-f", "gotags", "-v")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got, want := stdout, "-tags=nightly_only,unix_nightly\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.Contains(stderr, "x86_64-unknown-linux-gnu") {
		t.Errorf("stderr does not mention the host target:\n%s", stderr)
	}
}

func TestProbe(t *testing.T) {
	compiler := writeCompiler(t, nightlyVerbose)
	stdout, _, err := execute(t, "probe", "--compiler", compiler)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	for _, want := range []string{"version: 1.75.0", "channel: nightly", "prerelease: true", "host: x86_64-unknown-linux-gnu"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("probe output missing %q:\n%s", want, stdout)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		pred   string
		target string
		want   string
	}{
		{"cfg(unix)", "x86_64-unknown-linux-gnu", "true\n"},
		{`cfg(all(unix, target_pointer_width = "64"))`, "i686-unknown-linux-gnu", "false\n"},
		{`not(target_os = "windows")`, "x86_64-pc-windows-gnu", "false\n"},
	}
	for _, tt := range tests {
		t.Run(tt.pred, func(t *testing.T) {
			stdout, _, err := execute(t, "eval", tt.pred, "-t", tt.target)
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("eval %q on %s = %q, want %q", tt.pred, tt.target, stdout, tt.want)
			}
		})
	}

	if _, _, err := execute(t, "eval", "cfg(target_color = \"red\")", "-t", "x86_64-unknown-linux-gnu"); err == nil {
		t.Error("eval with an unknown key succeeded")
	}
}

func TestTargets(t *testing.T) {
	stdout, _, err := execute(t, "targets")
	if err != nil {
		t.Fatalf("targets: %v", err)
	}
	if diff := cmp.Diff(cfg.Targets(), lines(stdout)); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}

	stdout, _, err = execute(t, "targets", "--matching", `all(target_os = "windows", target_env = "msvc")`)
	if err != nil {
		t.Fatalf("targets --matching: %v", err)
	}
	want := []string{"aarch64-pc-windows-msvc", "i586-pc-windows-msvc", "i686-pc-windows-msvc", "x86_64-pc-windows-msvc"}
	if diff := cmp.Diff(want, lines(stdout)); diff != "" {
		t.Errorf("targets --matching mismatch (-want +got):\n%s", diff)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caps.yaml")
	if _, _, err := execute(t, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}

	m, err := manifest.ReadFile(path, nil, manifest.Options{})
	if err != nil {
		t.Fatalf("reading the starter manifest: %v", err)
	}
	if diff := cmp.Diff([]string{"example_unix", "example"}, compat.Names(m.Checks())); diff != "" {
		t.Errorf("starter checks mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := execute(t, "init", path); err == nil {
		t.Error("init over an existing file succeeded")
	}
	if _, _, err := execute(t, "init", filepath.Join(t.TempDir(), "Cargo.toml")); err == nil {
		t.Error("init of a TOML file succeeded")
	}
}

func TestCheck_WarnsWhenNothingApplies(t *testing.T) {
	path := writeFile(t, "Cargo.toml", `
[package.metadata.compiler_support.'cfg(windows)']
win = { version = ">=1" }
`)
	stdout, stderr, err := execute(t, "check", "-m", path, "--toolchain", "1.0.0", "-t", "x86_64-unknown-linux-gnu", "-f", "gotags")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
	if !strings.Contains(stderr, "no capability for target") {
		t.Errorf("stderr does not warn about the empty manifest:\n%s", stderr)
	}
}
