// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfg

import (
	"runtime"
	"sort"
)

// Target describes the attributes of a target triple that predicates
// can test.
type Target struct {
	Triple       string
	Arch         string
	OS           string
	Families     []string
	Env          string
	Vendor       string
	Endian       string
	PointerWidth int
	ABI          string
}

var (
	unix    = []string{"unix"}
	windows = []string{"windows"}
	wasm    = []string{"wasm"}
)

var builtinTargets = []Target{
	{Triple: "aarch64-apple-darwin", Arch: "aarch64", OS: "macos", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-apple-ios", Arch: "aarch64", OS: "ios", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-apple-ios-macabi", Arch: "aarch64", OS: "ios", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64, ABI: "macabi"},
	{Triple: "aarch64-apple-ios-sim", Arch: "aarch64", OS: "ios", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64, ABI: "sim"},
	{Triple: "aarch64-apple-tvos", Arch: "aarch64", OS: "tvos", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-apple-tvos-sim", Arch: "aarch64", OS: "tvos", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64, ABI: "sim"},
	{Triple: "aarch64-apple-visionos", Arch: "aarch64", OS: "visionos", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-apple-watchos", Arch: "aarch64", OS: "watchos", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-apple-darwin", Arch: "x86_64", OS: "macos", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-apple-ios", Arch: "x86_64", OS: "ios", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64, ABI: "sim"},
	{Triple: "x86_64-apple-ios-macabi", Arch: "x86_64", OS: "ios", Families: unix, Vendor: "apple", Endian: "little", PointerWidth: 64, ABI: "macabi"},
	{Triple: "aarch64-linux-android", Arch: "aarch64", OS: "android", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "arm-linux-androideabi", Arch: "arm", OS: "android", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "armv7-linux-androideabi", Arch: "arm", OS: "android", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "i686-linux-android", Arch: "x86", OS: "android", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "thumbv7neon-linux-androideabi", Arch: "arm", OS: "android", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "x86_64-linux-android", Arch: "x86_64", OS: "android", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-unknown-linux-ohos", Arch: "aarch64", OS: "linux", Families: unix, Env: "ohos", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "armv7-unknown-linux-ohos", Arch: "arm", OS: "linux", Families: unix, Env: "ohos", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "x86_64-unknown-linux-ohos", Arch: "x86_64", OS: "linux", Families: unix, Env: "ohos", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-unknown-linux-gnu", Arch: "aarch64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64_be-unknown-linux-gnu", Arch: "aarch64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "big", PointerWidth: 64},
	{Triple: "arm-unknown-linux-gnueabi", Arch: "arm", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "arm-unknown-linux-gnueabihf", Arch: "arm", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabihf"},
	{Triple: "armv5te-unknown-linux-gnueabi", Arch: "arm", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "armv7-unknown-linux-gnueabi", Arch: "arm", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "armv7-unknown-linux-gnueabihf", Arch: "arm", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabihf"},
	{Triple: "thumbv7neon-unknown-linux-gnueabihf", Arch: "arm", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabihf"},
	{Triple: "i586-unknown-linux-gnu", Arch: "x86", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "i686-unknown-linux-gnu", Arch: "x86", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "loongarch64-unknown-linux-gnu", Arch: "loongarch64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "mips-unknown-linux-gnu", Arch: "mips", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "big", PointerWidth: 32},
	{Triple: "mipsel-unknown-linux-gnu", Arch: "mips", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "mips64-unknown-linux-gnuabi64", Arch: "mips64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "big", PointerWidth: 64, ABI: "abi64"},
	{Triple: "mips64el-unknown-linux-gnuabi64", Arch: "mips64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 64, ABI: "abi64"},
	{Triple: "powerpc-unknown-linux-gnu", Arch: "powerpc", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "big", PointerWidth: 32},
	{Triple: "powerpc64-unknown-linux-gnu", Arch: "powerpc64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "big", PointerWidth: 64},
	{Triple: "powerpc64le-unknown-linux-gnu", Arch: "powerpc64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "riscv64gc-unknown-linux-gnu", Arch: "riscv64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "s390x-unknown-linux-gnu", Arch: "s390x", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "big", PointerWidth: 64},
	{Triple: "sparc64-unknown-linux-gnu", Arch: "sparc64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "big", PointerWidth: 64},
	{Triple: "x86_64-unknown-linux-gnu", Arch: "x86_64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-unknown-linux-gnux32", Arch: "x86_64", OS: "linux", Families: unix, Env: "gnu", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "x32"},
	{Triple: "aarch64-unknown-linux-musl", Arch: "aarch64", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "arm-unknown-linux-musleabi", Arch: "arm", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "arm-unknown-linux-musleabihf", Arch: "arm", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabihf"},
	{Triple: "armv5te-unknown-linux-musleabi", Arch: "arm", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "armv7-unknown-linux-musleabi", Arch: "arm", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "armv7-unknown-linux-musleabihf", Arch: "arm", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabihf"},
	{Triple: "i586-unknown-linux-musl", Arch: "x86", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "i686-unknown-linux-musl", Arch: "x86", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "loongarch64-unknown-linux-musl", Arch: "loongarch64", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "powerpc64le-unknown-linux-musl", Arch: "powerpc64", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "riscv64gc-unknown-linux-musl", Arch: "riscv64", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-unknown-linux-musl", Arch: "x86_64", OS: "linux", Families: unix, Env: "musl", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-pc-windows-gnullvm", Arch: "aarch64", OS: "windows", Families: windows, Env: "gnu", Vendor: "pc", Endian: "little", PointerWidth: 64, ABI: "llvm"},
	{Triple: "aarch64-pc-windows-msvc", Arch: "aarch64", OS: "windows", Families: windows, Env: "msvc", Vendor: "pc", Endian: "little", PointerWidth: 64},
	{Triple: "i586-pc-windows-msvc", Arch: "x86", OS: "windows", Families: windows, Env: "msvc", Vendor: "pc", Endian: "little", PointerWidth: 32},
	{Triple: "i686-pc-windows-gnu", Arch: "x86", OS: "windows", Families: windows, Env: "gnu", Vendor: "pc", Endian: "little", PointerWidth: 32},
	{Triple: "i686-pc-windows-gnullvm", Arch: "x86", OS: "windows", Families: windows, Env: "gnu", Vendor: "pc", Endian: "little", PointerWidth: 32, ABI: "llvm"},
	{Triple: "i686-pc-windows-msvc", Arch: "x86", OS: "windows", Families: windows, Env: "msvc", Vendor: "pc", Endian: "little", PointerWidth: 32},
	{Triple: "x86_64-pc-windows-gnu", Arch: "x86_64", OS: "windows", Families: windows, Env: "gnu", Vendor: "pc", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-pc-windows-gnullvm", Arch: "x86_64", OS: "windows", Families: windows, Env: "gnu", Vendor: "pc", Endian: "little", PointerWidth: 64, ABI: "llvm"},
	{Triple: "x86_64-pc-windows-msvc", Arch: "x86_64", OS: "windows", Families: windows, Env: "msvc", Vendor: "pc", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-unknown-uefi", Arch: "aarch64", OS: "uefi", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "i686-unknown-uefi", Arch: "x86", OS: "uefi", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "x86_64-unknown-uefi", Arch: "x86_64", OS: "uefi", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-unknown-freebsd", Arch: "aarch64", OS: "freebsd", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "i686-unknown-freebsd", Arch: "x86", OS: "freebsd", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "x86_64-unknown-freebsd", Arch: "x86_64", OS: "freebsd", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-unknown-netbsd", Arch: "aarch64", OS: "netbsd", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-unknown-netbsd", Arch: "x86_64", OS: "netbsd", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-unknown-openbsd", Arch: "aarch64", OS: "openbsd", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-unknown-openbsd", Arch: "x86_64", OS: "openbsd", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-unknown-dragonfly", Arch: "x86_64", OS: "dragonfly", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-unknown-illumos", Arch: "x86_64", OS: "illumos", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-pc-solaris", Arch: "x86_64", OS: "solaris", Families: unix, Vendor: "pc", Endian: "little", PointerWidth: 64},
	{Triple: "sparcv9-sun-solaris", Arch: "sparc64", OS: "solaris", Families: unix, Vendor: "sun", Endian: "big", PointerWidth: 64},
	{Triple: "aarch64-unknown-fuchsia", Arch: "aarch64", OS: "fuchsia", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-unknown-fuchsia", Arch: "x86_64", OS: "fuchsia", Families: unix, Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-unknown-redox", Arch: "x86_64", OS: "redox", Families: unix, Env: "relibc", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "x86_64-fortanix-unknown-sgx", Arch: "x86_64", OS: "unknown", Env: "sgx", Vendor: "fortanix", Endian: "little", PointerWidth: 64, ABI: "fortanix"},
	{Triple: "wasm32-unknown-emscripten", Arch: "wasm32", OS: "emscripten", Families: []string{"unix", "wasm"}, Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "wasm32-unknown-unknown", Arch: "wasm32", OS: "unknown", Families: wasm, Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "wasm32-wasip1", Arch: "wasm32", OS: "wasi", Families: wasm, Env: "p1", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "wasm32-wasip1-threads", Arch: "wasm32", OS: "wasi", Families: wasm, Env: "p1", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "wasm32-wasip2", Arch: "wasm32", OS: "wasi", Families: wasm, Env: "p2", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "wasm32v1-none", Arch: "wasm32", OS: "none", Families: wasm, Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "aarch64-unknown-none", Arch: "aarch64", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "aarch64-unknown-none-softfloat", Arch: "aarch64", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 64, ABI: "softfloat"},
	{Triple: "armebv7r-none-eabi", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "big", PointerWidth: 32, ABI: "eabi"},
	{Triple: "armebv7r-none-eabihf", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "big", PointerWidth: 32, ABI: "eabihf"},
	{Triple: "armv7a-none-eabi", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "armv7r-none-eabi", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "armv7r-none-eabihf", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabihf"},
	{Triple: "loongarch64-unknown-none", Arch: "loongarch64", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "nvptx64-nvidia-cuda", Arch: "nvptx64", OS: "cuda", Vendor: "nvidia", Endian: "little", PointerWidth: 64},
	{Triple: "riscv32i-unknown-none-elf", Arch: "riscv32", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "riscv32imac-unknown-none-elf", Arch: "riscv32", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "riscv32imafc-unknown-none-elf", Arch: "riscv32", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "riscv32imc-unknown-none-elf", Arch: "riscv32", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32},
	{Triple: "riscv64gc-unknown-none-elf", Arch: "riscv64", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "riscv64imac-unknown-none-elf", Arch: "riscv64", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 64},
	{Triple: "thumbv6m-none-eabi", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "thumbv7em-none-eabi", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "thumbv7em-none-eabihf", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabihf"},
	{Triple: "thumbv7m-none-eabi", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "thumbv8m.base-none-eabi", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "thumbv8m.main-none-eabi", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabi"},
	{Triple: "thumbv8m.main-none-eabihf", Arch: "arm", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 32, ABI: "eabihf"},
	{Triple: "x86_64-unknown-none", Arch: "x86_64", OS: "none", Vendor: "unknown", Endian: "little", PointerWidth: 64},
}

var targetsByTriple = func() map[string]*Target {
	m := make(map[string]*Target, len(builtinTargets))
	for i := range builtinTargets {
		m[builtinTargets[i].Triple] = &builtinTargets[i]
	}
	return m
}()

// LookupTarget returns the builtin target for triple. Lookup is exact;
// no attempt is made to interpret an unknown triple piecewise.
func LookupTarget(triple string) (*Target, bool) {
	t, ok := targetsByTriple[triple]
	return t, ok
}

// Targets returns the triples of all builtin targets, sorted.
func Targets() []string {
	triples := make([]string, 0, len(builtinTargets))
	for _, t := range builtinTargets {
		triples = append(triples, t.Triple)
	}
	sort.Strings(triples)
	return triples
}

// hostTriples maps GOOS/GOARCH pairs to the conventional triple of the
// same platform.
var hostTriples = map[string]string{
	"android/amd64":   "x86_64-linux-android",
	"android/arm64":   "aarch64-linux-android",
	"darwin/amd64":    "x86_64-apple-darwin",
	"darwin/arm64":    "aarch64-apple-darwin",
	"dragonfly/amd64": "x86_64-unknown-dragonfly",
	"freebsd/386":     "i686-unknown-freebsd",
	"freebsd/amd64":   "x86_64-unknown-freebsd",
	"freebsd/arm64":   "aarch64-unknown-freebsd",
	"illumos/amd64":   "x86_64-unknown-illumos",
	"ios/arm64":       "aarch64-apple-ios",
	"js/wasm":         "wasm32-unknown-unknown",
	"linux/386":       "i686-unknown-linux-gnu",
	"linux/amd64":     "x86_64-unknown-linux-gnu",
	"linux/arm":       "armv7-unknown-linux-gnueabihf",
	"linux/arm64":     "aarch64-unknown-linux-gnu",
	"linux/loong64":   "loongarch64-unknown-linux-gnu",
	"linux/mips":      "mips-unknown-linux-gnu",
	"linux/mips64":    "mips64-unknown-linux-gnuabi64",
	"linux/mips64le":  "mips64el-unknown-linux-gnuabi64",
	"linux/mipsle":    "mipsel-unknown-linux-gnu",
	"linux/ppc64":     "powerpc64-unknown-linux-gnu",
	"linux/ppc64le":   "powerpc64le-unknown-linux-gnu",
	"linux/riscv64":   "riscv64gc-unknown-linux-gnu",
	"linux/s390x":     "s390x-unknown-linux-gnu",
	"netbsd/amd64":    "x86_64-unknown-netbsd",
	"netbsd/arm64":    "aarch64-unknown-netbsd",
	"openbsd/amd64":   "x86_64-unknown-openbsd",
	"openbsd/arm64":   "aarch64-unknown-openbsd",
	"solaris/amd64":   "x86_64-pc-solaris",
	"wasip1/wasm":     "wasm32-wasip1",
	"windows/386":     "i686-pc-windows-msvc",
	"windows/amd64":   "x86_64-pc-windows-msvc",
	"windows/arm64":   "aarch64-pc-windows-msvc",
}

// HostTriple returns the triple of the platform this program runs on,
// derived from runtime.GOOS and runtime.GOARCH.
func HostTriple() (string, bool) {
	return hostTriple(runtime.GOOS, runtime.GOARCH)
}

func hostTriple(goos, goarch string) (string, bool) {
	t, ok := hostTriples[goos+"/"+goarch]
	return t, ok
}
