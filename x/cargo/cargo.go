// Package cargo writes build-script directives that enable capability
// flags for the Rust compiler.
package cargo

import (
	"bufio"
	"io"

	"github.com/goplus/capcheck/compat"
)

// Cargo collects the directives printed by a build script.
type Cargo struct {
	prefix   string
	rerun    []string
	declared []string
}

// New returns a Cargo emitting flags named prefix+capability unless a
// capability declares its own flag name.
func New(prefix string) *Cargo {
	return &Cargo{prefix: prefix}
}

// RerunIfChanged asks cargo to rerun the build script when path changes.
func (c *Cargo) RerunIfChanged(path string) { c.rerun = append(c.rerun, path) }

// CheckCfg declares flags as expected cfg names so that rustc does not
// warn about them when they are not enabled.
func (c *Cargo) CheckCfg(flags ...string) { c.declared = append(c.declared, flags...) }

// Directives returns the directive lines for the enabled checks, in
// order. Repeated flags are repeated; cargo treats them as idempotent.
func (c *Cargo) Directives(enabled []compat.Check) []string {
	lines := make([]string, 0, len(c.rerun)+len(c.declared)+len(enabled))
	for _, path := range c.rerun {
		lines = append(lines, "cargo:rerun-if-changed="+path)
	}
	for _, flag := range c.declared {
		lines = append(lines, "cargo:rustc-check-cfg=cfg("+flag+")")
	}
	for _, flag := range compat.Flags(enabled, c.prefix) {
		lines = append(lines, "cargo:rustc-cfg="+flag)
	}
	return lines
}

// Emit writes the directives to w, one per line.
func (c *Cargo) Emit(w io.Writer, enabled []compat.Check) error {
	bw := bufio.NewWriter(w)
	for _, line := range c.Directives(enabled) {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
