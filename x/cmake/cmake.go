// Package cmake writes capability flags as CMake cache definitions.
package cmake

import (
	"bufio"
	"io"
	"sort"

	"github.com/goplus/capcheck/compat"
)

type defineValue struct {
	value    string
	typeName string
}

// CMake collects -D definitions for a cmake configure step.
type CMake struct {
	prefix  string
	defines map[string]defineValue
}

// New returns a CMake naming flags prefix+capability unless a capability
// declares its own flag name.
func New(prefix string) *CMake {
	return &CMake{
		prefix:  prefix,
		defines: make(map[string]defineValue),
	}
}

// Define adds a -D<key>:STRING=<value> definition.
func (c *CMake) Define(key, value string) {
	c.defines[key] = defineValue{value: value, typeName: "STRING"}
}

// DefineBool adds a -D<key>:BOOL=ON/OFF definition.
func (c *CMake) DefineBool(key string, value bool) {
	v := "OFF"
	if value {
		v = "ON"
	}
	c.defines[key] = defineValue{value: v, typeName: "BOOL"}
}

// Declare defines every flag as OFF, so a flag that was enabled by a
// previous configure is reset in the cache. Enable overrides it.
func (c *CMake) Declare(flags ...string) {
	for _, f := range flags {
		if _, ok := c.defines[f]; !ok {
			c.DefineBool(f, false)
		}
	}
}

// Enable defines the flag of every enabled check as ON.
func (c *CMake) Enable(enabled []compat.Check) {
	for _, f := range compat.Flags(enabled, c.prefix) {
		c.DefineBool(f, true)
	}
}

// Args returns the definitions as cmake arguments, sorted by key.
func (c *CMake) Args() []string {
	if len(c.defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.defines))
	for k := range c.defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		d := c.defines[k]
		args = append(args, "-D"+k+":"+d.typeName+"="+d.value)
	}
	return args
}

// Emit enables the checks and writes all definitions to w, one per line.
func (c *CMake) Emit(w io.Writer, enabled []compat.Check) error {
	c.Enable(enabled)
	bw := bufio.NewWriter(w)
	for _, arg := range c.Args() {
		bw.WriteString(arg)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
