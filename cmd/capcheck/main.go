// Command capcheck enables conditional-compilation flags for the
// capabilities a compiler toolchain supports.
package main

import "github.com/goplus/capcheck/cmd/capcheck/internal"

func main() {
	internal.Execute()
}
