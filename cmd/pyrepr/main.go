// pyrepr generates __repr__ methods for Python classes from their
// __init__ signatures.
package main

import (
	"github.com/hargabyte/pyrepr/internal/cmd"
)

func main() {
	cmd.Execute()
}
