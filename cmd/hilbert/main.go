// Command hilbert converts between grid coordinates and Hilbert indices.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
