// Command tessel builds half-edge surfaces and queries them: summaries,
// shortest face paths, face rings and edge spins.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
