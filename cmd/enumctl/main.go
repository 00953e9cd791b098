// Command enumctl inspects enumeration catalogs and normalizes JSON payloads
// against them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
