// SPDX-License-Identifier: MIT

// Package main is the entry point for the lvlfield CLI: cache-backed
// generation and sampling of correlated random fields on uniform grids.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "lvlfield: %v\n", err)
		os.Exit(1)
	}
}
