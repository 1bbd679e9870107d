// SPDX-License-Identifier: MIT
// Command layoffs summarizes layoff records per industry and groups related
// companies into clusters.
//
//	layoffs stats layoffs.csv --sorted
//	layoffs clusters relations.csv --degrees
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "layoffs:", err)
		os.Exit(1)
	}
}
