// Command salesman solves Euclidean TSP instances read from city files.
//
// Usage:
//
//	salesman [--config file] [--log-level lvl] solve [--algo nn|dijkstra|mst] [--report out.json] <file>
//	salesman menu <file>
//	salesman generate [--count n] [--seed s] [--x-max x] [--y-max y] [--out file]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
